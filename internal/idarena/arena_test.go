package idarena

import "testing"

func TestInternRoundTrips(t *testing.T) {
	a := New(0)
	r := a.InternString("GetCount")
	if r.String() != "GetCount" {
		t.Fatalf("got %q", r.String())
	}
}

func TestInternAllowsDuplicates(t *testing.T) {
	a := New(0)
	r1 := a.InternString("Foo")
	r2 := a.InternString("Foo")
	if r1.String() != r2.String() {
		t.Fatal("expected equal content")
	}
	// Distinct backing storage: the arena does not dedupe (spec §4.B).
	r1.data[0] = 'f'
	if r2.String() != "Foo" {
		t.Fatalf("mutation of one ref leaked into another: %q", r2.String())
	}
}

func TestAllocateGrowsAcrossChunks(t *testing.T) {
	a := New(8)
	refs := make([]Ref, 0, 10)
	for i := 0; i < 10; i++ {
		refs = append(refs, a.InternString("abcdefgh"))
	}
	if a.ChunkCount() < 2 {
		t.Fatalf("expected multiple chunks, got %d", a.ChunkCount())
	}
	for _, r := range refs {
		if r.String() != "abcdefgh" {
			t.Fatalf("corrupted ref: %q", r.String())
		}
	}
}

func TestAllocateLargerThanChunkCap(t *testing.T) {
	a := New(4)
	big := make([]byte, 100)
	for i := range big {
		big[i] = 'x'
	}
	region := a.Allocate(100)
	copy(region, big)
	if len(region) != 100 {
		t.Fatalf("got len %d", len(region))
	}
}

func TestEmptyIntern(t *testing.T) {
	a := New(0)
	r := a.InternString("")
	if !r.Empty() {
		t.Fatal("expected empty ref")
	}
}
