package caseless

import "testing"

func TestEqualString(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Foo:Bar", "foo:BAR", true},
		{"GetCount", "getcount", true},
		{"", "", true},
		{"abc", "abcd", false},
		{"a_1:b", "A_1:B", true},
		{"::temp0", "::TEMP0", true},
	}
	for _, c := range cases {
		if got := EqualString(c.a, c.b); got != c.want {
			t.Errorf("EqualString(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestToLowerASCIIPassesOtherBytesThrough(t *testing.T) {
	b := []byte("Hello_World:123~!")
	ToLowerASCII(b)
	if string(b) != "hello_world:123~!" {
		t.Fatalf("got %q", b)
	}
}

func TestAppendLowerASCIIDoesNotMutateSource(t *testing.T) {
	src := []byte("MiXeD")
	dst := AppendLowerASCII(nil, src)
	if string(src) != "MiXeD" {
		t.Fatalf("source mutated: %q", src)
	}
	if string(dst) != "mixed" {
		t.Fatalf("got %q", dst)
	}
}
