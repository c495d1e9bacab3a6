// Package idarena implements the bump-allocated arena that backs token
// payloads and IR string values for the lifetime of one file compilation.
//
// Callers may intern duplicate bytes; uniqueness is imposed upstream by the
// string table the .pex serializer owns, not here (spec §4.B).
package idarena

// defaultChunkSize matches the teacher allocator's chunk granularity of a
// few KB: large enough that most files fit in one chunk, small enough that
// a worker compiling many tiny files doesn't commit much unused memory.
const defaultChunkSize = 4096

// Ref is a borrowed view into arena-owned bytes: a pointer/length pair, not
// a copy. It stays valid only for the lifetime of the Arena that produced
// it (spec §3 "Identifier reference", redesigned per spec §9 away from a
// raw pointer into a slice with an implicit, arena-scoped lifetime).
type Ref struct {
	data []byte
}

// Bytes returns the referenced bytes. The caller must not retain or mutate
// the slice past the arena's lifetime.
func (r Ref) Bytes() []byte { return r.data }

// String copies the referenced bytes into a new Go string.
func (r Ref) String() string { return string(r.data) }

// Len reports the length of the referenced bytes.
func (r Ref) Len() int { return len(r.data) }

// Empty reports whether the reference is the zero value.
func (r Ref) Empty() bool { return len(r.data) == 0 }

// Arena is a bump allocator: Allocate and Intern hand out slices carved out
// of growing chunks, and the whole arena is discarded as one unit when a
// file's compilation (lex + parse + semantic passes + IR lowering) is done.
// An Arena is not safe for concurrent use; spec §5 gives each file-compile
// worker its own Arena.
type Arena struct {
	chunks   [][]byte
	cur      []byte
	used     int
	chunkCap int
}

// New creates an Arena whose chunks are sized chunkSize bytes; a chunkSize
// of 0 uses defaultChunkSize.
func New(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &Arena{chunkCap: chunkSize}
}

// Allocate returns a zeroed, mutable byte region of length n, carved from
// the arena's current chunk (growing it first if necessary).
func (a *Arena) Allocate(n int) []byte {
	if n == 0 {
		return nil
	}
	if a.cur == nil || a.used+n > len(a.cur) {
		size := a.chunkCap
		if n > size {
			size = n
		}
		a.cur = make([]byte, size)
		a.chunks = append(a.chunks, a.cur)
		a.used = 0
	}
	region := a.cur[a.used : a.used+n]
	a.used += n
	return region
}

// Intern copies b into the arena and returns a stable Ref to the copy.
func (a *Arena) Intern(b []byte) Ref {
	if len(b) == 0 {
		return Ref{}
	}
	region := a.Allocate(len(b))
	copy(region, b)
	return Ref{data: region}
}

// RefFromBytes wraps bytes already carved out of an Arena (via Allocate)
// into a Ref, for callers that filled the region in place instead of
// handing Intern a ready-made source slice.
func RefFromBytes(b []byte) Ref {
	if len(b) == 0 {
		return Ref{}
	}
	return Ref{data: b}
}

// InternString is Intern for a string source.
func (a *Arena) InternString(s string) Ref {
	if len(s) == 0 {
		return Ref{}
	}
	region := a.Allocate(len(s))
	copy(region, s)
	return Ref{data: region}
}

// Reset discards all chunks, returning the arena to its zero-allocation
// state. Every Ref previously handed out becomes invalid; callers must not
// call Reset while any interned reference is still live.
func (a *Arena) Reset() {
	a.chunks = nil
	a.cur = nil
	a.used = 0
}

// ChunkCount reports how many backing chunks the arena has allocated, for
// tests and diagnostics.
func (a *Arena) ChunkCount() int { return len(a.chunks) }
