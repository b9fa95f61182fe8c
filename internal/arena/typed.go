package arena

import "reflect"

const (
	firstChunkLen = 16
	maxChunkLen   = 1024
)

type resetter interface {
	reset()
	chunkCount() int
}

// slab holds fixed-capacity chunks of one element type. Chunks are appended,
// never reallocated, so pointers into them stay valid.
type slab[T any] struct {
	chunks [][]T
	cur    int // chunk being filled
	n      int // elements used in chunks[cur]
}

func (s *slab[T]) reset() {
	s.cur = 0
	s.n = 0
}

func (s *slab[T]) chunkCount() int {
	return len(s.chunks)
}

// Make returns a pointer to a zero T owned by the arena.
//
// Make panics with ErrDestroyed on a destroyed arena and with an
// *ExhaustedError when the configured limit is reached. Callers that build
// whole trees recover the panic at their entry point.
func Make[T any](a *Arena) *T {
	if a.destroyed {
		panic(ErrDestroyed)
	}
	s := slabOf[T](a)

	if s.cur < len(s.chunks) && s.n == len(s.chunks[s.cur]) {
		s.cur++
		s.n = 0
	}
	if s.cur == len(s.chunks) {
		s.chunks = append(s.chunks, newChunk[T](a, len(s.chunks)))
	}

	p := &s.chunks[s.cur][s.n]
	s.n++

	var zero T
	*p = zero
	a.used += elemSize[T]()
	return p
}

func slabOf[T any](a *Arena) *slab[T] {
	key := reflect.TypeFor[T]()
	if s, ok := a.slabs[key]; ok {
		return s.(*slab[T])
	}
	s := &slab[T]{}
	a.slabs[key] = s
	return s
}

func newChunk[T any](a *Arena, index int) []T {
	n := firstChunkLen << index
	if n > maxChunkLen || n <= 0 {
		n = maxChunkLen
	}
	if err := a.reserve(n * elemSize[T]()); err != nil {
		panic(err)
	}
	return make([]T, n)
}

func elemSize[T any]() int {
	size := int(reflect.TypeFor[T]().Size())
	if size == 0 {
		return 1
	}
	return size
}
