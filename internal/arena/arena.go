// Package arena provides the bump allocator that owns every AST node of a
// compilation unit.
//
// Memory is handed out from a list of blocks. Growing the arena appends a new
// block; blocks that already issued memory are never moved or resized, so
// every slice and pointer returned earlier stays valid until Destroy.
// There is no way to free a single allocation: the whole arena goes at once.
package arena

import (
	"errors"
	"fmt"
	"reflect"
)

const (
	// DefaultBlockSize is the size of the first backing block.
	DefaultBlockSize = 1024

	// maxBlockSize caps block doubling. Larger requests get a dedicated block.
	maxBlockSize = 64 * 1024
)

var (
	// ErrExhausted is wrapped by every ExhaustedError.
	ErrExhausted = errors.New("arena exhausted")

	// ErrDestroyed is returned when allocating from a destroyed arena.
	ErrDestroyed = errors.New("arena destroyed")
)

// ExhaustedError reports that a growth step would exceed the configured limit.
type ExhaustedError struct {
	Requested int // Bytes the failed growth step needed
	Reserved  int // Bytes already reserved by the arena
	Limit     int // Configured limit
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("arena exhausted: need %d bytes, %d of %d reserved", e.Requested, e.Reserved, e.Limit)
}

// Unwrap lets errors.Is match ErrExhausted.
func (e *ExhaustedError) Unwrap() error {
	return ErrExhausted
}

// Option configures an Arena.
type Option func(*Arena)

// WithBlockSize sets the size of the first block. Non-positive sizes are ignored.
func WithBlockSize(n int) Option {
	return func(a *Arena) {
		if n > 0 {
			a.blockSize = n
		}
	}
}

// WithLimit caps the total number of bytes the arena may reserve.
// Zero means no limit.
func WithLimit(n int) Option {
	return func(a *Arena) {
		if n > 0 {
			a.limit = n
		}
	}
}

// Stats describes the memory held by an arena.
type Stats struct {
	Blocks   int // Byte blocks plus typed chunks
	Used     int // Bytes handed out since the last Reset
	Reserved int // Bytes held in backing storage
}

// Arena is a block-list bump allocator. It is not safe for concurrent use;
// one arena belongs to one compilation unit.
type Arena struct {
	blockSize int // size of the next byte block
	limit     int
	reserved  int
	used      int

	blocks [][]byte
	cur    int // block being filled
	off    int // write cursor inside blocks[cur]

	slabs     map[reflect.Type]resetter
	destroyed bool
}

// New creates an arena with its initial backing block.
func New(opts ...Option) *Arena {
	a := &Arena{
		blockSize: DefaultBlockSize,
		slabs:     make(map[reflect.Type]resetter),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.limit > 0 && a.blockSize > a.limit {
		a.blockSize = a.limit
	}
	a.blocks = append(a.blocks, make([]byte, a.blockSize))
	a.reserved = a.blockSize
	return a
}

// Alloc returns size bytes from the arena. The bytes are not cleared and may
// hold data written before a Reset.
func (a *Arena) Alloc(size int) ([]byte, error) {
	if a.destroyed {
		return nil, ErrDestroyed
	}
	if size < 0 {
		return nil, fmt.Errorf("arena: negative allocation size %d", size)
	}

	for a.off+size > len(a.blocks[a.cur]) {
		if a.cur+1 < len(a.blocks) {
			// Reuse a block retained by Reset.
			a.cur++
			a.off = 0
			continue
		}
		if err := a.grow(size); err != nil {
			return nil, err
		}
	}

	b := a.blocks[a.cur][a.off : a.off+size : a.off+size]
	a.off += size
	a.used += size
	return b, nil
}

// Calloc is Alloc with the returned bytes set to zero.
func (a *Arena) Calloc(size int) ([]byte, error) {
	b, err := a.Alloc(size)
	if err != nil {
		return nil, err
	}
	clear(b)
	return b, nil
}

// grow appends a block large enough for size bytes and makes it current.
func (a *Arena) grow(size int) error {
	next := a.blockSize * 2
	if next > maxBlockSize {
		next = maxBlockSize
	}
	if next < size {
		next = size
	}
	if err := a.reserve(next); err != nil {
		return err
	}
	a.blockSize = next
	a.blocks = append(a.blocks, make([]byte, next))
	a.cur = len(a.blocks) - 1
	a.off = 0
	return nil
}

func (a *Arena) reserve(n int) error {
	if a.limit > 0 && a.reserved+n > a.limit {
		return &ExhaustedError{Requested: n, Reserved: a.reserved, Limit: a.limit}
	}
	a.reserved += n
	return nil
}

// Reset rewinds every cursor so the arena can be reused. Backing memory is
// kept. Anything allocated before Reset must no longer be used.
func (a *Arena) Reset() {
	if a.destroyed {
		return
	}
	a.cur = 0
	a.off = 0
	a.used = 0
	for _, s := range a.slabs {
		s.reset()
	}
}

// Destroy releases all backing memory. The arena cannot be used afterwards.
func (a *Arena) Destroy() {
	a.blocks = nil
	a.slabs = nil
	a.cur, a.off = 0, 0
	a.used, a.reserved = 0, 0
	a.destroyed = true
}

// Stats reports current usage.
func (a *Arena) Stats() Stats {
	st := Stats{
		Blocks:   len(a.blocks),
		Used:     a.used,
		Reserved: a.reserved,
	}
	for _, s := range a.slabs {
		st.Blocks += s.chunkCount()
	}
	return st
}
