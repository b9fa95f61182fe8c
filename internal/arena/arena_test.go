package arena_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coda-lang/coda/internal/arena"
)

func TestAllocKeepsEarlierBlocks(t *testing.T) {
	a := arena.New(arena.WithBlockSize(64))
	defer a.Destroy()

	var issued [][]byte
	total := 0
	for i := 0; total < 64*20; i++ {
		size := 7 + i%13
		b, err := a.Alloc(size)
		require.NoError(t, err)
		require.Len(t, b, size)
		for j := range b {
			b[j] = byte(i)
		}
		issued = append(issued, b)
		total += size
	}

	for i, b := range issued {
		for j, c := range b {
			if c != byte(i) {
				t.Fatalf("allocation %d byte %d = %d after growth, want %d", i, j, c, byte(i))
			}
		}
	}
	assert.Greater(t, a.Stats().Blocks, 1)
}

func TestAllocDoesNotOverlap(t *testing.T) {
	a := arena.New(arena.WithBlockSize(16))
	first, err := a.Alloc(10)
	require.NoError(t, err)
	second, err := a.Alloc(10)
	require.NoError(t, err)

	for i := range first {
		first[i] = 0xAA
	}
	for i := range second {
		second[i] = 0x55
	}
	for _, c := range first {
		assert.Equal(t, byte(0xAA), c)
	}

	// Appending to an issued slice must not spill into the neighbour.
	assert.Equal(t, len(first), cap(first))
}

func TestAllocLargerThanBlock(t *testing.T) {
	a := arena.New(arena.WithBlockSize(32))
	b, err := a.Alloc(4096)
	require.NoError(t, err)
	assert.Len(t, b, 4096)
}

func TestCallocZeroesReusedMemory(t *testing.T) {
	a := arena.New(arena.WithBlockSize(32))
	b, err := a.Alloc(32)
	require.NoError(t, err)
	for i := range b {
		b[i] = 0xFF
	}

	a.Reset()
	z, err := a.Calloc(32)
	require.NoError(t, err)
	for i, c := range z {
		if c != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, c)
		}
	}
}

func TestResetReusesBlocks(t *testing.T) {
	a := arena.New(arena.WithBlockSize(32))
	for i := 0; i < 10; i++ {
		_, err := a.Alloc(30)
		require.NoError(t, err)
	}
	before := a.Stats()

	a.Reset()
	assert.Zero(t, a.Stats().Used)

	for i := 0; i < 10; i++ {
		_, err := a.Alloc(30)
		require.NoError(t, err)
	}
	after := a.Stats()
	assert.Equal(t, before.Reserved, after.Reserved)
	assert.Equal(t, before.Blocks, after.Blocks)
}

func TestLimit(t *testing.T) {
	a := arena.New(arena.WithBlockSize(64), arena.WithLimit(128))
	_, err := a.Alloc(60)
	require.NoError(t, err)

	_, err = a.Alloc(200)
	require.Error(t, err)
	assert.True(t, errors.Is(err, arena.ErrExhausted))

	var ex *arena.ExhaustedError
	require.True(t, errors.As(err, &ex))
	assert.Equal(t, 128, ex.Limit)
}

func TestDestroy(t *testing.T) {
	a := arena.New()
	a.Destroy()

	_, err := a.Alloc(1)
	assert.ErrorIs(t, err, arena.ErrDestroyed)
	assert.PanicsWithValue(t, arena.ErrDestroyed, func() {
		arena.Make[int](a)
	})
}

type node struct {
	name  string
	left  *node
	value int
}

func TestMakePointersStable(t *testing.T) {
	a := arena.New()
	defer a.Destroy()

	var nodes []*node
	var prev *node
	for i := 0; i < 5000; i++ {
		n := arena.Make[node](a)
		n.value = i
		n.left = prev
		nodes = append(nodes, n)
		prev = n
	}

	for i, n := range nodes {
		require.Equal(t, i, n.value)
		if i > 0 {
			require.Same(t, nodes[i-1], n.left)
		}
	}
}

func TestMakeReturnsZeroAfterReset(t *testing.T) {
	a := arena.New()
	n := arena.Make[node](a)
	n.name = "dirty"
	n.value = 42

	a.Reset()
	m := arena.Make[node](a)
	assert.Empty(t, m.name)
	assert.Zero(t, m.value)
	assert.Nil(t, m.left)
}

func TestMakeExhausted(t *testing.T) {
	a := arena.New(arena.WithBlockSize(8), arena.WithLimit(16))
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, arena.ErrExhausted)
	}()
	for {
		arena.Make[node](a)
	}
}
