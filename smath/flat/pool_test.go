package flat

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-smath/smath"
)

func TestParallelForCoversRange(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()
	assert.Equal(t, 4, pool.Workers())

	for _, n := range []int{0, 1, 3, 4, 5, 1000} {
		seen := make([]atomic.Int32, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				seen[i].Add(1)
			}
		})
		for i := range seen {
			require.Equal(t, int32(1), seen[i].Load(), "n=%d index %d", n, i)
		}
	}
}

func TestPoolClosedOrNilRunsInline(t *testing.T) {
	var nilPool *Pool
	assert.Equal(t, 1, nilPool.Workers())
	calls := 0
	nilPool.ParallelFor(10, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 10, end)
	})
	assert.Equal(t, 1, calls)

	pool := NewPool(2)
	pool.Close()
	pool.Close()
	pool.ParallelFor(5, func(start, end int) { calls++ })
	assert.Equal(t, 2, calls)
}

func TestApply(t *testing.T) {
	pool := NewPool(3)
	defer pool.Close()

	src := make([]smath.Vec3[int32], 100)
	for i := range src {
		src[i] = smath.Vec3Splat(int32(i))
	}
	dst := make([]smath.Vec3[int32], len(src))
	require.NoError(t, Apply(pool, dst, src, func(v smath.Vec3[int32]) smath.Vec3[int32] {
		return smath.Scale(v, 2)
	}))
	for i, v := range dst {
		require.Equal(t, smath.Vec3Splat(int32(2*i)), v)
	}

	assert.ErrorIs(t, Apply(pool, dst[:1], src, func(v smath.Vec3[int32]) smath.Vec3[int32] { return v }), ErrLength)
}

func TestReduce(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	vs := make([]smath.Vec2P[int], 37)
	for i := range vs {
		vs[i] = smath.NewVec2P(i, 1)
	}
	sum := func(acc smath.Vec2P[int], v smath.Vec2P[int]) smath.Vec2P[int] { return smath.Add(acc, v) }
	got := Reduce(pool, vs, smath.Vec2P[int]{}, sum, sum)
	assert.Equal(t, smath.NewVec2P(36*37/2, 37), got)
	assert.Equal(t, got, Reduce(nil, vs, smath.Vec2P[int]{}, sum, sum))
	assert.Equal(t, smath.Vec2P[int]{}, Reduce(pool, nil, smath.Vec2P[int]{}, sum, sum))
}
