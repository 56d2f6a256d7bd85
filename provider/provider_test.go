// SPDX-License-Identifier: MIT

package provider_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndview/mapping"
	"github.com/katalvlaran/ndview/ndarray"
	"github.com/katalvlaran/ndview/provider"
)

func mustArray(t *testing.T, data []float64, shape ...int) *ndarray.Array {
	t.Helper()
	a, err := ndarray.FromData(data, shape)
	require.NoError(t, err)

	return a
}

func TestMemory_PutGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mem := provider.NewMemory()
	src := []float64{1, 2, 3, 4, 5, 6}
	require.NoError(t, mem.Put("grid", mustArray(t, src, 2, 3), nil))
	src[0] = 100

	shape, err := mem.Shape(ctx, "grid")
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, shape)

	ds, err := mem.Get("grid")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, ds.Values.Values())
	require.Nil(t, ds.Errors)

	_, err = mem.Get("missing")
	require.ErrorIs(t, err, provider.ErrNotFound)
	_, err = mem.Shape(ctx, "missing")
	require.ErrorIs(t, err, provider.ErrNotFound)

	require.ErrorIs(t, mem.Put("", mustArray(t, src, 6), nil), provider.ErrEmptyPath)
	require.ErrorIs(t, mem.Put("x", nil, nil), ndarray.ErrNilArray)
	require.ErrorIs(t, mem.Put("x", mustArray(t, src, 6), mustArray(t, src, 2, 3)), provider.ErrShapeMismatch)
}

func TestMemory_Value(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mem := provider.NewMemory()
	vals := mustArray(t, []float64{0, 1, 2, 10, 11, 12}, 2, 3)
	errs := mustArray(t, []float64{.1, .2, .3, .4, .5, .6}, 2, 3)
	require.NoError(t, mem.Put("grid", vals, errs))

	sl, err := mem.Value(ctx, "grid", "1,:")
	require.NoError(t, err)
	require.Equal(t, []int{3}, sl.Values.Shape())
	require.Equal(t, []float64{10, 11, 12}, sl.Values.Values())
	require.Equal(t, []float64{.4, .5, .6}, sl.Errors.Values())

	sl, err = mem.Value(ctx, "grid", "")
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, sl.Values.Shape())

	_, err = mem.Value(ctx, "grid", "2,:")
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
	_, err = mem.Value(ctx, "grid", "1")
	require.ErrorIs(t, err, mapping.ErrBadSelection)
	_, err = mem.Value(ctx, "nope", "")
	require.ErrorIs(t, err, provider.ErrNotFound)
}

func TestMemory_ContextCancelled(t *testing.T) {
	t.Parallel()

	mem := provider.NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mem.Datasets(ctx)
	require.ErrorIs(t, err, context.Canceled)
	_, err = mem.Shape(ctx, "x")
	require.ErrorIs(t, err, context.Canceled)
	_, err = mem.Value(ctx, "x", "")
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemory_ConcurrentUse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mem := provider.NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, err := ndarray.FromData([]float64{float64(i)}, []int{1})
			if err != nil {
				return
			}
			_ = mem.Put(string(rune('a'+i)), a, nil)
			_, _ = mem.Datasets(ctx)
		}(i)
	}
	wg.Wait()

	names, err := mem.Datasets(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h"}, names)
}

func TestNewMock_Datasets(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mem, err := provider.NewMock()
	require.NoError(t, err)

	names, err := mem.Datasets(ctx)
	require.NoError(t, err)
	require.Equal(t, provider.MockNames(), names)

	shapes := map[string][]int{
		"oneD":     {41},
		"pulse":    {64},
		"twoD":     {20, 41},
		"threeD":   {9, 20, 41},
		"fourD":    {3, 9, 20, 41},
		"rgb":      {20, 41, 3},
		"negative": {20, 41},
		"scalar":   {},
	}
	require.Len(t, names, len(shapes))
	for name, want := range shapes {
		got, err := mem.Shape(ctx, name)
		require.NoError(t, err, name)
		require.Equal(t, len(want), len(got), name)
		if len(want) > 0 {
			require.Equal(t, want, got, name)
		}
	}

	oneD, err := mem.Get("oneD")
	require.NoError(t, err)
	require.NotNil(t, oneD.Errors)
	for _, e := range oneD.Errors.Values() {
		assert.Greater(t, e, 0.0)
	}

	neg, err := mem.Get("negative")
	require.NoError(t, err)
	for _, v := range neg.Values.Values() {
		require.LessOrEqual(t, v, 0.0)
	}

	pulse, err := mem.Get("pulse")
	require.NoError(t, err)
	zeros := 0
	for _, v := range pulse.Values.Values() {
		if v == 0 {
			zeros++
		}
	}
	require.Equal(t, 32, zeros)

	scalar, err := mem.Value(ctx, "scalar", "")
	require.NoError(t, err)
	require.Equal(t, []float64{42}, scalar.Values.Values())
}

func TestNewMock_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := provider.NewMock(provider.WithSeed(7), provider.WithNoise(0.3))
	require.NoError(t, err)
	b, err := provider.NewMock(provider.WithRand(rand.New(rand.NewSource(7))), provider.WithNoise(0.3))
	require.NoError(t, err)
	sub, err := provider.NewMock(provider.WithSeed(7), provider.WithNoise(0.3), provider.WithDatasets("threeD"))
	require.NoError(t, err)
	quiet, err := provider.NewMock(provider.WithSeed(7))
	require.NoError(t, err)

	da, _ := a.Get("threeD")
	db, _ := b.Get("threeD")
	ds, _ := sub.Get("threeD")
	dq, _ := quiet.Get("threeD")
	require.Equal(t, da.Values.Values(), db.Values.Values())
	require.Equal(t, da.Values.Values(), ds.Values.Values())
	require.NotEqual(t, da.Values.Values(), dq.Values.Values())

	names, err := sub.Datasets(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"threeD"}, names)
}

func TestNewMock_UnknownDataset(t *testing.T) {
	t.Parallel()

	_, err := provider.NewMock(provider.WithDatasets("twoD", "sevenD"))
	require.ErrorIs(t, err, provider.ErrNotFound)
	require.Contains(t, err.Error(), "sevenD")
}

func TestOptions_Panic(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { provider.WithRand(nil) })
	require.Panics(t, func() { provider.WithNoise(-1) })
	require.NotPanics(t, func() { provider.WithNoise(0) })
}
