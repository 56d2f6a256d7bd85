// SPDX-License-Identifier: MIT

package provider

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/katalvlaran/ndview/mapping"
	"github.com/katalvlaran/ndview/ndarray"
)

// Provider is the data-access collaborator of the explorer.
type Provider interface {
	// Datasets lists dataset paths in lexical order.
	Datasets(ctx context.Context) ([]string, error)
	// Shape returns the shape of the dataset at path.
	Shape(ctx context.Context, path string) ([]int, error)
	// Value returns the part of the dataset picked by selection. The empty
	// selection returns the whole dataset.
	Value(ctx context.Context, path, selection string) (*Slice, error)
}

// Slice is a provider answer: the selected values and, when the dataset has
// them, the matching error bars. Both arrays are dense and owned by the caller.
type Slice struct {
	Values *ndarray.Array
	Errors *ndarray.Array
}

// Dataset is a stored value array with optional error bars of equal shape.
type Dataset struct {
	Values *ndarray.Array
	Errors *ndarray.Array
}

// Memory is an in-memory Provider. It is safe for concurrent use.
type Memory struct {
	lk   sync.Mutex
	data map[string]Dataset
}

var _ Provider = (*Memory)(nil)

// NewMemory returns an empty Memory provider.
func NewMemory() *Memory {
	return &Memory{data: map[string]Dataset{}}
}

// Put stores values (and optional errs) under path, replacing any previous
// dataset. The arrays are copied.
func (m *Memory) Put(path string, values, errs *ndarray.Array) error {
	if path == "" {
		return fmt.Errorf("Put: %w", ErrEmptyPath)
	}
	if values == nil {
		return fmt.Errorf("Put(%q): %w", path, ndarray.ErrNilArray)
	}
	ds := Dataset{Values: values.Materialize()}
	if errs != nil {
		if !slices.Equal(values.Shape(), errs.Shape()) {
			return fmt.Errorf("Put(%q): %v vs %v: %w", path, values.Shape(), errs.Shape(), ErrShapeMismatch)
		}
		ds.Errors = errs.Materialize()
	}

	m.lk.Lock()
	defer m.lk.Unlock()
	m.data[path] = ds

	return nil
}

// Get returns the dataset stored under path. The arrays are shared; callers
// must not modify them.
func (m *Memory) Get(path string) (Dataset, error) {
	m.lk.Lock()
	defer m.lk.Unlock()
	ds, ok := m.data[path]
	if !ok {
		return Dataset{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	return ds, nil
}

func (m *Memory) Datasets(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.lk.Lock()
	defer m.lk.Unlock()

	return slices.Sorted(maps.Keys(m.data)), nil
}

func (m *Memory) Shape(ctx context.Context, path string) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ds, err := m.Get(path)
	if err != nil {
		return nil, err
	}

	return ds.Values.Shape(), nil
}

// Value parses selection against the dataset rank and cuts it out of the
// stored arrays.
func (m *Memory) Value(ctx context.Context, path, selection string) (*Slice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ds, err := m.Get(path)
	if err != nil {
		return nil, err
	}
	picks, err := mapping.ParseSelection(selection, ds.Values.Rank())
	if err != nil {
		return nil, fmt.Errorf("Value(%q): %w", path, err)
	}

	out := &Slice{}
	if out.Values, err = cut(ds.Values, picks); err != nil {
		return nil, fmt.Errorf("Value(%q): %w", path, err)
	}
	if ds.Errors != nil {
		if out.Errors, err = cut(ds.Errors, picks); err != nil {
			return nil, fmt.Errorf("Value(%q): %w", path, err)
		}
	}

	return out, nil
}

func cut(a *ndarray.Array, picks []ndarray.Pick) (*ndarray.Array, error) {
	view, err := a.Pick(picks)
	if err != nil {
		return nil, err
	}

	return view.Materialize(), nil
}
