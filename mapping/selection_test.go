// SPDX-License-Identifier: MIT

package mapping_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ndview/mapping"
	"github.com/katalvlaran/ndview/ndarray"
)

func TestEncodeSelection(t *testing.T) {
	t.Parallel()

	sel, ok := mapping.EncodeSelection(mapping.Mapping{s0, mapping.Y, mapping.X})
	require.True(t, ok)
	require.Equal(t, "0,:,:", sel)

	sel, ok = mapping.EncodeSelection(mapping.Mapping{mapping.Slice(12), mapping.Y, mapping.X, mapping.Locked})
	require.True(t, ok)
	require.Equal(t, "12,:,:,:", sel)

	_, ok = mapping.EncodeSelection(mapping.Mapping{mapping.Y, mapping.X})
	require.False(t, ok, "nothing to select without a fixed index")
	_, ok = mapping.EncodeSelection(mapping.Mapping{})
	require.False(t, ok)
}

func TestParseSelection(t *testing.T) {
	t.Parallel()

	picks, err := mapping.ParseSelection("3,:, 1", 3)
	require.NoError(t, err)
	require.Equal(t, []ndarray.Pick{ndarray.Index(3), ndarray.All(), ndarray.Index(1)}, picks)

	picks, err = mapping.ParseSelection("", 2)
	require.NoError(t, err)
	require.Equal(t, []ndarray.Pick{ndarray.All(), ndarray.All()}, picks)

	for _, bad := range []string{"0,:", "a,:,:", "-1,:,:", "0,,:"} {
		_, err = mapping.ParseSelection(bad, 3)
		require.ErrorIs(t, err, mapping.ErrBadSelection, bad)
	}
}

// TestSelectionResidualAgree checks that the ":" positions of the selection
// string are exactly the dimensions kept by Residual.
func TestSelectionResidualAgree(t *testing.T) {
	t.Parallel()

	shape := []int{4, 5, 6, 3}
	mappings := []mapping.Mapping{
		{s0, mapping.Y, mapping.X, mapping.Locked},
		{mapping.Slice(2), mapping.Slice(1), mapping.X, mapping.Locked},
		{mapping.X, s0, mapping.Y, mapping.Slice(2)},
		{mapping.Slice(3), mapping.Slice(4), mapping.Slice(5), mapping.Slice(2)},
	}
	for _, m := range mappings {
		sel, ok := mapping.EncodeSelection(m)
		require.True(t, ok)
		resShape, resMap, err := mapping.Residual(shape, m)
		require.NoError(t, err)

		var kept []int
		for dim, tok := range strings.Split(sel, ",") {
			if tok == ":" {
				kept = append(kept, shape[dim])
			}
		}
		require.Equal(t, len(kept), len(resShape), m.String())
		if len(kept) > 0 {
			require.Equal(t, kept, resShape, m.String())
		}
		for _, e := range resMap {
			require.False(t, e.IsSlice())
		}
	}

	_, _, err := mapping.Residual(shape, mapping.Mapping{mapping.X})
	require.ErrorIs(t, err, mapping.ErrDimensionMismatch)
}

// ProjectSuite exercises Project on a rank-3 cube whose values encode their
// own coordinates (v = 10000*i + 100*j + k).
type ProjectSuite struct {
	suite.Suite
	cube *ndarray.Array
}

func (s *ProjectSuite) SetupTest() {
	shape := []int{5, 3, 7}
	data := make([]float64, 0, 5*3*7)
	for i := 0; i < 5; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 7; k++ {
				data = append(data, float64(10000*i+100*j+k))
			}
		}
	}
	cube, err := ndarray.FromData(data, shape)
	s.Require().NoError(err)
	s.cube = cube
}

// TestYBeforeX keeps source order when Y already precedes X.
func (s *ProjectSuite) TestYBeforeX() {
	out, err := mapping.Project(s.cube, mapping.Mapping{mapping.Slice(2), mapping.Y, mapping.X})
	s.Require().NoError(err)
	s.Require().Equal([]int{3, 7}, out.Shape())
	v, err := out.At(1, 6)
	s.Require().NoError(err)
	s.Require().Equal(20106.0, v)
	s.Require().True(out.IsContiguous())
}

// TestXBeforeYIsTransposed checks the (Y, X) output order for [X, 0, Y].
func (s *ProjectSuite) TestXBeforeYIsTransposed() {
	out, err := mapping.Project(s.cube, mapping.Mapping{mapping.X, s0, mapping.Y})
	s.Require().NoError(err)
	s.Require().Equal([]int{7, 5}, out.Shape())
	// out[y=k][x=i] == cube[i][0][k]
	v, err := out.At(6, 4)
	s.Require().NoError(err)
	s.Require().Equal(40006.0, v)
}

// TestSingleAxis returns a 1-D line along the X dimension.
func (s *ProjectSuite) TestSingleAxis() {
	out, err := mapping.Project(s.cube, mapping.Mapping{mapping.Slice(1), mapping.Slice(2), mapping.X})
	s.Require().NoError(err)
	s.Require().Equal([]int{7}, out.Shape())
	s.Require().Equal([]float64{10200, 10201, 10202, 10203, 10204, 10205, 10206}, out.Values())
}

// TestLockedKeptInOrder keeps locked dimensions after the axes.
func (s *ProjectSuite) TestLockedKeptInOrder() {
	out, err := mapping.Project(s.cube, mapping.Mapping{mapping.Y, mapping.X, mapping.Locked})
	s.Require().NoError(err)
	s.Require().Equal([]int{5, 3, 7}, out.Shape())

	out, err = mapping.Project(s.cube, mapping.Mapping{mapping.X, mapping.Y, mapping.Locked})
	s.Require().NoError(err)
	s.Require().Equal([]int{3, 5, 7}, out.Shape())
	v, _ := out.At(2, 4, 1)
	s.Require().Equal(40201.0, v)
}

// TestNoAlias checks the projected array is independent of its source.
func (s *ProjectSuite) TestNoAlias() {
	out, err := mapping.Project(s.cube, mapping.Mapping{s0, mapping.Y, mapping.X})
	s.Require().NoError(err)
	s.Require().NoError(out.Set(-1, 0, 0))
	v, _ := s.cube.At(0, 0, 0)
	s.Require().Equal(0.0, v)
}

// TestErrors covers rank mismatch and out-of-range slice indices.
func (s *ProjectSuite) TestErrors() {
	_, err := mapping.Project(s.cube, mapping.Mapping{mapping.Y, mapping.X})
	s.Require().ErrorIs(err, mapping.ErrDimensionMismatch)
	_, err = mapping.Project(s.cube, mapping.Mapping{mapping.Slice(5), mapping.Y, mapping.X})
	s.Require().ErrorIs(err, ndarray.ErrOutOfRange)
	_, err = mapping.Project(nil, mapping.Mapping{})
	s.Require().ErrorIs(err, ndarray.ErrNilArray)
}

func TestProjectSuite(t *testing.T) {
	suite.Run(t, new(ProjectSuite))
}

func TestProject_ScenarioShape(t *testing.T) {
	t.Parallel()

	shape := []int{9, 20, 41}
	a, err := ndarray.New(shape)
	require.NoError(t, err)
	m := mapping.Mapping{s0, mapping.Y, mapping.X}

	sel, ok := mapping.EncodeSelection(m)
	require.True(t, ok)
	require.Equal(t, "0,:,:", sel)
	res, _, err := mapping.Residual(shape, m)
	require.NoError(t, err)
	require.Equal(t, []int{20, 41}, res)

	out, err := mapping.Project(a, m)
	require.NoError(t, err)
	require.Equal(t, []int{20, 41}, out.Shape())
}
