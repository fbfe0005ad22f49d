package lazy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceResolve(t *testing.T) {
	tests := []struct {
		name  string
		slice Slice
		n     int
		want  []int
	}{
		{"whole", Slice{Stop: End}, 4, []int{0, 1, 2, 3}},
		{"zero value is empty", Slice{}, 4, []int{}},
		{"step", Slice{Start: 1, Stop: End, Step: 2}, 6, []int{1, 3, 5}},
		{"negative start", Slice{Start: -2, Stop: End}, 5, []int{3, 4}},
		{"negative stop", Slice{Start: 0, Stop: -1}, 4, []int{0, 1, 2}},
		{"clipped bounds", Slice{Start: -10, Stop: 10}, 3, []int{0, 1, 2}},
		{"reverse", Slice{Start: End, Stop: End, Step: -1}, 3, []int{2, 1, 0}},
		{"reverse from index", Slice{Start: 2, Stop: 0, Step: -1}, 4, []int{2, 1}},
		{"reverse clipped start", Slice{Start: 10, Stop: End, Step: -2}, 5, []int{4, 2, 0}},
		{"start after stop", Slice{Start: 3, Stop: 1}, 5, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.slice.Resolve(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndicesResolve(t *testing.T) {
	got, err := Indices{0, -1, 2, 2}.Resolve(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 2, 2}, got)

	_, err = Indices{-4}.Resolve(3)
	var idxErr *IndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, -4, idxErr.Index)
	assert.Equal(t, 3, idxErr.Length)
	assert.Contains(t, err.Error(), "index -4 out of range")
}

func TestMaskResolve(t *testing.T) {
	got, err := Mask{true, false, true}.Resolve(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, got)

	_, err = Mask{true}.Resolve(3)
	var idxErr *IndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Contains(t, err.Error(), "boolean mask of length 1")
}

func TestAllResolve(t *testing.T) {
	got, err := All{}.Resolve(10)
	require.NoError(t, err)
	assert.Nil(t, got)
}
