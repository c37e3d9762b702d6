package terrain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-billy.v4/memfs"
	"gopkg.in/src-d/go-billy.v4/util"

	"github.com/zibibbo-zibibbi/rainfall/terrain"
)

// TestReadInts_Formats covers separators, comments and blank lines.
func TestReadInts_Formats(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []int
	}{
		{"Spaces", "3 0 3", []int{3, 0, 3}},
		{"Commas", "0,1,0,2", []int{0, 1, 0, 2}},
		{"Mixed", "1, 2\n\t3 ,4\n", []int{1, 2, 3, 4}},
		{"Comments", "# reference\n3 0 # basin\n3\n", []int{3, 0, 3}},
		{"Negative", "-3 -5 -3", []int{-3, -5, -3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := terrain.ReadInts(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestReadInts_Errors covers bad tokens and empty input.
func TestReadInts_Errors(t *testing.T) {
	_, err := terrain.ReadInts(strings.NewReader("1 2\n3 x 4"))
	assert.ErrorIs(t, err, terrain.ErrBadInput)
	assert.Contains(t, err.Error(), "line 2")

	_, err = terrain.ReadInts(strings.NewReader("1.5"))
	assert.ErrorIs(t, err, terrain.ErrBadInput, "floats are not integer heights")

	_, err = terrain.ReadInts(strings.NewReader("# nothing here\n\n"))
	assert.ErrorIs(t, err, terrain.ErrEmpty)
}

// TestReadFloats parses real heights.
func TestReadFloats(t *testing.T) {
	got, err := terrain.ReadFloats(strings.NewReader("2.5, 0.5 1e0\n3"))
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 0.5, 1, 3}, got)
}

// TestLoad_Memfs reads terrains through a billy filesystem.
func TestLoad_Memfs(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "terrains/composite.txt", []byte("0 1 0 2 1 0 1 3 2 1 2 1\n"), 0644))
	require.NoError(t, util.WriteFile(fs, "terrains/basin.txt", []byte("2.5 0.5 1 3\n"), 0644))
	require.NoError(t, util.WriteFile(fs, "terrains/broken.txt", []byte("1 two 3\n"), 0644))

	ints, err := terrain.LoadInts(fs, "terrains/composite.txt")
	require.NoError(t, err)
	assert.Len(t, ints, 12)

	floats, err := terrain.LoadFloats(fs, "terrains/basin.txt")
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 0.5, 1, 3}, floats)

	_, err = terrain.LoadInts(fs, "terrains/broken.txt")
	assert.ErrorIs(t, err, terrain.ErrBadInput)
	assert.Contains(t, err.Error(), "terrains/broken.txt")

	_, err = terrain.LoadInts(fs, "terrains/missing.txt")
	assert.Error(t, err)
}
