package animate

import (
	"bytes"
	"errors"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vt "github.com/hawkjo/visualizationtools"
)

func testStack(frames, h, w int) Stack {
	s := make(Stack, frames)
	for f := range s {
		s[f] = make([][]float64, h)
		for r := range s[f] {
			s[f][r] = make([]float64, w)
			for c := range s[f][r] {
				s[f][r][c] = float64(f + r*w + c)
			}
		}
	}
	return s
}

var small = Options{Width: 40, Height: 30}

func TestShape(t *testing.T) {
	n, h, w, err := testStack(3, 4, 5).Shape()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, []int{n, h, w})

	_, _, _, err = Stack{}.Shape()
	assert.True(t, errors.Is(err, vt.ErrNoData))

	ragged := testStack(2, 2, 2)
	ragged[1][1] = ragged[1][1][:1]
	_, _, _, err = ragged.Shape()
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestPlayback(t *testing.T) {
	a, err := New(testStack(3, 4, 5), small)
	require.NoError(t, err)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, DefaultInterval, a.Interval())

	for i := 0; i < 3; i++ {
		img, err := a.Next()
		require.NoError(t, err)
		assert.False(t, img.Bounds().Empty())
	}
	_, err = a.Next()
	assert.Equal(t, io.EOF, err)

	a.Reset()
	_, err = a.Next()
	assert.NoError(t, err)

	_, err = a.Frame(3)
	assert.Error(t, err)
}

func TestConstantFrame(t *testing.T) {
	s := Stack{{{1, 1}, {1, 1}}}
	a, err := New(s, small)
	require.NoError(t, err)
	_, err = a.Frame(0)
	assert.NoError(t, err)
}

func TestWriteGIF(t *testing.T) {
	a, err := New(testStack(4, 3, 3), small)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, a.WriteGIF(&buf))

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, g.Image, 4)
	assert.Equal(t, []int{3, 3, 3, 3}, g.Delay)

	path := filepath.Join(t.TempDir(), "stack.gif")
	require.NoError(t, a.Save(path))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
