package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuffer(t *testing.T) {
	b, err := NewBuffer(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 2, b.Height())
	assert.Equal(t, image.Rect(0, 0, 3, 2), b.Bounds())

	for _, size := range [][2]int{{0, 1}, {1, 0}, {-2, 5}} {
		_, err := NewBuffer(size[0], size[1])
		assert.Error(t, err, "size %v", size)
	}
}

func TestBufferBytesLength(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {7, 3}, {50, 50}, {128, 256}} {
		b, err := NewBuffer(size[0], size[1])
		require.NoError(t, err)
		assert.Len(t, b.Bytes(), size[0]*size[1]*4)
	}
}

func TestBufferIndexGetSet(t *testing.T) {
	b, err := NewBuffer(4, 3)
	require.NoError(t, err)

	assert.Equal(t, 0, b.Index(0, 0))
	assert.Equal(t, 3, b.Index(3, 0))
	assert.Equal(t, 9, b.Index(1, 2))

	red := Color{255, 0, 0, 255}
	b.Set(1, 2, red)
	assert.Equal(t, red, b.Get(1, 2))
	assert.Equal(t, Transparent, b.Get(2, 2))

	data := b.Bytes()
	i := b.Index(1, 2) * 4
	assert.Equal(t, []byte{255, 0, 0, 255}, data[i:i+4])
}

func TestBufferFill(t *testing.T) {
	b, err := NewBuffer(5, 7)
	require.NoError(t, err)
	c := Color{1, 2, 3, 4}
	b.Fill(c)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			require.Equal(t, c, b.Get(x, y), "pixel %d,%d", x, y)
		}
	}

	b.Clear()
	for _, v := range b.Bytes() {
		require.Zero(t, v)
	}
}

func TestBufferBytesIsCopy(t *testing.T) {
	b, err := NewBuffer(2, 2)
	require.NoError(t, err)
	data := b.Bytes()
	data[0] = 99
	assert.Equal(t, Transparent, b.Get(0, 0))
}

func TestBufferImageSharesMemory(t *testing.T) {
	b, err := NewBuffer(3, 3)
	require.NoError(t, err)
	img := b.Image()
	img.SetNRGBA(2, 1, color.NRGBA{10, 20, 30, 40})
	assert.Equal(t, Color{10, 20, 30, 40}, b.Get(2, 1))

	b.Set(0, 2, White)
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, img.NRGBAAt(0, 2))
}

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 14, 12))
	src.Set(10, 10, color.RGBA{255, 0, 0, 255})
	// premultiplied half-transparent blue
	src.Set(13, 11, color.RGBA{0, 0, 128, 128})

	b, err := FromImage(src)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Width())
	assert.Equal(t, 2, b.Height())
	assert.Equal(t, Color{255, 0, 0, 255}, b.Get(0, 0))
	assert.Equal(t, Color{0, 0, 255, 128}, b.Get(3, 1))

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(1, 1, color.Gray{Y: 200})
	g, err := FromImage(gray)
	require.NoError(t, err)
	assert.Equal(t, Color{200, 200, 200, 255}, g.Get(1, 1))
	assert.Equal(t, Color{0, 0, 0, 255}, g.Get(0, 0))

	n := image.NewNRGBA(image.Rect(-2, 3, 1, 5))
	n.SetNRGBA(0, 4, color.NRGBA{1, 2, 3, 4})
	nb, err := FromImage(n)
	require.NoError(t, err)
	assert.Equal(t, 3, nb.Width())
	assert.Equal(t, Color{1, 2, 3, 4}, nb.Get(2, 1), "translucent pixels survive unchanged")
	assert.Equal(t, n.Pix, nb.Bytes())

	_, err = FromImage(image.NewRGBA(image.Rect(0, 0, 0, 5)))
	assert.Error(t, err)
}
