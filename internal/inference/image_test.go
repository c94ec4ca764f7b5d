package inference

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medscan/internal/config"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPrepareImage(t *testing.T) {
	data := encodePNG(t, 64, 32, color.RGBA{R: 255, A: 255})

	input, shape, err := PrepareImage(data)
	require.NoError(t, err)

	edge := int64(config.ImageEdge)
	assert.Equal(t, []int64{1, edge, edge, 3}, shape)
	require.Len(t, input, config.ImageEdge*config.ImageEdge*3)

	for i := 0; i < len(input); i += 3 {
		assert.InDelta(t, 1.0, input[i], 0.01)   // red
		assert.InDelta(t, 0.0, input[i+1], 0.01) // green
		assert.InDelta(t, 0.0, input[i+2], 0.01) // blue
	}
}

func TestPrepareImageRange(t *testing.T) {
	data := encodePNG(t, 200, 200, color.RGBA{R: 120, G: 33, B: 212, A: 255})

	input, _, err := PrepareImage(data)
	require.NoError(t, err)
	for _, v := range input {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestPrepareImageRejectsGarbage(t *testing.T) {
	_, _, err := PrepareImage([]byte("not an image"))
	assert.Error(t, err)
}
