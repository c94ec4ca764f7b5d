package inference

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	"medscan/internal/config"
)

// PrepareImage decodes an uploaded image, resizes it to the fixed square
// input resolution, and scales channel values to [0,1]. The returned tensor
// is HWC with a leading batch dimension of 1.
func PrepareImage(data []byte) ([]float32, []int64, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("decode image: %w", err)
	}

	edge := config.ImageEdge
	dst := image.NewRGBA(image.Rect(0, 0, edge, edge))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	out := make([]float32, edge*edge*3)
	for y := 0; y < edge; y++ {
		for x := 0; x < edge; x++ {
			src := dst.PixOffset(x, y)
			pos := (y*edge + x) * 3
			out[pos] = float32(dst.Pix[src]) / 255.0
			out[pos+1] = float32(dst.Pix[src+1]) / 255.0
			out[pos+2] = float32(dst.Pix[src+2]) / 255.0
		}
	}

	return out, []int64{1, int64(edge), int64(edge), 3}, nil
}
