package assets

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	// Raster formats accepted by the decoder.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/spaghettifunk/tableau/engine/core"
)

// ImageData holds decoded pixels in row-major order, bottom row first
// (matching the GL texture origin), either tightly packed RGB or RGBA.
type ImageData struct {
	Pixels       []uint8
	Width        uint32
	Height       uint32
	ChannelCount uint8
}

// DecodeImage reads and decodes a raster image file. The channel count is
// derived from the source color model: luminance-only images report 1 channel,
// YCbCr/CMYK report 3, everything else 4. Callers are expected to reject
// counts other than 3 and 4.
func DecodeImage(path string) (*ImageData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image '%s': %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode image '%s': %w", path, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	out := &ImageData{
		Width:        uint32(width),
		Height:       uint32(height),
		ChannelCount: channelCount(img),
	}

	switch out.ChannelCount {
	case 3:
		out.Pixels = packRGB(img)
	case 4:
		out.Pixels = packRGBA(img)
	default:
		// Leave pixels empty; the caller decides how to fail.
	}

	core.LogDebug("decoded image '%s' (%s), %dx%d, %d channels", path, format, width, height, out.ChannelCount)
	return out, nil
}

func channelCount(img image.Image) uint8 {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	default:
		return 4
	}
}

// packRGB converts to tightly packed 3-channel bytes, flipping rows so the
// first output row is the bottom of the image.
func packRGB(img image.Image) []uint8 {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]uint8, width*height*3)
	i := 0
	for y := bounds.Max.Y - 1; y >= bounds.Min.Y; y-- {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels[i+0] = uint8(r >> 8)
			pixels[i+1] = uint8(g >> 8)
			pixels[i+2] = uint8(b >> 8)
			i += 3
		}
	}
	return pixels
}

// packRGBA converts to 4-channel bytes via an intermediate NRGBA draw, which
// is faster than per-pixel At calls, then flips the rows.
func packRGBA(img image.Image) []uint8 {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	pixels := make([]uint8, width*height*4)
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcRow := nrgba.Pix[(height-1-y)*nrgba.Stride:]
		copy(pixels[y*rowSize:(y+1)*rowSize], srcRow[:rowSize])
	}
	return pixels
}
