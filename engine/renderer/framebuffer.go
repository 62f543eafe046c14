package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/spaghettifunk/lumen/engine/math"
)

/** @brief The colour every framebuffer clears to: opaque black. */
var ClearColor = math.NewVec4(0.0, 0.0, 0.0, 1.0)

/** @brief The depth value every framebuffer clears to (far plane). */
const ClearDepth float32 = 1.0

// Framebuffer is the colour attachment plus depth attachment of a draw.
// Colour is stored as raw float values, deliberately unclamped: the fragment
// stage may produce components above 1.0 and the [0,1] clamp is applied only
// when the buffer is converted to an image.
type Framebuffer struct {
	Width  int
	Height int

	color []math.Vec4
	depth []float32
}

// NewFramebuffer creates a cleared framebuffer of the given size.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		color:  make([]math.Vec4, width*height),
		depth:  make([]float32, width*height),
	}
	fb.Clear()
	return fb, nil
}

// Clear resets every pixel to the clear colour and the far depth.
func (fb *Framebuffer) Clear() {
	for i := range fb.color {
		fb.color[i] = ClearColor
		fb.depth[i] = ClearDepth
	}
}

// At returns the raw, unclamped colour at (x, y).
func (fb *Framebuffer) At(x, y int) math.Vec4 {
	return fb.color[y*fb.Width+x]
}

// DepthAt returns the depth at (x, y).
func (fb *Framebuffer) DepthAt(x, y int) float32 {
	return fb.depth[y*fb.Width+x]
}

// depthTest performs a compare-op Less test at (x, y) and claims the sample
// when it passes.
func (fb *Framebuffer) depthTest(x, y int, z float32) bool {
	idx := y*fb.Width + x
	if z >= fb.depth[idx] {
		return false
	}
	fb.depth[idx] = z
	return true
}

func (fb *Framebuffer) setPixel(x, y int, c math.Vec4) {
	fb.color[y*fb.Width+x] = c
}

// Image converts the framebuffer to an 8-bit image. This is the colour
// output stage: each channel is clamped to [0,1] here and nowhere earlier.
func (fb *Framebuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.color[y*fb.Width+x]
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(math.Clamp(c.X, 0.0, 1.0)*255.0 + 0.5),
				G: uint8(math.Clamp(c.Y, 0.0, 1.0)*255.0 + 0.5),
				B: uint8(math.Clamp(c.Z, 0.0, 1.0)*255.0 + 0.5),
				A: uint8(math.Clamp(c.W, 0.0, 1.0)*255.0 + 0.5),
			})
		}
	}
	return img
}

// Save encodes the framebuffer to the file at path. The format is chosen
// from the extension: .png, .bmp or .tiff.
func (fb *Framebuffer) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	img := fb.Image()
	switch ext := filepath.Ext(path); ext {
	case ".png":
		err = png.Encode(f, img)
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tiff", ".tif":
		err = tiff.Encode(f, img, nil)
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
