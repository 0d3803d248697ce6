package imgio

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Load reads and decodes the image at path.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the
//     image format and color model (e.g., *image.RGBA, *image.YCbCr).
//   - error: Non-nil if the file cannot be opened or decoded.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Info contains metadata about an image file.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the registered name of the detected format, such as
	// "png", "jpeg", "gif", "bmp", "tiff" or "webp". Detection is based
	// on file contents, not the file extension.
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadInfo reads the metadata of the image at path without decoding the
// full pixel data.
func LoadInfo(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &Info{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}

// Grayscale converts an image to grayscale, preserving dimensions.
func Grayscale(img image.Image) *image.NRGBA {
	return imaging.Grayscale(img)
}

// Downscale shrinks an image so that neither dimension exceeds maxDim,
// preserving the aspect ratio. Images already within the bound are
// returned unchanged. Tracing cost grows with pixel count, so large
// scans are usually downscaled first.
func Downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	if maxDim <= 0 || (bounds.Dx() <= maxDim && bounds.Dy() <= maxDim) {
		return img
	}
	return imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
}
