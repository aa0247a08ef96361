// Package imaging produces the gallery thumbnails from full-size photos.
package imaging

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// Fit returns the size of src scaled so its longer side is at most maxSide.
// Images already small enough keep their size.
func Fit(src image.Rectangle, maxSide int) image.Rectangle {
	w, h := src.Dx(), src.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return image.Rect(0, 0, w, h)
	}
	if w >= h {
		return image.Rect(0, 0, maxSide, h*maxSide/w)
	}
	return image.Rect(0, 0, w*maxSide/h, maxSide)
}

// Thumbnail scales img down with Catmull-Rom resampling.
func Thumbnail(img image.Image, maxSide int) image.Image {
	bounds := Fit(img.Bounds(), maxSide)
	dst := image.NewRGBA(bounds)
	draw.CatmullRom.Scale(dst, bounds, img, img.Bounds(), draw.Over, nil)
	return dst
}

// Encode writes img as JPEG or PNG depending on the file extension.
func Encode(w io.Writer, img image.Image, name string) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return png.Encode(w, img)
	default:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 85})
	}
}

// ThumbnailFile reads src, scales it and writes the result to dst.
func ThumbnailFile(src, dst string, maxSide int) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("decode %s: %w", src, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if err := Encode(out, Thumbnail(img, maxSide), dst); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", dst, err)
	}
	return out.Close()
}
