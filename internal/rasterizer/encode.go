package rasterizer

import (
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// EncodeFunc writes img to w; quality is in 1-100.
type EncodeFunc func(w io.Writer, img image.Image, quality int) error

func defaultEncoders() map[Format]EncodeFunc {
	return map[Format]EncodeFunc{
		FormatJPG:  encodeJPEG,
		FormatPNG:  encodePNG,
		FormatWEBP: encodeWEBP,
	}
}

func encodeJPEG(w io.Writer, img image.Image, quality int) error {
	return jpeg.Encode(w, flatten(img), &jpeg.Options{Quality: quality})
}

func encodePNG(w io.Writer, img image.Image, _ int) error {
	return png.Encode(w, img)
}

func encodeWEBP(w io.Writer, img image.Image, quality int) error {
	opts, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(quality))
	if err != nil {
		return err
	}
	return webp.Encode(w, flatten(img), opts)
}

// flatten composes img over white so the lossy formats get an opaque RGB image.
func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(dst, b, img, b.Min, draw.Over)
	return dst
}
