package entity

import (
	"image"
	"image/color"
)

// PixelImage неизменяемая сетка RGB-пикселей декодированной фотографии грани.
type PixelImage struct {
	width  int
	height int
	pix    []RGB // построчно, width*height
}

// NewPixelImage создаёт изображение из готового набора пикселей (построчно).
func NewPixelImage(width, height int, pix []RGB) (*PixelImage, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height {
		return nil, ErrInvalidImageDimensions
	}
	cp := make([]RGB, len(pix))
	copy(cp, pix)
	return &PixelImage{width: width, height: height, pix: cp}, nil
}

// PixelImageFromImage переводит image.Image в 8-битный RGB без альфа-канала.
func PixelImageFromImage(img image.Image) (*PixelImage, error) {
	if img == nil {
		return nil, ErrEmptyImage
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}

	w, h := b.Dx(), b.Dy()
	pix := make([]RGB, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pix = append(pix, RGB{R: c.R, G: c.G, B: c.B})
		}
	}
	return &PixelImage{width: w, height: h, pix: pix}, nil
}

// Width ширина в пикселях.
func (p *PixelImage) Width() int { return p.width }

// Height высота в пикселях.
func (p *PixelImage) Height() int { return p.height }

// At возвращает пиксель по вещественным координатам.
// Координаты усекаются до целого и прижимаются к границам изображения.
func (p *PixelImage) At(x, y float64) RGB {
	return p.pix[clampInt(int(y), 0, p.height-1)*p.width+clampInt(int(x), 0, p.width-1)]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
