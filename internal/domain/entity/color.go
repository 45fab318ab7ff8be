package entity

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB: цвет пикселя или усреднённый цвет клетки, каналы 0–255.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// ColorSample усреднённый цвет одной клетки грани.
type ColorSample = RGB

// String форматирует цвет как "(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// Colorful переводит цвет в представление go-colorful.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Hex возвращает цвет в виде #rrggbb.
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// RGBFromColorful обратное преобразование с ограничением каналов.
func RGBFromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// ManhattanDistance сумма модулей разностей каналов (L1).
func ManhattanDistance(a, b RGB) int {
	return absInt(int(a.R)-int(b.R)) + absInt(int(a.G)-int(b.G)) + absInt(int(a.B)-int(b.B))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
