package entity

import (
	"fmt"
	"math"
)

const (
	// GridSize число клеток в строке и столбце грани.
	GridSize = 3
	// samplesPerAxis точек выборки на ось внутри клетки.
	samplesPerAxis = 4
	// sampleDivisions шаг выборки: 1/5 размера клетки.
	sampleDivisions = 5
)

// CellGeometry возвращает размер клетки для изображения width×height.
// Размеры не округляются.
func CellGeometry(width, height int) (cellWidth, cellHeight float64, err error) {
	if width < GridSize || height < GridSize {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrInvalidImageDimensions, width, height)
	}
	return float64(width) / GridSize, float64(height) / GridSize, nil
}

// SampleCell усредняет 4×4 точки внутри клетки с левым верхним углом (x, y).
// Точки лежат на 20/40/60/80% размера клетки, чтобы не задевать края наклейки.
// Среднее округляется к ближайшему чётному.
func SampleCell(img *PixelImage, x, y, cellWidth, cellHeight float64) ColorSample {
	stepX := cellWidth / sampleDivisions
	stepY := cellHeight / sampleDivisions

	var rSum, gSum, bSum int
	for row := 1; row <= samplesPerAxis; row++ {
		py := y + float64(row)*stepY
		for col := 1; col <= samplesPerAxis; col++ {
			px := img.At(x+float64(col)*stepX, py)
			rSum += int(px.R)
			gSum += int(px.G)
			bSum += int(px.B)
		}
	}

	const n = samplesPerAxis * samplesPerAxis
	return ColorSample{
		R: RoundChannel(float64(rSum) / n),
		G: RoundChannel(float64(gSum) / n),
		B: RoundChannel(float64(bSum) / n),
	}
}

// CellOrigin левый верхний угол клетки (row, col).
func CellOrigin(row, col int, cellWidth, cellHeight float64) (x, y float64) {
	return float64(col) * cellWidth, float64(row) * cellHeight
}

// RoundChannel округляет среднее значение канала к ближайшему чётному.
func RoundChannel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.RoundToEven(v))))
}
