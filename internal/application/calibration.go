package app

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"cubescan/internal/domain/entity"
	"cubescan/internal/domain/port"
	"cubescan/internal/monitoring"
)

// CalibrationService считает средний цвет грани, собранной в один цвет.
// Используется для подбора эталонов палитры.
type CalibrationService struct {
	source  port.ImageSource
	palette entity.Palette
}

// NewCalibrationService создаёт сервис калибровки. Палитра нужна только для диагностики.
func NewCalibrationService(source port.ImageSource, palette entity.Palette) *CalibrationService {
	return &CalibrationService{
		source:  source,
		palette: palette,
	}
}

// FaceAverage усредняет 9 выборок клеток грани.
func (s *CalibrationService) FaceAverage(img *entity.PixelImage) (entity.RGB, error) {
	if img == nil {
		return entity.RGB{}, entity.ErrEmptyImage
	}

	cellWidth, cellHeight, err := entity.CellGeometry(img.Width(), img.Height())
	if err != nil {
		return entity.RGB{}, err
	}

	rs := make([]float64, 0, entity.FacePoints)
	gs := make([]float64, 0, entity.FacePoints)
	bs := make([]float64, 0, entity.FacePoints)
	for row := 0; row < entity.GridSize; row++ {
		for col := 0; col < entity.GridSize; col++ {
			x, y := entity.CellOrigin(row, col, cellWidth, cellHeight)
			sample := entity.SampleCell(img, x, y, cellWidth, cellHeight)
			rs = append(rs, float64(sample.R))
			gs = append(gs, float64(sample.G))
			bs = append(bs, float64(sample.B))
		}
	}

	return entity.RGB{
		R: entity.RoundChannel(stat.Mean(rs, nil)),
		G: entity.RoundChannel(stat.Mean(gs, nil)),
		B: entity.RoundChannel(stat.Mean(bs, nil)),
	}, nil
}

// Calibrate возвращает средний цвет для каждой фотографии в порядке входа.
func (s *CalibrationService) Calibrate(ctx context.Context, paths []string) ([]entity.RGB, error) {
	if s.source == nil {
		return nil, errors.New("image source is not configured")
	}

	out := make([]entity.RGB, 0, len(paths))
	for _, path := range paths {
		img, err := s.source.Load(ctx, path)
		if err != nil {
			return nil, err
		}

		avg, err := s.FaceAverage(img)
		if err != nil {
			return nil, fmt.Errorf("calibrate %s: %w", path, err)
		}
		s.logNearest(path, avg)
		out = append(out, avg)
	}
	return out, nil
}

// logNearest пишет ближайший эталон по L1 и по расстоянию в CIE Lab.
func (s *CalibrationService) logNearest(path string, avg entity.RGB) {
	label, diff := s.palette.Nearest(avg)

	lab := avg.Colorful()
	bestLab := -1.0
	var labLabel entity.Label
	for _, e := range s.palette.Entries() {
		d := lab.DistanceLab(e.Reference.Colorful())
		if bestLab < 0 || d < bestLab {
			bestLab = d
			labLabel = e.Label
		}
	}

	monitoring.Logf("calibration %s: average %s %s, nearest %s (diff %d), lab nearest %s (%.3f)",
		path, avg, avg.Hex(), label, diff, labLabel, bestLab)
}
