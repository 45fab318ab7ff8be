package app

import (
	"context"
	"errors"
	"fmt"

	"cubescan/internal/domain/entity"
	"cubescan/internal/domain/port"
	"cubescan/internal/monitoring"
)

// ScanService распознаёт цвета граней куба по фотографиям.
type ScanService struct {
	source  port.ImageSource
	palette entity.Palette
}

// NewScanService создаёт сервис распознавания с заданной палитрой.
func NewScanService(source port.ImageSource, palette entity.Palette) *ScanService {
	return &ScanService{
		source:  source,
		palette: palette,
	}
}

// ScanFace возвращает 9 обозначений клеток грани построчно.
func (s *ScanService) ScanFace(img *entity.PixelImage) (entity.FaceResult, error) {
	var result entity.FaceResult
	if img == nil {
		return result, entity.ErrEmptyImage
	}

	cellWidth, cellHeight, err := entity.CellGeometry(img.Width(), img.Height())
	if err != nil {
		return result, err
	}

	for row := 0; row < entity.GridSize; row++ {
		for col := 0; col < entity.GridSize; col++ {
			x, y := entity.CellOrigin(row, col, cellWidth, cellHeight)
			sample := entity.SampleCell(img, x, y, cellWidth, cellHeight)
			label, diff := s.palette.Nearest(sample)
			monitoring.Logf("cell (%d,%d): sample %s %s -> %s (diff %d)", row, col, sample, sample.Hex(), label, diff)
			result[row*entity.GridSize+col] = label
		}
	}
	return result, nil
}

// ScanFacePath загружает фотографию и распознаёт грань.
func (s *ScanService) ScanFacePath(ctx context.Context, path string) (entity.FaceResult, error) {
	if s.source == nil {
		return entity.FaceResult{}, errors.New("image source is not configured")
	}

	img, err := s.source.Load(ctx, path)
	if err != nil {
		return entity.FaceResult{}, err
	}

	face, err := s.ScanFace(img)
	if err != nil {
		return entity.FaceResult{}, fmt.Errorf("scan %s: %w", path, err)
	}
	return face, nil
}

// ScanCube распознаёт шесть граней в переданном порядке и склеивает результат.
// Согласованность граней между собой не проверяется.
func (s *ScanService) ScanCube(ctx context.Context, paths []string) (entity.CubeResult, error) {
	if len(paths) != entity.FaceCount {
		return nil, fmt.Errorf("%w: got %d", entity.ErrFaceCount, len(paths))
	}

	faces := make([]entity.FaceResult, 0, len(paths))
	for i, path := range paths {
		face, err := s.ScanFacePath(ctx, path)
		if err != nil {
			return nil, err
		}
		monitoring.Logf("face %d (%s): %s", i+1, path, face)
		faces = append(faces, face)
	}
	return entity.NewCubeResult(faces), nil
}
