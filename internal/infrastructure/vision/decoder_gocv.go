//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"image"

	"gocv.io/x/gocv"

	"cubescan/internal/domain/entity"
)

// FileImageSource декодирует фотографии граней через OpenCV.
type FileImageSource struct{}

// NewFileImageSource создаёт источник изображений на gocv.
func NewFileImageSource() *FileImageSource {
	return &FileImageSource{}
}

// Load читает файл через gocv. Mat закрывается до начала выборки.
func (s *FileImageSource) Load(ctx context.Context, path string) (*entity.PixelImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := readImage(path)
	if err != nil {
		return nil, &entity.DecodeError{Path: path, Err: err}
	}

	pix, err := entity.PixelImageFromImage(img)
	if err != nil {
		return nil, &entity.DecodeError{Path: path, Err: err}
	}
	return pix, nil
}

// readImage возвращает копию пикселей в image.Image и освобождает Mat.
func readImage(path string) (image.Image, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("failed to decode image")
	}
	return mat.ToImage()
}
