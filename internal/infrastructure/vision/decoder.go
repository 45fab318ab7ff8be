//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"cubescan/internal/domain/entity"
)

// FileImageSource декодирует фотографии граней стандартными декодерами Go.
type FileImageSource struct{}

// NewFileImageSource создаёт источник изображений из файлов.
func NewFileImageSource() *FileImageSource {
	return &FileImageSource{}
}

// Load читает файл и переводит его в RGB-сетку. Файл закрывается до возврата.
func (s *FileImageSource) Load(ctx context.Context, path string) (*entity.PixelImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := decodeFile(path)
	if err != nil {
		return nil, &entity.DecodeError{Path: path, Err: err}
	}

	pix, err := entity.PixelImageFromImage(img)
	if err != nil {
		return nil, &entity.DecodeError{Path: path, Err: err}
	}
	return pix, nil
}

// decodeFile открывает и декодирует файл, гарантируя закрытие дескриптора.
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}
