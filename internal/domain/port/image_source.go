package port

import (
	"context"

	"cubescan/internal/domain/entity"
)

// ImageSource источник декодированных фотографий граней
type ImageSource interface {
	// Load открывает файл, декодирует его и освобождает до возврата.
	// Ошибки открытия и декодирования возвращаются как *entity.DecodeError.
	Load(ctx context.Context, path string) (*entity.PixelImage, error)
}
