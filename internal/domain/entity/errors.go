package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidImageDimensions возвращается, если изображение слишком мало для сетки 3×3.
	ErrInvalidImageDimensions = errors.New("invalid image dimensions")

	// ErrEmptyImage возвращается, если декодер вернул пустое изображение.
	ErrEmptyImage = errors.New("empty image")

	// ErrFaceCount возвращается, если для куба передано не шесть граней.
	ErrFaceCount = errors.New("cube scan requires exactly six faces")

	// ErrUnknownLabel возвращается при переопределении цвета, которого нет в палитре.
	ErrUnknownLabel = errors.New("unknown palette label")
)

// DecodeError описывает файл, который не удалось открыть или декодировать.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
