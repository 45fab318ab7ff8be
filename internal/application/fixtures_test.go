package app

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"cubescan/internal/domain/entity"
)

// memorySource отдаёт заранее построенные изображения по пути.
type memorySource struct {
	images map[string]*entity.PixelImage
	loads  []string
}

func newMemorySource() *memorySource {
	return &memorySource{images: make(map[string]*entity.PixelImage)}
}

func (m *memorySource) Load(ctx context.Context, path string) (*entity.PixelImage, error) {
	m.loads = append(m.loads, path)
	img, ok := m.images[path]
	if !ok {
		return nil, &entity.DecodeError{Path: path, Err: os.ErrNotExist}
	}
	return img, nil
}

func reference(t *testing.T, label entity.Label) entity.RGB {
	t.Helper()
	e, ok := entity.DefaultPalette().Entry(label)
	require.True(t, ok)
	return e.Reference
}

// gridImage строит изображение size×size, где каждая клетка 3×3 залита своим цветом.
func gridImage(t *testing.T, size int, cells [entity.FacePoints]entity.RGB) *entity.PixelImage {
	t.Helper()
	pix := make([]entity.RGB, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			row := y * entity.GridSize / size
			col := x * entity.GridSize / size
			pix = append(pix, cells[row*entity.GridSize+col])
		}
	}
	img, err := entity.NewPixelImage(size, size, pix)
	require.NoError(t, err)
	return img
}

func labelGridImage(t *testing.T, size int, labels string) *entity.PixelImage {
	t.Helper()
	require.Len(t, labels, entity.FacePoints)
	var cells [entity.FacePoints]entity.RGB
	for i := range cells {
		cells[i] = reference(t, entity.Label(labels[i]))
	}
	return gridImage(t, size, cells)
}
