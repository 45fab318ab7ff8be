package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"cubescan/internal/domain/entity"
)

func TestCalibrationService_FaceAverage_Solid(t *testing.T) {
	svc := NewCalibrationService(nil, entity.DefaultPalette())

	avg, err := svc.FaceAverage(labelGridImage(t, 45, "ooooooooo"))
	require.NoError(t, err)
	require.Equal(t, entity.RGB{R: 217, G: 102, B: 27}, avg)
}

func TestCalibrationService_FaceAverage_Mixed(t *testing.T) {
	svc := NewCalibrationService(nil, entity.DefaultPalette())

	var cells [entity.FacePoints]entity.RGB
	for i := range cells {
		cells[i] = entity.RGB{R: 90, G: 10, B: 0}
	}
	cells[4] = entity.RGB{R: 0, G: 100, B: 9}

	avg, err := svc.FaceAverage(gridImage(t, 30, cells))
	require.NoError(t, err)
	// R: 720/9 = 80, G: 180/9 = 20, B: 9/9 = 1.
	require.Equal(t, entity.RGB{R: 80, G: 20, B: 1}, avg)
}

func TestCalibrationService_Calibrate(t *testing.T) {
	src := newMemorySource()
	src.images["blue.jpg"] = labelGridImage(t, 60, "bbbbbbbbb")
	src.images["green.jpg"] = labelGridImage(t, 60, "ggggggggg")
	svc := NewCalibrationService(src, entity.DefaultPalette())

	out, err := svc.Calibrate(context.Background(), []string{"blue.jpg", "green.jpg"})
	require.NoError(t, err)
	require.Equal(t, []entity.RGB{{R: 62, G: 112, B: 163}, {R: 106, G: 190, B: 95}}, out)
	require.Equal(t, "(62, 112, 163)", out[0].String())
}

func TestCalibrationService_Calibrate_DecodeError(t *testing.T) {
	svc := NewCalibrationService(newMemorySource(), entity.DefaultPalette())

	_, err := svc.Calibrate(context.Background(), []string{"missing.jpg"})
	var decodeErr *entity.DecodeError
	require.True(t, errors.As(err, &decodeErr))
}
