package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"cubescan/internal/container"
	"cubescan/internal/domain/entity"
	"cubescan/internal/infrastructure/vision"
)

func writeSolidFace(t *testing.T, dir, name string, c entity.RGB) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 48, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 48; x++ {
			img.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func solvedFaces(t *testing.T) ([]string, string) {
	t.Helper()
	dir := t.TempDir()
	var (
		paths    []string
		expected strings.Builder
	)
	for _, e := range entity.DefaultPalette().Entries() {
		paths = append(paths, writeSolidFace(t, dir, e.Name+".png", e.Reference))
		expected.WriteString(strings.Repeat(e.Label.String(), entity.FacePoints))
	}
	return paths, expected.String()
}

func TestRunScan_SolvedCube(t *testing.T) {
	paths, expected := solvedFaces(t)
	c := container.New(vision.NewFileImageSource(), entity.DefaultPalette())

	var out bytes.Buffer
	require.NoError(t, runScan(context.Background(), c, &out, paths))
	require.Equal(t, expected+"\n", out.String())
	require.Equal(t, "bbbbbbbbb", out.String()[36:45])
}

func TestRunCalibrate(t *testing.T) {
	paths, _ := solvedFaces(t)
	c := container.New(vision.NewFileImageSource(), entity.DefaultPalette())

	var out bytes.Buffer
	require.NoError(t, runCalibrate(context.Background(), c, &out, paths[:2]))
	require.Equal(t, "(211, 206, 54)\n(204, 192, 173)\n", out.String())
}

func TestRunScan_MissingFile(t *testing.T) {
	paths, _ := solvedFaces(t)
	paths[3] = filepath.Join(t.TempDir(), "nope.jpg")
	c := container.New(vision.NewFileImageSource(), entity.DefaultPalette())

	var out bytes.Buffer
	err := runScan(context.Background(), c, &out, paths)
	require.Error(t, err)
	require.Empty(t, out.String())
}
