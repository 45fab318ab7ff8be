package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"cubescan/config"
	"cubescan/internal/container"
	"cubescan/internal/infrastructure/vision"
	"cubescan/internal/monitoring"
)

func main() {
	if len(os.Args) < 2 {
		dieUsage()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Диагностика только в stderr и только в подробном режиме
	if !cfg.Verbose {
		monitoring.SetLogger(nil)
	}

	appContainer := container.New(vision.NewFileImageSource(), cfg.Palette)
	ctx := context.Background()

	out := bufio.NewWriter(os.Stdout)
	var cmdErr error
	switch os.Args[1] {
	case "scan":
		if len(os.Args) != 8 {
			dieUsage()
		}
		cmdErr = runScan(ctx, appContainer, out, os.Args[2:])
	case "calibrate":
		if len(os.Args) < 3 {
			dieUsage()
		}
		cmdErr = runCalibrate(ctx, appContainer, out, os.Args[2:])
	default:
		dieUsage()
	}
	if cmdErr == nil {
		cmdErr = out.Flush()
	}
	if cmdErr != nil {
		fmt.Fprintln(os.Stderr, cmdErr)
		os.Exit(1)
	}
}

// runScan печатает 54 обозначения одной строкой.
func runScan(ctx context.Context, c *container.Container, w io.Writer, paths []string) error {
	cube, err := c.ScanService.ScanCube(ctx, paths)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, cube)
	return err
}

// runCalibrate печатает "(r, g, b)" для каждой фотографии.
func runCalibrate(ctx context.Context, c *container.Container, w io.Writer, paths []string) error {
	averages, err := c.CalibrationService.Calibrate(ctx, paths)
	if err != nil {
		return err
	}
	for _, avg := range averages {
		if _, err := fmt.Fprintln(w, avg); err != nil {
			return err
		}
	}
	return nil
}

func dieUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> <options>\n\n"+
		"Available commands are:\n\n"+
		" scan <face1> <face2> <face3> <face4> <face5> <face6>\n"+
		" calibrate <solved face>...\n"+
		"\n", os.Args[0])
	os.Exit(1)
}
