package container

import (
	app "cubescan/internal/application"
	"cubescan/internal/domain/entity"
	"cubescan/internal/domain/port"
)

type Container struct {
	ScanService        *app.ScanService
	CalibrationService *app.CalibrationService
}

func New(source port.ImageSource, palette entity.Palette) *Container {
	return &Container{
		ScanService:        app.NewScanService(source, palette),
		CalibrationService: app.NewCalibrationService(source, palette),
	}
}
