package service

import (
	"context"

	"github.com/MKhiriev/go-pass-envelope/internal/config"
	"github.com/MKhiriev/go-pass-envelope/internal/logger"
)

type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService reports the configured build version of the envelope
// server. An unset version is a configuration error.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	return &appInfoService{version: cfg.Version, logger: log}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
