package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/models"
)

// exportFileMode keeps export files readable by the owner only.
const exportFileMode os.FileMode = 0o600

type exportFileStorage struct {
	logger *logger.Logger
}

// NewExportFileStorage returns an [ExportFileStorage] on the local file
// system. Writes go to a temp file that is synced and renamed into place.
func NewExportFileStorage(log *logger.Logger) ExportFileStorage {
	return &exportFileStorage{logger: log}
}

func (s *exportFileStorage) Save(ctx context.Context, path string, file models.ExportFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingExportFile, err)
	}

	if err := atomicWriteFile(path, data, exportFileMode); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "exportFileStorage.Save").Str("path", path).Msg("error writing export file")
		return fmt.Errorf("%w: %w", ErrWritingExportFile, err)
	}

	return nil
}

func (s *exportFileStorage) Load(ctx context.Context, path string) (models.ExportFile, error) {
	if err := ctx.Err(); err != nil {
		return models.ExportFile{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "exportFileStorage.Load").Str("path", path).Msg("error reading export file")
		return models.ExportFile{}, fmt.Errorf("%w: %w", ErrReadingExportFile, err)
	}

	var file models.ExportFile
	if err := json.Unmarshal(data, &file); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "exportFileStorage.Load").Str("path", path).Msg("error decoding export file")
		return models.ExportFile{}, fmt.Errorf("%w: %w", ErrDecodingExportFile, err)
	}

	return file, nil
}

func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	defer func() {
		tmpFile.Close()
		os.Remove(tmpPath)
	}()

	if err := tmpFile.Chmod(perm); err != nil {
		return err
	}
	if _, err := tmpFile.Write(data); err != nil {
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	_ = syncDir(dir)
	return nil
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
