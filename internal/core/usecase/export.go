package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/kirillkom/brandboost/internal/core/domain"
	"github.com/kirillkom/brandboost/internal/core/ports"
)

const maxExportReadBytes = 1 << 20

type ExportUseCase struct {
	storage  ports.ObjectStorage
	recorder ports.GenerationRecorder
	now      func() time.Time
}

func NewExportUseCase(storage ports.ObjectStorage, recorder ports.GenerationRecorder) *ExportUseCase {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &ExportUseCase{
		storage:  storage,
		recorder: recorder,
		now:      time.Now,
	}
}

// Export writes text verbatim and returns the stored path. An empty filename
// becomes brandboost_content_<unix seconds>.txt.
func (uc *ExportUseCase) Export(ctx context.Context, text, filename string) (string, error) {
	name := strings.TrimSpace(filename)
	if name == "" {
		name = DefaultExportFilename(uc.now())
	}
	if err := checkExportName(name); err != nil {
		return "", domain.WrapError(domain.ErrInvalidInput, "export content", err)
	}

	path, err := uc.storage.Save(ctx, name, strings.NewReader(text))
	if err != nil {
		uc.recorder.RecordExport(false)
		slog.Error("export_failed", "filename", name, "error", err)
		return "", domain.WrapError(domain.ErrExportWrite, "export content", err)
	}

	uc.recorder.RecordExport(true)
	slog.Info("export_written", "path", path, "bytes", len(text))
	return path, nil
}

// Read returns a previously exported file, at most maxExportReadBytes of it.
func (uc *ExportUseCase) Read(ctx context.Context, filename string) (string, error) {
	name := strings.TrimSpace(filename)
	if name == "" {
		return "", domain.WrapError(domain.ErrInvalidInput, "read export", errors.New("filename is required"))
	}
	if err := checkExportName(name); err != nil {
		return "", domain.WrapError(domain.ErrInvalidInput, "read export", err)
	}

	rc, err := uc.storage.Open(ctx, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.WrapError(domain.ErrExportNotFound, "read export", err)
		}
		return "", fmt.Errorf("read export %s: %w", name, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(io.LimitReader(rc, maxExportReadBytes))
	if err != nil {
		return "", fmt.Errorf("read export %s: %w", name, err)
	}
	return string(raw), nil
}

func checkExportName(name string) error {
	if name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("filename %q must not contain a path", name)
	}
	return nil
}

func DefaultExportFilename(now time.Time) string {
	return fmt.Sprintf("brandboost_content_%d.txt", now.Unix())
}
