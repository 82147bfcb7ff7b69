package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kirillkom/brandboost/internal/core/domain"
)

type exportStorageFake struct {
	dir       string
	savedKey  string
	savedBody string
	err       error
	openErr   error
}

func (f *exportStorageFake) Save(_ context.Context, key string, data io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	raw, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	f.savedKey = key
	f.savedBody = string(raw)
	return filepath.Join(f.dir, key), nil
}

func (f *exportStorageFake) Open(context.Context, string) (io.ReadCloser, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return io.NopCloser(strings.NewReader(f.savedBody)), nil
}

func TestExportWritesContentVerbatim(t *testing.T) {
	storage := &exportStorageFake{dir: "reports"}
	recorder := &recorderFake{}
	uc := NewExportUseCase(storage, recorder)

	path, err := uc.Export(context.Background(), "hello", "out.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join("reports", "out.txt") {
		t.Fatalf("unexpected path %q", path)
	}
	if storage.savedBody != "hello" {
		t.Fatalf("expected literal content, got %q", storage.savedBody)
	}
	if len(recorder.exports) != 1 || !recorder.exports[0] {
		t.Fatalf("expected one successful export, got %v", recorder.exports)
	}
}

func TestExportDefaultsFilenameToTimestamp(t *testing.T) {
	storage := &exportStorageFake{dir: "reports"}
	uc := NewExportUseCase(storage, nil)
	uc.now = func() time.Time { return time.Unix(1700000000, 0) }

	if _, err := uc.Export(context.Background(), "x", "  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if storage.savedKey != "brandboost_content_1700000000.txt" {
		t.Fatalf("unexpected default filename %q", storage.savedKey)
	}
}

func TestExportRejectsPathsInFilename(t *testing.T) {
	storage := &exportStorageFake{}
	uc := NewExportUseCase(storage, nil)

	for _, name := range []string{"../escape.txt", "nested/file.txt", ".."} {
		_, err := uc.Export(context.Background(), "x", name)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %q, got %v", name, err)
		}
	}
	if storage.savedKey != "" {
		t.Fatalf("expected nothing written, got %q", storage.savedKey)
	}
}

func TestExportWrapsWriteFailure(t *testing.T) {
	storage := &exportStorageFake{err: errors.New("disk full")}
	recorder := &recorderFake{}
	uc := NewExportUseCase(storage, recorder)

	_, err := uc.Export(context.Background(), "x", "out.txt")
	if !errors.Is(err, domain.ErrExportWrite) {
		t.Fatalf("expected ErrExportWrite, got %v", err)
	}
	if len(recorder.exports) != 1 || recorder.exports[0] {
		t.Fatalf("expected one failed export, got %v", recorder.exports)
	}
}

func TestReadReturnsExportedText(t *testing.T) {
	storage := &exportStorageFake{savedBody: "stored copy"}
	uc := NewExportUseCase(storage, nil)

	got, err := uc.Read(context.Background(), "out.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "stored copy" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestReadMapsMissingFileToNotFound(t *testing.T) {
	storage := &exportStorageFake{openErr: fmt.Errorf("open file: %w", fs.ErrNotExist)}
	uc := NewExportUseCase(storage, nil)

	_, err := uc.Read(context.Background(), "gone.txt")
	if !errors.Is(err, domain.ErrExportNotFound) {
		t.Fatalf("expected ErrExportNotFound, got %v", err)
	}

	for _, name := range []string{"", "../etc/passwd"} {
		if _, err := uc.Read(context.Background(), name); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %q, got %v", name, err)
		}
	}
}
