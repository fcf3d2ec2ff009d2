package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"attendance-dashboard/internal/storage"
)

// Storage serves the dashboard template from the local filesystem.
type Storage struct {
	templatePath string
}

func New(templatePath string) (*Storage, error) {
	const op = "storage.filesystem.New"

	if templatePath == "" {
		return nil, fmt.Errorf("%s: empty template path", op)
	}

	return &Storage{templatePath: templatePath}, nil
}

func (s *Storage) TemplatePath() string {
	return s.templatePath
}

// OpenTemplate loads a fresh copy of the template. The caller owns the returned file and must Close it.
func (s *Storage) OpenTemplate(ctx context.Context) (*excelize.File, error) {
	const op = "storage.filesystem.OpenTemplate"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info, err := os.Stat(s.templatePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", storage.ErrTemplateNotFound, filepath.Base(s.templatePath))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %s is a directory", op, s.templatePath)
	}

	f, err := excelize.OpenFile(s.templatePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return f, nil
}

// EnsureTemplate writes the workbook produced by build when no template exists yet.
// It reports whether a new file was created.
func (s *Storage) EnsureTemplate(build func() (*excelize.File, error)) (bool, error) {
	const op = "storage.filesystem.EnsureTemplate"

	if _, err := os.Stat(s.templatePath); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	f, err := build()
	if err != nil {
		return false, fmt.Errorf("%s: build layout: %w", op, err)
	}
	defer f.Close()

	if dir := filepath.Dir(s.templatePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := f.SaveAs(s.templatePath); err != nil {
		return false, fmt.Errorf("%s: save %s: %w", op, s.templatePath, err)
	}

	return true, nil
}
