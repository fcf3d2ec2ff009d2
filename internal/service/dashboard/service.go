package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"attendance-dashboard/internal/constants"
	"attendance-dashboard/internal/storage"
)

type TemplateProvider interface {
	OpenTemplate(ctx context.Context) (*excelize.File, error)
}

type Service struct {
	templates TemplateProvider
}

func NewService(templates TemplateProvider) *Service {
	return &Service{templates: templates}
}

// GenerateDashboard fills a fresh copy of the template and returns the serialized workbook.
// Nothing is returned unless the whole workbook was written.
func (s *Service) GenerateDashboard(ctx context.Context, payload Payload) ([]byte, error) {
	f, err := s.templates.OpenTemplate(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrTemplateNotFound) {
			return nil, err
		}
		return nil, &StageError{Stage: ErrTemplateLoad, Err: err}
	}
	defer f.Close()

	sheet, err := dashboardSheet(f)
	if err != nil {
		return nil, &StageError{Stage: ErrTemplateLoad, Err: err}
	}

	if err := FillDashboard(f, sheet, payload); err != nil {
		return nil, &StageError{Stage: ErrGenerate, Err: err}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, &StageError{Stage: ErrGenerate, Err: fmt.Errorf("serialize workbook: %w", err)}
	}

	return buf.Bytes(), nil
}

// dashboardSheet prefers the DD-Metrics sheet and falls back to the first one.
func dashboardSheet(f *excelize.File) (string, error) {
	if idx, err := f.GetSheetIndex(constants.SheetName); err == nil && idx >= 0 {
		return constants.SheetName, nil
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", errors.New("template has no sheets")
	}

	return sheets[0], nil
}
