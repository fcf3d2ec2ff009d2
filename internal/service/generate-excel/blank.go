package generate_excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const blankSheet = "Template"

type GenerateExcelService struct{}

func NewGenerateService() *GenerateExcelService {
	return &GenerateExcelService{}
}

// BlankTemplate builds the static two-cell workbook served by /api/download-template.
func (g *GenerateExcelService) BlankTemplate() ([]byte, error) {
	const op = "service.generate_excel.BlankTemplate"

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", blankSheet); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := f.SetCellValue(blankSheet, "A1", "Hello!"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := f.SetCellValue(blankSheet, "A2", "This is your attendance template."); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}
