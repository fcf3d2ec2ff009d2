package generate_excel

import (
	"log/slog"
	"net/http"

	"attendance-dashboard/internal/lib/api/response"
)

const fileName = "Attendance_Template.xlsx"

type TemplateGenerator interface {
	BlankTemplate() ([]byte, error)
}

// DownloadTemplate serves the static blank attendance template. It does not touch the dashboard template on disk.
func DownloadTemplate(log *slog.Logger, gen TemplateGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.template.DownloadTemplate"

		excelBytes, err := gen.BlankTemplate()
		if err != nil {
			log.Error("failed to generate excel", "op", op, "err", err)
			response.JSON(w, r, http.StatusInternalServerError, response.ErrorWithDetails("Failed to generate workbook", err.Error()))
			return
		}

		response.Attachment(w, fileName, excelBytes)
	}
}
