package generate_dashboard

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"attendance-dashboard/internal/constants"
	"attendance-dashboard/internal/lib/api/response"
	"attendance-dashboard/internal/service/dashboard"
	"attendance-dashboard/internal/storage"
)

const fileName = "Daily_Attendance_Auto.xlsx"

type DashboardGenerator interface {
	GenerateDashboard(ctx context.Context, payload dashboard.Payload) ([]byte, error)
}

// GenerateDashboard fills the dashboard template from the JSON request body.
// A non-positive maxBodyBytes disables the body limit.
func GenerateDashboard(log *slog.Logger, gen DashboardGenerator, maxBodyBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dashboard.GenerateDashboard"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if !isJSON(r.Header.Get("Content-Type")) {
			response.JSON(w, r, http.StatusUnsupportedMediaType, response.Error("Request must be JSON"))
			return
		}

		body := r.Body
		if maxBodyBytes > 0 {
			body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}

		raw, err := dashboard.DecodePayload(body)
		if err != nil {
			log.Warn("invalid request body", slog.String("error", err.Error()))
			msg := "Invalid JSON body"
			if errors.Is(err, dashboard.ErrEmptyBody) {
				msg = "Missing JSON body"
			}
			response.JSON(w, r, http.StatusBadRequest, response.Error(msg))
			return
		}

		payload, err := dashboard.ValidatePayload(raw)
		if err != nil {
			log.Warn("invalid payload", slog.String("error", err.Error()))
			response.JSON(w, r, http.StatusBadRequest, response.Error("Payload must be a JSON object"))
			return
		}

		writeDashboard(w, r, log, gen, payload)
	}
}

// GenerateDashboardSmoke renders the dashboard from the built-in sample payload.
func GenerateDashboardSmoke(log *slog.Logger, gen DashboardGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dashboard.GenerateDashboardSmoke"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		payload, err := dashboard.ValidatePayload(constants.SmokePayload())
		if err != nil {
			log.Error("invalid smoke payload", slog.String("error", err.Error()))
			response.JSON(w, r, http.StatusInternalServerError, response.ErrorWithDetails("Failed to generate workbook", err.Error()))
			return
		}

		writeDashboard(w, r, log, gen, payload)
	}
}

func writeDashboard(w http.ResponseWriter, r *http.Request, log *slog.Logger, gen DashboardGenerator, payload dashboard.Payload) {
	data, err := gen.GenerateDashboard(r.Context(), payload)
	if err != nil {
		var stageErr *dashboard.StageError
		details := err.Error()
		if errors.As(err, &stageErr) {
			details = stageErr.Err.Error()
		}

		switch {
		case errors.Is(err, storage.ErrTemplateNotFound):
			log.Error("template file not found", slog.String("error", details))
			response.JSON(w, r, http.StatusBadRequest, response.ErrorWithDetails("Template file not found", details))
		case errors.Is(err, dashboard.ErrTemplateLoad):
			log.Error("failed to load template", slog.String("error", details))
			response.JSON(w, r, http.StatusInternalServerError, response.ErrorWithDetails("Failed to load template", details))
		default:
			log.Error("failed to generate workbook", slog.String("error", details))
			response.JSON(w, r, http.StatusInternalServerError, response.ErrorWithDetails("Failed to generate workbook", details))
		}
		return
	}

	response.Attachment(w, fileName, data)
}

// isJSON accepts application/json and any application/*+json media type.
func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "application/json" ||
		(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}
