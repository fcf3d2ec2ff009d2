package response

import (
	"net/http"

	"github.com/go-chi/render"
)

type Response struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func Error(msg string) Response {
	return Response{Error: msg}
}

func ErrorWithDetails(msg, details string) Response {
	return Response{Error: msg, Details: details}
}

// JSON writes resp with the given status code.
func JSON(w http.ResponseWriter, r *http.Request, status int, resp Response) {
	render.Status(r, status)
	render.JSON(w, r, resp)
}
