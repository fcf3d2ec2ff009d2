package response

import (
	"net/http"
	"strconv"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Attachment sends data as a downloadable xlsx file.
func Attachment(w http.ResponseWriter, fileName string, data []byte) {
	w.Header().Set("Content-Type", XLSXContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
