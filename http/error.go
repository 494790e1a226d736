package http

import (
	"net/http"

	"github.com/fwojciec/adgen"
)

// ErrorStatusCode returns the HTTP status for err. Invalid input and
// failures to fetch or read the target page are the caller's problem (400);
// everything else is a server error (500).
func ErrorStatusCode(err error) int {
	if adgen.ErrorCode(err) == adgen.EINVALID || adgen.IsExtractionError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// errorResponse is the JSON body of every failed API call.
type errorResponse struct {
	Error string `json:"error"`
}

// Error writes err as a JSON error response and logs server-side failures.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	status := ErrorStatusCode(err)

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"request_id", RequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
	}

	s.writeJSON(w, status, errorResponse{Error: adgen.ErrorMessage(err)})
}
