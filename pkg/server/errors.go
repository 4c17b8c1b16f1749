package server

import (
	"net/http"
	"time"

	"github.com/IamFurina/Lyric-Atlas-API/pkg/serializer"
	"github.com/google/uuid"
)

// Error codes as constants
const (
	ErrCodeInternalError    = "INTERNAL_ERROR"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// ErrorResponse is the envelope for errors raised by the server plumbing
// itself. Handlers registered through Config.Handlers shape their own error
// bodies; this one covers panics and the built-in routes.
type ErrorResponse struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	RequestID string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

// writeError writes error response
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
	}

	serializer.RespondJSON(w, statusCode, errResp)
}
