package response

import (
	"encoding/json"
	"net/http"
)

const (
	MsgUnauthorized       = "invalid authentication token"
	MsgInternalError      = "internal error"
	MsgRateLimitExceeded  = "rate limit exceeded"
	MsgInvalidRequestData = "invalid request data"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func RenderUnauthorized(rw http.ResponseWriter) {
	RenderError(rw, MsgUnauthorized, http.StatusUnauthorized)
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, MsgInternalError, http.StatusInternalServerError)
}

func RenderRateLimitExceeded(rw http.ResponseWriter) {
	RenderError(rw, MsgRateLimitExceeded, http.StatusTooManyRequests)
}

func RenderInvalidRequestData(rw http.ResponseWriter) {
	RenderError(rw, MsgInvalidRequestData, http.StatusBadRequest)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func RenderMessage(rw http.ResponseWriter, msg string, status int) {
	Render(rw, messageResponse{Message: msg}, status)
}

// Render writes res as JSON. Responses carry session tokens and reset link
// state, so they are never cached.
func Render(rw http.ResponseWriter, res interface{}, status int) {
	content, err := json.Marshal(res)
	if err != nil {
		status = http.StatusInternalServerError
		content = []byte(`{"error":"` + MsgInternalError + `"}`)
	}

	header := rw.Header()
	header.Set("Content-Type", "application/json; charset=utf-8")
	header.Set("Cache-Control", "no-store")
	rw.WriteHeader(status)
	_, _ = rw.Write(content)
}
