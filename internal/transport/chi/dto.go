package chi

import (
	"encoding/json"
	"net/http"
)

// Machine-readable error codes returned alongside HTTP statuses.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeUnauthorized     = "unauthorized"
)

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Query string `json:"query"`
	// K bounds the result count. Omitted: the configured default applies.
	K *int `json:"k,omitempty"`
}

// SearchResult is one ranked document in a search response.
type SearchResult struct {
	Index       int     `json:"index"`
	Score       float64 `json:"score"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

// SearchResponse is the body of a successful POST /search.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// AnswerRequest is the body of POST /answer.
type AnswerRequest struct {
	Query string `json:"query"`
}

// AnswerResponse is the body of a successful POST /answer. Answer is never
// empty: when nothing matches it carries the fixed fallback text.
type AnswerResponse struct {
	Answer string `json:"answer"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}
