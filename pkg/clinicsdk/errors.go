package clinicsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is any non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string

	// Cause is the "error" field some 500 responses carry.
	Cause string
}

func (e *APIError) Error() string {
	if e.Cause != "" {
		return fmt.Sprintf("HTTP %d: %s: %s", e.StatusCode, e.Message, e.Cause)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// parseErrorResponse turns an error body into an *APIError. Bodies are
// usually {"message": ...} but a bare JSON string or plain text is accepted
// too.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var obj ServerErrorResponse
	var str string
	switch {
	case json.Unmarshal(body, &obj) == nil && obj.Message != "":
		apiErr.Message = obj.Message
		apiErr.Cause = obj.Error
	case json.Unmarshal(body, &str) == nil && str != "":
		apiErr.Message = str
	case len(strings.TrimSpace(string(body))) > 0:
		apiErr.Message = strings.TrimSpace(string(body))
	default:
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}
