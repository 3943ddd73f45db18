package clinicsdk

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorResponse(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantMsg   string
		wantCause string
	}{
		{"message object", http.StatusUnauthorized, `{"message":"Invalid email."}`, "Invalid email.", ""},
		{"server error with cause", http.StatusInternalServerError,
			`{"message":"Failed to book appointment","error":"database is locked"}`, "Failed to book appointment", "database is locked"},
		{"json string", http.StatusBadRequest, `"Email already exists."`, "Email already exists.", ""},
		{"plain text", http.StatusBadGateway, "upstream down\n", "upstream down", ""},
		{"empty body", http.StatusServiceUnavailable, "", "Service Unavailable", ""},
		{"object without message", http.StatusNotFound, `{"detail":"x"}`, `{"detail":"x"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseErrorResponse(&http.Response{StatusCode: tt.status}, []byte(tt.body))

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tt.status, apiErr.StatusCode)
			require.Equal(t, tt.wantMsg, apiErr.Message)
			require.Equal(t, tt.wantCause, apiErr.Cause)
		})
	}
}

func TestAPIErrorString(t *testing.T) {
	require.Equal(t, "HTTP 401: Invalid email.", (&APIError{StatusCode: 401, Message: "Invalid email."}).Error())
	require.Equal(t, "HTTP 500: Admin login failed: boom",
		(&APIError{StatusCode: 500, Message: "Admin login failed", Cause: "boom"}).Error())
}
