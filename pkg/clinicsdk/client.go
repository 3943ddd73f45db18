package clinicsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to the clinic API without credentials.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client with a 10 second request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session carries a bearer token for the protected endpoints.
type Session struct {
	client *Client
	token  string

	// DoctorID is set when the session came from a doctor login.
	DoctorID int64
}

// NewSession wraps an existing token.
func (c *Client) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

// Token returns the bearer token the session sends.
func (s *Session) Token() string {
	return s.token
}

// AuthenticateDoctor logs a doctor in and returns a session for their
// protected endpoints.
func (c *Client) AuthenticateDoctor(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.LoginDoctor(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return &Session{client: c, token: resp.Token, DoctorID: resp.DoctorID}, nil
}

// AuthenticateAdmin logs an admin in through /api/AdminAuth/login.
func (c *Client) AuthenticateAdmin(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.AdminAuthLogin(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return c.NewSession(resp.Token), nil
}
