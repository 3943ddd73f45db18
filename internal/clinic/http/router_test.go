package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	httpapi "github.com/aussiebroadwan/clinic/internal/clinic/http"
	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/internal/clinic/store/drivers/sqlite"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/cryptox"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
	"github.com/aussiebroadwan/clinic/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testTokens = jwtx.IssuerConfig{
	Secret:   []byte("0123456789abcdef0123456789abcdef"),
	Issuer:   "clinic-test",
	Audience: []string{"clinic-test-users"},
}

var generous = httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Minute, Burst: 10000}

type harness struct {
	t      *testing.T
	router *httpapi.Router
	store  store.Store
}

type option func(*httpapi.Router)

func withLimits(l httpapi.RateLimits) option {
	return func(r *httpapi.Router) { r.Limits = l }
}

func withStaticDir(dir string) option {
	return func(r *httpapi.Router) { r.StaticDir = dir }
}

func withClientIP(t *testing.T, proxies ...string) option {
	resolver, err := httpx.NewClientIP(proxies)
	require.NoError(t, err)
	return func(r *httpapi.Router) { r.ClientIP = resolver.Key }
}

func newHarness(t *testing.T, mode service.AdminPasswordStorage, opts ...option) *harness {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	issuer, err := jwtx.NewIssuer(testTokens)
	require.NoError(t, err)

	argon := &cryptox.Argon2Hasher{Pepper: "test-pepper", Memory: 1024, Iterations: 1, Parallelism: 1}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := httpapi.NewRouter(testTokens.NewVerifier(), "test", st, logger)
	router.Limits = httpapi.RateLimits{Strict: generous, Moderate: generous, Lenient: generous, Public: generous}
	router.AuthService = &service.AuthService{
		Store:          st,
		Tokens:         issuer,
		PatientHasher:  argon,
		DoctorHasher:   cryptox.NewBcryptHasher(bcrypt.MinCost),
		AdminPasswords: mode,
	}
	router.DoctorService = &service.DoctorService{Store: st}
	router.PatientService = &service.PatientService{Store: st, Hasher: argon}
	router.AppointmentService = &service.AppointmentService{Store: st}

	for _, opt := range opts {
		opt(router)
	}
	router.ApplyRoutes()

	return &harness{t: t, router: router, store: st}
}

func (h *harness) do(method, path, token string, body any) *httptest.ResponseRecorder {
	h.t.Helper()

	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(b)
			require.NoError(h.t, err)
			r = bytes.NewReader(data)
		}
	}

	req := httptest.NewRequest(method, path, r)
	req.RemoteAddr = "192.0.2.10:40000"
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func requireMessage(t *testing.T, rec *httptest.ResponseRecorder, code int, msg string) {
	t.Helper()

	require.Equal(t, code, rec.Code, rec.Body.String())
	require.Equal(t, msg, decode[clinicsdk.MessageResponse](t, rec).Message)
}

// registerDoctor creates a doctor and returns its id and bearer token.
func (h *harness) registerDoctor(name, email string) (int64, string) {
	h.t.Helper()

	rec := h.do(http.MethodPost, "/api/doctors/register", "", clinicsdk.RegisterDoctorRequest{
		Name:           name,
		Specialization: "General Practice",
		Contact:        "555-0100",
		Email:          email,
		Password:       "doctor-pass",
	})
	requireMessage(h.t, rec, http.StatusOK, "Doctor registered successfully!")

	rec = h.do(http.MethodPost, "/api/auth/doctor-login", "", clinicsdk.LoginRequest{Email: email, Password: "doctor-pass"})
	require.Equal(h.t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[clinicsdk.DoctorLoginResponse](h.t, rec)
	require.Equal(h.t, "Doctor login successful", resp.Message)
	require.NotEmpty(h.t, resp.Token)
	return resp.DoctorID, resp.Token
}

// registerPatient creates a patient and returns its id and bearer token.
func (h *harness) registerPatient(first, last, email string) (int64, string) {
	h.t.Helper()

	rec := h.do(http.MethodPost, "/api/auth/register", "", clinicsdk.RegisterPatientRequest{
		FirstName:   first,
		LastName:    last,
		PhoneNumber: "555-1234",
		Email:       email,
		Password:    "secret1",
	})
	require.Equal(h.t, http.StatusOK, rec.Code, rec.Body.String())

	rec = h.do(http.MethodPost, "/api/auth/login", "", clinicsdk.LoginRequest{Email: email, Password: "secret1"})
	require.Equal(h.t, http.StatusOK, rec.Code, rec.Body.String())
	token := decode[clinicsdk.LoginResponse](h.t, rec).Token

	rec = h.do(http.MethodGet, "/api/patient/byemail/"+email, "", nil)
	require.Equal(h.t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[clinicsdk.PatientIDResponse](h.t, rec).PatientID, token
}

// registerAdmin creates an admin through the AdminAuth routes and returns a
// bearer token.
func (h *harness) registerAdmin(email string) string {
	h.t.Helper()

	rec := h.do(http.MethodPost, "/api/AdminAuth/register", "", clinicsdk.RegisterAdminRequest{
		Name: "Root", Email: email, Password: "admin-pass",
	})
	requireMessage(h.t, rec, http.StatusOK, "Admin registered successfully")

	rec = h.do(http.MethodPost, "/api/AdminAuth/login", "", clinicsdk.LoginRequest{Email: email, Password: "admin-pass"})
	require.Equal(h.t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[clinicsdk.AdminAuthLoginResponse](h.t, rec).Token
}

func (h *harness) book(patientID, doctorID int64) clinicsdk.Appointment {
	h.t.Helper()

	rec := h.do(http.MethodPost, "/api/appointment", "", map[string]any{
		"patientID": patientID,
		"doctorID":  doctorID,
		"date":      "2025-03-01",
		"time":      "10:00",
	})
	require.Equal(h.t, http.StatusOK, rec.Code, rec.Body.String())

	res := decode[clinicsdk.AppointmentResult](h.t, rec)
	require.True(h.t, res.Success)
	require.NotNil(h.t, res.Appointment)
	return *res.Appointment
}

func TestNotFound(t *testing.T) {
	h := newHarness(t, service.AdminPasswordPlaintext)

	requireMessage(t, h.do(http.MethodGet, "/no/such/route", "", nil), http.StatusNotFound, "Not found")
}

func TestStaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>clinic</h1>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600))

	h := newHarness(t, service.AdminPasswordPlaintext, withStaticDir(dir))

	rec := h.do(http.MethodGet, "/app.js", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "console.log(1)", rec.Body.String())

	// Client-side routes resolve to the SPA entry point.
	rec = h.do(http.MethodGet, "/patients/42", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<h1>clinic</h1>")

	// API routes still win over the static catch-all.
	rec = h.do(http.MethodGet, "/api/doctors", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestHealthEndpoints(t *testing.T) {
	h := newHarness(t, service.AdminPasswordPlaintext)

	rec := h.do(http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	live := decode[clinicsdk.HealthResponse](t, rec)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)
	require.Nil(t, live.Checks)

	rec = h.do(http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ready := decode[clinicsdk.HealthResponse](t, rec)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)

	require.NoError(t, h.store.Close())

	rec = h.do(http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	degraded := decode[clinicsdk.HealthResponse](t, rec)
	require.Equal(t, "degraded", degraded.Status)
	require.Contains(t, degraded.Checks.Database, "error")
}

func TestRateLimitedLogin(t *testing.T) {
	strict := httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	h := newHarness(t, service.AdminPasswordPlaintext, withLimits(httpapi.RateLimits{
		Strict: strict, Moderate: generous, Lenient: generous, Public: generous,
	}))

	login := clinicsdk.LoginRequest{Email: "nobody@x.com", Password: "x"}
	for range 2 {
		requireMessage(t, h.do(http.MethodPost, "/api/auth/login", "", login), http.StatusUnauthorized, "Invalid email.")
	}

	rec := h.do(http.MethodPost, "/api/auth/login", "", login)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Lenient routes are unaffected.
	require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/api/doctors", "", nil).Code)
}

func (h *harness) loginVia(remote, forwardedFor string) int {
	h.t.Helper()

	body, err := json.Marshal(clinicsdk.LoginRequest{Email: "nobody@x.com", Password: "x"})
	require.NoError(h.t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.RemoteAddr = remote
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", forwardedFor)

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimitedLogin_ForwardedFor(t *testing.T) {
	strict := httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	limits := withLimits(httpapi.RateLimits{Strict: strict, Moderate: generous, Lenient: generous, Public: generous})

	t.Run("rotating header from a direct client", func(t *testing.T) {
		h := newHarness(t, service.AdminPasswordPlaintext, limits)

		codes := map[int]int{}
		for i := range 20 {
			codes[h.loginVia("198.51.100.7:40000", "203.0.113."+strconv.Itoa(i+1))]++
		}
		require.Equal(t, map[int]int{http.StatusUnauthorized: 2, http.StatusTooManyRequests: 18}, codes)
	})

	t.Run("trusted proxy forwards distinct clients", func(t *testing.T) {
		h := newHarness(t, service.AdminPasswordPlaintext, limits, withClientIP(t, "10.0.0.0/8"))

		for i := range 5 {
			require.Equal(t, http.StatusUnauthorized, h.loginVia("10.0.0.2:40000", "203.0.113."+strconv.Itoa(i+1)))
		}

		// A spoofed hop in front of the real client does not buy a new bucket.
		require.Equal(t, http.StatusUnauthorized, h.loginVia("10.0.0.2:40000", "203.0.113.1"))
		require.Equal(t, http.StatusTooManyRequests, h.loginVia("10.0.0.2:40000", "1.2.3.4, 203.0.113.1"))
	})
}

func TestCORSPreflight(t *testing.T) {
	h := newHarness(t, service.AdminPasswordPlaintext)

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	require.Less(t, rec.Code, 300)
	require.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
