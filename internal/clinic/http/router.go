package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
	"github.com/aussiebroadwan/clinic/pkg/jwtx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	_ "github.com/aussiebroadwan/clinic/api/clinic" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// RateLimits are the per-class limits applied to routes.
type RateLimits struct {
	Strict   httpx.RateLimitConfig
	Moderate httpx.RateLimitConfig
	Lenient  httpx.RateLimitConfig
	Public   httpx.RateLimitConfig
}

// DefaultRateLimits returns the httpx profiles, including any RATELIMIT_*
// overrides.
func DefaultRateLimits() RateLimits {
	return RateLimits{
		Strict:   httpx.StrictLimit,
		Moderate: httpx.ModerateLimit,
		Lenient:  httpx.LenientLimit,
		Public:   httpx.PublicLimit,
	}
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux chi.Router

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// Set before ApplyRoutes.
	AllowedOrigins []string
	StaticDir      string
	Limits         RateLimits
	// ClientIP keys the per-address limits. Defaults to the TCP peer.
	ClientIP httpx.KeyExtractor

	AuthService        *service.AuthService
	DoctorService      *service.DoctorService
	PatientService     *service.PatientService
	AppointmentService *service.AppointmentService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	return &Router{
		Mux:          chi.NewRouter(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		Limits:       DefaultRateLimits(),
		ClientIP:     httpx.IPKeyExtractor,
	}
}

func (r *Router) ApplyRoutes() {
	// Global middleware, outermost first.
	r.Mux.Use(
		slogx.HTTPMiddleware(r.logger),
		middleware.Recoverer,
		httpx.CORS(r.AllowedOrigins),
	)

	r.registerAuth()
	r.registerAdminAuth()
	r.registerDoctors()
	r.registerPatients()
	r.registerAppointments()
	r.registerSystem()

	r.Mux.Get("/swagger/*", httpSwagger.Handler())

	r.registerStatic()
}

// ServeHTTP implements http.Handler for Router.
//
//	@title			Clinic Appointment Service API
//	@version		0.1.0
//	@description	Appointment booking for patients, doctors and administrators.
//	@description
//	@description				Logins return HS256-signed bearer tokens valid for one hour.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/clinic
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.Mux.ServeHTTP(w, req)
}

func (r *Router) byIP(limit httpx.RateLimitConfig) func(http.Handler) http.Handler {
	return httpx.RateLimitByIP(limit, r.ClientIP)
}

// secured is the middleware stack of the bearer-protected endpoints.
func (r *Router) secured() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyRole(domain.RoleDoctor.String(), domain.RoleAdmin.String()),
		httpx.RateLimitBySubject(r.Limits.Moderate, r.ClientIP),
	}
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	r.Mux.Route("/api/auth", func(cr chi.Router) {
		// Credential endpoints - strict rate limit by IP (brute force)
		cr.Use(r.byIP(r.Limits.Strict))

		cr.Post("/register", h.HandleRegister)
		cr.Post("/login", h.HandleLogin)
		cr.Post("/admin-login", h.HandleAdminLogin)
		cr.Post("/doctor-login", h.HandleDoctorLogin)
	})
}

func (r *Router) registerAdminAuth() {
	h := &AdminAuthHandler{AuthService: r.AuthService}
	strict := r.byIP(r.Limits.Strict)

	// Routes were case-insensitive upstream; serve the documented casing and
	// the lower-case form the front end also uses.
	for _, prefix := range []string{"/api/AdminAuth", "/api/adminauth"} {
		r.Mux.Route(prefix, func(cr chi.Router) {
			cr.Use(strict)

			cr.Post("/register", h.HandleRegister)
			cr.Post("/login", h.HandleLogin)
		})
	}
}

func (r *Router) registerDoctors() {
	h := &DoctorsHandler{
		AuthService:        r.AuthService,
		DoctorService:      r.DoctorService,
		AppointmentService: r.AppointmentService,
	}

	r.Mux.Route("/api/doctors", func(cr chi.Router) {
		open := cr.With(r.byIP(r.Limits.Lenient))
		open.Get("/", h.HandleList)
		open.Get("/list", h.HandleListFull)
		open.Get("/byemail/{email}", h.HandleByEmail)
		open.Delete("/{doctorID}", h.HandleDelete)

		cr.With(r.byIP(r.Limits.Strict)).Post("/register", h.HandleRegister)

		// Bearer-protected - Doctor (own records) or Admin
		secured := cr.With(r.secured()...)
		secured.Get("/details/{doctorID}", h.HandleDetails)
		secured.Get("/{doctorID}/appointments", h.HandleAppointments)
		secured.Put("/complete-appointment/{appointmentID}", h.HandleComplete)
	})
}

func (r *Router) registerPatients() {
	h := &PatientsHandler{PatientService: r.PatientService}

	r.Mux.Route("/api/patient", func(cr chi.Router) {
		cr.Use(r.byIP(r.Limits.Lenient))

		cr.Get("/", h.HandleList)
		cr.Post("/", h.HandleAdd)
		cr.Get("/{patientID}/appointments", h.HandleAppointments)
		cr.Get("/byemail/{email}", h.HandleByEmail)
	})
}

func (r *Router) registerAppointments() {
	h := &AppointmentsHandler{AppointmentService: r.AppointmentService}

	r.Mux.Route("/api/appointment", func(cr chi.Router) {
		open := cr.With(r.byIP(r.Limits.Lenient))
		open.Get("/", h.HandleList)
		open.Post("/", h.HandleSchedule)
		open.Get("/with-details", h.HandleWithDetails)
		open.Delete("/{appointmentID}", h.HandleCancel)

		cr.With(r.secured()...).Put("/{appointmentID}/status", h.HandleUpdateStatus)
	})
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	sys := r.Mux.With(r.byIP(r.Limits.Lenient))
	sys.Get("/livez", LivezHandler(r.startTime, r.buildVersion))
	sys.Get("/readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.verifier))
}

func (r *Router) registerStatic() {
	if r.StaticDir == "" {
		r.Mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			httpx.WriteMessage(w, http.StatusNotFound, "Not found")
		})
		return
	}

	r.Mux.Handle("/*", httpx.Chain(StaticHandler(r.StaticDir), r.byIP(r.Limits.Public)))
}
