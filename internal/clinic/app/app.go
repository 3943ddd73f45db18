package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/clinic/internal/clinic/http"
	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/internal/clinic/store/drivers/postgres"
	"github.com/aussiebroadwan/clinic/internal/clinic/store/drivers/sqlite"
	"github.com/aussiebroadwan/clinic/pkg/cryptox"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
	"github.com/aussiebroadwan/clinic/pkg/jwtx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

// BuildVersion is overridden at build time via ldflags.
var BuildVersion = "v0.1.0"

// Application wires the clinic service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	tokens jwtx.IssuerConfig

	authService        *service.AuthService
	doctorService      *service.DoctorService
	patientService     *service.PatientService
	appointmentService *service.AppointmentService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with every dependency initialised. The
// database is migrated before New returns.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		tokens: cfg.TokenConfig(),
		logger: slogx.New(slogx.Config{
			Service: "clinic",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.GeneratedSecret {
		app.logger.Warn("JWT_SECRET_KEY not set, using a random secret; tokens will not survive a restart")
	}

	if err := app.initDatabase(context.Background()); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initHTTP(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	return app, nil
}

// Handler exposes the routed handler, mainly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts serving and blocks until a shutdown signal or server error.
func (app *Application) Run() error {
	app.logger.Info("clinic service starting", "port", app.cfg.Port, "driver", app.cfg.DBDriver)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down clinic service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("clinic service stopped")
	return nil
}

func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)

	switch app.cfg.DBDriver {
	case DriverPostgres:
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL, postgres.PoolConfig{
			MaxOpenConns:    app.cfg.DBMaxOpenConns,
			MaxIdleConns:    app.cfg.DBMaxIdleConns,
			ConnMaxLifetime: app.cfg.DBConnMaxLifetime,
		})
	default:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
		db, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.db = db
	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DBDriver)
	return nil
}

func (app *Application) initServices() error {
	pepper, err := cryptox.LoadOrGeneratePepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}

	argon := cryptox.NewArgon2Hasher(pepper)
	if app.cfg.Argon2MemoryKiB > 0 {
		argon.Memory = app.cfg.Argon2MemoryKiB
	}
	if app.cfg.Argon2Iterations > 0 {
		argon.Iterations = app.cfg.Argon2Iterations
	}

	issuer, err := jwtx.NewIssuer(app.tokens)
	if err != nil {
		return fmt.Errorf("failed to initialize token issuer: %w", err)
	}

	adminMode, err := service.ParseAdminPasswordStorage(app.cfg.AdminPasswordStorage)
	if err != nil {
		return err
	}
	if adminMode == service.AdminPasswordPlaintext {
		app.logger.Warn("admin passwords are stored in plaintext; /api/auth/admin-login is disabled")
	}

	app.authService = &service.AuthService{
		Store:          app.db,
		Tokens:         issuer,
		PatientHasher:  argon,
		DoctorHasher:   cryptox.NewBcryptHasher(app.cfg.BcryptCost),
		AdminPasswords: adminMode,
	}
	app.doctorService = &service.DoctorService{Store: app.db}
	app.patientService = &service.PatientService{Store: app.db, Hasher: argon}
	app.appointmentService = &service.AppointmentService{Store: app.db}
	return nil
}

func (app *Application) initHTTP() error {
	clientIP, err := httpx.NewClientIP(app.cfg.TrustedProxies)
	if err != nil {
		return fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	router := httpapi.NewRouter(app.tokens.NewVerifier(), BuildVersion, app.db, app.logger)

	router.AllowedOrigins = app.cfg.AllowedOrigins
	router.ClientIP = clientIP.Key
	router.StaticDir = app.cfg.StaticDir
	// A .env file may have set RATELIMIT_* after httpx read the process env.
	router.Limits = httpapi.RateLimits{
		Strict:   httpx.ParseRateLimitFromEnv("STRICT", httpx.StrictLimit),
		Moderate: httpx.ParseRateLimitFromEnv("MODERATE", httpx.ModerateLimit),
		Lenient:  httpx.ParseRateLimitFromEnv("LENIENT", httpx.LenientLimit),
		Public:   httpx.ParseRateLimitFromEnv("PUBLIC", httpx.PublicLimit),
	}

	router.AuthService = app.authService
	router.DoctorService = app.doctorService
	router.PatientService = app.patientService
	router.AppointmentService = app.appointmentService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return nil
}
