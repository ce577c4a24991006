package http

import (
	"net/http"

	"github.com/bank-mobile-api/internal/application/account"
	"github.com/bank-mobile-api/internal/application/auth"
	"github.com/bank-mobile-api/internal/config"
	"github.com/bank-mobile-api/internal/transport/http/handler"
	appmiddleware "github.com/bank-mobile-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authSvc := auth.NewService(auth.ServiceDeps{
		Customers: deps.Customers,
		OTPs:      deps.OTPs,
		SMS:       deps.SMS,
		Mailer:    deps.Mailer,
		Tokens:    deps.JWTProvider,
		EchoOTP:   cfg.EchoOTP(),
	})
	accountSvc := account.NewService(account.ServiceDeps{
		Customers:    deps.Customers,
		Accounts:     deps.Accounts,
		Transactions: deps.Transactions,
		Codec:        deps.Codec,
	})

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	accountH := handler.NewAccountHandler(accountSvc)

	// ── Public routes (no auth) ──────────────────────────────────────────
	r.Get("/health-check/{action}", healthH.Ping)
	r.Post("/auth/send-otp", authH.SendOTP)
	r.Post("/auth/verify-otp", authH.VerifyOTP)
	r.Post("/auth/login", authH.Login)

	// ── Authenticated routes ─────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.Auth(deps.JWTProvider))

		r.Get("/auth/me", accountH.Me)
		r.Get("/auth/user-products", accountH.Products)
		r.Get("/auth/transactions", accountH.Transactions)
	})

	return r
}
