package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/venev-g/psychoassess/internal/api/http"
	"github.com/venev-g/psychoassess/internal/assessment"
	"github.com/venev-g/psychoassess/internal/auth"
	"github.com/venev-g/psychoassess/internal/config"
	"github.com/venev-g/psychoassess/internal/db"
	"github.com/venev-g/psychoassess/internal/eventlog"
	"github.com/venev-g/psychoassess/internal/norms"
	"github.com/venev-g/psychoassess/internal/recommend"
	"github.com/venev-g/psychoassess/internal/session"

	// Instrument strategies self-register.
	_ "github.com/venev-g/psychoassess/internal/strategies/dominantintelligence"
	_ "github.com/venev-g/psychoassess/internal/strategies/personality"
	_ "github.com/venev-g/psychoassess/internal/strategies/vark"
)

func main() {
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	if err := auth.SeedAdmin(ctx, dbh, cfg.AdminUser, cfg.AdminPassHash); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	store := assessment.NewSQLStore(dbh)
	events := eventlog.NewRepo(dbh)
	normsEngine := norms.DefaultEngine()
	recEngine := recommend.NewEngine()
	svc := session.New(store, normsEngine, recEngine, events, cfg.DefaultBattery)

	authSvc := auth.NewAuthService(cfg.AuthSecret)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, dbh))
	r.Post("/auth/guest", auth.GuestLoginHandler(authSvc, dbh, cfg))

	// Respondent flow.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.Post("/sessions", api.StartSessionHandler(svc))
		pr.Get("/sessions/{sessionID}", api.GetSessionHandler(store))
		pr.Get("/sessions/{sessionID}/questions", api.CurrentQuestionsHandler(svc))
		pr.Post("/sessions/{sessionID}/responses", api.SaveResponsesHandler(svc))
		pr.Post("/sessions/{sessionID}/complete", api.CompleteInstrumentHandler(svc))
		pr.Get("/sessions/{sessionID}/results", api.ResultsHandler(svc))

		pr.Put("/auth/password", api.ChangePasswordHandler(dbh))

		pr.Get("/test-types", api.ListTestTypesHandler(store))
		pr.Post("/normalize", api.NormalizeHandler(normsEngine))
		pr.Get("/norms/categories", api.NormCategoriesHandler(normsEngine))
	})

	// Content authoring and analytics (admin only).
	r.Group(func(ar chi.Router) {
		ar.Use(auth.JWTMiddleware(authSvc), auth.RequireRole("admin"))

		ar.Post("/test-types", api.UpsertTestTypeHandler(store))
		ar.Get("/test-types/{testTypeID}/questions", api.ListQuestionsHandler(store))
		ar.Post("/questions", api.UpsertQuestionHandler(store))
		ar.Get("/events", api.RecentEventsHandler(events))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
