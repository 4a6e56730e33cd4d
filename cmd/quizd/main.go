package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/quizdeck/quizdeck/internal/api/http"
	"github.com/quizdeck/quizdeck/internal/bank"
	"github.com/quizdeck/quizdeck/internal/config"
	"github.com/quizdeck/quizdeck/internal/db"
	"github.com/quizdeck/quizdeck/internal/quiz"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	// --- Question bank (load once; failure is fatal for this process) ---
	b, err := bank.Load(cfg.BankPath)
	if err != nil {
		log.Fatalf("bank load failed: %v", err)
	}

	// --- Session store ---
	var store quiz.Store
	switch cfg.StoreDriver {
	case "sql":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		store = quiz.NewSQLStore(dbh, cfg.DBDriver)
	case "redis":
		rs, err := quiz.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)
		if err != nil {
			log.Fatalf("redis store: %v", err)
		}
		store = rs
	default:
		store = quiz.NewMemoryStore()
	}

	defaults := quiz.Config{
		ShuffleChoices: cfg.ShuffleChoices,
		FoldTrueFalse:  cfg.FoldTrueFalse,
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Get("/lessons", api.ListLessonsHandler(b))

	r.Post("/sessions", api.CreateSessionHandler(b, store, defaults))
	r.Route("/sessions/{sessionID}", func(sr chi.Router) {
		sr.Get("/current", api.CurrentQuestionHandler(store))
		sr.Post("/answer", api.RecordAnswerHandler(store))
		sr.Post("/next", api.NavigateHandler(store, 1))
		sr.Post("/prev", api.NavigateHandler(store, -1))
		sr.Post("/submit", api.SubmitSessionHandler(store))
		sr.Get("/result", api.GetResultHandler(store))
		sr.Delete("/", api.DeleteSessionHandler(store))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (store=%s, bank=%s, %d lessons)",
		cfg.HTTPAddr, cfg.StoreDriver, cfg.BankPath, len(b.Lessons()))
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
