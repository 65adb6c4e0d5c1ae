package router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"barabom/internal/adapters/auth/demo"
	fileadapter "barabom/internal/adapters/storage/file"
	mem "barabom/internal/adapters/storage/memory"
	pg "barabom/internal/adapters/storage/postgres"
	"barabom/internal/config"
	"barabom/internal/domain/calendar"
	"barabom/internal/domain/chat"
	"barabom/internal/domain/facilities"
	"barabom/internal/domain/family"
	"barabom/internal/domain/medications"
	"barabom/internal/domain/notifications"
	"barabom/internal/domain/reports"
	"barabom/internal/domain/timeline"
	"barabom/internal/middleware"
	"barabom/internal/platform/logger"
	"barabom/internal/ports/auth"
	"barabom/internal/ports/kv"
	"barabom/internal/store"
)

type Options struct {
	Config config.Config
	Log    logger.Logger

	// KV overrides storage selection; used by tests.
	KV kv.Store

	// Verifier overrides the demo provider's token check. Nil means the
	// demo provider verifies its own tokens.
	Verifier auth.Verifier
}

// New wires storage, every domain service and all routes into one handler.
func New(ctx context.Context, opts Options) (http.Handler, error) {
	cfg := opts.Config
	log := opts.Log
	if log == nil {
		log = logger.NewNop()
	}

	kvs, err := openKV(cfg)
	if err != nil {
		return nil, err
	}
	if opts.KV != nil {
		kvs = opts.KV
	}

	st := store.New(kvs, log)
	if err := st.Load(ctx); err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}

	familySvc := family.NewService(st)

	index := calendar.NewIndex()
	timelineSvc := timeline.NewService(store.TimelineRepo{S: st}, index, log)
	if err := timelineSvc.RefreshIndex(ctx); err != nil {
		return nil, fmt.Errorf("building calendar index: %w", err)
	}

	hub := chat.NewHub(log)
	go hub.Run()

	notifySvc := notifications.NewService(store.NotificationRepo{S: st}, st, hub, hub, log)
	medsSvc := medications.NewService(store.MedicationRepo{S: st}, familySvc, timelineSvc, notifySvc, log)
	chatSvc := chat.NewService(store.ChatRepo{S: st}, familySvc, hub, cfg.ChatReplyDelay, log)
	facilitiesSvc := facilities.NewService(notifySvc, cfg.PaymentDelay, log)
	reportsSvc := reports.NewService(familySvc, timelineSvc, log)

	provider := demo.NewProvider(cfg.JWTSecret, st, cfg.SocialDelay, log)

	verifier := opts.Verifier
	if verifier == nil {
		verifier = provider
	}

	if cfg.AutoNotify {
		gen := notifications.NewGenerator(notifySvc, cfg.AutoNotifyInterval, log)
		gen.Start(ctx)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)
	r.Use(middleware.AuthContext(verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	demo.RegisterRoutes(r, provider)
	family.RegisterRoutes(r, familySvc)
	timeline.RegisterRoutes(r, timelineSvc)
	calendar.RegisterRoutes(r, index)
	notifications.RegisterRoutes(r, notifySvc)
	medications.RegisterRoutes(r, medsSvc)
	chat.RegisterRoutes(r, chatSvc, hub)
	facilities.RegisterRoutes(r, facilitiesSvc)
	reports.RegisterRoutes(r, reportsSvc)

	r.Post("/admin/reset", func(w http.ResponseWriter, req *http.Request) {
		// Destructive; require the caller to say so explicitly.
		if req.URL.Query().Get("confirm") != "true" {
			http.Error(w, "confirm=true required", http.StatusBadRequest)
			return
		}
		if err := st.ResetAll(req.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if err := timelineSvc.RefreshIndex(req.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return r, nil
}

// openKV picks the storage backend: postgres when a DSN is set, files when
// a data dir is set, otherwise memory.
func openKV(cfg config.Config) (kv.Store, error) {
	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("opening postgres: %w", err)
		}
		return pg.NewKV(db), nil
	}
	if cfg.DataDir != "" {
		fkv, err := fileadapter.NewKV(cfg.DataDir, cfg.QuotaBytes)
		if err != nil {
			return nil, fmt.Errorf("opening file storage: %w", err)
		}
		return fkv, nil
	}
	return mem.NewKV(cfg.QuotaBytes), nil
}
