package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskdesk.org/internal/auth"
	"taskdesk.org/internal/config"
	"taskdesk.org/internal/httpapi"
	"taskdesk.org/internal/migrate"
	"taskdesk.org/internal/obs"
	"taskdesk.org/internal/store/pg"
	"taskdesk.org/internal/tasks"
)

var (
	version = "0.3.1"
	commit  = "dev"
)

func main() {
	obs.Init()
	obs.InitBuildInfo(version, commit)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		db        *sql.DB
		users     auth.UserStore
		taskStore tasks.Store
	)
	if cfg.PGDSN != "" {
		db, err = pg.Open(cfg.PGDSN)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		if err := migrate.NewManager(db, cfg.MigrationsDir, cfg.SeedsDir).Up(ctx); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
		users = auth.NewPGStore(db)
		taskStore = tasks.NewPGStore(db)
	} else {
		log.Println("TASKDESK_PG_DSN not set, running with in-memory stores")
		users = auth.NewMemoryStore()
		taskStore = tasks.NewMemoryStore()
	}

	if _, err := auth.EnsureInitialUser(ctx, users, cfg.InitialUserEmail, cfg.InitialUserPassword); err != nil {
		log.Fatalf("ensure initial user: %v", err)
	}

	codec, err := auth.NewTokenCodec(cfg.AuthSecret)
	if err != nil {
		log.Fatalf("token codec: %v", err)
	}
	verifier := auth.NewVerifier(users)

	api := httpapi.New(httpapi.ReadyProbe{DB: db}, version, verifier, codec, users, taskStore, cfg.TokenTTL)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	log.Printf("Starting taskdesk-api %s on %s", version, srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	if db != nil {
		_ = db.Close()
	}
	log.Println("Stopped")
}
