package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nafeer/studio/internal/config"
	http_controllers "github.com/nafeer/studio/internal/http"
	"github.com/nafeer/studio/internal/importers"
	"github.com/nafeer/studio/internal/persistence"
	"github.com/nafeer/studio/internal/scheduler"
	"github.com/nafeer/studio/internal/store"
	"github.com/nafeer/studio/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Studio v%s", version)

	// Initialize snapshot database
	repo, err := persistence.NewRepository(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize snapshot database: %v", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Printf("Error closing snapshot database: %v", err)
		}
	}()

	// Build the in-memory store, loading the saved workspace if present
	st := store.New()
	data, err := repo.Load(cfg.Workspace.Key)
	switch {
	case err == nil:
		if err := importers.Apply(st, data); err != nil {
			log.Fatalf("Saved workspace is not loadable: %v", err)
		}
		log.Printf("Loaded workspace '%s' (%d bytes)", cfg.Workspace.Key, len(data))
	case errors.Is(err, persistence.ErrNoSnapshot):
		log.Printf("No saved workspace '%s', starting empty", cfg.Workspace.Key)
	default:
		log.Fatalf("Failed to load workspace: %v", err)
	}

	saver := persistence.NewSaver(st, repo, cfg.Workspace.Key)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:         cfg.Tasks.Workers,
			MaxRetries:      cfg.Tasks.MaxRetries,
			RetryDelay:      cfg.Tasks.RetryDelay,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewSaveSnapshotQueue(saver),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Queue a debounced save after every burst of store mutations
	var debouncer *tasks.SaveDebouncer
	if taskClient != nil {
		debouncer = tasks.NewSaveDebouncer(taskClient, tasks.DefaultSaveDebounce)
		st.Subscribe(debouncer.Notify)
	}

	// Start the autosave scheduler when both it and the queue are enabled
	var autosave *scheduler.AutosaveScheduler
	if taskClient != nil {
		autosave = scheduler.NewAutosaveScheduler(taskClient, scheduler.Config{
			Enabled:  cfg.Autosave.Enabled,
			Schedule: cfg.Autosave.Schedule,
		})
		if err := autosave.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start autosave scheduler: %v", err)
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Store:        st,
		Repository:   repo,
		Saver:        saver,
		TaskClient:   taskClient,
		Autosave:     autosave,
		WorkspaceKey: cfg.Workspace.Key,
		Version:      version,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup: stop new saves, flush once
	onShutdown := func(ctx context.Context) {
		if debouncer != nil {
			debouncer.Stop()
		}
		if autosave != nil {
			autosave.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
		if _, err := saver.SaveWorkspace(); err != nil {
			log.Printf("Final workspace save failed: %v", err)
		}
	}

	Serve(router, cfg, onShutdown)
}
