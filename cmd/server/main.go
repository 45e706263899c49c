package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gestor-backend/internal/ai"
	"gestor-backend/internal/config"
	"gestor-backend/internal/handlers"
	"gestor-backend/internal/health"
	h "gestor-backend/internal/http"
	"gestor-backend/internal/middleware"
	"gestor-backend/internal/repositories"
	"gestor-backend/internal/services"
	"gestor-backend/internal/store"
)

// openStore connects to Redis and falls back to the file store so the
// binary still runs standalone on a machine with nothing installed.
func openStore(cfg *config.Config) store.Store {
	s, err := store.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err == nil {
		log.Printf("[Store] Connected to Redis at %s", cfg.Redis.Addr)
		return s
	}
	log.Printf("[Store] Redis unavailable (%v), using file store in %s", err, cfg.Storage.DataDir)

	fs, err := store.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		log.Fatalf("Failed to open file store: %v", err)
	}
	return fs
}

func main() {
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	cfg := config.Load()
	if *port > 0 {
		cfg.Server.Port = *port
	}

	st := openStore(cfg)
	defer st.Close()

	var assistant ai.Assistant = ai.NoopAssistant{}
	if cfg.AI.GeminiAPIKey != "" {
		assistant = ai.NewGeminiAssistant(cfg.AI.GeminiAPIKey, cfg.AI.Model)
		log.Printf("[AI] Gemini assistant enabled (model %s)", cfg.AI.Model)
	}

	// Repositories
	serviceRepo := repositories.NewServiceRepository(st)
	productRepo := repositories.NewProductRepository(st)
	clientRepo := repositories.NewClientRepository(st)
	quoteRepo := repositories.NewQuoteRepository(st)
	receiptRepo := repositories.NewReceiptRepository(st)
	commitmentRepo := repositories.NewCommitmentRepository(st)
	categoryRepo := repositories.NewCategoryRepository(st)
	profileRepo := repositories.NewProfileRepository(st)
	appointmentRepo := repositories.NewAppointmentRepository(st)

	// Services
	catalogService := services.NewCatalogService(serviceRepo, productRepo, categoryRepo, assistant)
	clientService := services.NewClientService(clientRepo, appointmentRepo)
	quoteService := services.NewQuoteService(quoteRepo, serviceRepo, productRepo, clientRepo, assistant)
	receiptService := services.NewReceiptService(receiptRepo, clientRepo)
	commitmentService := services.NewCommitmentService(commitmentRepo)
	profileService := services.NewProfileService(profileRepo)
	dashboardService := services.NewDashboardService(clientRepo, serviceRepo, productRepo, quoteRepo, receiptRepo, commitmentRepo)
	reportService := services.NewReportService(quoteRepo, receiptRepo, commitmentRepo, clientRepo, serviceRepo, productRepo, profileRepo)
	backupService := services.NewBackupService(st, services.BackupConfig{
		Endpoint:  cfg.Backup.Endpoint,
		Region:    cfg.Backup.Region,
		Bucket:    cfg.Backup.Bucket,
		AccessKey: cfg.Backup.AccessKey,
		SecretKey: cfg.Backup.SecretKey,
		Interval:  cfg.BackupInterval(),
	})

	// Handlers
	router := h.NewRouter(
		handlers.NewCatalogHandler(catalogService),
		handlers.NewClientHandler(clientService),
		handlers.NewQuoteHandler(quoteService),
		handlers.NewReceiptHandler(receiptService),
		handlers.NewCommitmentHandler(commitmentService),
		handlers.NewDashboardHandler(dashboardService),
		handlers.NewProfileHandler(profileService),
		handlers.NewReportHandler(reportService, commitmentService),
		handlers.NewBackupHandler(backupService),
		handlers.NewHealthHandler(health.NewHealthChecker(st)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Backup.Enabled && cfg.Backup.Bucket != "" {
		go backupService.Run(ctx)
	}

	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			middleware.NewCORS(cfg)(router),
		),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.Printf("[Server] Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("[Server] Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Server] Forced shutdown: %v", err)
	}
}
