package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"careinspect/internal/bank"
	"careinspect/internal/config"
	"careinspect/internal/sequence"
	"careinspect/internal/service"
	"careinspect/internal/store"
	"careinspect/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	analyzerCfg := config.DefaultAnalyzerConfig()
	log.Printf("Analyzer model: %s", analyzerCfg.Model)
	if analyzerCfg.IsEnabled() {
		log.Println("Analyzer API key: configured")
	} else {
		log.Println("Analyzer API key: NOT SET (serving bundled analysis)")
	}

	// Audit-number sequence: Redis when configured, otherwise in-process
	seq := sequence.NewMemory()
	if cfg.RedisAddr != "" {
		rdb := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Printf("Warning: Redis unreachable at %s, using in-memory audit sequence: %v", cfg.RedisAddr, err)
		} else if seqRedis, err := sequence.NewRedis(rdb); err != nil {
			log.Printf("Warning: Redis sequence init failed, using in-memory audit sequence: %v", err)
		} else {
			seq = seqRedis
			log.Println("Connected to Redis for the audit sequence")
		}
	}

	// Initialize stores and the question bank
	questionBank := bank.New()
	inspectionStore := store.NewInspectionStore()
	auditStore := store.NewAuditStore()

	// Initialize services
	inspectionSvc := service.NewInspectionService(inspectionStore, questionBank)
	auditSvc := service.NewAuditService(auditStore, questionBank, seq)
	reportSvc := service.NewReportService(questionBank)
	analyzerSvc := service.NewAnalyzerService(questionBank)

	// Create router with container
	container := &rest.Container{
		InspectionService: inspectionSvc,
		AuditService:      auditSvc,
		ReportService:     reportSvc,
		AnalyzerService:   analyzerSvc,
		Bank:              questionBank,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  GET  /v1/sections")
		log.Println("  GET  /v1/audit-sections?country=")
		log.Println("  POST /v1/inspections")
		log.Println("  POST /v1/audits")
		log.Println("  POST /v1/analysis/questions")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
