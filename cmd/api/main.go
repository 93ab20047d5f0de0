package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wabbas/omnibot/internal/config"
	"github.com/wabbas/omnibot/internal/handler"
	chathandler "github.com/wabbas/omnibot/internal/handler/chat"
	"github.com/wabbas/omnibot/internal/service/agent"
	"github.com/wabbas/omnibot/internal/service/chat"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	chatService := chat.NewService()

	var responder chathandler.Responder
	if cfg.AI.Enabled() {
		agentService, err := agent.NewService(ctx, cfg.AI, cfg.Agent)
		if err != nil {
			log.Printf("warning: failed to initialize agent service: %v", err)
			log.Println("continuing without assistant functionality - check the Ark model environment variables")
		} else {
			responder = agentService
			log.Println("agent service initialized successfully")
		}
	} else {
		log.Println("model credentials not configured, /chat will report the fault")
	}

	router := handler.NewRouter(chatService, responder)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Omnibot backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
