package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wabbas/omnibot/internal/handler/chat"
	middlewarePkg "github.com/wabbas/omnibot/internal/middleware"
	chatService "github.com/wabbas/omnibot/internal/service/chat"
	"github.com/wabbas/omnibot/web"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(chatSvc *chatService.Service, agent chat.Responder) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chat.New(chatSvc, agent)

	// The exchange endpoint lives at the root, where the web page and CLI
	// client expect it.
	r.Post("/chat", chatHandler.HandleChat)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
	})

	// Browser chat page and its assets.
	r.Get("/", web.Index)
	r.Handle("/static/*", web.Static())

	return r
}
