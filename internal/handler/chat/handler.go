package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wabbas/omnibot/internal/model/chat"
	chatService "github.com/wabbas/omnibot/internal/service/chat"
	"github.com/wabbas/omnibot/pkg/utils"
)

// The original assistant answers with this when the model yields nothing.
const noReplyText = "No reply produced. Try rephrasing your request."

// Responder generates one assistant reply per user turn.
type Responder interface {
	Generate(ctx context.Context, sessionID string, history []chat.Message, query string) (string, error)
}

// Handler exposes the chat exchange and session routes.
type Handler struct {
	chatSvc *chatService.Service
	agent   Responder
}

// New creates the chat handler. agent may be nil when the model backend is
// not configured; /chat then reports the fault in its error body.
func New(chatSvc *chatService.Service, agent Responder) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		agent:   agent,
	}
}

// RegisterRoutes wires session management under the API namespace.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Get("/session/{sessionID}/messages", h.handleGetMessages)
}

// HandleChat serves one message exchange: append the user turn, run the
// agent over the trailing transcript, append and return the reply. Agent
// failures travel in the response body with a 200 status, matching the
// contract the web client expects.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message   string `json:"message"`
		SessionID string `json:"sessionId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message := strings.TrimSpace(payload.Message)
	if message == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	ctx := r.Context()
	session, err := h.chatSvc.EnsureSession(ctx, payload.SessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	if h.agent == nil {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"error": "assistant is not configured"})
		return
	}

	history, err := h.chatSvc.LoadTranscript(ctx, session.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// The user turn is recorded even when the agent fails, mirroring how
	// the assistant originally kept its history.
	if err := h.chatSvc.SaveMessage(ctx, chat.Message{
		SessionID: session.ID,
		Sender:    chat.SenderUser,
		Content:   message,
	}); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	reply, err := h.agent.Generate(ctx, session.ID, history, message)
	if err != nil {
		log.Printf("[chat] agent error for session=%s: %v", session.ID, err)
		utils.RespondJSON(w, http.StatusOK, map[string]string{"error": err.Error()})
		return
	}

	if reply == "" {
		reply = noReplyText
	} else if err := h.chatSvc.SaveMessage(ctx, chat.Message{
		SessionID: session.ID,
		Sender:    chat.SenderAssistant,
		Content:   reply,
	}); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"response": reply})
}

// handleCreateSession provisions a dedicated conversation thread.
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, session)
}

// handleGetMessages returns the stored transcript for a session.
func (h *Handler) handleGetMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	transcript, err := h.chatSvc.LoadTranscript(r.Context(), sessionID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, chatService.ErrSessionNotFound) {
			status = http.StatusNotFound
		}
		utils.RespondError(w, status, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"messages": transcript})
}
