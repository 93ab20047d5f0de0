package agent

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/flow/agent/react"
	"github.com/cloudwego/eino/schema"

	"github.com/wabbas/omnibot/internal/config"
	"github.com/wabbas/omnibot/internal/model/chat"
)

// Service generates assistant replies for the /chat endpoint. Replies come
// from a ReAct agent so the model can call the built-in lookup tools
// before answering.
type Service struct {
	chatModel model.ChatModel
	cfg       config.AgentConfig
	agent     *react.Agent
}

// NewService builds the tool-calling agent around the configured model.
func NewService(ctx context.Context, aiCfg config.AIConfig, agentCfg config.AgentConfig) (*Service, error) {
	chatModel, err := aiCfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	tools, err := defaultTools(&http.Client{Timeout: 15 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to build agent tools: %w", err)
	}

	reactAgent, err := react.NewAgent(ctx, &react.AgentConfig{
		Model:       chatModel,
		ToolsConfig: compose.ToolsNodeConfig{Tools: tools},
		MaxStep:     8,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create react agent: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		cfg:       agentCfg,
		agent:     reactAgent,
	}, nil
}

// Generate produces the assistant reply for one user turn, grounding the
// agent on the trailing transcript window.
func (s *Service) Generate(ctx context.Context, sessionID string, history []chat.Message, query string) (string, error) {
	window := historyMessages(history, s.cfg.HistoryLimit)

	messages := make([]*schema.Message, 0, len(window)+2)
	messages = append(messages, schema.SystemMessage(s.cfg.SystemPrompt))
	messages = append(messages, window...)
	messages = append(messages, schema.UserMessage(query))

	response, err := s.agent.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to run agent: %w", err)
	}

	log.Printf("[agent] generated response for session=%s, length=%d", sessionID, len(response.Content))
	return response.Content, nil
}

// historyMessages converts the trailing transcript window into model
// messages, skipping senders the model does not understand.
func historyMessages(messages []chat.Message, limit int) []*schema.Message {
	if len(messages) == 0 {
		return nil
	}

	startIdx := 0
	if limit > 0 && len(messages) > limit {
		startIdx = len(messages) - limit
	}

	history := make([]*schema.Message, 0, len(messages)-startIdx)
	for _, msg := range messages[startIdx:] {
		switch msg.Sender {
		case chat.SenderUser:
			history = append(history, schema.UserMessage(msg.Content))
		case chat.SenderAssistant:
			history = append(history, schema.AssistantMessage(msg.Content, nil))
		}
	}

	return history
}
