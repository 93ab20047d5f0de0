package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const noResponseText = "No response received from the server."

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

// HTTPSender posts submissions to the assistant's /chat route. No retries,
// no timeout; each call runs to completion or failure on its own.
type HTTPSender struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSender builds a sender for the given server base URL.
func NewHTTPSender(baseURL string) *HTTPSender {
	return &HTTPSender{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

// Send issues the one outbound call for a submission and folds every
// outcome into a single bot message.
func (s *HTTPSender) Send(ctx context.Context, text string) Message {
	body, err := json.Marshal(chatRequest{Message: text})
	if err != nil {
		return errorMessage("failed to encode request: " + err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return errorMessage("failed to build request: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errorMessage("request failed: " + err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorMessage(fmt.Sprintf("request failed: HTTP %d", resp.StatusCode))
	}

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return errorMessage("failed to decode response: " + err.Error())
	}

	switch {
	case payload.Error != "":
		return errorMessage("Error: " + payload.Error)
	case payload.Response != "":
		return Message{Role: RoleBot, Text: payload.Response}
	default:
		// A 2xx body carrying neither field renders as "no response"
		// rather than failing hard.
		return errorMessage(noResponseText)
	}
}

func errorMessage(text string) Message {
	return Message{Role: RoleBot, Text: text, IsError: true}
}
