package client

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	ErrMissingInput  = errors.New("input anchor missing")
	ErrMissingForm   = errors.New("form anchor missing")
	ErrMissingList   = errors.New("message list anchor missing")
	ErrMissingSender = errors.New("sender missing")
)

// Sender issues the outbound call for one submission. Every outcome,
// success or failure, maps to exactly one bot message.
type Sender interface {
	Send(ctx context.Context, text string) Message
}

// Controller wires the submit anchor to the sender and renders both sides
// of each exchange into the message list.
type Controller struct {
	binding Binding
	sender  Sender
	wg      sync.WaitGroup
}

// Bind verifies the anchors and registers the submit hook. When any anchor
// is absent no partial setup happens; the caller logs the fault and moves
// on without a chat surface.
func Bind(binding Binding, sender Sender) (*Controller, error) {
	switch {
	case binding.Input == nil:
		return nil, ErrMissingInput
	case binding.Form == nil:
		return nil, ErrMissingForm
	case binding.List == nil:
		return nil, ErrMissingList
	case sender == nil:
		return nil, ErrMissingSender
	}

	c := &Controller{binding: binding, sender: sender}
	binding.Form.OnSubmit(c.Submit)
	return c, nil
}

// Submit handles one user submission: trim the input, render the user
// message, clear the field and launch the single outbound call. Blank
// input is a no-op. The bot message renders whenever its call completes,
// so rapid submissions may see replies arrive out of order.
func (c *Controller) Submit() {
	text := strings.TrimSpace(c.binding.Input.Value())
	if text == "" {
		return
	}

	c.binding.List.Append(Message{Role: RoleUser, Text: text})
	c.binding.Input.Clear()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.binding.List.Append(c.sender.Send(context.Background(), text))
	}()
}

// Wait blocks until every launched call has rendered its bot message.
func (c *Controller) Wait() {
	c.wg.Wait()
}
