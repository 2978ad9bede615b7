// Package bridge carries messages from page JavaScript to Go handlers.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/codeora/internal/logging"
)

// MessageHandlerName is the window.webkit.messageHandlers entry the injected
// script posts to.
const MessageHandlerName = "codeora"

// ErrUnknownType is returned by Dispatch for a message nobody handles.
var ErrUnknownType = errors.New("no handler registered for message type")

// Message represents a JS -> Go message envelope sent via postMessage.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MessageHandler handles a decoded message payload. Messages are
// fire-and-forget, so there is no reply.
type MessageHandler interface {
	Handle(ctx context.Context, payload json.RawMessage) error
}

// MessageHandlerFunc adapts a function to the MessageHandler interface.
type MessageHandlerFunc func(ctx context.Context, payload json.RawMessage) error

// Handle calls f(ctx, payload).
func (f MessageHandlerFunc) Handle(ctx context.Context, payload json.RawMessage) error {
	return f(ctx, payload)
}

// MessageRouter dispatches script messages to registered handlers.
type MessageRouter struct {
	baseCtx  context.Context
	mu       sync.RWMutex
	handlers map[string]MessageHandler
}

// NewMessageRouter creates a new message router.
func NewMessageRouter(ctx context.Context) *MessageRouter {
	if ctx == nil {
		ctx = context.Background()
	}
	return &MessageRouter{
		baseCtx:  logging.WithComponent(ctx, "message-router"),
		handlers: make(map[string]MessageHandler),
	}
}

// RegisterHandler registers a handler for a message type.
func (r *MessageRouter) RegisterHandler(msgType string, handler MessageHandler) error {
	if msgType == "" {
		return errors.New("message type cannot be empty")
	}
	if handler == nil {
		return errors.New("message handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[msgType]; exists {
		return fmt.Errorf("handler for %q already registered", msgType)
	}
	r.handlers[msgType] = handler
	return nil
}

// Dispatch decodes a JSON envelope and runs the matching handler. Errors
// are logged and returned; the page never sees them.
func (r *MessageRouter) Dispatch(rawJSON string) error {
	log := logging.FromContext(r.baseCtx)

	if rawJSON == "" {
		log.Warn().Msg("script message JSON is empty")
		return errors.New("empty script message")
	}

	var msg Message
	if err := json.Unmarshal([]byte(rawJSON), &msg); err != nil {
		log.Warn().Err(err).Int("len", len(rawJSON)).Msg("failed to unmarshal script message")
		return fmt.Errorf("decode script message: %w", err)
	}
	if msg.Type == "" {
		log.Warn().Msg("script message missing type")
		return errors.New("script message missing type")
	}

	r.mu.RLock()
	handler, ok := r.handlers[msg.Type]
	r.mu.RUnlock()
	if !ok {
		log.Warn().Str("type", msg.Type).Msg("no handler registered for message type")
		return fmt.Errorf("%w: %s", ErrUnknownType, msg.Type)
	}

	log.Debug().Str("type", msg.Type).Int("payload_len", len(msg.Payload)).Msg("received script message")

	if err := handler.Handle(r.baseCtx, msg.Payload); err != nil {
		log.Error().Err(err).Str("type", msg.Type).Msg("message handler returned error")
		return err
	}
	return nil
}
