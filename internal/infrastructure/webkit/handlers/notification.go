// Package handlers implements the page -> shell bridge messages.
package handlers

import (
	"context"
	"encoding/json"

	"github.com/bnema/codeora/internal/application/usecase"
	"github.com/bnema/codeora/internal/infrastructure/webkit/bridge"
	"github.com/bnema/codeora/internal/logging"
)

type notificationRequest struct {
	Message string `json:"message"`
}

// NewNotificationHandler turns showNotification(message) into a toast.
func NewNotificationHandler(uc *usecase.ShowNotificationUseCase) bridge.MessageHandler {
	return bridge.MessageHandlerFunc(func(ctx context.Context, payload json.RawMessage) error {
		var req notificationRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			// Silently ignore malformed requests
			logging.FromContext(ctx).Debug().Err(err).Msg("failed to unmarshal notification payload")
			return nil
		}
		uc.Execute(ctx, req.Message)
		return nil
	})
}
