package handlers

import (
	"context"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/application/usecase"
	"github.com/bnema/codeora/internal/infrastructure/webkit/bridge"
)

// Config holds all dependencies for message handlers.
type Config struct {
	NotificationUC *usecase.ShowNotificationUseCase
	// Navigation receives sub-resource failures reported by the page.
	Navigation port.NavigationObserver
}

// RegisterAll registers all message handlers with the router.
func RegisterAll(ctx context.Context, router *bridge.MessageRouter, cfg Config) error {
	if cfg.NotificationUC != nil {
		if err := router.RegisterHandler(bridge.TypeShowNotification, NewNotificationHandler(cfg.NotificationUC)); err != nil {
			return err
		}
	}

	if cfg.Navigation != nil {
		if err := router.RegisterHandler(bridge.TypeResourceError, NewResourceErrorHandler(cfg.Navigation)); err != nil {
			return err
		}
	}

	return nil
}
