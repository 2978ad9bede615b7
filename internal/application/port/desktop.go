package port

import "context"

// DesktopIntegrationStatus represents the current state of desktop integration.
type DesktopIntegrationStatus struct {
	DesktopFileInstalled bool
	DesktopFilePath      string
	IconInstalled        bool
	IconFilePath         string
	ExecutablePath       string
}

// DesktopIntegration installs the launcher entry and icon so the shell shows
// up in the desktop's application list.
type DesktopIntegration interface {
	GetStatus(ctx context.Context) (*DesktopIntegrationStatus, error)

	// InstallDesktopFile writes the desktop entry and returns its path.
	// Idempotent: safe to call multiple times.
	InstallDesktopFile(ctx context.Context) (string, error)

	// InstallIcon writes the icon and returns its path.
	InstallIcon(ctx context.Context, svgData []byte) (string, error)

	// RemoveDesktopFile returns nil if the file doesn't exist.
	RemoveDesktopFile(ctx context.Context) error

	// RemoveIcon returns nil if the file doesn't exist.
	RemoveIcon(ctx context.Context) error
}
