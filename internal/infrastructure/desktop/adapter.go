// Package desktop provides desktop environment integration for Linux (XDG).
package desktop

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/logging"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// desktopFileTemplate is the freedesktop.org desktop entry format.
// Placeholders: name, executable, icon name, WM class.
const desktopFileTemplate = `[Desktop Entry]
Version=1.1
Type=Application
Name=%s
Comment=Chat and voice notes in their own window
Exec=%s
Icon=%s
Terminal=false
Categories=Network;Chat;InstantMessaging;
StartupNotify=true
StartupWMClass=%s
`

// Adapter implements port.DesktopIntegration for the XDG data directory.
type Adapter struct {
	appID           string
	name            string
	updateDesktopDB string
	executable      func() (string, error)
}

var _ port.DesktopIntegration = (*Adapter)(nil)

// New creates an adapter. appID names the entry and the icon, and matches
// the GTK application id so the compositor groups the window with it.
func New(appID, name string) *Adapter {
	a := &Adapter{appID: appID, name: name, executable: executablePath}

	// Optional, helps some desktops pick up the entry immediately.
	if path, err := exec.LookPath("update-desktop-database"); err == nil {
		a.updateDesktopDB = path
	}
	return a
}

func dataHome() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}

func (a *Adapter) desktopFilePath() (string, error) {
	dir, err := dataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "applications", a.appID+".desktop"), nil
}

// iconFilePath uses the hicolor theme scalable apps directory.
func (a *Adapter) iconFilePath() (string, error) {
	dir, err := dataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "icons", "hicolor", "scalable", "apps", a.appID+".svg"), nil
}

func executablePath() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return execPath, nil
}

// GetStatus checks the current desktop integration state.
func (a *Adapter) GetStatus(ctx context.Context) (*port.DesktopIntegrationStatus, error) {
	status := &port.DesktopIntegrationStatus{}

	desktopPath, err := a.desktopFilePath()
	if err != nil {
		return nil, err
	}
	status.DesktopFilePath = desktopPath
	if _, err := os.Stat(desktopPath); err == nil {
		status.DesktopFileInstalled = true
	}

	iconPath, err := a.iconFilePath()
	if err != nil {
		return nil, err
	}
	status.IconFilePath = iconPath
	if _, err := os.Stat(iconPath); err == nil {
		status.IconInstalled = true
	}

	if execPath, err := a.executable(); err == nil {
		status.ExecutablePath = execPath
	}

	logging.FromContext(ctx).Debug().
		Bool("desktop_installed", status.DesktopFileInstalled).
		Bool("icon_installed", status.IconInstalled).
		Str("desktop_path", status.DesktopFilePath).
		Msg("desktop integration status")

	return status, nil
}

// InstallDesktopFile writes the desktop entry pointing at the running binary.
func (a *Adapter) InstallDesktopFile(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	execPath, err := a.executable()
	if err != nil {
		return "", err
	}
	desktopPath, err := a.desktopFilePath()
	if err != nil {
		return "", err
	}

	appDir := filepath.Dir(desktopPath)
	if err := os.MkdirAll(appDir, dirPerm); err != nil {
		return "", fmt.Errorf("create applications dir: %w", err)
	}

	content := fmt.Sprintf(desktopFileTemplate, a.name, execPath, a.appID, a.appID)
	if err := os.WriteFile(desktopPath, []byte(content), filePerm); err != nil {
		return "", fmt.Errorf("write desktop file: %w", err)
	}
	log.Info().Str("path", desktopPath).Msg("desktop file installed")

	a.refreshDatabase(ctx, appDir)
	return desktopPath, nil
}

// RemoveDesktopFile removes the desktop entry.
func (a *Adapter) RemoveDesktopFile(ctx context.Context) error {
	desktopPath, err := a.desktopFilePath()
	if err != nil {
		return err
	}
	if err := removeIfExists(desktopPath); err != nil {
		return fmt.Errorf("remove desktop file: %w", err)
	}
	logging.FromContext(ctx).Info().Str("path", desktopPath).Msg("desktop file removed")

	a.refreshDatabase(ctx, filepath.Dir(desktopPath))
	return nil
}

// InstallIcon writes the icon into the hicolor theme.
func (a *Adapter) InstallIcon(ctx context.Context, svgData []byte) (string, error) {
	iconPath, err := a.iconFilePath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(iconPath), dirPerm); err != nil {
		return "", fmt.Errorf("create icons dir: %w", err)
	}
	if err := os.WriteFile(iconPath, svgData, filePerm); err != nil {
		return "", fmt.Errorf("write icon file: %w", err)
	}
	logging.FromContext(ctx).Info().Str("path", iconPath).Msg("icon file installed")
	return iconPath, nil
}

// RemoveIcon removes the icon.
func (a *Adapter) RemoveIcon(ctx context.Context) error {
	iconPath, err := a.iconFilePath()
	if err != nil {
		return err
	}
	if err := removeIfExists(iconPath); err != nil {
		return fmt.Errorf("remove icon file: %w", err)
	}
	logging.FromContext(ctx).Info().Str("path", iconPath).Msg("icon file removed")
	return nil
}

func (a *Adapter) refreshDatabase(ctx context.Context, appDir string) {
	if a.updateDesktopDB == "" {
		return
	}
	if err := exec.CommandContext(ctx, a.updateDesktopDB, appDir).Run(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("update-desktop-database failed (non-fatal)")
	}
}

func removeIfExists(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
