// Package portal talks to the XDG Desktop Portal over D-Bus to ask the
// desktop for microphone and camera access.
package portal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/bnema/codeora/internal/domain/entity"
	"github.com/bnema/codeora/internal/logging"
	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	deviceInterface = "org.freedesktop.portal.Device"
	requestIface    = "org.freedesktop.portal.Request"

	// flatpakInfoPath exists only inside a Flatpak sandbox. The Device portal
	// refuses callers that are not sandboxed.
	flatpakInfoPath = "/.flatpak-info"
)

// Response codes of org.freedesktop.portal.Request.Response.
const (
	responseSuccess   uint32 = 0
	responseCancelled uint32 = 1
	responseOther     uint32 = 2
)

// ErrUnsupported is returned when no usable Device portal is reachable.
var ErrUnsupported = errors.New("device portal not available")

// DevicePortal requests device access through org.freedesktop.portal.Device.
// It degrades to unsupported when D-Bus, the portal or the sandbox is missing.
type DevicePortal struct {
	conn      *dbus.Conn
	supported bool
	mu        sync.Mutex
}

// NewDevicePortal connects to the session bus and probes the portal.
func NewDevicePortal(ctx context.Context) *DevicePortal {
	log := logging.FromContext(ctx)
	p := &DevicePortal{}

	if _, err := os.Stat(flatpakInfoPath); err != nil {
		log.Debug().Msg("device portal: not sandboxed, using in-window prompt")
		return p
	}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug().Err(err).Msg("device portal: cannot connect to D-Bus session bus")
		return p
	}
	p.conn = conn

	var version uint32
	err = conn.Object(portalDest, portalPath).
		Call("org.freedesktop.DBus.Properties.Get", 0, deviceInterface, "version").
		Store(&version)
	if err != nil {
		log.Debug().Err(err).Msg("device portal: interface not available")
		return p
	}

	p.supported = true
	log.Debug().Uint32("version", version).Msg("device portal: available")
	return p
}

// Supported reports whether AccessDevice can reach the portal.
func (p *DevicePortal) Supported() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.supported && p.conn != nil
}

// AccessDevice blocks until the user answers the portal dialog. It returns
// true only when the portal reports success.
func (p *DevicePortal) AccessDevice(ctx context.Context, devices []string) (bool, error) {
	log := logging.FromContext(ctx)

	p.mu.Lock()
	conn := p.conn
	supported := p.supported
	p.mu.Unlock()

	if !supported || conn == nil {
		return false, ErrUnsupported
	}
	if len(devices) == 0 {
		return false, fmt.Errorf("no devices requested")
	}

	token := newHandleToken()
	names := conn.Names()
	if len(names) == 0 {
		return false, fmt.Errorf("session bus connection has no unique name")
	}
	handle := requestPath(names[0], token)

	// Subscribe before calling so a fast Response is not lost.
	matchOpts := []dbus.MatchOption{
		dbus.WithMatchObjectPath(handle),
		dbus.WithMatchInterface(requestIface),
		dbus.WithMatchMember("Response"),
	}
	if err := conn.AddMatchSignal(matchOpts...); err != nil {
		return false, fmt.Errorf("portal add match: %w", err)
	}
	signals := make(chan *dbus.Signal, 1)
	conn.Signal(signals)
	defer func() {
		conn.RemoveSignal(signals)
		_ = conn.RemoveMatchSignal(matchOpts...)
	}()

	options := map[string]dbus.Variant{
		"handle_token": dbus.MakeVariant(token),
	}

	var got dbus.ObjectPath
	// AccessDevice(pid: u, devices: as, options: a{sv}) -> handle: o
	err := conn.Object(portalDest, portalPath).
		CallWithContext(ctx, deviceInterface+".AccessDevice", 0, uint32(os.Getpid()), devices, options).
		Store(&got)
	if err != nil {
		return false, fmt.Errorf("portal access device: %w", err)
	}
	if got != handle {
		// Old portals ignore handle_token and pick their own path.
		log.Debug().Str("expected", string(handle)).Str("got", string(got)).Msg("device portal: request path differs")
		handle = got
	}

	log.Debug().Strs("devices", devices).Str("handle", string(handle)).Msg("device portal: waiting for response")

	for {
		select {
		case sig := <-signals:
			if sig == nil {
				return false, fmt.Errorf("session bus closed")
			}
			if sig.Path != handle || sig.Name != requestIface+".Response" {
				continue
			}
			code, err := parseResponse(sig.Body)
			if err != nil {
				return false, err
			}
			log.Debug().Uint32("response", code).Msg("device portal: answered")
			return code == responseSuccess, nil
		case <-ctx.Done():
			_ = conn.Object(portalDest, handle).Call(requestIface+".Close", 0).Err
			return false, ctx.Err()
		}
	}
}

// Close releases the D-Bus connection.
func (p *DevicePortal) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.supported = false
	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	return err
}

// requestPath predicts the Request object path from the caller's unique bus
// name (":1.42" -> "1_42") and the handle token.
func requestPath(uniqueName, token string) dbus.ObjectPath {
	sender := strings.ReplaceAll(strings.TrimPrefix(uniqueName, ":"), ".", "_")
	return dbus.ObjectPath(portalPath + "/request/" + sender + "/" + token)
}

// newHandleToken returns a token usable as an object path element.
func newHandleToken() string {
	return "codeora_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func parseResponse(body []any) (uint32, error) {
	if len(body) == 0 {
		return responseOther, fmt.Errorf("empty portal response")
	}
	code, ok := body[0].(uint32)
	if !ok {
		return responseOther, fmt.Errorf("unexpected portal response type %T", body[0])
	}
	return code, nil
}

// portalDevices maps permission types onto portal device names. The second
// result holds the types the portal cannot ask for.
func portalDevices(types []entity.PermissionType) (devices []string, rest []entity.PermissionType) {
	for _, t := range types {
		switch t {
		case entity.PermissionTypeMicrophone:
			devices = append(devices, "microphone")
		case entity.PermissionTypeCamera:
			devices = append(devices, "camera")
		default:
			rest = append(rest, t)
		}
	}
	return devices, rest
}
