package network

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
)

// GioChecker asks GNetworkMonitor, which follows NetworkManager or the
// network portal when sandboxed.
type GioChecker struct{}

// Name implements Checker.
func (GioChecker) Name() string { return "gio_network_monitor" }

// Available implements Checker.
func (GioChecker) Available(context.Context) bool {
	monitor := gio.NetworkMonitorGetDefault()
	if monitor == nil {
		return true
	}
	return monitor.NetworkAvailable()
}
