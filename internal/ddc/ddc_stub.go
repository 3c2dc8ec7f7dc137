//go:build !windows

// Package ddc resolves physical monitors and queries DDC/CI capabilities.
package ddc

import (
	"fmt"

	"github.com/frudas24/ddcprobe/internal/monitor"
)

// Client talks to the Monitor Configuration API. On non-Windows platforms
// every query fails.
type Client struct{}

// NewClient returns a client for the local display subsystem.
func NewClient() (*Client, error) {
	return &Client{}, nil
}

// Monitors returns an error on non-Windows platforms.
func (c *Client) Monitors() ([]monitor.Handle, error) {
	return nil, fmt.Errorf("monitor enumeration is only supported on Windows")
}

// MonitorInfo returns an error on non-Windows platforms.
func (c *Client) MonitorInfo(h monitor.Handle) (monitor.Info, error) {
	return monitor.Info{}, fmt.Errorf("monitor metadata is only supported on Windows")
}

// PhysicalMonitors returns an error on non-Windows platforms.
func (c *Client) PhysicalMonitors(h monitor.Handle) ([]PhysicalMonitor, error) {
	return nil, fmt.Errorf("physical monitor resolution is only supported on Windows")
}

// ReleasePhysicalMonitors is a no-op on non-Windows platforms.
func (c *Client) ReleasePhysicalMonitors() error {
	return nil
}

// Capabilities returns an error on non-Windows platforms.
func (c *Client) Capabilities(p PhysicalMonitor) (CapabilityReport, error) {
	return CapabilityReport{}, fmt.Errorf("capability queries are only supported on Windows")
}

// Brightness returns an error on non-Windows platforms.
func (c *Client) Brightness(p PhysicalMonitor) (Brightness, error) {
	return Brightness{}, fmt.Errorf("brightness queries are only supported on Windows")
}
