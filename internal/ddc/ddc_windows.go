//go:build windows

// Package ddc resolves physical monitors and queries DDC/CI capabilities.
package ddc

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/frudas24/ddcprobe/internal/monitor"
)

var (
	dxva2 = windows.NewLazySystemDLL("dxva2.dll")

	procGetNumberOfPhysicalMonitors = dxva2.NewProc("GetNumberOfPhysicalMonitorsFromHMONITOR")
	procGetPhysicalMonitors         = dxva2.NewProc("GetPhysicalMonitorsFromHMONITOR")
	procDestroyPhysicalMonitors     = dxva2.NewProc("DestroyPhysicalMonitors")
	procGetMonitorCapabilities      = dxva2.NewProc("GetMonitorCapabilities")
	procGetMonitorBrightness        = dxva2.NewProc("GetMonitorBrightness")
)

// physicalMonitor mirrors the native PHYSICAL_MONITOR layout: one handle
// followed by a fixed 128-unit UTF-16 description. Field offsets must match
// the ABI exactly; this is the only place the raw layout appears.
type physicalMonitor struct {
	Handle      windows.Handle
	Description [DescriptionLen]uint16
}

// Client talks to the Monitor Configuration API. It owns the raw
// PHYSICAL_MONITOR buffer between resolution and release. Not safe for
// concurrent use.
type Client struct {
	open []physicalMonitor
}

// NewClient returns a client for the local display subsystem.
func NewClient() (*Client, error) {
	return &Client{}, nil
}

// Monitors enumerates all attached logical monitor handles.
func (c *Client) Monitors() ([]monitor.Handle, error) {
	return monitor.ListMonitors()
}

// MonitorInfo queries metadata for one logical monitor handle.
func (c *Client) MonitorInfo(h monitor.Handle) (monitor.Info, error) {
	return monitor.QueryInfo(h)
}

// PhysicalMonitors resolves the physical devices backing one logical monitor.
// The two-step protocol is mandatory: the count query sizes the detail buffer,
// and the buffer must hold exactly that many records. The raw buffer stays
// owned by the client until ReleasePhysicalMonitors. A zero count returns an
// empty result without error.
func (c *Client) PhysicalMonitors(h monitor.Handle) ([]PhysicalMonitor, error) {
	if c.open != nil {
		return nil, errors.New("physical monitors already resolved and not released")
	}

	var count uint32
	ret, _, err := procGetNumberOfPhysicalMonitors.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(&count)),
	)
	if ret == 0 {
		return nil, fmt.Errorf("GetNumberOfPhysicalMonitorsFromHMONITOR failed: %w", err)
	}
	debugf("physical monitor count: %d", count)
	if count == 0 {
		return nil, nil
	}

	buf := make([]physicalMonitor, count)
	ret, _, err = procGetPhysicalMonitors.Call(
		uintptr(h),
		uintptr(count),
		uintptr(unsafe.Pointer(&buf[0])),
	)
	if ret == 0 {
		return nil, fmt.Errorf("GetPhysicalMonitorsFromHMONITOR failed: %w", err)
	}
	c.open = buf

	monitors := make([]PhysicalMonitor, count)
	for i := range buf {
		monitors[i] = PhysicalMonitor{
			Handle:      uintptr(buf[i].Handle),
			Description: DecodeDescription(buf[i].Description[:]),
		}
	}
	return monitors, nil
}

// ReleasePhysicalMonitors notifies the subsystem that the resolved physical
// monitor handles are no longer in use, then drops the backing buffer. The
// notification must precede the drop; the whole buffer is released at once
// since partial release is unsafe on this API.
func (c *Client) ReleasePhysicalMonitors() error {
	if len(c.open) == 0 {
		c.open = nil
		return nil
	}
	ret, _, err := procDestroyPhysicalMonitors.Call(
		uintptr(len(c.open)),
		uintptr(unsafe.Pointer(&c.open[0])),
	)
	c.open = nil
	if ret == 0 {
		return fmt.Errorf("DestroyPhysicalMonitors failed: %w", err)
	}
	debugf("physical monitors released")
	return nil
}

// Capabilities queries the supported-capability flags and the auxiliary
// color temperature mask for one physical monitor. Failure commonly means the
// display does not speak DDC/CI at all.
func (c *Client) Capabilities(p PhysicalMonitor) (CapabilityReport, error) {
	var caps, colorTemps uint32
	ret, _, err := procGetMonitorCapabilities.Call(
		p.Handle,
		uintptr(unsafe.Pointer(&caps)),
		uintptr(unsafe.Pointer(&colorTemps)),
	)
	if ret == 0 {
		return CapabilityReport{}, fmt.Errorf("GetMonitorCapabilities failed: %w", err)
	}
	debugf("capability mask: %#x, color temperatures: %#x", caps, colorTemps)
	return CapabilityReport{
		Caps:              Capabilities(caps),
		ColorTemperatures: colorTemps,
	}, nil
}

// Brightness queries the minimum, current, and maximum brightness for one
// physical monitor.
func (c *Client) Brightness(p PhysicalMonitor) (Brightness, error) {
	var min, cur, max uint32
	ret, _, err := procGetMonitorBrightness.Call(
		p.Handle,
		uintptr(unsafe.Pointer(&min)),
		uintptr(unsafe.Pointer(&cur)),
		uintptr(unsafe.Pointer(&max)),
	)
	if ret == 0 {
		return Brightness{}, fmt.Errorf("GetMonitorBrightness failed: %w", err)
	}
	debugf("brightness: min=%d current=%d max=%d", min, cur, max)
	return Brightness{Min: min, Current: cur, Max: max}, nil
}
