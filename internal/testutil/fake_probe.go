package testutil

import (
	"github.com/frudas24/ddcprobe/internal/ddc"
	"github.com/frudas24/ddcprobe/internal/inspect"
	"github.com/frudas24/ddcprobe/internal/monitor"
)

// FakeProbe implements inspect.Prober with canned results and records the
// order of calls for tests.
type FakeProbe struct {
	Handles    []monitor.Handle
	HandlesErr error

	Infos    map[monitor.Handle]monitor.Info
	InfoErrs map[monitor.Handle]error

	Phys    []ddc.PhysicalMonitor
	PhysErr error

	Caps    ddc.CapabilityReport
	CapsErr error

	Bright    ddc.Brightness
	BrightErr error

	ReleaseErr error

	Calls []string
}

// Ensure FakeProbe implements the interface.
var _ inspect.Prober = (*FakeProbe)(nil)

// Monitors returns the canned handle list.
func (f *FakeProbe) Monitors() ([]monitor.Handle, error) {
	f.Calls = append(f.Calls, "Monitors")
	if f.HandlesErr != nil {
		return nil, f.HandlesErr
	}
	return f.Handles, nil
}

// MonitorInfo returns the canned metadata for one handle.
func (f *FakeProbe) MonitorInfo(h monitor.Handle) (monitor.Info, error) {
	f.Calls = append(f.Calls, "MonitorInfo")
	if err := f.InfoErrs[h]; err != nil {
		return monitor.Info{}, err
	}
	return f.Infos[h], nil
}

// PhysicalMonitors returns the canned physical records.
func (f *FakeProbe) PhysicalMonitors(h monitor.Handle) ([]ddc.PhysicalMonitor, error) {
	f.Calls = append(f.Calls, "PhysicalMonitors")
	if f.PhysErr != nil {
		return nil, f.PhysErr
	}
	return f.Phys, nil
}

// ReleasePhysicalMonitors records the release call.
func (f *FakeProbe) ReleasePhysicalMonitors() error {
	f.Calls = append(f.Calls, "ReleasePhysicalMonitors")
	return f.ReleaseErr
}

// Capabilities returns the canned capability report.
func (f *FakeProbe) Capabilities(p ddc.PhysicalMonitor) (ddc.CapabilityReport, error) {
	f.Calls = append(f.Calls, "Capabilities")
	if f.CapsErr != nil {
		return ddc.CapabilityReport{}, f.CapsErr
	}
	return f.Caps, nil
}

// Brightness returns the canned brightness snapshot.
func (f *FakeProbe) Brightness(p ddc.PhysicalMonitor) (ddc.Brightness, error) {
	f.Calls = append(f.Calls, "Brightness")
	if f.BrightErr != nil {
		return ddc.Brightness{}, f.BrightErr
	}
	return f.Bright, nil
}
