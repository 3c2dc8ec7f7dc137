// Package inspect runs the display capability inspection pipeline.
package inspect

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/frudas24/ddcprobe/internal/ddc"
	"github.com/frudas24/ddcprobe/internal/monitor"
)

// Prober abstracts the platform display subsystem so the pipeline can be
// exercised without real hardware.
type Prober interface {
	Monitors() ([]monitor.Handle, error)
	MonitorInfo(h monitor.Handle) (monitor.Info, error)
	PhysicalMonitors(h monitor.Handle) ([]ddc.PhysicalMonitor, error)
	ReleasePhysicalMonitors() error
	Capabilities(p ddc.PhysicalMonitor) (ddc.CapabilityReport, error)
	Brightness(p ddc.PhysicalMonitor) (ddc.Brightness, error)
}

// Inspector walks the enumeration, selection, resolution, and query stages in
// order and writes a one-fact-per-line report.
type Inspector struct {
	probe Prober
	out   io.Writer
	// monitorIndex selects a 1-based monitor instead of the primary when > 0.
	monitorIndex int
}

// New returns an inspector writing its report to out.
func New(probe Prober, out io.Writer, monitorIndex int) (*Inspector, error) {
	if probe == nil {
		return nil, errors.New("probe is required")
	}
	if out == nil {
		return nil, errors.New("output writer is required")
	}
	if monitorIndex < 0 {
		return nil, errors.New("monitor index must be >= 0")
	}
	return &Inspector{probe: probe, out: out, monitorIndex: monitorIndex}, nil
}

// Run executes the full inspection once. Enumeration and physical resolution
// failures are fatal and returned; capability and brightness failures are
// expected hardware variation and only shape the report.
func (ins *Inspector) Run() error {
	handles, err := ins.probe.Monitors()
	if err != nil {
		return fmt.Errorf("monitor enumeration: %w", err)
	}
	ins.printf("monitors attached: %d\n", len(handles))

	target, ok := ins.selectTarget(handles)
	if !ok {
		return nil
	}

	phys, err := ins.probe.PhysicalMonitors(target)
	if err != nil {
		return fmt.Errorf("physical monitor resolution: %w", err)
	}
	ins.printf("physical monitors: %d\n", len(phys))
	if len(phys) == 0 {
		return nil
	}
	defer func() {
		if err := ins.probe.ReleasePhysicalMonitors(); err != nil {
			log.Printf("release: %v", err)
		}
	}()

	// Only the first record is queried; the full set stays resolved until
	// release because partial release is unsafe.
	first := phys[0]
	ins.printf("physical handle: %#x\n", first.Handle)
	ins.printf("description: %s\n", first.Description)

	ins.reportCapabilities(first)
	ins.reportBrightness(first)
	return nil
}

// selectTarget picks the monitor to inspect: the configured 1-based index when
// set, otherwise the primary. It reports the choice and returns false when no
// monitor qualifies.
func (ins *Inspector) selectTarget(handles []monitor.Handle) (monitor.Handle, bool) {
	if ins.monitorIndex > 0 {
		h, ok := monitor.HandleAt(handles, ins.monitorIndex)
		if !ok {
			ins.printf("selected monitor: index %d out of range\n", ins.monitorIndex)
			return 0, false
		}
		ins.printf("selected monitor: %#x (monitor %d)\n", uintptr(h), ins.monitorIndex)
		return h, true
	}

	h, ok := monitor.FindPrimary(handles, ins.probe.MonitorInfo)
	if !ok {
		ins.printf("primary monitor: none found\n")
		return 0, false
	}
	ins.printf("primary monitor: %#x (monitor %d)\n", uintptr(h), indexOf(handles, h))
	return h, true
}

// reportCapabilities prints the capability list, the no-capabilities state, or
// the DDC/CI-unsupported message.
func (ins *Inspector) reportCapabilities(p ddc.PhysicalMonitor) {
	report, err := ins.probe.Capabilities(p)
	if err != nil {
		ins.printf("monitor does not support DDC/CI capability queries\n")
		return
	}
	if report.Caps == ddc.CapsNone {
		ins.printf("capabilities: none reported\n")
		return
	}
	ins.printf("capabilities:\n")
	for _, name := range report.Caps.List() {
		ins.printf("  - %s\n", name)
	}
}

// reportBrightness prints the brightness triple, or nothing when the query
// fails.
func (ins *Inspector) reportBrightness(p ddc.PhysicalMonitor) {
	b, err := ins.probe.Brightness(p)
	if err != nil {
		return
	}
	ins.printf("brightness: min=%d current=%d max=%d\n", b.Min, b.Current, b.Max)
}

// printf writes one report line.
func (ins *Inspector) printf(format string, args ...any) {
	fmt.Fprintf(ins.out, format, args...)
}

// indexOf returns the 1-based position of h in handles, or 0 when absent.
func indexOf(handles []monitor.Handle, h monitor.Handle) int {
	for i, candidate := range handles {
		if candidate == h {
			return i + 1
		}
	}
	return 0
}
