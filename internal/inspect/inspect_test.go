package inspect_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/frudas24/ddcprobe/internal/ddc"
	"github.com/frudas24/ddcprobe/internal/inspect"
	"github.com/frudas24/ddcprobe/internal/monitor"
	"github.com/frudas24/ddcprobe/internal/testutil"
)

// runInspector runs a full inspection against a fake probe and returns the
// report text.
func runInspector(t *testing.T, probe *testutil.FakeProbe, monitorIndex int) string {
	t.Helper()
	var out bytes.Buffer
	ins, err := inspect.New(probe, &out, monitorIndex)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := ins.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String()
}

// TestRun_TwoMonitorsExtended verifies the full report for a DDC-capable
// primary monitor in a two-monitor layout.
func TestRun_TwoMonitorsExtended(t *testing.T) {
	probe := &testutil.FakeProbe{
		Handles: []monitor.Handle{0x1a1, 0x1a2},
		Infos: map[monitor.Handle]monitor.Info{
			0x1a1: {W: 1920, H: 1080, Primary: true},
			0x1a2: {X: 1920, W: 1920, H: 1080},
		},
		Phys: []ddc.PhysicalMonitor{
			{Handle: 0x204, Description: "Generic PnP Monitor"},
		},
		Caps: ddc.CapabilityReport{
			Caps: ddc.CapsMonitorTechnologyType | ddc.CapsBrightness | ddc.CapsContrast,
		},
		Bright: ddc.Brightness{Min: 0, Current: 75, Max: 100},
	}

	got := runInspector(t, probe, 0)
	want := strings.Join([]string{
		"monitors attached: 2",
		"primary monitor: 0x1a1 (monitor 1)",
		"physical monitors: 1",
		"physical handle: 0x204",
		"description: Generic PnP Monitor",
		"capabilities:",
		"  - monitor technology type",
		"  - brightness",
		"  - contrast",
		"brightness: min=0 current=75 max=100",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", got, want)
	}
}

// TestRun_NonDDCMonitor verifies the report for a single monitor that answers
// neither capability nor brightness queries.
func TestRun_NonDDCMonitor(t *testing.T) {
	probe := &testutil.FakeProbe{
		Handles: []monitor.Handle{0x1a1},
		Infos: map[monitor.Handle]monitor.Info{
			0x1a1: {W: 1920, H: 1080, Primary: true},
		},
		Phys: []ddc.PhysicalMonitor{
			{Handle: 0x204, Description: "Legacy VGA Display"},
		},
		CapsErr:   errors.New("ERROR_GRAPHICS_DDCCI_VCP_NOT_SUPPORTED"),
		BrightErr: errors.New("ERROR_GRAPHICS_DDCCI_VCP_NOT_SUPPORTED"),
	}

	got := runInspector(t, probe, 0)
	want := strings.Join([]string{
		"monitors attached: 1",
		"primary monitor: 0x1a1 (monitor 1)",
		"physical monitors: 1",
		"physical handle: 0x204",
		"description: Legacy VGA Display",
		"monitor does not support DDC/CI capability queries",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", got, want)
	}
	if strings.Contains(got, "brightness") {
		t.Fatalf("brightness line should be omitted:\n%s", got)
	}
}

// TestRun_ReleasedAfterQueries verifies the physical set is released exactly
// once, after the capability and brightness queries.
func TestRun_ReleasedAfterQueries(t *testing.T) {
	probe := &testutil.FakeProbe{
		Handles: []monitor.Handle{0x1a1},
		Infos: map[monitor.Handle]monitor.Info{
			0x1a1: {Primary: true},
		},
		Phys:    []ddc.PhysicalMonitor{{Handle: 0x204}},
		CapsErr: errors.New("no DDC/CI"),
	}

	runInspector(t, probe, 0)
	if probe.Calls[len(probe.Calls)-1] != "ReleasePhysicalMonitors" {
		t.Fatalf("expected release last, got calls %v", probe.Calls)
	}
	released := 0
	for _, call := range probe.Calls {
		if call == "ReleasePhysicalMonitors" {
			released++
		}
	}
	if released != 1 {
		t.Fatalf("expected exactly one release, got calls %v", probe.Calls)
	}
}

// TestRun_NoPrimary verifies the none-found sentinel ends the run cleanly
// before physical resolution.
func TestRun_NoPrimary(t *testing.T) {
	probe := &testutil.FakeProbe{
		Handles: []monitor.Handle{0x1a1, 0x1a2},
		Infos: map[monitor.Handle]monitor.Info{
			0x1a1: {},
			0x1a2: {},
		},
	}

	got := runInspector(t, probe, 0)
	if !strings.Contains(got, "primary monitor: none found") {
		t.Fatalf("expected none-found line:\n%s", got)
	}
	for _, call := range probe.Calls {
		if call == "PhysicalMonitors" {
			t.Fatalf("physical resolution should not run without a primary: %v", probe.Calls)
		}
	}
}

// TestRun_ZeroPhysicalMonitors verifies a zero count is a recoverable empty
// result, not a failure.
func TestRun_ZeroPhysicalMonitors(t *testing.T) {
	probe := &testutil.FakeProbe{
		Handles: []monitor.Handle{0x1a1},
		Infos: map[monitor.Handle]monitor.Info{
			0x1a1: {Primary: true},
		},
	}

	got := runInspector(t, probe, 0)
	if !strings.Contains(got, "physical monitors: 0") {
		t.Fatalf("expected zero physical count:\n%s", got)
	}
	for _, call := range probe.Calls {
		if call == "ReleasePhysicalMonitors" {
			t.Fatalf("nothing to release for an empty result: %v", probe.Calls)
		}
	}
}

// TestRun_EnumerationFailureIsFatal verifies an enumeration error propagates.
func TestRun_EnumerationFailureIsFatal(t *testing.T) {
	probe := &testutil.FakeProbe{HandlesErr: errors.New("EnumDisplayMonitors failed")}
	ins, err := inspect.New(probe, &bytes.Buffer{}, 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := ins.Run(); err == nil || !strings.Contains(err.Error(), "monitor enumeration") {
		t.Fatalf("expected enumeration error, got %v", err)
	}
}

// TestRun_ResolutionFailureIsFatal verifies a physical resolution error
// propagates and nothing is released.
func TestRun_ResolutionFailureIsFatal(t *testing.T) {
	probe := &testutil.FakeProbe{
		Handles: []monitor.Handle{0x1a1},
		Infos: map[monitor.Handle]monitor.Info{
			0x1a1: {Primary: true},
		},
		PhysErr: errors.New("GetPhysicalMonitorsFromHMONITOR failed"),
	}
	ins, err := inspect.New(probe, &bytes.Buffer{}, 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := ins.Run(); err == nil || !strings.Contains(err.Error(), "physical monitor resolution") {
		t.Fatalf("expected resolution error, got %v", err)
	}
	for _, call := range probe.Calls {
		if call == "ReleasePhysicalMonitors" {
			t.Fatalf("release should not run after a failed resolution: %v", probe.Calls)
		}
	}
}

// TestRun_NoneReportedCapabilities verifies the no-capabilities state is
// reported distinctly from an unsupported monitor.
func TestRun_NoneReportedCapabilities(t *testing.T) {
	probe := &testutil.FakeProbe{
		Handles: []monitor.Handle{0x1a1},
		Infos: map[monitor.Handle]monitor.Info{
			0x1a1: {Primary: true},
		},
		Phys: []ddc.PhysicalMonitor{{Handle: 0x204, Description: "Bare Panel"}},
		Caps: ddc.CapabilityReport{Caps: ddc.CapsNone},
	}

	got := runInspector(t, probe, 0)
	if !strings.Contains(got, "capabilities: none reported") {
		t.Fatalf("expected none-reported line:\n%s", got)
	}
	if strings.Contains(got, "does not support DDC/CI") {
		t.Fatalf("no-capabilities state must not read as unsupported:\n%s", got)
	}
}

// TestRun_MonitorIndexOverride verifies a configured index replaces primary
// selection.
func TestRun_MonitorIndexOverride(t *testing.T) {
	probe := &testutil.FakeProbe{
		Handles: []monitor.Handle{0x1a1, 0x1a2},
		Infos: map[monitor.Handle]monitor.Info{
			0x1a1: {Primary: true},
		},
		Phys: []ddc.PhysicalMonitor{{Handle: 0x205, Description: "Side Panel"}},
		Caps: ddc.CapabilityReport{Caps: ddc.CapsBrightness},
	}

	got := runInspector(t, probe, 2)
	if !strings.Contains(got, "selected monitor: 0x1a2 (monitor 2)") {
		t.Fatalf("expected selected monitor line:\n%s", got)
	}
	for _, call := range probe.Calls {
		if call == "MonitorInfo" {
			t.Fatalf("primary scan should be skipped with an index override: %v", probe.Calls)
		}
	}
}

// TestRun_MonitorIndexOutOfRange verifies an out-of-range index ends the run
// cleanly.
func TestRun_MonitorIndexOutOfRange(t *testing.T) {
	probe := &testutil.FakeProbe{
		Handles: []monitor.Handle{0x1a1},
	}
	got := runInspector(t, probe, 3)
	if !strings.Contains(got, "selected monitor: index 3 out of range") {
		t.Fatalf("expected out-of-range line:\n%s", got)
	}
}

// TestNew_Validation verifies constructor argument checks.
func TestNew_Validation(t *testing.T) {
	if _, err := inspect.New(nil, &bytes.Buffer{}, 0); err == nil {
		t.Fatalf("expected error for nil probe")
	}
	if _, err := inspect.New(&testutil.FakeProbe{}, nil, 0); err == nil {
		t.Fatalf("expected error for nil writer")
	}
	if _, err := inspect.New(&testutil.FakeProbe{}, &bytes.Buffer{}, -1); err == nil {
		t.Fatalf("expected error for negative monitor index")
	}
}
