// Package ddc resolves physical monitors and queries DDC/CI capabilities.
package ddc

import (
	"log"
	"unicode/utf16"
)

// DescriptionLen is the fixed width of the physical monitor description field,
// in UTF-16 units.
const DescriptionLen = 128

// Capabilities is the supported-feature bitmask reported by a physical monitor.
type Capabilities uint32

// Capability flags from the Monitor Configuration API. CapsNone is a reportable
// state of its own, not just the absence of the other flags.
const (
	CapsNone                  Capabilities = 0x0000
	CapsMonitorTechnologyType Capabilities = 0x0001
	CapsBrightness            Capabilities = 0x0002
	CapsContrast              Capabilities = 0x0004
	CapsColorTemperature      Capabilities = 0x0008
)

// capabilityNames maps each tested flag to its report label, in report order.
var capabilityNames = []struct {
	flag Capabilities
	name string
}{
	{CapsMonitorTechnologyType, "monitor technology type"},
	{CapsBrightness, "brightness"},
	{CapsContrast, "contrast"},
	{CapsColorTemperature, "color temperature"},
}

// Has reports whether every bit of flag is set in the mask.
func (c Capabilities) Has(flag Capabilities) bool {
	return c&flag == flag
}

// List returns the report labels of the supported capabilities in fixed order.
// A CapsNone mask yields an empty list.
func (c Capabilities) List() []string {
	if c == CapsNone {
		return nil
	}
	var names []string
	for _, entry := range capabilityNames {
		if c.Has(entry.flag) {
			names = append(names, entry.name)
		}
	}
	return names
}

// CapabilityReport is the result of one capability query.
type CapabilityReport struct {
	Caps Capabilities
	// ColorTemperatures is the auxiliary supported-color-temperature mask
	// returned alongside the capability flags.
	ColorTemperatures uint32
}

// Brightness is one brightness snapshot: current value and its bounds.
type Brightness struct {
	Min     uint32
	Current uint32
	Max     uint32
}

// PhysicalMonitor is the decoded view of one physical display device backing a
// logical monitor. The native handle stays owned by the Client that resolved it.
type PhysicalMonitor struct {
	Handle      uintptr
	Description string
}

// DecodeDescription converts a fixed-width UTF-16 description field to a
// string. Decoding stops at the first NUL or at the end of the field; the
// field is not guaranteed to be NUL-terminated.
func DecodeDescription(field []uint16) string {
	end := len(field)
	for i, c := range field {
		if c == 0 {
			end = i
			break
		}
	}
	return string(utf16.Decode(field[:end]))
}

var debugLogging bool

// SetDebugLogging toggles verbose logging of raw DDC query results.
func SetDebugLogging(enabled bool) {
	debugLogging = enabled
}

// debugf logs when debug logging is enabled.
func debugf(format string, args ...any) {
	if debugLogging {
		log.Printf("ddc: "+format, args...)
	}
}
