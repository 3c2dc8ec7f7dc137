// Package monitor enumerates logical display monitors and selects among them.
package monitor

// Handle identifies one logical display monitor. It stays valid until the next
// display configuration change and is never explicitly released.
type Handle uintptr

// Info holds the metadata queried for one logical monitor.
type Info struct {
	X       int
	Y       int
	W       int
	H       int
	Primary bool
}

// QueryFunc fetches metadata for one logical monitor handle.
type QueryFunc func(Handle) (Info, error)

// FindPrimary scans handles in enumeration order and returns the first one whose
// metadata marks it as the primary display. A failed metadata query disqualifies
// that handle only; the scan continues. The second result is false when no handle
// qualifies or handles is empty.
func FindPrimary(handles []Handle, query QueryFunc) (Handle, bool) {
	for _, h := range handles {
		info, err := query(h)
		if err != nil {
			continue
		}
		if info.Primary {
			return h, true
		}
	}
	return Handle(0), false
}

// HandleAt returns the handle matching the 1-based enumeration index.
func HandleAt(handles []Handle, idx int) (Handle, bool) {
	if idx < 1 || idx > len(handles) {
		return Handle(0), false
	}
	return handles[idx-1], true
}
