//go:build !windows

// Package monitor enumerates logical display monitors and selects among them.
package monitor

import "fmt"

// ListMonitors returns an error on non-Windows platforms.
func ListMonitors() ([]Handle, error) {
	return nil, fmt.Errorf("ListMonitors is only supported on Windows")
}

// QueryInfo returns an error on non-Windows platforms.
func QueryInfo(h Handle) (Info, error) {
	return Info{}, fmt.Errorf("QueryInfo is only supported on Windows")
}
