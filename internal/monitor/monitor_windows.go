//go:build windows

// Package monitor enumerates logical display monitors and selects among them.
package monitor

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// ListMonitors returns every attached logical monitor handle using WinAPI.
// Order is whatever EnumDisplayMonitors yields; no sort is imposed.
func ListMonitors() ([]Handle, error) {
	state := &enumState{}
	callback := syscall.NewCallback(state.enumProc)

	if ok := win.EnumDisplayMonitors(0, nil, callback, 0); !ok {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", syscall.GetLastError())
	}
	return state.list, nil
}

// QueryInfo fills MONITORINFO for one handle and reports its bounds and
// primary flag.
func QueryInfo(h Handle) (Info, error) {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(win.HMONITOR(h), &info) {
		return Info{}, fmt.Errorf("GetMonitorInfo failed: %w", syscall.GetLastError())
	}

	r := info.RcMonitor
	return Info{
		X:       int(r.Left),
		Y:       int(r.Top),
		W:       int(r.Right - r.Left),
		H:       int(r.Bottom - r.Top),
		Primary: info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	}, nil
}

type enumState struct {
	list []Handle
}

// enumProc accepts every monitor and continues enumeration. It runs
// synchronously inside the EnumDisplayMonitors call and must not block.
func (s *enumState) enumProc(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
	s.list = append(s.list, Handle(hMonitor))
	return 1
}
