//go:build windows

package process_monitor

import (
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// GameWindowClass is the class name of the game's main window.
const GameWindowClass = "Diablo II"

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
)

func windowText(hwnd win.HWND) string {
	length, _, _ := procGetWindowTextLengthW.Call(uintptr(hwnd))
	if length == 0 {
		return ""
	}
	buf := make([]uint16, length+1)
	procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), length+1)
	return windows.UTF16ToString(buf)
}

func className(hwnd win.HWND) string {
	buf := make([]uint16, 256)
	n, err := win.GetClassName(hwnd, &buf[0], len(buf))
	if err != nil {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

// Window is a visible top-level window.
type Window struct {
	Handle uintptr
	Title  string
	Class  string
}

type enumData struct {
	pid    uint32
	class  string
	window Window
	found  bool
}

var enumProcCallback = syscall.NewCallback(enumProc)

func enumProc(hwnd uintptr, lParam uintptr) uintptr {
	data := (*enumData)(unsafe.Pointer(lParam))
	h := win.HWND(hwnd)
	if !win.IsWindowVisible(h) {
		return 1
	}
	var pid uint32
	win.GetWindowThreadProcessId(h, &pid)
	if pid != data.pid {
		return 1
	}
	class := className(h)
	if data.class != "" && class != data.class {
		return 1
	}
	data.window = Window{Handle: hwnd, Title: windowText(h), Class: class}
	data.found = true
	return 0
}

// FindWindow returns the first visible window of pid, optionally restricted to a class.
func FindWindow(pid uint32, class string) (Window, bool, error) {
	data := enumData{pid: pid, class: class}
	// EnumWindows reports an error when the callback stops early.
	err := windows.EnumWindows(enumProcCallback, unsafe.Pointer(&data))
	if data.found {
		return data.window, true, nil
	}
	if err != nil {
		return Window{}, false, err
	}
	return Window{}, false, nil
}
