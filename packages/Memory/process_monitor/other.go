//go:build !windows

package process_monitor

import (
	"context"
	"errors"
	"time"
)

var ErrUnsupported = errors.New("process watching is only supported on windows")

const GameWindowClass = "Diablo II"

type Window struct {
	Handle uintptr
	Title  string
	Class  string
}

func FindWindow(uint32, string) (Window, bool, error) {
	return Window{}, false, ErrUnsupported
}

func Watch(context.Context, []string, time.Duration, func(Event)) error {
	return ErrUnsupported
}
