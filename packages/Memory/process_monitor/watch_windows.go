//go:build windows

package process_monitor

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// Watch subscribes to WMI process creation events for names and calls fn for
// each one until ctx is done or WMI fails. COM is initialized on a locked OS
// thread.
func Watch(ctx context.Context, names []string, poll time.Duration, fn func(Event)) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitialize(0); err != nil {
		return fmt.Errorf("CoInitialize failed: %w", err)
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WbemScripting.SWbemLocator")
	if err != nil {
		return fmt.Errorf("create WMI locator: %w", err)
	}
	defer unknown.Release()
	locator, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("query WMI locator: %w", err)
	}
	defer locator.Release()

	serviceRaw, err := oleutil.CallMethod(locator, "ConnectServer", nil, `root\cimv2`)
	if err != nil {
		return fmt.Errorf("connect WMI: %w", err)
	}
	service := serviceRaw.ToIDispatch()
	defer service.Release()

	sourceRaw, err := oleutil.CallMethod(service, "ExecNotificationQuery", creationQuery(names, poll))
	if err != nil {
		return fmt.Errorf("subscribe WMI: %w", err)
	}
	source := sourceRaw.ToIDispatch()
	defer source.Release()

	timeout := int(poll / time.Millisecond)
	for ctx.Err() == nil {
		eventRaw, err := oleutil.CallMethod(source, "NextEvent", timeout)
		if err != nil {
			if isTimeout(err) {
				continue
			}
			return fmt.Errorf("wait for WMI event: %w", err)
		}
		if ev, ok := readEvent(eventRaw.ToIDispatch()); ok {
			fn(ev)
		}
	}
	return nil
}

func readEvent(event *ole.IDispatch) (Event, bool) {
	defer event.Release()
	targetRaw, err := oleutil.GetProperty(event, "TargetInstance")
	if err != nil {
		return Event{}, false
	}
	target := targetRaw.ToIDispatch()
	defer target.Release()

	nameVar, err := oleutil.GetProperty(target, "Name")
	if err != nil {
		return Event{}, false
	}
	defer nameVar.Clear()
	pidVar, err := oleutil.GetProperty(target, "ProcessId")
	if err != nil {
		return Event{}, false
	}
	defer pidVar.Clear()
	return Event{Pid: uint32(pidVar.Val), Name: nameVar.ToString()}, true
}
