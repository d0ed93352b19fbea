package process_monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Info describes a running process by what the detector needs to find its files.
type Info struct {
	Pid        int32
	Name       string
	Executable string
	Parent     int32
	Started    time.Time
}

func Inspect(pid int32) (Info, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return Info{}, fmt.Errorf("open process %d: %w", pid, err)
	}
	info := Info{Pid: pid}
	if info.Name, err = p.Name(); err != nil {
		return info, fmt.Errorf("process %d name: %w", pid, err)
	}
	if info.Executable, err = p.Exe(); err != nil {
		return info, fmt.Errorf("process %d executable: %w", pid, err)
	}
	if ppid, err := p.Ppid(); err == nil {
		info.Parent = ppid
	}
	if created, err := p.CreateTime(); err == nil {
		info.Started = time.UnixMilli(created)
	}
	return info, nil
}

// Uptime is how long the process has been running, or zero when unknown.
func (i Info) Uptime() time.Duration {
	if i.Started.IsZero() {
		return 0
	}
	return time.Since(i.Started)
}

// creationQuery selects process creation events for the given executable names.
func creationQuery(names []string, poll time.Duration) string {
	conds := make([]string, 0, len(names))
	for _, n := range names {
		conds = append(conds, fmt.Sprintf("TargetInstance.Name = '%s'", strings.ReplaceAll(n, "'", "''")))
	}
	secs := int(poll / time.Second)
	if secs < 1 {
		secs = 1
	}
	return fmt.Sprintf("SELECT * FROM __InstanceCreationEvent WITHIN %d WHERE TargetInstance ISA 'Win32_Process' AND (%s)",
		secs, strings.Join(conds, " OR "))
}

// Event is a process that was just created.
type Event struct {
	Pid  uint32
	Name string
}
