//go:build windows

package videomode

import (
	"fmt"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// SystemRegistry reads the Render value the game's video test writes.
type SystemRegistry struct{}

func (SystemRegistry) Render() (uint32, error) {
	for _, root := range []registry.Key{registry.CURRENT_USER, registry.LOCAL_MACHINE} {
		k, err := registry.OpenKey(root, VideoConfigKey, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		v, _, err := k.GetIntegerValue("Render")
		k.Close()
		if err != nil {
			return 0, fmt.Errorf("failed to read Render value: %w", err)
		}
		return uint32(v), nil
	}
	return 0, ErrNoVideoConfig
}

func CommandLine() string {
	return windows.UTF16PtrToString(windows.GetCommandLine())
}
