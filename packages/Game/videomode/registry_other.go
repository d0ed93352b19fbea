//go:build !windows

package videomode

import (
	"os"
	"strings"
)

type SystemRegistry struct{}

func (SystemRegistry) Render() (uint32, error) {
	return 0, ErrNoVideoConfig
}

func CommandLine() string {
	return strings.Join(os.Args, " ")
}
