package videomode

import (
	"errors"
	"fmt"
	"strings"

	"d2mapi/packages/Game/launcher"
	"d2mapi/packages/Memory/logging"
)

type Mode int

const (
	DirectDraw Mode = iota
	Direct3D
	Glide
	GDI
)

var modeNames = [...]string{"DirectDraw", "Direct3D", "Glide", "GDI"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

type Source string

const (
	SourceLauncher    Source = "d2se"
	SourceCommandLine Source = "command-line"
	SourceRegistry    Source = "registry"
	SourceDefault     Source = "default"
)

// VideoConfigKey is opened under HKCU first, then HKLM.
const VideoConfigKey = `SOFTWARE\Blizzard Entertainment\Diablo II\VideoConfig`

var (
	ErrInvalidRenderer = errors.New("invalid renderer setting")
	ErrNoVideoConfig   = errors.New("video config registry key not found")
)

// FromSetup maps the D2SE renderer setting. Renderer 0 is windowed GDI when
// WindowMode is 1.
func FromSetup(s *launcher.Setup) (Mode, error) {
	switch s.Renderer {
	case 0:
		if s.WindowMode == 1 {
			return GDI, nil
		}
		return DirectDraw, nil
	case 1:
		return Direct3D, nil
	case 3:
		return Glide, nil
	default:
		return 0, fmt.Errorf("%w: D2SE renderer %d", ErrInvalidRenderer, s.Renderer)
	}
}

var commandLineFlags = []struct {
	flag string
	mode Mode
}{
	{"-3dfx", Glide},
	{"-w", GDI},
	{"-d3d", Direct3D},
}

// FromCommandLine looks for the renderer flags the game accepts. Earlier flags
// in the list win: -3dfx over -w over -d3d.
func FromCommandLine(cmdline string) (Mode, bool) {
	for _, f := range commandLineFlags {
		if strings.Contains(cmdline, f.flag) {
			return f.mode, true
		}
	}
	return DirectDraw, false
}

// FromRender maps the registry Render value. Unknown values mean DirectDraw.
func FromRender(v uint32) Mode {
	switch v {
	case 1:
		return Direct3D
	case 3:
		return Glide
	case 4:
		return GDI
	default:
		return DirectDraw
	}
}

type RenderReader interface {
	Render() (uint32, error)
}

type Detector struct {
	// Setup is set when the game runs under D2SE; it is then the only source.
	Setup       *launcher.Setup
	CommandLine string
	Registry    RenderReader
	Log         *logging.Logger
}

func (d *Detector) Determine() (Mode, Source, error) {
	log := logging.Or(d.Log)
	if d.Setup != nil {
		m, err := FromSetup(d.Setup)
		if err != nil {
			return 0, SourceLauncher, err
		}
		return m, SourceLauncher, nil
	}
	if m, ok := FromCommandLine(d.CommandLine); ok && m != DirectDraw {
		return m, SourceCommandLine, nil
	}
	if d.Registry != nil {
		v, err := d.Registry.Render()
		if err == nil {
			return FromRender(v), SourceRegistry, nil
		}
		log.Debug("video config registry unavailable", "err", err)
	}
	return DirectDraw, SourceDefault, nil
}
