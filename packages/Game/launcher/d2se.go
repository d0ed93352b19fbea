package launcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"d2mapi/packages/Memory/version"
)

// SetupFile sits next to D2SE.exe and holds both the selected core and the
// renderer settings.
const SetupFile = "D2SE_SETUP.ini"

var ErrInvalidCore = errors.New("D2SE_SETUP.ini core version is invalid")

// Setup is the part of D2SE_SETUP.ini that affects how the game is loaded.
type Setup struct {
	Dir        string
	Core       string
	Renderer   int
	WindowMode int
}

// LoadSetup reads dir/D2SE_SETUP.ini. Keys match case-insensitively, like the
// Windows profile API D2SE itself uses. Missing numeric keys read as -1.
func LoadSetup(dir string) (*Setup, error) {
	f, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, filepath.Join(dir, SetupFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", SetupFile, err)
	}
	user := f.Section("USERSETTINGS")
	return &Setup{
		Dir:        dir,
		Core:       strings.TrimSpace(f.Section("Protected").Key("D2Core").String()),
		Renderer:   user.Key("Renderer").MustInt(-1),
		WindowMode: user.Key("WindowMode").MustInt(-1),
	}, nil
}

func (s *Setup) Revision() (version.Revision, error) {
	if s.Core == "" {
		return version.Unknown, fmt.Errorf("%w: empty", ErrInvalidCore)
	}
	rev, err := version.ParseRevision(s.Core)
	if err != nil {
		return version.Unknown, fmt.Errorf("%w: %w", ErrInvalidCore, err)
	}
	return rev, nil
}

// CoreDir is where D2SE keeps the libraries of the selected core.
func (s *Setup) CoreDir() string {
	return filepath.Join(s.Dir, "D2SE", "CORES", s.Core)
}

// Source reads the launcher revision from the setup file next to the executable.
type Source struct{}

func (Source) Revision(executable string) (version.Revision, error) {
	s, err := LoadSetup(filepath.Dir(executable))
	if err != nil {
		return version.Unknown, err
	}
	return s.Revision()
}
