package address

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// Library identifies one of the game's own modules.
type Library int

const (
	Game Library = iota
	BNClient
	D2CMP
	D2Client
	D2Common
	D2DDraw
	D2Direct3D
	D2Game
	D2Gdi
	D2Gfx
	D2Glide
	D2Lang
	D2Launch
	D2MCPClient
	D2Multi
	D2Net
	D2Sound
	D2Win
	Fog
	Storm

	libraryCount
)

var libraryFiles = [libraryCount]string{
	Game:        "Game.exe",
	BNClient:    "BNClient.dll",
	D2CMP:       "D2CMP.dll",
	D2Client:    "D2Client.dll",
	D2Common:    "D2Common.dll",
	D2DDraw:     "D2DDraw.dll",
	D2Direct3D:  "D2Direct3D.dll",
	D2Game:      "D2Game.dll",
	D2Gdi:       "D2Gdi.dll",
	D2Gfx:       "D2Gfx.dll",
	D2Glide:     "D2Glide.dll",
	D2Lang:      "D2Lang.dll",
	D2Launch:    "D2Launch.dll",
	D2MCPClient: "D2MCPClient.dll",
	D2Multi:     "D2Multi.dll",
	D2Net:       "D2Net.dll",
	D2Sound:     "D2Sound.dll",
	D2Win:       "D2Win.dll",
	Fog:         "Fog.dll",
	Storm:       "Storm.dll",
}

func (l Library) Valid() bool {
	return l >= 0 && l < libraryCount
}

// FileName is the canonical file name of the library.
func (l Library) FileName() string {
	if !l.Valid() {
		return fmt.Sprintf("Library(%d)", int(l))
	}
	return libraryFiles[l]
}

func (l Library) String() string {
	return strings.TrimSuffix(strings.TrimSuffix(l.FileName(), ".dll"), ".exe")
}

func AllLibraries() []Library {
	out := make([]Library, 0, libraryCount)
	for l := Game; l < libraryCount; l++ {
		out = append(out, l)
	}
	return out
}

// ParseLibrary accepts "D2Client" or "d2client.dll".
func ParseLibrary(s string) (Library, error) {
	for _, l := range AllLibraries() {
		if strings.EqualFold(s, l.String()) || strings.EqualFold(s, l.FileName()) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown library %q", s)
}

// Libraries turns library identifiers into paths. A redirect wins over
// everything else; with Merged set, every library is the game executable.
type Libraries struct {
	mu         sync.RWMutex
	executable string
	merged     bool
	redirects  map[Library]string
}

func NewLibraries(executable string) *Libraries {
	if executable == "" {
		executable = libraryFiles[Game]
	}
	return &Libraries{
		executable: executable,
		redirects:  make(map[Library]string),
	}
}

func (l *Libraries) Redirect(lib Library, path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.redirects[lib] = path
}

// RedirectDir points every library except the executable at dir.
func (l *Libraries) RedirectDir(dir string) {
	for _, lib := range AllLibraries() {
		if lib != Game {
			l.Redirect(lib, filepath.Join(dir, lib.FileName()))
		}
	}
}

func (l *Libraries) SetMerged(merged bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.merged = merged
}

func (l *Libraries) Path(lib Library) string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if p, ok := l.redirects[lib]; ok {
		return p
	}
	if lib == Game || l.merged {
		return l.executable
	}
	return lib.FileName()
}
