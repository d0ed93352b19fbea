package game

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d2mapi/packages/Game/launcher"
	"d2mapi/packages/Game/videomode"
	"d2mapi/packages/Memory/address"
	"d2mapi/packages/Memory/logging"
	"d2mapi/packages/Memory/memory"
	"d2mapi/packages/Memory/module"
	"d2mapi/packages/Memory/version"
)

const clientBase = memory.Address(0x6FAA0000)

// writeExecutable writes a file whose PE header signature is tag repeated.
func writeExecutable(t *testing.T, dir, name string, tag byte) (string, version.Signature) {
	t.Helper()
	data := make([]byte, 0x40+version.SignatureSize)
	data[0], data[1] = 'M', 'Z'
	data[0x3C] = 0x40
	var sig version.Signature
	for i := range sig {
		sig[i] = tag
	}
	copy(data[0x40:], sig[:])
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path, sig
}

type countingGuesser struct {
	calls atomic.Int32
	rev   version.Revision
	fail  atomic.Int32
}

func (g *countingGuesser) Guess(string) (version.Revision, error) {
	g.calls.Add(1)
	if g.fail.Load() > 0 {
		g.fail.Add(-1)
		return version.Unknown, errors.New("no version resource")
	}
	return g.rev, nil
}

type fakeRegistry struct{}

func (fakeRegistry) Render() (uint32, error) { return 1, nil }

func newSession(t *testing.T, cfg Config, opts Options) *Session {
	t.Helper()
	if opts.Loader == nil {
		opts.Loader = module.LoaderFunc(func(path string) (memory.Address, error) {
			if module.Normalize(filepath.Base(path)) == "d2client.dll" {
				return clientBase, nil
			}
			return 0, errors.New("not loaded")
		})
	}
	if opts.Memory == nil {
		opts.Memory = memory.NewBuffer(clientBase, 0x2000)
	}
	if opts.Launchers == nil {
		set, err := version.NewSet(nil)
		require.NoError(t, err)
		opts.Launchers = set
	}
	opts.Registry = fakeRegistry{}
	opts.Log = logging.Discard()
	s, err := New(cfg, opts)
	require.NoError(t, err)
	return s
}

func TestConfigRevisionSkipsDetection(t *testing.T) {
	g := &countingGuesser{rev: version.V1_10}
	s := newSession(t, Config{GameExecutable: "/nonexistent/Game.exe", Revision: "1.13C"}, Options{Guesser: g})

	res, err := s.Detection()
	require.NoError(t, err)
	assert.Equal(t, version.V1_13C, res.Revision)
	assert.Equal(t, SourceConfig, res.Source)
	assert.Equal(t, int32(0), g.calls.Load())
}

func TestDetectionRunsOnce(t *testing.T) {
	exe, _ := writeExecutable(t, t.TempDir(), "Game.exe", 0x11)
	g := &countingGuesser{rev: version.V1_10}
	s := newSession(t, Config{GameExecutable: exe}, Options{Guesser: g})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rev, err := s.Revision()
			assert.NoError(t, err)
			assert.Equal(t, version.V1_10, rev)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), g.calls.Load())
	assert.Equal(t, "D2Client.dll", s.Libraries().Path(address.D2Client))
}

func TestDetectionFailureIsRetried(t *testing.T) {
	exe, _ := writeExecutable(t, t.TempDir(), "Game.exe", 0x11)
	g := &countingGuesser{rev: version.V1_09D}
	g.fail.Store(1)
	s := newSession(t, Config{GameExecutable: exe}, Options{Guesser: g})

	_, err := s.Revision()
	require.Error(t, err)

	rev, err := s.Revision()
	require.NoError(t, err)
	assert.Equal(t, version.V1_09D, rev)
	assert.Equal(t, int32(2), g.calls.Load())
}

func TestMergedLibrariesFrom1_14(t *testing.T) {
	exe, sig := writeExecutable(t, t.TempDir(), "Game.exe", 0x22)
	table, err := version.NewTable([]version.Entry{{Signature: sig, Revision: version.LoD1_14D}})
	require.NoError(t, err)
	s := newSession(t, Config{GameExecutable: exe}, Options{
		Guesser: &countingGuesser{rev: version.LoD1_14A},
		Table:   table,
	})

	res, err := s.Detection()
	require.NoError(t, err)
	assert.Equal(t, version.LoD1_14D, res.Revision)
	assert.Equal(t, version.SourceSignature, res.Source)
	assert.Equal(t, exe, s.Libraries().Path(address.D2Client))
	assert.Equal(t, exe, s.Libraries().Path(address.Storm))
}

func TestD2SERedirectsLibraries(t *testing.T) {
	dir := t.TempDir()
	exe, sig := writeExecutable(t, dir, "D2SE.exe", 0x33)
	require.NoError(t, os.WriteFile(filepath.Join(dir, launcher.SetupFile),
		[]byte("[Protected]\nD2Core=1.13c\n[USERSETTINGS]\nRenderer=0\nWindowMode=1\n"), 0o644))
	set, err := version.NewSet([]version.Signature{sig})
	require.NoError(t, err)

	g := &countingGuesser{rev: version.V1_10}
	s := newSession(t, Config{
		GameExecutable:   exe,
		LibraryRedirects: map[string]string{"Storm": "/custom/Storm.dll"},
	}, Options{Guesser: g, Launchers: set})

	res, err := s.Detection()
	require.NoError(t, err)
	assert.Equal(t, version.V1_13C, res.Revision)
	assert.Equal(t, version.SourceLauncher, res.Source)
	assert.Equal(t, int32(0), g.calls.Load())

	core := filepath.Join(dir, "D2SE", "CORES", "1.13c")
	assert.Equal(t, filepath.Join(core, "D2Client.dll"), s.Libraries().Path(address.D2Client))
	assert.Equal(t, "/custom/Storm.dll", s.Libraries().Path(address.Storm))

	setup, err := s.Launcher()
	require.NoError(t, err)
	require.NotNil(t, setup)
	assert.Equal(t, "1.13c", setup.Core)

	mode, src, err := s.VideoMode()
	require.NoError(t, err)
	assert.Equal(t, videomode.GDI, mode)
	assert.Equal(t, videomode.SourceLauncher, src)
}

func TestLoadAddressAndPatch(t *testing.T) {
	table := filepath.Join(t.TempDir(), "addresses.json")
	require.NoError(t, os.WriteFile(table, []byte(`{
		"1.13C": {"D2Client.dll": {"ScreenSizeX": {"type": "offset", "value": "0x1000"}}}
	}`), 0o644))

	buf := memory.NewBuffer(clientBase, 0x2000)
	buf.Data[0x10], buf.Data[0x11] = 0xAA, 0xBB
	s := newSession(t, Config{GameExecutable: "Game.exe", Revision: "1.13c", AddressTable: table}, Options{Memory: buf})

	addr, err := s.LoadAddress(address.D2Client, "ScreenSizeX")
	require.NoError(t, err)
	assert.Equal(t, clientBase+0x1000, addr)

	_, err = s.LoadAddress(address.D2Client, "Missing")
	assert.Error(t, err)

	p, err := s.NewPatch(address.ByOffset(address.Lib(address.D2Client), 0x10), []byte{0x90, 0x90})
	require.NoError(t, err)
	require.NoError(t, s.Patches().Add("nop", p))
	require.NoError(t, s.Patches().Apply("nop"))
	assert.Equal(t, []byte{0x90, 0x90}, buf.Data[0x10:0x12])
	require.NoError(t, s.Patches().RemoveAll())
	assert.Equal(t, []byte{0xAA, 0xBB}, buf.Data[0x10:0x12])

	_, err = s.Resolve(address.ByOffset(address.Lib(address.D2Common), 0x10))
	assert.ErrorIs(t, err, address.ErrModuleNotFound)
}

func TestLoadAddressWithoutTable(t *testing.T) {
	s := newSession(t, Config{GameExecutable: "Game.exe", Revision: "1.10"}, Options{})
	_, err := s.LoadAddress(address.D2Client, "ScreenSizeX")
	assert.ErrorIs(t, err, ErrNoAddressTable)
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{GameExecutable: "Game.exe", Revision: "0.01"}, Options{Log: logging.Discard()})
	assert.ErrorIs(t, err, version.ErrUnknownRevision)

	_, err = New(Config{GameExecutable: "Game.exe", AddressTable: filepath.Join(t.TempDir(), "none.json")}, Options{Log: logging.Discard()})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.GameExecutable)

	path := filepath.Join(dir, "d2mapi.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"game_executable": "C:\\Diablo II\\Game.exe",
		"revision": "1.13C",
		"library_redirects": {"D2Client.dll": "C:\\mods\\D2Client.dll"},
		"log_level": "debug",
		"metrics": true
	}`), 0o644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, `C:\Diablo II\Game.exe`, cfg.GameExecutable)
	assert.Equal(t, "1.13C", cfg.Revision)
	assert.Equal(t, `C:\mods\D2Client.dll`, cfg.LibraryRedirects["D2Client.dll"])
	assert.True(t, cfg.Metrics)

	require.NoError(t, os.WriteFile(path, []byte(`{"game_executable": `), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"game_executable": "x", "library_redirects": {"D2Nope": "y"}}`), 0o644))
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, "unknown library")

	require.NoError(t, os.WriteFile(path, []byte(`{"game_executable": "x", "log_level": "loud"}`), 0o644))
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, "log_level")
}

func TestRegisterMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, RegisterMetrics(reg))
	assert.Error(t, RegisterMetrics(reg))
}
