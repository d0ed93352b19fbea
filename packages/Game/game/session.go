package game

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"d2mapi/packages/Game/addresstable"
	"d2mapi/packages/Game/launcher"
	"d2mapi/packages/Game/videomode"
	"d2mapi/packages/Memory/address"
	"d2mapi/packages/Memory/logging"
	"d2mapi/packages/Memory/memory"
	"d2mapi/packages/Memory/module"
	"d2mapi/packages/Memory/patch"
	"d2mapi/packages/Memory/version"
)

// SourceConfig marks a revision taken from the config file instead of detected.
const SourceConfig version.Source = "config"

var ErrNoAddressTable = errors.New("no address table loaded")

// Options replaces the OS-backed collaborators of a Session. Nil fields use
// the in-process implementations.
type Options struct {
	Loader    module.Loader
	Symbols   address.Symbols
	Memory    memory.Accessor
	Guesser   version.Guesser
	Launcher  version.LauncherSource
	Table     *version.Table
	Launchers *version.Set
	Registry  videomode.RenderReader
	Log       *logging.Logger
}

// Session owns the process-wide state of one game process: the module base
// cache and the detected revision. Both are filled lazily, at most once.
type Session struct {
	cfg       Config
	log       *logging.Logger
	mem       memory.Accessor
	modules   *module.Registry
	libraries *address.Libraries
	resolver  *address.Resolver
	detector  *version.Detector
	registry  videomode.RenderReader
	addresses *addresstable.Table
	patches   *patch.Manager

	mu        sync.Mutex
	detected  atomic.Bool
	detection version.Result
	setup     *launcher.Setup
}

func New(cfg Config, opts Options) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logging.Or(opts.Log).With("executable", filepath.Base(cfg.GameExecutable))

	s := &Session{
		cfg:       cfg,
		log:       log,
		mem:       opts.Memory,
		libraries: address.NewLibraries(cfg.GameExecutable),
		registry:  opts.Registry,
		patches:   patch.NewManager(log),
	}
	if s.mem == nil {
		s.mem = memory.Current()
	}
	if s.registry == nil {
		s.registry = videomode.SystemRegistry{}
	}
	loader := opts.Loader
	if loader == nil {
		loader = module.SystemLoader{Load: true}
	}
	symbols := opts.Symbols
	if symbols == nil {
		symbols = address.SystemSymbols{}
	}
	launcherSource := opts.Launcher
	if launcherSource == nil {
		launcherSource = launcher.Source{}
	}

	s.modules = module.NewRegistry(loader, log)
	s.resolver = address.NewResolver(s.modules, s.libraries, symbols, s.mem, log)
	s.detector = &version.Detector{
		Executable: cfg.GameExecutable,
		Table:      opts.Table,
		Launchers:  opts.Launchers,
		Guesser:    opts.Guesser,
		Launcher:   launcherSource,
		Log:        log,
	}

	if cfg.AddressTable != "" {
		t, err := addresstable.Load(cfg.AddressTable)
		if err != nil {
			return nil, err
		}
		s.addresses = t
	}
	return s, nil
}

func (s *Session) Config() Config { return s.cfg }
func (s *Session) Log() *logging.Logger { return s.log }
func (s *Session) Memory() memory.Accessor { return s.mem }
func (s *Session) Modules() *module.Registry { return s.modules }
func (s *Session) Libraries() *address.Libraries { return s.libraries }
func (s *Session) Patches() *patch.Manager { return s.patches }
func (s *Session) Addresses() *addresstable.Table { return s.addresses }

// Detection returns how the revision of the game was determined. The first
// successful call does the work; failures are retried on the next call.
func (s *Session) Detection() (version.Result, error) {
	if s.detected.Load() {
		return s.detection, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detected.Load() {
		return s.detection, nil
	}

	res, err := s.detect()
	if err != nil {
		return res, err
	}
	if err := s.configureLibraries(res); err != nil {
		return res, err
	}
	s.detection = res
	s.detected.Store(true)
	return res, nil
}

func (s *Session) detect() (version.Result, error) {
	if s.cfg.Revision != "" {
		rev, err := version.ParseRevision(s.cfg.Revision)
		if err != nil {
			return version.Result{Source: SourceConfig}, err
		}
		return version.Result{Revision: rev, Guess: rev, Source: SourceConfig}, nil
	}
	return s.detector.Detect()
}

// configureLibraries points library lookups at the files the detected
// revision actually loads. Config redirects are applied last so they win.
func (s *Session) configureLibraries(res version.Result) error {
	s.libraries.SetMerged(res.Revision.IsAtLeast1_14())
	if res.Source == version.SourceLauncher {
		setup, err := launcher.LoadSetup(filepath.Dir(s.cfg.GameExecutable))
		if err != nil {
			return err
		}
		s.setup = setup
		s.libraries.RedirectDir(setup.CoreDir())
		s.log.Info("D2SE core selected", "core", setup.Core, "dir", setup.CoreDir())
	}
	for name, path := range s.cfg.LibraryRedirects {
		lib, err := address.ParseLibrary(name)
		if err != nil {
			return err
		}
		s.libraries.Redirect(lib, path)
	}
	return nil
}

func (s *Session) Revision() (version.Revision, error) {
	res, err := s.Detection()
	if err != nil {
		return version.Unknown, err
	}
	return res.Revision, nil
}

// Launcher returns the D2SE setup when the game runs under D2SE, else nil.
func (s *Session) Launcher() (*launcher.Setup, error) {
	if _, err := s.Detection(); err != nil {
		return nil, err
	}
	return s.setup, nil
}

func (s *Session) Resolve(loc address.Locator) (memory.Address, error) {
	if loc.Module.Path == "" {
		if _, err := s.Detection(); err != nil {
			return 0, err
		}
	}
	return s.resolver.Resolve(loc)
}

func (s *Session) Locator(lib address.Library, name string) (address.Locator, error) {
	if s.addresses == nil {
		return address.Locator{}, ErrNoAddressTable
	}
	rev, err := s.Revision()
	if err != nil {
		return address.Locator{}, err
	}
	return s.addresses.Locator(rev, lib, name)
}

// LoadAddress resolves a named address of the running revision from the address table.
func (s *Session) LoadAddress(lib address.Library, name string) (memory.Address, error) {
	loc, err := s.Locator(lib, name)
	if err != nil {
		return 0, err
	}
	addr, err := s.Resolve(loc)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", lib, name, err)
	}
	return addr, nil
}

// NewPatch resolves loc and snapshots the bytes a patch of b would replace.
func (s *Session) NewPatch(loc address.Locator, b []byte) (*patch.Patch, error) {
	addr, err := s.Resolve(loc)
	if err != nil {
		return nil, err
	}
	return patch.New(s.mem, addr, b)
}

func (s *Session) VideoMode() (videomode.Mode, videomode.Source, error) {
	setup, err := s.Launcher()
	if err != nil {
		return 0, "", err
	}
	d := &videomode.Detector{
		Setup:       setup,
		CommandLine: videomode.CommandLine(),
		Registry:    s.registry,
		Log:         s.log,
	}
	return d.Determine()
}
