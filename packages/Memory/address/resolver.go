package address

import (
	"errors"
	"fmt"

	"d2mapi/packages/Memory/logging"
	"d2mapi/packages/Memory/memory"
	"d2mapi/packages/Memory/module"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ErrModuleNotFound  = module.ErrModuleNotFound
	ErrExportNotFound  = errors.New("export not found")
	ErrOrdinalNotFound = errors.New("ordinal not found")
	ErrPatternNotFound = memory.ErrPatternNotFound
	ErrInvalidModule   = errors.New("locator names neither a library nor a path")
)

var Resolutions = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "d2mapi",
	Subsystem: "resolver",
	Name:      "resolutions",
}, []string{"kind", "result"})

const symbolCacheSize = 512

// ResolveError reports the Locator that could not be resolved.
type ResolveError struct {
	Locator Locator
	Path    string
	Err     error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve %s (%s): %v", e.Locator, e.Path, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Symbols looks up exports of a module mapped at base.
type Symbols interface {
	Export(base memory.Address, name string) (memory.Address, error)
	Ordinal(base memory.Address, ordinal uint16) (memory.Address, error)
}

type Resolver struct {
	modules   *module.Registry
	libraries *Libraries
	symbols   Symbols
	mem       memory.Accessor
	cache     *lru.Cache[string, memory.Address]
	log       *logging.Logger
}

// NewResolver wires a resolver. mem is only needed for pattern locators.
func NewResolver(modules *module.Registry, libraries *Libraries, symbols Symbols, mem memory.Accessor, log *logging.Logger) *Resolver {
	cache, err := lru.New[string, memory.Address](symbolCacheSize)
	if err != nil {
		panic(err)
	}
	return &Resolver{
		modules:   modules,
		libraries: libraries,
		symbols:   symbols,
		mem:       mem,
		cache:     cache,
		log:       logging.Or(log),
	}
}

func (r *Resolver) Libraries() *Libraries {
	return r.libraries
}

// Path returns the file the module of m currently maps to.
func (r *Resolver) Path(m Module) string {
	if m.Path != "" {
		return m.Path
	}
	return r.libraries.Path(m.Library)
}

func (r *Resolver) Base(m Module) (memory.Address, error) {
	if !m.Valid() {
		return 0, ErrInvalidModule
	}
	return r.modules.Base(r.Path(m))
}

func (r *Resolver) Resolve(loc Locator) (memory.Address, error) {
	if !loc.Module.Valid() {
		Resolutions.WithLabelValues(loc.Kind.String(), "error").Inc()
		return 0, &ResolveError{Locator: loc, Err: ErrInvalidModule}
	}
	path := r.Path(loc.Module)
	addr, err := r.resolve(loc, path)
	if err != nil {
		Resolutions.WithLabelValues(loc.Kind.String(), "error").Inc()
		r.log.Error("address resolution failed", "locator", loc.String(), "path", path, "err", err)
		return 0, &ResolveError{Locator: loc, Path: path, Err: err}
	}
	Resolutions.WithLabelValues(loc.Kind.String(), "ok").Inc()
	return addr, nil
}

func (r *Resolver) resolve(loc Locator, path string) (memory.Address, error) {
	base, err := r.modules.Base(path)
	if err != nil {
		return 0, err
	}

	if loc.Kind == KindOffset {
		return base.Add(loc.Offset), nil
	}

	key := fmt.Sprintf("%s|%#x|%s", module.Normalize(path), uintptr(base), loc)
	if addr, ok := r.cache.Get(key); ok {
		return addr, nil
	}

	var addr memory.Address
	switch loc.Kind {
	case KindExport:
		addr, err = r.symbols.Export(base, loc.Name)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrExportNotFound, loc.Name, err)
		}
	case KindOrdinal:
		addr, err = r.symbols.Ordinal(base, loc.Ordinal)
		if err != nil {
			return 0, fmt.Errorf("%w: %d: %w", ErrOrdinalNotFound, loc.Ordinal, err)
		}
	case KindPattern:
		addr, err = r.scan(base, loc)
		if err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("unsupported locator kind %v", loc.Kind)
	}

	r.cache.Add(key, addr)
	return addr, nil
}

func (r *Resolver) scan(base memory.Address, loc Locator) (memory.Address, error) {
	if r.mem == nil {
		return 0, errors.New("pattern locators need a memory accessor")
	}
	size, err := memory.ImageSize(r.mem, base)
	if err != nil {
		return 0, err
	}
	found, err := memory.Scan(r.mem, base, uintptr(size), loc.Pattern, 1)
	if err != nil {
		return 0, err
	}
	if len(found) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrPatternNotFound, loc.Pattern)
	}
	return found[0].Add(loc.Offset), nil
}
