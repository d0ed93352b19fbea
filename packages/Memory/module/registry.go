package module

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"d2mapi/packages/Memory/logging"
	"d2mapi/packages/Memory/memory"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/puzpuzpuz/xsync/v3"
)

var ErrModuleNotFound = errors.New("module not found")

var ModuleLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "d2mapi",
	Subsystem: "module_registry",
	Name:      "lookups",
}, []string{"result"})

type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("module %q not found: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() []error {
	return []error{ErrModuleNotFound, e.Err}
}

// Loader asks the OS for the base address of a module in the current process.
type Loader interface {
	Base(path string) (memory.Address, error)
}

type LoaderFunc func(path string) (memory.Address, error)

func (f LoaderFunc) Base(path string) (memory.Address, error) {
	return f(path)
}

type entry struct {
	mu   sync.Mutex
	done atomic.Bool
	base memory.Address
}

// Registry caches module base addresses by normalized path. The loader runs at
// most once per path that resolves successfully; failures are not cached.
type Registry struct {
	loader  Loader
	entries *xsync.MapOf[string, *entry]
	log     *logging.Logger
}

func NewRegistry(loader Loader, log *logging.Logger) *Registry {
	return &Registry{
		loader:  loader,
		entries: xsync.NewMapOf[string, *entry](),
		log:     logging.Or(log),
	}
}

func Normalize(path string) string {
	return strings.ToLower(filepath.Clean(filepath.FromSlash(path)))
}

func (r *Registry) Base(path string) (memory.Address, error) {
	key := Normalize(path)
	e, _ := r.entries.LoadOrCompute(key, func() *entry { return &entry{} })

	if e.done.Load() {
		ModuleLookups.WithLabelValues("cached").Inc()
		return e.base, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done.Load() {
		ModuleLookups.WithLabelValues("cached").Inc()
		return e.base, nil
	}

	base, err := r.loader.Base(path)
	if err != nil {
		ModuleLookups.WithLabelValues("error").Inc()
		r.log.Warn("module lookup failed", "path", path, "err", err)
		return 0, &NotFoundError{Path: path, Err: err}
	}

	e.base = base
	e.done.Store(true)
	ModuleLookups.WithLabelValues("loaded").Inc()
	r.log.Debug("module loaded", "path", path, "base", base)
	return base, nil
}

// Cached reports the base for path without consulting the loader.
func (r *Registry) Cached(path string) (memory.Address, bool) {
	e, ok := r.entries.Load(Normalize(path))
	if !ok || !e.done.Load() {
		return 0, false
	}
	return e.base, true
}

// Loaded returns every resolved module keyed by normalized path.
func (r *Registry) Loaded() map[string]memory.Address {
	out := make(map[string]memory.Address)
	r.entries.Range(func(key string, e *entry) bool {
		if e.done.Load() {
			out[key] = e.base
		}
		return true
	})
	return out
}
