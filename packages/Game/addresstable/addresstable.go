package addresstable

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"d2mapi/packages/Memory/address"
	"d2mapi/packages/Memory/memory"
	"d2mapi/packages/Memory/version"
)

var (
	ErrAddressNotFound = errors.New("address not found")
	ErrInvalidEntry    = errors.New("invalid address table entry")
)

// Entry is one address as stored in the table file:
//
//	{"type": "offset", "value": "0x11C1D0"}
//	{"type": "ordinal", "value": 10014}
//	{"type": "export", "value": "SFileOpenArchive"}
//	{"type": "pattern", "value": "8B 0D ?? ?? ?? ?? 85 C9", "adjust": 2}
type Entry struct {
	Type   string          `json:"type"`
	Value  json.RawMessage `json:"value"`
	Adjust int64           `json:"adjust,omitempty"`
}

// Table maps revision -> library -> address name -> entry.
type Table struct {
	entries map[version.Revision]map[address.Library]map[string]Entry
}

type NotFoundError struct {
	Revision version.Revision
	Library  address.Library
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s in %s for %v", ErrAddressNotFound, e.Name, e.Library.FileName(), e.Revision)
}

func (e *NotFoundError) Unwrap() error {
	return ErrAddressNotFound
}

func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open address table: %w", err)
	}
	defer f.Close()
	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Decode reads a table and checks every key and entry up front.
func Decode(r io.Reader) (*Table, error) {
	var raw map[string]map[string]map[string]Entry
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode address table: %w", err)
	}
	t := &Table{entries: make(map[version.Revision]map[address.Library]map[string]Entry, len(raw))}
	for revName, libs := range raw {
		rev, err := version.ParseRevision(revName)
		if err != nil {
			return nil, err
		}
		byLib := make(map[address.Library]map[string]Entry, len(libs))
		for libName, names := range libs {
			lib, err := address.ParseLibrary(libName)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", rev, err)
			}
			for name, e := range names {
				if _, err := e.Locator(address.Lib(lib)); err != nil {
					return nil, fmt.Errorf("%v %s %s: %w", rev, lib, name, err)
				}
			}
			byLib[lib] = names
		}
		t.entries[rev] = byLib
	}
	return t, nil
}

func (t *Table) Entry(rev version.Revision, lib address.Library, name string) (Entry, error) {
	e, ok := t.entries[rev][lib][name]
	if !ok {
		return Entry{}, &NotFoundError{Revision: rev, Library: lib, Name: name}
	}
	return e, nil
}

func (t *Table) Locator(rev version.Revision, lib address.Library, name string) (address.Locator, error) {
	e, err := t.Entry(rev, lib, name)
	if err != nil {
		return address.Locator{}, err
	}
	return e.Locator(address.Lib(lib))
}

func (t *Table) Revisions() []version.Revision {
	out := make([]version.Revision, 0, len(t.entries))
	for rev := range t.entries {
		out = append(out, rev)
	}
	return out
}

func (e Entry) Locator(m address.Module) (address.Locator, error) {
	switch strings.ToLower(e.Type) {
	case "offset":
		off, err := e.integer(64)
		if err != nil {
			return address.Locator{}, err
		}
		return address.ByOffset(m, off), nil
	case "ordinal":
		ord, err := e.integer(32)
		if err != nil {
			return address.Locator{}, err
		}
		if ord < 0 || ord > math.MaxUint16 {
			return address.Locator{}, fmt.Errorf("%w: ordinal %d out of range", ErrInvalidEntry, ord)
		}
		return address.ByOrdinal(m, uint16(ord)), nil
	case "export":
		var name string
		if err := json.Unmarshal(e.Value, &name); err != nil || name == "" {
			return address.Locator{}, fmt.Errorf("%w: export name must be a non-empty string", ErrInvalidEntry)
		}
		return address.ByExportName(m, name), nil
	case "pattern":
		var s string
		if err := json.Unmarshal(e.Value, &s); err != nil {
			return address.Locator{}, fmt.Errorf("%w: pattern must be a string", ErrInvalidEntry)
		}
		p, err := memory.ParsePattern(s)
		if err != nil {
			return address.Locator{}, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
		}
		return address.ByPattern(m, p, e.Adjust), nil
	default:
		return address.Locator{}, fmt.Errorf("%w: unknown type %q", ErrInvalidEntry, e.Type)
	}
}

// integer accepts a JSON number or a decimal / 0x-prefixed string.
func (e Entry) integer(bits int) (int64, error) {
	var n json.Number
	if err := json.Unmarshal(e.Value, &n); err == nil {
		v, err := strconv.ParseInt(n.String(), 10, bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
		}
		return v, nil
	}
	var s string
	if err := json.Unmarshal(e.Value, &s); err != nil {
		return 0, fmt.Errorf("%w: value must be a number or a string", ErrInvalidEntry)
	}
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	v, err := strconv.ParseInt(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	if neg {
		v = -v
	}
	return v, nil
}
