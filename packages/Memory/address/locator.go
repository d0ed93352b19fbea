package address

import (
	"fmt"

	"d2mapi/packages/Memory/memory"
)

// Module names the module a Locator is relative to: either a game library,
// resolved through Libraries, or an explicit path.
type Module struct {
	Library Library
	Path    string
}

func Lib(l Library) Module {
	return Module{Library: l}
}

func File(path string) Module {
	return Module{Library: -1, Path: path}
}

// Valid reports whether m names a known library or a non-empty path.
func (m Module) Valid() bool {
	return m.Path != "" || m.Library.Valid()
}

func (m Module) String() string {
	if m.Path != "" {
		return m.Path
	}
	return m.Library.FileName()
}

type Kind int

const (
	KindOffset Kind = iota
	KindExport
	KindOrdinal
	KindPattern
)

var kindNames = [...]string{"offset", "export", "ordinal", "pattern"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Locator is a symbolic description of a location inside a module.
type Locator struct {
	Kind    Kind
	Module  Module
	Offset  int64
	Name    string
	Ordinal uint16
	Pattern memory.Pattern
}

func ByOffset(m Module, offset int64) Locator {
	return Locator{Kind: KindOffset, Module: m, Offset: offset}
}

func ByExportName(m Module, name string) Locator {
	return Locator{Kind: KindExport, Module: m, Name: name}
}

func ByOrdinal(m Module, ordinal uint16) Locator {
	return Locator{Kind: KindOrdinal, Module: m, Ordinal: ordinal}
}

// ByPattern locates the first match of pattern in the module image, moved by adjust bytes.
func ByPattern(m Module, pattern memory.Pattern, adjust int64) Locator {
	return Locator{Kind: KindPattern, Module: m, Pattern: pattern, Offset: adjust}
}

func (l Locator) String() string {
	switch l.Kind {
	case KindOffset:
		if l.Offset < 0 {
			return fmt.Sprintf("%s-%#x", l.Module, -l.Offset)
		}
		return fmt.Sprintf("%s+%#x", l.Module, l.Offset)
	case KindExport:
		return fmt.Sprintf("%s!%s", l.Module, l.Name)
	case KindOrdinal:
		return fmt.Sprintf("%s#%d", l.Module, l.Ordinal)
	case KindPattern:
		return fmt.Sprintf("%s[%s]%+d", l.Module, l.Pattern, l.Offset)
	}
	return fmt.Sprintf("%s?%v", l.Module, l.Kind)
}
