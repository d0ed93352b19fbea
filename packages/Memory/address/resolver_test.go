package address

import (
	"encoding/binary"
	"errors"
	"testing"

	"d2mapi/packages/Memory/logging"
	"d2mapi/packages/Memory/memory"
	"d2mapi/packages/Memory/module"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const imageBase = memory.Address(0x10000000)

// fakeImage maps a minimal PE32 image exporting Alpha (ordinal 2) and Beta (ordinal 1).
func fakeImage() *memory.Buffer {
	b := memory.NewBuffer(imageBase, 0x2000)
	put32 := func(off int, v uint32) { binary.LittleEndian.PutUint32(b.Data[off:], v) }
	put16 := func(off int, v uint16) { binary.LittleEndian.PutUint16(b.Data[off:], v) }

	put16(0, 0x5A4D)
	put32(0x3C, 0x80)
	put32(0x80, 0x00004550)
	put16(0x98, pe32Magic)
	put32(0x80+0x50, 0x2000)
	put32(0x98+96, 0x1000)
	put32(0x98+100, 0x100)

	put32(0x1010, 1)
	put32(0x1014, 3)
	put32(0x1018, 2)
	put32(0x101C, 0x1040)
	put32(0x1020, 0x1050)
	put32(0x1024, 0x1060)

	put32(0x1040, 0x1500)
	put32(0x1044, 0x1600)
	put32(0x1048, 0x1010)

	put32(0x1050, 0x1070)
	put32(0x1054, 0x1080)
	put16(0x1060, 1)
	put16(0x1062, 0)
	copy(b.Data[0x1070:], "Alpha\x00")
	copy(b.Data[0x1080:], "Beta\x00")

	copy(b.Data[0x1800:], []byte{0xDE, 0xAD, 0xBE, 0xEF})
	return b
}

type countingSymbols struct {
	Symbols
	calls int
}

func (c *countingSymbols) Export(base memory.Address, name string) (memory.Address, error) {
	c.calls++
	return c.Symbols.Export(base, name)
}

func newTestResolver(t *testing.T, bases map[string]memory.Address) (*Resolver, *countingSymbols, *memory.Buffer) {
	t.Helper()
	img := fakeImage()
	reg := module.NewRegistry(module.LoaderFunc(func(path string) (memory.Address, error) {
		if base, ok := bases[module.Normalize(path)]; ok {
			return base, nil
		}
		return 0, errors.New("The specified module could not be found.")
	}), logging.Discard())
	syms := &countingSymbols{Symbols: ImageSymbols{Memory: img}}
	return NewResolver(reg, NewLibraries("Game.exe"), syms, img, logging.Discard()), syms, img
}

func TestResolveByOffset(t *testing.T) {
	r, _, _ := newTestResolver(t, map[string]memory.Address{"core": 0x10000000})

	addr, err := r.Resolve(ByOffset(File("core"), 0x1000))
	require.NoError(t, err)
	assert.Equal(t, memory.Address(0x10001000), addr)

	addr, err = r.Resolve(ByOffset(File("core"), -0x10))
	require.NoError(t, err)
	assert.Equal(t, memory.Address(0x0FFFFFF0), addr)
}

func TestResolveDefaultLibraryAndRedirect(t *testing.T) {
	redirected := module.Normalize("cores/D2Client.dll")
	r, _, _ := newTestResolver(t, map[string]memory.Address{
		"d2client.dll": 0x6FAB0000,
		redirected:     0x20000000,
		"game.exe":     0x00400000,
	})

	addr, err := r.Resolve(ByOffset(Lib(D2Client), 0x10))
	require.NoError(t, err)
	assert.Equal(t, memory.Address(0x6FAB0010), addr)

	r.Libraries().Redirect(D2Client, "cores/D2Client.dll")
	addr, err = r.Resolve(ByOffset(Lib(D2Client), 0x10))
	require.NoError(t, err)
	assert.Equal(t, memory.Address(0x20000010), addr)

	r.Libraries().SetMerged(true)
	addr, err = r.Resolve(ByOffset(Lib(D2Common), 0x10))
	require.NoError(t, err)
	assert.Equal(t, memory.Address(0x00400010), addr)
}

func TestResolveModuleNotFound(t *testing.T) {
	r, _, _ := newTestResolver(t, nil)

	_, err := r.Resolve(ByOffset(Lib(Fog), 0x1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModuleNotFound)

	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "Fog.dll", rerr.Path)
	assert.Equal(t, KindOffset, rerr.Locator.Kind)
	assert.Contains(t, err.Error(), "Fog.dll+0x1")
}

func TestResolveRejectsEmptyModule(t *testing.T) {
	bogus := module.Normalize(Library(-1).FileName())
	r, _, _ := newTestResolver(t, map[string]memory.Address{bogus: 0x30000000})

	for _, m := range []Module{File(""), Lib(Library(99)), {Library: -1}} {
		assert.False(t, m.Valid(), m.String())
		_, err := r.Resolve(ByOffset(m, 0x10))
		assert.ErrorIs(t, err, ErrInvalidModule)
		var re *ResolveError
		require.ErrorAs(t, err, &re)
		assert.Empty(t, re.Path)

		_, err = r.Base(m)
		assert.ErrorIs(t, err, ErrInvalidModule)
	}
	assert.Empty(t, r.modules.Loaded())

	assert.True(t, File("core").Valid())
	assert.True(t, Lib(Storm).Valid())
}

func TestResolveExportAndOrdinal(t *testing.T) {
	r, syms, _ := newTestResolver(t, map[string]memory.Address{"fog.dll": imageBase})

	addr, err := r.Resolve(ByExportName(Lib(Fog), "Alpha"))
	require.NoError(t, err)
	assert.Equal(t, imageBase+0x1600, addr)

	addr, err = r.Resolve(ByExportName(Lib(Fog), "Beta"))
	require.NoError(t, err)
	assert.Equal(t, imageBase+0x1500, addr)

	_, err = r.Resolve(ByExportName(Lib(Fog), "Alpha"))
	require.NoError(t, err)
	assert.Equal(t, 2, syms.calls, "second Alpha lookup must be served from the cache")

	_, err = r.Resolve(ByExportName(Lib(Fog), "Gamma"))
	assert.ErrorIs(t, err, ErrExportNotFound)

	addr, err = r.Resolve(ByOrdinal(Lib(Fog), 2))
	require.NoError(t, err)
	assert.Equal(t, imageBase+0x1600, addr)

	_, err = r.Resolve(ByOrdinal(Lib(Fog), 3))
	assert.ErrorIs(t, err, ErrOrdinalNotFound)
	assert.ErrorIs(t, err, errForwardedExport)

	_, err = r.Resolve(ByOrdinal(Lib(Fog), 9))
	assert.ErrorIs(t, err, ErrOrdinalNotFound)
	_, err = r.Resolve(ByOrdinal(Lib(Fog), 0))
	assert.ErrorIs(t, err, ErrOrdinalNotFound)
}

func TestResolveByPattern(t *testing.T) {
	r, _, _ := newTestResolver(t, map[string]memory.Address{"d2win.dll": imageBase})

	addr, err := r.Resolve(ByPattern(Lib(D2Win), memory.MustParsePattern("DE AD ?? EF"), 2))
	require.NoError(t, err)
	assert.Equal(t, imageBase+0x1802, addr)

	_, err = r.Resolve(ByPattern(Lib(D2Win), memory.MustParsePattern("CA FE BA BE"), 0))
	assert.ErrorIs(t, err, ErrPatternNotFound)
}

func TestLocatorString(t *testing.T) {
	assert.Equal(t, "D2Common.dll+0x1000", ByOffset(Lib(D2Common), 0x1000).String())
	assert.Equal(t, "D2Common.dll-0x20", ByOffset(Lib(D2Common), -0x20).String())
	assert.Equal(t, "Fog.dll!FreeClientMemory", ByExportName(Lib(Fog), "FreeClientMemory").String())
	assert.Equal(t, "x.dll#10001", ByOrdinal(File("x.dll"), 10001).String())
}

func TestParseLibrary(t *testing.T) {
	for _, lib := range AllLibraries() {
		got, err := ParseLibrary(lib.String())
		require.NoError(t, err)
		assert.Equal(t, lib, got)
		got, err = ParseLibrary(lib.FileName())
		require.NoError(t, err)
		assert.Equal(t, lib, got)
	}
	got, err := ParseLibrary("d2client.DLL")
	require.NoError(t, err)
	assert.Equal(t, D2Client, got)

	_, err = ParseLibrary("D2Foo")
	assert.Error(t, err)
}

func TestLibrariesRedirectDir(t *testing.T) {
	libs := NewLibraries("C:/Diablo II/D2SE.exe")
	libs.RedirectDir("D2SE/CORES/1.13c")
	assert.Equal(t, "C:/Diablo II/D2SE.exe", libs.Path(Game))
	assert.Contains(t, libs.Path(Storm), "1.13c")
	assert.Contains(t, libs.Path(Storm), "Storm.dll")
}
