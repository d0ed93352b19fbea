package addresstable

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d2mapi/packages/Memory/address"
	"d2mapi/packages/Memory/version"
)

const sample = `{
  "1.13C": {
    "D2Client.dll": {
      "ScreenSizeX": {"type": "offset", "value": "0xDBC48"},
      "InventoryRecords": {"type": "offset", "value": 1024},
      "Back": {"type": "offset", "value": "-0x10"}
    },
    "Storm.dll": {
      "SFileOpenArchive": {"type": "ordinal", "value": 266},
      "SMemAlloc": {"type": "export", "value": "SMemAlloc"}
    }
  },
  "LoD 1.14D": {
    "Game.exe": {
      "DrawCel": {"type": "pattern", "value": "55 8B EC ?? 83", "adjust": -3}
    }
  }
}`

func TestDecode(t *testing.T) {
	tbl, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	assert.ElementsMatch(t, []version.Revision{version.V1_13C, version.LoD1_14D}, tbl.Revisions())

	loc, err := tbl.Locator(version.V1_13C, address.D2Client, "ScreenSizeX")
	require.NoError(t, err)
	assert.Equal(t, address.ByOffset(address.Lib(address.D2Client), 0xDBC48), loc)

	loc, err = tbl.Locator(version.V1_13C, address.D2Client, "InventoryRecords")
	require.NoError(t, err)
	assert.Equal(t, int64(1024), loc.Offset)

	loc, err = tbl.Locator(version.V1_13C, address.D2Client, "Back")
	require.NoError(t, err)
	assert.Equal(t, int64(-0x10), loc.Offset)

	loc, err = tbl.Locator(version.V1_13C, address.Storm, "SFileOpenArchive")
	require.NoError(t, err)
	assert.Equal(t, address.KindOrdinal, loc.Kind)
	assert.Equal(t, uint16(266), loc.Ordinal)

	loc, err = tbl.Locator(version.V1_13C, address.Storm, "SMemAlloc")
	require.NoError(t, err)
	assert.Equal(t, address.ByExportName(address.Lib(address.Storm), "SMemAlloc"), loc)

	loc, err = tbl.Locator(version.LoD1_14D, address.Game, "DrawCel")
	require.NoError(t, err)
	assert.Equal(t, address.KindPattern, loc.Kind)
	assert.Equal(t, 5, loc.Pattern.Len())
	assert.Equal(t, int64(-3), loc.Offset)
}

func TestOrdinalsUseFullRange(t *testing.T) {
	doc := `{"1.10": {"Fog.dll": {
		"High": {"type": "ordinal", "value": 40000},
		"Max": {"type": "ordinal", "value": "0xFFFF"},
		"Quoted": {"type": "ordinal", "value": "32768"}
	}}}`
	tbl, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	for name, want := range map[string]uint16{"High": 40000, "Max": 0xFFFF, "Quoted": 32768} {
		loc, err := tbl.Locator(version.V1_10, address.Fog, name)
		require.NoError(t, err, name)
		assert.Equal(t, address.ByOrdinal(address.Lib(address.Fog), want), loc, name)
	}
}

func TestLocatorNotFound(t *testing.T) {
	tbl, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	for _, tc := range []struct {
		rev  version.Revision
		lib  address.Library
		name string
	}{
		{version.V1_10, address.D2Client, "ScreenSizeX"},
		{version.V1_13C, address.D2Common, "ScreenSizeX"},
		{version.V1_13C, address.D2Client, "Missing"},
	} {
		_, err := tbl.Locator(tc.rev, tc.lib, tc.name)
		assert.ErrorIs(t, err, ErrAddressNotFound)
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, tc.name, nf.Name)
	}
}

func TestDecodeRejectsBadEntries(t *testing.T) {
	for name, doc := range map[string]string{
		"type":      `{"1.10": {"D2Client.dll": {"X": {"type": "magic", "value": 1}}}}`,
		"offset":    `{"1.10": {"D2Client.dll": {"X": {"type": "offset", "value": "0xZZ"}}}}`,
		"ordinal":   `{"1.10": {"Storm.dll": {"X": {"type": "ordinal", "value": 70000}}}}`,
		"export":    `{"1.10": {"Storm.dll": {"X": {"type": "export", "value": 5}}}}`,
		"pattern":   `{"1.10": {"Game.exe": {"X": {"type": "pattern", "value": "GG"}}}}`,
		"negative":  `{"1.10": {"Storm.dll": {"X": {"type": "ordinal", "value": "-1"}}}}`,
		"ordinal16": `{"1.10": {"Storm.dll": {"X": {"type": "ordinal", "value": "0x10000"}}}}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrInvalidEntry)
		})
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"9.99": {}}`))
	assert.ErrorIs(t, err, version.ErrUnknownRevision)

	_, err = Decode(strings.NewReader(`{"1.10": {"D2Nothing.dll": {}}}`))
	assert.ErrorContains(t, err, "unknown library")

	_, err = Decode(strings.NewReader(`[`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addresses.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	tbl, err := Load(path)
	require.NoError(t, err)
	_, err = tbl.Locator(version.V1_13C, address.Storm, "SMemAlloc")
	assert.NoError(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
