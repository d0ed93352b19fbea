package videomode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d2mapi/packages/Game/launcher"
	"d2mapi/packages/Memory/logging"
)

type fakeRegistry struct {
	value uint32
	err   error
	reads int
}

func (f *fakeRegistry) Render() (uint32, error) {
	f.reads++
	return f.value, f.err
}

func TestFromSetup(t *testing.T) {
	for _, tc := range []struct {
		renderer, window int
		want             Mode
	}{
		{0, 0, DirectDraw},
		{0, -1, DirectDraw},
		{0, 1, GDI},
		{1, 1, Direct3D},
		{3, 0, Glide},
	} {
		m, err := FromSetup(&launcher.Setup{Renderer: tc.renderer, WindowMode: tc.window})
		require.NoError(t, err)
		assert.Equal(t, tc.want, m)
	}

	_, err := FromSetup(&launcher.Setup{Renderer: 2})
	assert.ErrorIs(t, err, ErrInvalidRenderer)
}

func TestFromCommandLine(t *testing.T) {
	m, ok := FromCommandLine(`"C:\Diablo II\Game.exe" -d3d -w -3dfx`)
	assert.True(t, ok)
	assert.Equal(t, Glide, m)

	m, ok = FromCommandLine(`Game.exe -d3d -w`)
	assert.True(t, ok)
	assert.Equal(t, GDI, m)

	m, ok = FromCommandLine(`Game.exe -d3d`)
	assert.True(t, ok)
	assert.Equal(t, Direct3D, m)

	_, ok = FromCommandLine(`Game.exe -direct -txt`)
	assert.False(t, ok)
}

func TestFromRender(t *testing.T) {
	assert.Equal(t, DirectDraw, FromRender(0))
	assert.Equal(t, Direct3D, FromRender(1))
	assert.Equal(t, DirectDraw, FromRender(2))
	assert.Equal(t, Glide, FromRender(3))
	assert.Equal(t, GDI, FromRender(4))
}

func TestDetermineOrder(t *testing.T) {
	reg := &fakeRegistry{value: 1}

	d := &Detector{Setup: &launcher.Setup{Renderer: 3}, CommandLine: "Game.exe -w", Registry: reg, Log: logging.Discard()}
	m, src, err := d.Determine()
	require.NoError(t, err)
	assert.Equal(t, Glide, m)
	assert.Equal(t, SourceLauncher, src)

	d = &Detector{CommandLine: "Game.exe -w", Registry: reg, Log: logging.Discard()}
	m, src, err = d.Determine()
	require.NoError(t, err)
	assert.Equal(t, GDI, m)
	assert.Equal(t, SourceCommandLine, src)
	assert.Equal(t, 0, reg.reads)

	d = &Detector{CommandLine: "Game.exe", Registry: reg, Log: logging.Discard()}
	m, src, err = d.Determine()
	require.NoError(t, err)
	assert.Equal(t, Direct3D, m)
	assert.Equal(t, SourceRegistry, src)

	d = &Detector{CommandLine: "Game.exe", Registry: &fakeRegistry{err: errors.New("denied")}, Log: logging.Discard()}
	m, src, err = d.Determine()
	require.NoError(t, err)
	assert.Equal(t, DirectDraw, m)
	assert.Equal(t, SourceDefault, src)
}

func TestDetermineBadSetup(t *testing.T) {
	d := &Detector{Setup: &launcher.Setup{Renderer: -1}, Log: logging.Discard()}
	_, src, err := d.Determine()
	assert.ErrorIs(t, err, ErrInvalidRenderer)
	assert.Equal(t, SourceLauncher, src)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "Glide", Glide.String())
	assert.Equal(t, "Mode(9)", Mode(9).String())
}
