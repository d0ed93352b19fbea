package d2

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d2mapi/packages/Game/layout"
	"d2mapi/packages/Memory/memory"
	"d2mapi/packages/Memory/version"
)

func TestPositionalRectangleView(t *testing.T) {
	rects := [2]PositionalRectangle_1_00{
		{Left: 1, Right: 2, Top: 3, Bottom: 4},
		{Left: 5, Right: 6, Top: 7, Bottom: 8},
	}
	view := NewPositionalRectangleView(unsafe.Pointer(&rects[0]), version.V1_10)

	assert.Equal(t, layout.Family1_00, view.Family())
	assert.Equal(t, int32(1), view.Left())
	assert.Equal(t, int32(2), view.Right())
	assert.Equal(t, int32(3), view.Top())
	assert.Equal(t, int32(4), view.Bottom())

	second := view.Index(1)
	assert.Equal(t, unsafe.Pointer(&rects[1]), second.Pointer())
	assert.Equal(t, int32(5), second.Left())
	assert.Equal(t, int32(6), second.Right())
	assert.Equal(t, int32(7), second.Top())
	assert.Equal(t, int32(8), second.Bottom())
}

func TestPositionalRectangleWrapperWritesThrough(t *testing.T) {
	rects := [2]PositionalRectangle_1_00{}
	w := NewPositionalRectangleWrapper(unsafe.Pointer(&rects[0]), version.LoD1_14D)

	w.Index(1).SetLeft(10)
	w.SetBottom(-3)

	assert.Equal(t, int32(10), rects[1].Left)
	assert.Equal(t, int32(-3), rects[0].Bottom)
	assert.Equal(t, int32(-3), w.View().Bottom())
}

func TestPositionalRectangleApi(t *testing.T) {
	a := NewPositionalRectangleApi(version.V1_13C, 1, 2, 3, 4)
	assert.Equal(t, int32(1), a.Left())
	assert.Equal(t, int32(4), a.Bottom())

	b := a
	b.SetLeft(99)
	assert.Equal(t, int32(1), a.Left())
	assert.Equal(t, int32(99), b.Left())
	assert.NotEqual(t, a.Pointer(), b.Pointer())

	w := a.Wrapper()
	w.SetTop(30)
	assert.Equal(t, int32(30), a.Top())
	assert.Equal(t, a.Pointer(), a.View().Pointer())

	c := a.Clone()
	c.SetTop(300)
	assert.Equal(t, int32(30), a.Top())
	assert.Equal(t, int32(300), c.Top())

	src := PositionalRectangle_1_00{Left: 9}
	owned := CopyPositionalRectangle(NewPositionalRectangleView(unsafe.Pointer(&src), version.V1_13C))
	assert.Equal(t, int32(9), owned.Left())
	owned.SetLeft(0)
	assert.Equal(t, int32(9), src.Left)
}

func TestCelContextApiCopiesValue(t *testing.T) {
	a := NewCelContextApi(version.V1_12A, 0x1000, 1, 2)
	b := a
	b.SetFrame(40)
	b.SetCelFile(0x2000)

	assert.Equal(t, uint32(2), a.Frame())
	assert.Equal(t, memory.Address(0x1000), a.CelFile())
	assert.Equal(t, uint32(40), b.Frame())
	assert.Equal(t, layout.Family1_12A, b.Family())

	raw := (*CelContext_1_12A)(b.Pointer())
	assert.Equal(t, uint32(40), raw.Frame)
	assert.Equal(t, memory.Ptr32(0x2000), raw.CelFile)

	copied := CopyCelContext(b.View())
	assert.Equal(t, layout.Family1_12A, copied.Family())
	assert.Equal(t, uint32(40), copied.Frame())
}

func TestPositionalRectangleAssignMembers(t *testing.T) {
	src := NewPositionalRectangleApi(version.V1_09D, 11, 22, 33, 44)
	var raw PositionalRectangle_1_00
	dst := NewPositionalRectangleWrapper(unsafe.Pointer(&raw), version.V1_09D)

	require.NoError(t, dst.AssignMembers(src.View()))
	assert.Equal(t, src.Left(), dst.Left())
	assert.Equal(t, src.Right(), dst.Right())
	assert.Equal(t, src.Top(), dst.Top())
	assert.Equal(t, src.Bottom(), dst.Bottom())
}

func TestCelContextFamilies(t *testing.T) {
	cases := []struct {
		rev    version.Revision
		family layout.Family
	}{
		{version.V1_00, layout.Family1_00},
		{version.V1_11B, layout.Family1_00},
		{version.V1_12A, layout.Family1_12A},
		{version.V1_13ABeta, layout.Family1_13C},
		{version.V1_13C, layout.Family1_13C},
		{version.LoD1_14D, layout.Family1_13C},
	}
	for _, tc := range cases {
		t.Run(tc.rev.String(), func(t *testing.T) {
			a := NewCelContextApi(tc.rev, 0x6F000000, 3, 7)
			assert.Equal(t, tc.family, a.Family())
			assert.Equal(t, memory.Address(0x6F000000), a.CelFile())
			assert.Equal(t, uint32(3), a.Direction())
			assert.Equal(t, uint32(7), a.Frame())
		})
	}
}

func TestCelContextReadsFamilyOffsets(t *testing.T) {
	var buf [0x48]byte
	*(*uint32)(unsafe.Pointer(&buf[0x04])) = 0x12345678
	*(*uint32)(unsafe.Pointer(&buf[0x08])) = 2
	*(*uint32)(unsafe.Pointer(&buf[0x40])) = 5

	v := NewCelContextView(unsafe.Pointer(&buf[0]), version.V1_12A)
	assert.Equal(t, memory.Address(0x12345678), v.CelFile())
	assert.Equal(t, uint32(2), v.Frame())
	assert.Equal(t, uint32(5), v.Direction())
}

func TestCelContextAssignMembers(t *testing.T) {
	src := NewCelContextApi(version.V1_13C, 0x1000, 4, 9)
	var raw CelContext_1_13C
	raw.unknown04[0] = 0xAA
	(*CelContext_1_13C)(src.Pointer()).unknown3C[1] = 0xBB

	dst := NewCelContextWrapper(unsafe.Pointer(&raw), version.V1_13D)
	require.NoError(t, dst.AssignMembers(src.View()))
	assert.Equal(t, src.CelFile(), dst.CelFile())
	assert.Equal(t, src.Direction(), dst.Direction())
	assert.Equal(t, src.Frame(), dst.Frame())
	assert.Equal(t, byte(0), raw.unknown04[0])
	assert.Equal(t, byte(0xBB), raw.unknown3C[1])
}

func TestCelContextAssignMismatch(t *testing.T) {
	src := NewCelContextApi(version.V1_10, 0x1000, 4, 9)
	dst := NewCelContextApi(version.V1_13C, 0x2000, 1, 2)
	before := *(*CelContext_1_13C)(dst.Pointer())

	err := dst.AssignMembers(src.View())
	require.ErrorIs(t, err, layout.ErrLayoutMismatch)
	var mismatch *layout.MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "CelContext", mismatch.Entity)
	assert.Equal(t, layout.Family1_13C, mismatch.Dest)
	assert.Equal(t, layout.Family1_00, mismatch.Src)

	assert.Equal(t, before, *(*CelContext_1_13C)(dst.Pointer()))
	assert.Equal(t, memory.Address(0x2000), dst.CelFile())
}

func TestEquipmentAndGridLayout(t *testing.T) {
	rev := version.V1_09D
	pos := NewPositionalRectangleApi(rev, 10, 20, 30, 40)

	eq, err := NewEquipmentLayoutApi(rev, pos.View(), 2, 4)
	require.NoError(t, err)
	assert.Equal(t, int32(30), eq.Position().Top())
	assert.Equal(t, uint8(2), eq.Width())
	assert.Equal(t, uint8(4), eq.Height())

	eq.Position().SetTop(31)
	assert.Equal(t, int32(31), eq.View().Position().Top())
	assert.Equal(t, int32(30), pos.Top())

	grid, err := NewGridLayoutApi(rev, 10, 4, pos.View(), 29, 29)
	require.NoError(t, err)
	raw := (*GridLayout_1_00)(grid.Pointer())
	assert.Equal(t, uint8(10), raw.NumColumns)
	assert.Equal(t, uint8(4), raw.NumRows)
	assert.Equal(t, int32(10), raw.Position.Left)
	assert.Equal(t, uint8(29), raw.Width)
}

func TestInventoryRecordBuilderCopiesSlots(t *testing.T) {
	rev := version.V1_13C
	var slots [InventoryEquipmentSlots]EquipmentLayout_1_00
	for i := range slots {
		slots[i].Position.Left = int32(i * 10)
		slots[i].Width = uint8(i + 1)
	}
	pos := NewPositionalRectangleApi(rev, 0, 320, 0, 432)
	grid, err := NewGridLayoutApi(rev, 10, 4, pos.View(), 29, 29)
	require.NoError(t, err)

	inv, err := NewInventoryRecordApi(rev, pos.View(), grid.View(), NewEquipmentLayoutView(unsafe.Pointer(&slots[0]), rev))
	require.NoError(t, err)

	assert.Equal(t, int32(320), inv.Position().Right())
	assert.Equal(t, uint8(10), inv.GridLayout().NumColumns())
	for i := 0; i < InventoryEquipmentSlots; i++ {
		slot := inv.EquipmentSlots().Index(i)
		assert.Equal(t, int32(i*10), slot.Position().Left())
		assert.Equal(t, uint8(i+1), slot.Width())
	}

	inv.EquipmentSlots().Index(9).SetHeight(7)
	assert.Equal(t, uint8(0), slots[9].Height)
	assert.Equal(t, uint8(7), (*InventoryRecord_1_00)(inv.Pointer()).EquipmentSlots[9].Height)
}

func TestBeltRecord(t *testing.T) {
	rev := version.V1_07
	var positions [BeltSlotPositions]PositionalRectangle_1_00
	for i := range positions {
		positions[i].Right = int32(i)
	}

	belt, err := NewBeltRecordApi(rev, 12, NewPositionalRectangleView(unsafe.Pointer(&positions[0]), rev))
	require.NoError(t, err)
	assert.Equal(t, uint8(12), belt.NumSlots())
	assert.Equal(t, int32(15), belt.SlotPositions().Index(15).Right())

	var raw [2]BeltRecord_1_00
	w := NewBeltRecordWrapper(unsafe.Pointer(&raw[0]), rev)
	require.NoError(t, w.Index(1).AssignMembers(belt.View()))
	assert.Equal(t, uint8(12), raw[1].NumSlots)
	assert.Equal(t, uint8(0), raw[0].NumSlots)
}

func TestCel(t *testing.T) {
	cels := [2]Cel_1_00{{Width: 32, Height: 48, OffsetX: -1, OffsetY: 2}, {Width: 8}}
	w := NewCelWrapper(unsafe.Pointer(&cels[0]), version.V1_10)

	assert.Equal(t, int32(48), w.Height())
	assert.Equal(t, int32(-1), w.OffsetX())
	assert.Equal(t, int32(8), w.Index(1).Width())

	owned := CopyCel(w.View())
	owned.SetOffsetY(100)
	assert.Equal(t, int32(2), cels[0].OffsetY)
	assert.Equal(t, int32(100), owned.OffsetY())
}

func TestMpqArchiveHandlePath(t *testing.T) {
	a, err := NewMpqArchiveHandleApi(version.V1_13C, 0x00ABCDEF, `C:\Games\Diablo II\d2data.mpq`)
	require.NoError(t, err)
	assert.Equal(t, memory.Address(0x00ABCDEF), a.MpqArchive())
	assert.Equal(t, `C:\Games\Diablo II\d2data.mpq`, a.MpqArchivePath())

	require.NoError(t, a.SetMpqArchivePath("patch_d2.mpq"))
	assert.Equal(t, "patch_d2.mpq", a.MpqArchivePath())

	long := make([]byte, MaxPath)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, a.SetMpqArchivePath(string(long)))
	assert.Equal(t, "patch_d2.mpq", a.MpqArchivePath())
}

func TestContracts(t *testing.T) {
	for _, c := range Contracts() {
		t.Run(c.Entity+"_"+c.Family.String(), func(t *testing.T) {
			assert.NoError(t, c.Verify())
		})
	}
}

func TestRGBA32(t *testing.T) {
	c := RGBA32{R: 0x11, G: 0x22, B: 0x33, A: 0x44}
	assert.Equal(t, uint32(0x11223344), c.ToRGBA())
	assert.Equal(t, uint32(0x33221144), c.ToBGRA())
	assert.Equal(t, uint32(0x44112233), c.ToARGB())
	assert.Equal(t, uint32(0x44332211), c.ToABGR())

	assert.Equal(t, c, FromRGBA(c.ToRGBA()))
	assert.Equal(t, c, FromBGRA(c.ToBGRA()))
	assert.Equal(t, c, FromARGB(c.ToARGB()))
	assert.Equal(t, c, FromABGR(c.ToABGR()))
}
