package d2

import (
	"unsafe"

	"d2mapi/packages/Game/layout"
	"d2mapi/packages/Memory/memory"
	"d2mapi/packages/Memory/version"
)

const BeltSlotPositions = 16

type BeltRecord_1_00 struct {
	Reserved00    memory.Ptr32
	NumSlots      uint8
	pad05         [3]uint8
	SlotPositions [BeltSlotPositions]PositionalRectangle_1_00
}

type beltRecord interface {
	layout.Concrete
	pointer() unsafe.Pointer
	at(i int) beltRecord
	assign(src beltRecord) error

	numSlots() uint8
	setNumSlots(v uint8)
	slotPositions() positionalRectangle
}

var beltRecordVariants = layout.Variants[beltRecord]{
	{
		Since:  version.First,
		Family: layout.Family1_00,
		At:     func(p unsafe.Pointer) beltRecord { return (*BeltRecord_1_00)(p) },
	},
}

func (*BeltRecord_1_00) Family() layout.Family { return layout.Family1_00 }

func (b *BeltRecord_1_00) pointer() unsafe.Pointer { return unsafe.Pointer(b) }
func (b *BeltRecord_1_00) at(i int) beltRecord { return layout.At(b, i) }
func (b *BeltRecord_1_00) assign(src beltRecord) error {
	return layout.Assign("BeltRecord", b, src)
}

func (b *BeltRecord_1_00) numSlots() uint8 { return b.NumSlots }
func (b *BeltRecord_1_00) setNumSlots(v uint8) { b.NumSlots = v }
func (b *BeltRecord_1_00) slotPositions() positionalRectangle { return &b.SlotPositions[0] }

// BeltRecordView reads the potion belt geometry of one belt type.
type BeltRecordView struct {
	b beltRecord
}

func NewBeltRecordView(p unsafe.Pointer, rev version.Revision) BeltRecordView {
	return BeltRecordView{beltRecordVariants.Select(rev).At(p)}
}

func (v BeltRecordView) Family() layout.Family { return v.b.Family() }
func (v BeltRecordView) Pointer() unsafe.Pointer { return v.b.pointer() }
func (v BeltRecordView) Index(i int) BeltRecordView { return BeltRecordView{v.b.at(i)} }

func (v BeltRecordView) NumSlots() uint8 { return v.b.numSlots() }

// SlotPositions returns the first of BeltSlotPositions rectangles.
func (v BeltRecordView) SlotPositions() PositionalRectangleView {
	return PositionalRectangleView{v.b.slotPositions()}
}

type BeltRecordWrapper struct {
	BeltRecordView
}

func NewBeltRecordWrapper(p unsafe.Pointer, rev version.Revision) BeltRecordWrapper {
	return BeltRecordWrapper{NewBeltRecordView(p, rev)}
}

func (w BeltRecordWrapper) View() BeltRecordView { return w.BeltRecordView }
func (w BeltRecordWrapper) Index(i int) BeltRecordWrapper {
	return BeltRecordWrapper{w.BeltRecordView.Index(i)}
}

func (w BeltRecordWrapper) AssignMembers(src BeltRecordView) error {
	return w.b.assign(src.b)
}

func (w BeltRecordWrapper) SetNumSlots(v uint8) { w.b.setNumSlots(v) }
func (w BeltRecordWrapper) SlotPositions() PositionalRectangleWrapper {
	return PositionalRectangleWrapper{w.BeltRecordView.SlotPositions()}
}

type BeltRecordApi struct {
	o layout.Owned[BeltRecord_1_00, beltRecord]
}

// NewBeltRecordApi copies BeltSlotPositions rectangles starting at slotPositions.
func NewBeltRecordApi(rev version.Revision, numSlots uint8, slotPositions PositionalRectangleView) (BeltRecordApi, error) {
	a := BeltRecordApi{layout.NewOwned[BeltRecord_1_00](beltRecordVariants.Select(rev))}
	b := a.o.Get()
	b.setNumSlots(numSlots)
	slots := b.slotPositions()
	for i := 0; i < BeltSlotPositions; i++ {
		if err := slots.at(i).assign(slotPositions.r.at(i)); err != nil {
			return BeltRecordApi{}, err
		}
	}
	return a, nil
}

func CopyBeltRecord(v BeltRecordView) BeltRecordApi {
	a := BeltRecordApi{layout.NewOwned[BeltRecord_1_00](beltRecordVariants.Of(v.Family()))}
	_ = a.o.Get().assign(v.b) // same family
	return a
}

func (a *BeltRecordApi) View() BeltRecordView { return BeltRecordView{a.o.Get()} }
func (a *BeltRecordApi) Wrapper() BeltRecordWrapper { return BeltRecordWrapper{a.View()} }
func (a *BeltRecordApi) Clone() BeltRecordApi { return *a }

func (a *BeltRecordApi) Family() layout.Family { return a.o.Get().Family() }
func (a *BeltRecordApi) Pointer() unsafe.Pointer { return a.o.Get().pointer() }

func (a *BeltRecordApi) AssignMembers(src BeltRecordView) error {
	return a.Wrapper().AssignMembers(src)
}

func (a *BeltRecordApi) NumSlots() uint8 { return a.o.Get().numSlots() }
func (a *BeltRecordApi) SetNumSlots(v uint8) { a.o.Get().setNumSlots(v) }
func (a *BeltRecordApi) SlotPositions() PositionalRectangleWrapper {
	return a.Wrapper().SlotPositions()
}
