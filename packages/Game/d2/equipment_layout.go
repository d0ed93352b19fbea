package d2

import (
	"unsafe"

	"d2mapi/packages/Game/layout"
	"d2mapi/packages/Memory/version"
)

type EquipmentLayout_1_00 struct {
	Position PositionalRectangle_1_00
	Width    uint8
	Height   uint8
	pad12    [2]uint8
}

type equipmentLayout interface {
	layout.Concrete
	pointer() unsafe.Pointer
	at(i int) equipmentLayout
	assign(src equipmentLayout) error

	position() positionalRectangle
	width() uint8
	height() uint8
	setWidth(v uint8)
	setHeight(v uint8)
}

var equipmentLayoutVariants = layout.Variants[equipmentLayout]{
	{
		Since:  version.First,
		Family: layout.Family1_00,
		At:     func(p unsafe.Pointer) equipmentLayout { return (*EquipmentLayout_1_00)(p) },
	},
}

func (*EquipmentLayout_1_00) Family() layout.Family { return layout.Family1_00 }

func (e *EquipmentLayout_1_00) pointer() unsafe.Pointer { return unsafe.Pointer(e) }
func (e *EquipmentLayout_1_00) at(i int) equipmentLayout { return layout.At(e, i) }
func (e *EquipmentLayout_1_00) assign(src equipmentLayout) error {
	return layout.Assign("EquipmentLayout", e, src)
}

func (e *EquipmentLayout_1_00) position() positionalRectangle { return &e.Position }
func (e *EquipmentLayout_1_00) width() uint8 { return e.Width }
func (e *EquipmentLayout_1_00) height() uint8 { return e.Height }
func (e *EquipmentLayout_1_00) setWidth(v uint8) { e.Width = v }
func (e *EquipmentLayout_1_00) setHeight(v uint8) { e.Height = v }

// EquipmentLayoutView reads the on-screen placement of one equipment slot.
type EquipmentLayoutView struct {
	e equipmentLayout
}

func NewEquipmentLayoutView(p unsafe.Pointer, rev version.Revision) EquipmentLayoutView {
	return EquipmentLayoutView{equipmentLayoutVariants.Select(rev).At(p)}
}

func (v EquipmentLayoutView) Family() layout.Family { return v.e.Family() }
func (v EquipmentLayoutView) Pointer() unsafe.Pointer { return v.e.pointer() }

func (v EquipmentLayoutView) Index(i int) EquipmentLayoutView {
	return EquipmentLayoutView{v.e.at(i)}
}

func (v EquipmentLayoutView) Position() PositionalRectangleView {
	return PositionalRectangleView{v.e.position()}
}
func (v EquipmentLayoutView) Width() uint8 { return v.e.width() }
func (v EquipmentLayoutView) Height() uint8 { return v.e.height() }

type EquipmentLayoutWrapper struct {
	EquipmentLayoutView
}

func NewEquipmentLayoutWrapper(p unsafe.Pointer, rev version.Revision) EquipmentLayoutWrapper {
	return EquipmentLayoutWrapper{NewEquipmentLayoutView(p, rev)}
}

func (w EquipmentLayoutWrapper) View() EquipmentLayoutView { return w.EquipmentLayoutView }

func (w EquipmentLayoutWrapper) Index(i int) EquipmentLayoutWrapper {
	return EquipmentLayoutWrapper{w.EquipmentLayoutView.Index(i)}
}

func (w EquipmentLayoutWrapper) AssignMembers(src EquipmentLayoutView) error {
	return w.e.assign(src.e)
}

func (w EquipmentLayoutWrapper) Position() PositionalRectangleWrapper {
	return PositionalRectangleWrapper{w.EquipmentLayoutView.Position()}
}
func (w EquipmentLayoutWrapper) SetWidth(v uint8) { w.e.setWidth(v) }
func (w EquipmentLayoutWrapper) SetHeight(v uint8) { w.e.setHeight(v) }

type EquipmentLayoutApi struct {
	o layout.Owned[EquipmentLayout_1_00, equipmentLayout]
}

func NewEquipmentLayoutApi(rev version.Revision, position PositionalRectangleView, width, height uint8) (EquipmentLayoutApi, error) {
	a := EquipmentLayoutApi{layout.NewOwned[EquipmentLayout_1_00](equipmentLayoutVariants.Select(rev))}
	e := a.o.Get()
	if err := e.position().assign(position.r); err != nil {
		return EquipmentLayoutApi{}, err
	}
	e.setWidth(width)
	e.setHeight(height)
	return a, nil
}

func CopyEquipmentLayout(v EquipmentLayoutView) EquipmentLayoutApi {
	a := EquipmentLayoutApi{layout.NewOwned[EquipmentLayout_1_00](equipmentLayoutVariants.Of(v.Family()))}
	_ = a.o.Get().assign(v.e) // same family
	return a
}

func (a *EquipmentLayoutApi) View() EquipmentLayoutView { return EquipmentLayoutView{a.o.Get()} }
func (a *EquipmentLayoutApi) Wrapper() EquipmentLayoutWrapper {
	return EquipmentLayoutWrapper{a.View()}
}
func (a *EquipmentLayoutApi) Clone() EquipmentLayoutApi { return *a }

func (a *EquipmentLayoutApi) Family() layout.Family { return a.o.Get().Family() }
func (a *EquipmentLayoutApi) Pointer() unsafe.Pointer { return a.o.Get().pointer() }

func (a *EquipmentLayoutApi) AssignMembers(src EquipmentLayoutView) error {
	return a.Wrapper().AssignMembers(src)
}

// Position aliases the rectangle stored in a.
func (a *EquipmentLayoutApi) Position() PositionalRectangleWrapper { return a.Wrapper().Position() }
func (a *EquipmentLayoutApi) Width() uint8 { return a.o.Get().width() }
func (a *EquipmentLayoutApi) Height() uint8 { return a.o.Get().height() }
func (a *EquipmentLayoutApi) SetWidth(v uint8) { a.o.Get().setWidth(v) }
func (a *EquipmentLayoutApi) SetHeight(v uint8) { a.o.Get().setHeight(v) }
