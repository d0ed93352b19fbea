package d2

import (
	"unsafe"

	"d2mapi/packages/Game/layout"
	"d2mapi/packages/Memory/version"
)

const InventoryEquipmentSlots = 10

type InventoryRecord_1_00 struct {
	Position       PositionalRectangle_1_00
	GridLayout     GridLayout_1_00
	EquipmentSlots [InventoryEquipmentSlots]EquipmentLayout_1_00
}

type inventoryRecord interface {
	layout.Concrete
	pointer() unsafe.Pointer
	at(i int) inventoryRecord
	assign(src inventoryRecord) error

	position() positionalRectangle
	gridLayout() gridLayout
	equipmentSlots() equipmentLayout
}

var inventoryRecordVariants = layout.Variants[inventoryRecord]{
	{
		Since:  version.First,
		Family: layout.Family1_00,
		At:     func(p unsafe.Pointer) inventoryRecord { return (*InventoryRecord_1_00)(p) },
	},
}

func (*InventoryRecord_1_00) Family() layout.Family { return layout.Family1_00 }

func (r *InventoryRecord_1_00) pointer() unsafe.Pointer { return unsafe.Pointer(r) }
func (r *InventoryRecord_1_00) at(i int) inventoryRecord { return layout.At(r, i) }
func (r *InventoryRecord_1_00) assign(src inventoryRecord) error {
	return layout.Assign("InventoryRecord", r, src)
}

func (r *InventoryRecord_1_00) position() positionalRectangle { return &r.Position }
func (r *InventoryRecord_1_00) gridLayout() gridLayout { return &r.GridLayout }
func (r *InventoryRecord_1_00) equipmentSlots() equipmentLayout { return &r.EquipmentSlots[0] }

// InventoryRecordView reads one row of the inventory panel table.
type InventoryRecordView struct {
	r inventoryRecord
}

func NewInventoryRecordView(p unsafe.Pointer, rev version.Revision) InventoryRecordView {
	return InventoryRecordView{inventoryRecordVariants.Select(rev).At(p)}
}

func (v InventoryRecordView) Family() layout.Family { return v.r.Family() }
func (v InventoryRecordView) Pointer() unsafe.Pointer { return v.r.pointer() }
func (v InventoryRecordView) Index(i int) InventoryRecordView {
	return InventoryRecordView{v.r.at(i)}
}

func (v InventoryRecordView) Position() PositionalRectangleView {
	return PositionalRectangleView{v.r.position()}
}
func (v InventoryRecordView) GridLayout() GridLayoutView {
	return GridLayoutView{v.r.gridLayout()}
}

// EquipmentSlots returns the first of InventoryEquipmentSlots slots.
func (v InventoryRecordView) EquipmentSlots() EquipmentLayoutView {
	return EquipmentLayoutView{v.r.equipmentSlots()}
}

type InventoryRecordWrapper struct {
	InventoryRecordView
}

func NewInventoryRecordWrapper(p unsafe.Pointer, rev version.Revision) InventoryRecordWrapper {
	return InventoryRecordWrapper{NewInventoryRecordView(p, rev)}
}

func (w InventoryRecordWrapper) View() InventoryRecordView { return w.InventoryRecordView }
func (w InventoryRecordWrapper) Index(i int) InventoryRecordWrapper {
	return InventoryRecordWrapper{w.InventoryRecordView.Index(i)}
}

func (w InventoryRecordWrapper) AssignMembers(src InventoryRecordView) error {
	return w.r.assign(src.r)
}

func (w InventoryRecordWrapper) Position() PositionalRectangleWrapper {
	return PositionalRectangleWrapper{w.InventoryRecordView.Position()}
}
func (w InventoryRecordWrapper) GridLayout() GridLayoutWrapper {
	return GridLayoutWrapper{w.InventoryRecordView.GridLayout()}
}
func (w InventoryRecordWrapper) EquipmentSlots() EquipmentLayoutWrapper {
	return EquipmentLayoutWrapper{w.InventoryRecordView.EquipmentSlots()}
}

type InventoryRecordApi struct {
	o layout.Owned[InventoryRecord_1_00, inventoryRecord]
}

// NewInventoryRecordApi copies InventoryEquipmentSlots slots starting at equipmentSlots.
func NewInventoryRecordApi(rev version.Revision, position PositionalRectangleView, grid GridLayoutView, equipmentSlots EquipmentLayoutView) (InventoryRecordApi, error) {
	a := InventoryRecordApi{layout.NewOwned[InventoryRecord_1_00](inventoryRecordVariants.Select(rev))}
	r := a.o.Get()
	if err := r.position().assign(position.r); err != nil {
		return InventoryRecordApi{}, err
	}
	if err := r.gridLayout().assign(grid.g); err != nil {
		return InventoryRecordApi{}, err
	}
	slots := r.equipmentSlots()
	for i := 0; i < InventoryEquipmentSlots; i++ {
		if err := slots.at(i).assign(equipmentSlots.e.at(i)); err != nil {
			return InventoryRecordApi{}, err
		}
	}
	return a, nil
}

func CopyInventoryRecord(v InventoryRecordView) InventoryRecordApi {
	a := InventoryRecordApi{layout.NewOwned[InventoryRecord_1_00](inventoryRecordVariants.Of(v.Family()))}
	_ = a.o.Get().assign(v.r) // same family
	return a
}

func (a *InventoryRecordApi) View() InventoryRecordView { return InventoryRecordView{a.o.Get()} }
func (a *InventoryRecordApi) Wrapper() InventoryRecordWrapper {
	return InventoryRecordWrapper{a.View()}
}
func (a *InventoryRecordApi) Clone() InventoryRecordApi { return *a }

func (a *InventoryRecordApi) Family() layout.Family { return a.o.Get().Family() }
func (a *InventoryRecordApi) Pointer() unsafe.Pointer { return a.o.Get().pointer() }

func (a *InventoryRecordApi) AssignMembers(src InventoryRecordView) error {
	return a.Wrapper().AssignMembers(src)
}

func (a *InventoryRecordApi) Position() PositionalRectangleWrapper { return a.Wrapper().Position() }
func (a *InventoryRecordApi) GridLayout() GridLayoutWrapper { return a.Wrapper().GridLayout() }
func (a *InventoryRecordApi) EquipmentSlots() EquipmentLayoutWrapper {
	return a.Wrapper().EquipmentSlots()
}
