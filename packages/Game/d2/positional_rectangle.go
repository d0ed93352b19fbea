package d2

import (
	"unsafe"

	"d2mapi/packages/Game/layout"
	"d2mapi/packages/Memory/version"
)

type PositionalRectangle_1_00 struct {
	Left   int32
	Right  int32
	Top    int32
	Bottom int32
}

type positionalRectangle interface {
	layout.Concrete
	pointer() unsafe.Pointer
	at(i int) positionalRectangle
	assign(src positionalRectangle) error

	left() int32
	right() int32
	top() int32
	bottom() int32
	setLeft(v int32)
	setRight(v int32)
	setTop(v int32)
	setBottom(v int32)
}

var positionalRectangleVariants = layout.Variants[positionalRectangle]{
	{
		Since:  version.First,
		Family: layout.Family1_00,
		At:     func(p unsafe.Pointer) positionalRectangle { return (*PositionalRectangle_1_00)(p) },
	},
}

func (*PositionalRectangle_1_00) Family() layout.Family { return layout.Family1_00 }

func (r *PositionalRectangle_1_00) pointer() unsafe.Pointer { return unsafe.Pointer(r) }
func (r *PositionalRectangle_1_00) at(i int) positionalRectangle {
	return layout.At(r, i)
}
func (r *PositionalRectangle_1_00) assign(src positionalRectangle) error {
	return layout.Assign("PositionalRectangle", r, src)
}

func (r *PositionalRectangle_1_00) left() int32 { return r.Left }
func (r *PositionalRectangle_1_00) right() int32 { return r.Right }
func (r *PositionalRectangle_1_00) top() int32 { return r.Top }
func (r *PositionalRectangle_1_00) bottom() int32 { return r.Bottom }
func (r *PositionalRectangle_1_00) setLeft(v int32) { r.Left = v }
func (r *PositionalRectangle_1_00) setRight(v int32) { r.Right = v }
func (r *PositionalRectangle_1_00) setTop(v int32) { r.Top = v }
func (r *PositionalRectangle_1_00) setBottom(v int32) { r.Bottom = v }

// PositionalRectangleView reads a rectangle in game memory.
type PositionalRectangleView struct {
	r positionalRectangle
}

func NewPositionalRectangleView(p unsafe.Pointer, rev version.Revision) PositionalRectangleView {
	return PositionalRectangleView{positionalRectangleVariants.Select(rev).At(p)}
}

func (v PositionalRectangleView) Family() layout.Family { return v.r.Family() }
func (v PositionalRectangleView) Pointer() unsafe.Pointer { return v.r.pointer() }

// Index returns element i of the array starting at v.
func (v PositionalRectangleView) Index(i int) PositionalRectangleView {
	return PositionalRectangleView{v.r.at(i)}
}

func (v PositionalRectangleView) Left() int32 { return v.r.left() }
func (v PositionalRectangleView) Right() int32 { return v.r.right() }
func (v PositionalRectangleView) Top() int32 { return v.r.top() }
func (v PositionalRectangleView) Bottom() int32 { return v.r.bottom() }

// PositionalRectangleWrapper modifies a rectangle in place.
type PositionalRectangleWrapper struct {
	PositionalRectangleView
}

func NewPositionalRectangleWrapper(p unsafe.Pointer, rev version.Revision) PositionalRectangleWrapper {
	return PositionalRectangleWrapper{NewPositionalRectangleView(p, rev)}
}

func (w PositionalRectangleWrapper) View() PositionalRectangleView { return w.PositionalRectangleView }

func (w PositionalRectangleWrapper) Index(i int) PositionalRectangleWrapper {
	return PositionalRectangleWrapper{w.PositionalRectangleView.Index(i)}
}

// AssignMembers copies every field of src into w.
func (w PositionalRectangleWrapper) AssignMembers(src PositionalRectangleView) error {
	return w.r.assign(src.r)
}

func (w PositionalRectangleWrapper) SetLeft(v int32) { w.r.setLeft(v) }
func (w PositionalRectangleWrapper) SetRight(v int32) { w.r.setRight(v) }
func (w PositionalRectangleWrapper) SetTop(v int32) { w.r.setTop(v) }
func (w PositionalRectangleWrapper) SetBottom(v int32) { w.r.setBottom(v) }

// PositionalRectangleApi owns a rectangle stored inline; assigning one
// copies the rectangle.
type PositionalRectangleApi struct {
	o layout.Owned[PositionalRectangle_1_00, positionalRectangle]
}

func NewPositionalRectangleApi(rev version.Revision, left, right, top, bottom int32) PositionalRectangleApi {
	a := PositionalRectangleApi{layout.NewOwned[PositionalRectangle_1_00](positionalRectangleVariants.Select(rev))}
	r := a.o.Get()
	r.setLeft(left)
	r.setRight(right)
	r.setTop(top)
	r.setBottom(bottom)
	return a
}

// CopyPositionalRectangle makes an owned copy of v with the same layout.
func CopyPositionalRectangle(v PositionalRectangleView) PositionalRectangleApi {
	a := PositionalRectangleApi{layout.NewOwned[PositionalRectangle_1_00](positionalRectangleVariants.Of(v.Family()))}
	_ = a.o.Get().assign(v.r) // same family
	return a
}

func (a *PositionalRectangleApi) View() PositionalRectangleView {
	return PositionalRectangleView{a.o.Get()}
}

func (a *PositionalRectangleApi) Wrapper() PositionalRectangleWrapper {
	return PositionalRectangleWrapper{a.View()}
}

func (a *PositionalRectangleApi) Clone() PositionalRectangleApi { return *a }

func (a *PositionalRectangleApi) Family() layout.Family { return a.o.Get().Family() }
func (a *PositionalRectangleApi) Pointer() unsafe.Pointer { return a.o.Get().pointer() }

func (a *PositionalRectangleApi) AssignMembers(src PositionalRectangleView) error {
	return a.Wrapper().AssignMembers(src)
}

func (a *PositionalRectangleApi) Left() int32 { return a.o.Get().left() }
func (a *PositionalRectangleApi) Right() int32 { return a.o.Get().right() }
func (a *PositionalRectangleApi) Top() int32 { return a.o.Get().top() }
func (a *PositionalRectangleApi) Bottom() int32 { return a.o.Get().bottom() }
func (a *PositionalRectangleApi) SetLeft(v int32) { a.o.Get().setLeft(v) }
func (a *PositionalRectangleApi) SetRight(v int32) { a.o.Get().setRight(v) }
func (a *PositionalRectangleApi) SetTop(v int32) { a.o.Get().setTop(v) }
func (a *PositionalRectangleApi) SetBottom(v int32) { a.o.Get().setBottom(v) }
