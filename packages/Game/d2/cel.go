package d2

import (
	"unsafe"

	"d2mapi/packages/Game/layout"
	"d2mapi/packages/Memory/memory"
	"d2mapi/packages/Memory/version"
)

// Cel_1_00 is the header of one decoded DC6 frame.
type Cel_1_00 struct {
	Flip       uint32
	Width      int32
	Height     int32
	OffsetX    int32
	OffsetY    int32
	Reserved14 uint32
	NextBlock  memory.Ptr32
	Length     uint32
}

type cel interface {
	layout.Concrete
	pointer() unsafe.Pointer
	at(i int) cel
	assign(src cel) error

	width() int32
	height() int32
	offsetX() int32
	offsetY() int32
	setWidth(v int32)
	setHeight(v int32)
	setOffsetX(v int32)
	setOffsetY(v int32)
}

var celVariants = layout.Variants[cel]{
	{
		Since:  version.First,
		Family: layout.Family1_00,
		At:     func(p unsafe.Pointer) cel { return (*Cel_1_00)(p) },
	},
}

func (*Cel_1_00) Family() layout.Family { return layout.Family1_00 }

func (c *Cel_1_00) pointer() unsafe.Pointer { return unsafe.Pointer(c) }
func (c *Cel_1_00) at(i int) cel { return layout.At(c, i) }
func (c *Cel_1_00) assign(src cel) error { return layout.Assign("Cel", c, src) }

func (c *Cel_1_00) width() int32 { return c.Width }
func (c *Cel_1_00) height() int32 { return c.Height }
func (c *Cel_1_00) offsetX() int32 { return c.OffsetX }
func (c *Cel_1_00) offsetY() int32 { return c.OffsetY }
func (c *Cel_1_00) setWidth(v int32) { c.Width = v }
func (c *Cel_1_00) setHeight(v int32) { c.Height = v }
func (c *Cel_1_00) setOffsetX(v int32) { c.OffsetX = v }
func (c *Cel_1_00) setOffsetY(v int32) { c.OffsetY = v }

type CelView struct {
	c cel
}

func NewCelView(p unsafe.Pointer, rev version.Revision) CelView {
	return CelView{celVariants.Select(rev).At(p)}
}

func (v CelView) Family() layout.Family { return v.c.Family() }
func (v CelView) Pointer() unsafe.Pointer { return v.c.pointer() }
func (v CelView) Index(i int) CelView { return CelView{v.c.at(i)} }

func (v CelView) Width() int32 { return v.c.width() }
func (v CelView) Height() int32 { return v.c.height() }
func (v CelView) OffsetX() int32 { return v.c.offsetX() }
func (v CelView) OffsetY() int32 { return v.c.offsetY() }

type CelWrapper struct {
	CelView
}

func NewCelWrapper(p unsafe.Pointer, rev version.Revision) CelWrapper {
	return CelWrapper{NewCelView(p, rev)}
}

func (w CelWrapper) View() CelView { return w.CelView }
func (w CelWrapper) Index(i int) CelWrapper { return CelWrapper{w.CelView.Index(i)} }

func (w CelWrapper) AssignMembers(src CelView) error { return w.c.assign(src.c) }

func (w CelWrapper) SetWidth(v int32) { w.c.setWidth(v) }
func (w CelWrapper) SetHeight(v int32) { w.c.setHeight(v) }
func (w CelWrapper) SetOffsetX(v int32) { w.c.setOffsetX(v) }
func (w CelWrapper) SetOffsetY(v int32) { w.c.setOffsetY(v) }

type CelApi struct {
	o layout.Owned[Cel_1_00, cel]
}

func CopyCel(v CelView) CelApi {
	a := CelApi{layout.NewOwned[Cel_1_00](celVariants.Of(v.Family()))}
	_ = a.o.Get().assign(v.c) // same family
	return a
}

func (a *CelApi) View() CelView { return CelView{a.o.Get()} }
func (a *CelApi) Wrapper() CelWrapper { return CelWrapper{a.View()} }
func (a *CelApi) Clone() CelApi { return *a }

func (a *CelApi) Family() layout.Family { return a.o.Get().Family() }
func (a *CelApi) Pointer() unsafe.Pointer { return a.o.Get().pointer() }

func (a *CelApi) AssignMembers(src CelView) error { return a.Wrapper().AssignMembers(src) }

func (a *CelApi) Width() int32 { return a.o.Get().width() }
func (a *CelApi) Height() int32 { return a.o.Get().height() }
func (a *CelApi) OffsetX() int32 { return a.o.Get().offsetX() }
func (a *CelApi) OffsetY() int32 { return a.o.Get().offsetY() }
func (a *CelApi) SetWidth(v int32) { a.o.Get().setWidth(v) }
func (a *CelApi) SetHeight(v int32) { a.o.Get().setHeight(v) }
func (a *CelApi) SetOffsetX(v int32) { a.o.Get().setOffsetX(v) }
func (a *CelApi) SetOffsetY(v int32) { a.o.Get().setOffsetY(v) }
