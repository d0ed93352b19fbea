package d2

import (
	"unsafe"

	"d2mapi/packages/Game/layout"
	"d2mapi/packages/Memory/memory"
	"d2mapi/packages/Memory/version"
)

type CelContext_1_00 struct {
	unknown00 [0x38]byte
	Frame     uint32
	unknown3C [4]byte
	Direction uint32
	CelFile   memory.Ptr32
}

type CelContext_1_12A struct {
	unknown00 [4]byte
	CelFile   memory.Ptr32
	Frame     uint32
	unknown0C [0x34]byte
	Direction uint32
	unknown44 [4]byte
}

type CelContext_1_13C struct {
	Direction uint32
	unknown04 [0x30]byte
	CelFile   memory.Ptr32
	Frame     uint32
	unknown3C [0x0C]byte
}

type celContext interface {
	layout.Concrete
	pointer() unsafe.Pointer
	at(i int) celContext
	assign(src celContext) error

	celFile() memory.Ptr32
	direction() uint32
	frame() uint32
	setCelFile(v memory.Ptr32)
	setDirection(v uint32)
	setFrame(v uint32)
}

var celContextVariants = layout.Variants[celContext]{
	{
		Since:  version.First,
		Family: layout.Family1_00,
		At:     func(p unsafe.Pointer) celContext { return (*CelContext_1_00)(p) },
	},
	{
		Since:  version.V1_12A,
		Family: layout.Family1_12A,
		At:     func(p unsafe.Pointer) celContext { return (*CelContext_1_12A)(p) },
	},
	{
		Since:  version.V1_13ABeta,
		Family: layout.Family1_13C,
		At:     func(p unsafe.Pointer) celContext { return (*CelContext_1_13C)(p) },
	},
}

func (*CelContext_1_00) Family() layout.Family { return layout.Family1_00 }

func (c *CelContext_1_00) pointer() unsafe.Pointer { return unsafe.Pointer(c) }
func (c *CelContext_1_00) at(i int) celContext { return layout.At(c, i) }
func (c *CelContext_1_00) assign(src celContext) error {
	return layout.Assign("CelContext", c, src)
}

func (c *CelContext_1_00) celFile() memory.Ptr32 { return c.CelFile }
func (c *CelContext_1_00) direction() uint32 { return c.Direction }
func (c *CelContext_1_00) frame() uint32 { return c.Frame }
func (c *CelContext_1_00) setCelFile(v memory.Ptr32) { c.CelFile = v }
func (c *CelContext_1_00) setDirection(v uint32) { c.Direction = v }
func (c *CelContext_1_00) setFrame(v uint32) { c.Frame = v }

func (*CelContext_1_12A) Family() layout.Family { return layout.Family1_12A }

func (c *CelContext_1_12A) pointer() unsafe.Pointer { return unsafe.Pointer(c) }
func (c *CelContext_1_12A) at(i int) celContext { return layout.At(c, i) }
func (c *CelContext_1_12A) assign(src celContext) error {
	return layout.Assign("CelContext", c, src)
}

func (c *CelContext_1_12A) celFile() memory.Ptr32 { return c.CelFile }
func (c *CelContext_1_12A) direction() uint32 { return c.Direction }
func (c *CelContext_1_12A) frame() uint32 { return c.Frame }
func (c *CelContext_1_12A) setCelFile(v memory.Ptr32) { c.CelFile = v }
func (c *CelContext_1_12A) setDirection(v uint32) { c.Direction = v }
func (c *CelContext_1_12A) setFrame(v uint32) { c.Frame = v }

func (*CelContext_1_13C) Family() layout.Family { return layout.Family1_13C }

func (c *CelContext_1_13C) pointer() unsafe.Pointer { return unsafe.Pointer(c) }
func (c *CelContext_1_13C) at(i int) celContext { return layout.At(c, i) }
func (c *CelContext_1_13C) assign(src celContext) error {
	return layout.Assign("CelContext", c, src)
}

func (c *CelContext_1_13C) celFile() memory.Ptr32 { return c.CelFile }
func (c *CelContext_1_13C) direction() uint32 { return c.Direction }
func (c *CelContext_1_13C) frame() uint32 { return c.Frame }
func (c *CelContext_1_13C) setCelFile(v memory.Ptr32) { c.CelFile = v }
func (c *CelContext_1_13C) setDirection(v uint32) { c.Direction = v }
func (c *CelContext_1_13C) setFrame(v uint32) { c.Frame = v }

// CelContextView reads the draw request the game passes to its cel renderer.
// The field order moved twice, in 1.12A and again in the 1.13 betas.
type CelContextView struct {
	c celContext
}

func NewCelContextView(p unsafe.Pointer, rev version.Revision) CelContextView {
	return CelContextView{celContextVariants.Select(rev).At(p)}
}

func (v CelContextView) Family() layout.Family { return v.c.Family() }
func (v CelContextView) Pointer() unsafe.Pointer { return v.c.pointer() }
func (v CelContextView) Index(i int) CelContextView { return CelContextView{v.c.at(i)} }

func (v CelContextView) CelFile() memory.Address { return v.c.celFile().Address() }
func (v CelContextView) Direction() uint32 { return v.c.direction() }
func (v CelContextView) Frame() uint32 { return v.c.frame() }

type CelContextWrapper struct {
	CelContextView
}

func NewCelContextWrapper(p unsafe.Pointer, rev version.Revision) CelContextWrapper {
	return CelContextWrapper{NewCelContextView(p, rev)}
}

func (w CelContextWrapper) View() CelContextView { return w.CelContextView }
func (w CelContextWrapper) Index(i int) CelContextWrapper {
	return CelContextWrapper{w.CelContextView.Index(i)}
}

func (w CelContextWrapper) AssignMembers(src CelContextView) error {
	return w.c.assign(src.c)
}

func (w CelContextWrapper) SetCelFile(v memory.Ptr32) { w.c.setCelFile(v) }
func (w CelContextWrapper) SetDirection(v uint32) { w.c.setDirection(v) }
func (w CelContextWrapper) SetFrame(v uint32) { w.c.setFrame(v) }

// celContextStorage holds any CelContext layout inline.
type celContextStorage [0x48 / 4]uint32

// Compile-time checks that every layout fits celContextStorage.
const (
	_ = unsafe.Sizeof(celContextStorage{}) - unsafe.Sizeof(CelContext_1_00{})
	_ = unsafe.Sizeof(celContextStorage{}) - unsafe.Sizeof(CelContext_1_12A{})
	_ = unsafe.Sizeof(celContextStorage{}) - unsafe.Sizeof(CelContext_1_13C{})
)

// CelContextApi owns a cel context of the family chosen at construction.
// Assigning one copies the stored bytes.
type CelContextApi struct {
	o layout.Owned[celContextStorage, celContext]
}

func NewCelContextApi(rev version.Revision, celFile memory.Ptr32, direction, frame uint32) CelContextApi {
	a := CelContextApi{layout.NewOwned[celContextStorage](celContextVariants.Select(rev))}
	c := a.o.Get()
	c.setCelFile(celFile)
	c.setDirection(direction)
	c.setFrame(frame)
	return a
}

func CopyCelContext(v CelContextView) CelContextApi {
	a := CelContextApi{layout.NewOwned[celContextStorage](celContextVariants.Of(v.Family()))}
	_ = a.o.Get().assign(v.c) // same family
	return a
}

func (a *CelContextApi) View() CelContextView { return CelContextView{a.o.Get()} }
func (a *CelContextApi) Wrapper() CelContextWrapper { return CelContextWrapper{a.View()} }
func (a *CelContextApi) Clone() CelContextApi { return *a }

func (a *CelContextApi) Family() layout.Family { return a.o.Get().Family() }
func (a *CelContextApi) Pointer() unsafe.Pointer { return a.o.Get().pointer() }

func (a *CelContextApi) AssignMembers(src CelContextView) error {
	return a.Wrapper().AssignMembers(src)
}

func (a *CelContextApi) CelFile() memory.Address { return a.View().CelFile() }
func (a *CelContextApi) Direction() uint32 { return a.o.Get().direction() }
func (a *CelContextApi) Frame() uint32 { return a.o.Get().frame() }
func (a *CelContextApi) SetCelFile(v memory.Ptr32) { a.o.Get().setCelFile(v) }
func (a *CelContextApi) SetDirection(v uint32) { a.o.Get().setDirection(v) }
func (a *CelContextApi) SetFrame(v uint32) { a.o.Get().setFrame(v) }
