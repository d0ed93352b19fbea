package d2

import (
	"unsafe"

	"d2mapi/packages/Game/layout"
	"d2mapi/packages/Memory/version"
)

type GridLayout_1_00 struct {
	NumColumns uint8
	NumRows    uint8
	pad02      [2]uint8
	Position   PositionalRectangle_1_00
	Width      uint8
	Height     uint8
	pad16      [2]uint8
}

type gridLayout interface {
	layout.Concrete
	pointer() unsafe.Pointer
	at(i int) gridLayout
	assign(src gridLayout) error

	numColumns() uint8
	numRows() uint8
	position() positionalRectangle
	width() uint8
	height() uint8
	setNumColumns(v uint8)
	setNumRows(v uint8)
	setWidth(v uint8)
	setHeight(v uint8)
}

var gridLayoutVariants = layout.Variants[gridLayout]{
	{
		Since:  version.First,
		Family: layout.Family1_00,
		At:     func(p unsafe.Pointer) gridLayout { return (*GridLayout_1_00)(p) },
	},
}

func (*GridLayout_1_00) Family() layout.Family { return layout.Family1_00 }

func (g *GridLayout_1_00) pointer() unsafe.Pointer { return unsafe.Pointer(g) }
func (g *GridLayout_1_00) at(i int) gridLayout { return layout.At(g, i) }
func (g *GridLayout_1_00) assign(src gridLayout) error {
	return layout.Assign("GridLayout", g, src)
}

func (g *GridLayout_1_00) numColumns() uint8 { return g.NumColumns }
func (g *GridLayout_1_00) numRows() uint8 { return g.NumRows }
func (g *GridLayout_1_00) position() positionalRectangle { return &g.Position }
func (g *GridLayout_1_00) width() uint8 { return g.Width }
func (g *GridLayout_1_00) height() uint8 { return g.Height }
func (g *GridLayout_1_00) setNumColumns(v uint8) { g.NumColumns = v }
func (g *GridLayout_1_00) setNumRows(v uint8) { g.NumRows = v }
func (g *GridLayout_1_00) setWidth(v uint8) { g.Width = v }
func (g *GridLayout_1_00) setHeight(v uint8) { g.Height = v }

// GridLayoutView reads the cell grid of an inventory panel.
type GridLayoutView struct {
	g gridLayout
}

func NewGridLayoutView(p unsafe.Pointer, rev version.Revision) GridLayoutView {
	return GridLayoutView{gridLayoutVariants.Select(rev).At(p)}
}

func (v GridLayoutView) Family() layout.Family { return v.g.Family() }
func (v GridLayoutView) Pointer() unsafe.Pointer { return v.g.pointer() }
func (v GridLayoutView) Index(i int) GridLayoutView { return GridLayoutView{v.g.at(i)} }

func (v GridLayoutView) NumColumns() uint8 { return v.g.numColumns() }
func (v GridLayoutView) NumRows() uint8 { return v.g.numRows() }
func (v GridLayoutView) Position() PositionalRectangleView {
	return PositionalRectangleView{v.g.position()}
}
func (v GridLayoutView) Width() uint8 { return v.g.width() }
func (v GridLayoutView) Height() uint8 { return v.g.height() }

type GridLayoutWrapper struct {
	GridLayoutView
}

func NewGridLayoutWrapper(p unsafe.Pointer, rev version.Revision) GridLayoutWrapper {
	return GridLayoutWrapper{NewGridLayoutView(p, rev)}
}

func (w GridLayoutWrapper) View() GridLayoutView { return w.GridLayoutView }
func (w GridLayoutWrapper) Index(i int) GridLayoutWrapper {
	return GridLayoutWrapper{w.GridLayoutView.Index(i)}
}

func (w GridLayoutWrapper) AssignMembers(src GridLayoutView) error {
	return w.g.assign(src.g)
}

func (w GridLayoutWrapper) Position() PositionalRectangleWrapper {
	return PositionalRectangleWrapper{w.GridLayoutView.Position()}
}
func (w GridLayoutWrapper) SetNumColumns(v uint8) { w.g.setNumColumns(v) }
func (w GridLayoutWrapper) SetNumRows(v uint8) { w.g.setNumRows(v) }
func (w GridLayoutWrapper) SetWidth(v uint8) { w.g.setWidth(v) }
func (w GridLayoutWrapper) SetHeight(v uint8) { w.g.setHeight(v) }

type GridLayoutApi struct {
	o layout.Owned[GridLayout_1_00, gridLayout]
}

func NewGridLayoutApi(rev version.Revision, numColumns, numRows uint8, position PositionalRectangleView, width, height uint8) (GridLayoutApi, error) {
	a := GridLayoutApi{layout.NewOwned[GridLayout_1_00](gridLayoutVariants.Select(rev))}
	g := a.o.Get()
	g.setNumColumns(numColumns)
	g.setNumRows(numRows)
	if err := g.position().assign(position.r); err != nil {
		return GridLayoutApi{}, err
	}
	g.setWidth(width)
	g.setHeight(height)
	return a, nil
}

func CopyGridLayout(v GridLayoutView) GridLayoutApi {
	a := GridLayoutApi{layout.NewOwned[GridLayout_1_00](gridLayoutVariants.Of(v.Family()))}
	_ = a.o.Get().assign(v.g) // same family
	return a
}

func (a *GridLayoutApi) View() GridLayoutView { return GridLayoutView{a.o.Get()} }
func (a *GridLayoutApi) Wrapper() GridLayoutWrapper { return GridLayoutWrapper{a.View()} }
func (a *GridLayoutApi) Clone() GridLayoutApi { return *a }

func (a *GridLayoutApi) Family() layout.Family { return a.o.Get().Family() }
func (a *GridLayoutApi) Pointer() unsafe.Pointer { return a.o.Get().pointer() }

func (a *GridLayoutApi) AssignMembers(src GridLayoutView) error {
	return a.Wrapper().AssignMembers(src)
}

func (a *GridLayoutApi) NumColumns() uint8 { return a.o.Get().numColumns() }
func (a *GridLayoutApi) NumRows() uint8 { return a.o.Get().numRows() }
func (a *GridLayoutApi) Position() PositionalRectangleWrapper { return a.Wrapper().Position() }
func (a *GridLayoutApi) Width() uint8 { return a.o.Get().width() }
func (a *GridLayoutApi) Height() uint8 { return a.o.Get().height() }
func (a *GridLayoutApi) SetNumColumns(v uint8) { a.o.Get().setNumColumns(v) }
func (a *GridLayoutApi) SetNumRows(v uint8) { a.o.Get().setNumRows(v) }
func (a *GridLayoutApi) SetWidth(v uint8) { a.o.Get().setWidth(v) }
func (a *GridLayoutApi) SetHeight(v uint8) { a.o.Get().setHeight(v) }
