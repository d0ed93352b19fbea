package d2

import (
	"bytes"
	"fmt"
	"unsafe"

	"d2mapi/packages/Game/layout"
	"d2mapi/packages/Memory/memory"
	"d2mapi/packages/Memory/version"
)

// MaxPath matches the Windows MAX_PATH buffer the game embeds.
const MaxPath = 260

type MpqArchiveHandle_1_00 struct {
	MpqArchive     memory.Ptr32
	MpqArchivePath [MaxPath]byte
}

type mpqArchiveHandle interface {
	layout.Concrete
	pointer() unsafe.Pointer
	at(i int) mpqArchiveHandle
	assign(src mpqArchiveHandle) error

	mpqArchive() memory.Ptr32
	mpqArchivePath() []byte
	setMpqArchive(v memory.Ptr32)
}

var mpqArchiveHandleVariants = layout.Variants[mpqArchiveHandle]{
	{
		Since:  version.First,
		Family: layout.Family1_00,
		At:     func(p unsafe.Pointer) mpqArchiveHandle { return (*MpqArchiveHandle_1_00)(p) },
	},
}

func (*MpqArchiveHandle_1_00) Family() layout.Family { return layout.Family1_00 }

func (h *MpqArchiveHandle_1_00) pointer() unsafe.Pointer { return unsafe.Pointer(h) }
func (h *MpqArchiveHandle_1_00) at(i int) mpqArchiveHandle { return layout.At(h, i) }
func (h *MpqArchiveHandle_1_00) assign(src mpqArchiveHandle) error {
	return layout.Assign("MpqArchiveHandle", h, src)
}

func (h *MpqArchiveHandle_1_00) mpqArchive() memory.Ptr32 { return h.MpqArchive }
func (h *MpqArchiveHandle_1_00) mpqArchivePath() []byte { return h.MpqArchivePath[:] }
func (h *MpqArchiveHandle_1_00) setMpqArchive(v memory.Ptr32) { h.MpqArchive = v }

// MpqArchiveHandleView reads a handle returned by the game's archive loader.
type MpqArchiveHandleView struct {
	h mpqArchiveHandle
}

func NewMpqArchiveHandleView(p unsafe.Pointer, rev version.Revision) MpqArchiveHandleView {
	return MpqArchiveHandleView{mpqArchiveHandleVariants.Select(rev).At(p)}
}

func (v MpqArchiveHandleView) Family() layout.Family { return v.h.Family() }
func (v MpqArchiveHandleView) Pointer() unsafe.Pointer { return v.h.pointer() }
func (v MpqArchiveHandleView) Index(i int) MpqArchiveHandleView {
	return MpqArchiveHandleView{v.h.at(i)}
}

// MpqArchive is the address of the underlying Storm archive.
func (v MpqArchiveHandleView) MpqArchive() memory.Address { return v.h.mpqArchive().Address() }

// MpqArchivePath returns the path up to its NUL terminator.
func (v MpqArchiveHandleView) MpqArchivePath() string {
	b := v.h.mpqArchivePath()
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

type MpqArchiveHandleWrapper struct {
	MpqArchiveHandleView
}

func NewMpqArchiveHandleWrapper(p unsafe.Pointer, rev version.Revision) MpqArchiveHandleWrapper {
	return MpqArchiveHandleWrapper{NewMpqArchiveHandleView(p, rev)}
}

func (w MpqArchiveHandleWrapper) View() MpqArchiveHandleView { return w.MpqArchiveHandleView }
func (w MpqArchiveHandleWrapper) Index(i int) MpqArchiveHandleWrapper {
	return MpqArchiveHandleWrapper{w.MpqArchiveHandleView.Index(i)}
}

func (w MpqArchiveHandleWrapper) AssignMembers(src MpqArchiveHandleView) error {
	return w.h.assign(src.h)
}

func (w MpqArchiveHandleWrapper) SetMpqArchive(v memory.Ptr32) { w.h.setMpqArchive(v) }

// SetMpqArchivePath stores path with a NUL terminator. Paths that do not fit
// are rejected and nothing is written.
func (w MpqArchiveHandleWrapper) SetMpqArchivePath(path string) error {
	b := w.h.mpqArchivePath()
	if len(path) >= len(b) {
		return fmt.Errorf("mpq archive path is %d bytes, limit is %d", len(path), len(b)-1)
	}
	n := copy(b, path)
	clear(b[n:])
	return nil
}

type MpqArchiveHandleApi struct {
	o layout.Owned[MpqArchiveHandle_1_00, mpqArchiveHandle]
}

func NewMpqArchiveHandleApi(rev version.Revision, archive memory.Ptr32, path string) (MpqArchiveHandleApi, error) {
	a := MpqArchiveHandleApi{layout.NewOwned[MpqArchiveHandle_1_00](mpqArchiveHandleVariants.Select(rev))}
	a.SetMpqArchive(archive)
	if err := a.SetMpqArchivePath(path); err != nil {
		return MpqArchiveHandleApi{}, err
	}
	return a, nil
}

func CopyMpqArchiveHandle(v MpqArchiveHandleView) MpqArchiveHandleApi {
	a := MpqArchiveHandleApi{layout.NewOwned[MpqArchiveHandle_1_00](mpqArchiveHandleVariants.Of(v.Family()))}
	_ = a.o.Get().assign(v.h) // same family
	return a
}

func (a *MpqArchiveHandleApi) View() MpqArchiveHandleView {
	return MpqArchiveHandleView{a.o.Get()}
}
func (a *MpqArchiveHandleApi) Wrapper() MpqArchiveHandleWrapper {
	return MpqArchiveHandleWrapper{a.View()}
}
func (a *MpqArchiveHandleApi) Clone() MpqArchiveHandleApi { return *a }

func (a *MpqArchiveHandleApi) Family() layout.Family { return a.o.Get().Family() }
func (a *MpqArchiveHandleApi) Pointer() unsafe.Pointer { return a.o.Get().pointer() }

func (a *MpqArchiveHandleApi) AssignMembers(src MpqArchiveHandleView) error {
	return a.Wrapper().AssignMembers(src)
}

func (a *MpqArchiveHandleApi) MpqArchive() memory.Address { return a.View().MpqArchive() }
func (a *MpqArchiveHandleApi) MpqArchivePath() string { return a.View().MpqArchivePath() }
func (a *MpqArchiveHandleApi) SetMpqArchive(v memory.Ptr32) { a.o.Get().setMpqArchive(v) }
func (a *MpqArchiveHandleApi) SetMpqArchivePath(path string) error {
	return a.Wrapper().SetMpqArchivePath(path)
}
