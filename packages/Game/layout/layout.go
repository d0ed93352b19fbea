package layout

import (
	"errors"
	"fmt"
	"unsafe"

	"d2mapi/packages/Memory/version"
)

// Family names a physical struct shape shared by a range of revisions.
type Family int

const (
	Family1_00 Family = iota
	Family1_12A
	Family1_13C
)

var familyNames = [...]string{"1_00", "1_12A", "1_13C"}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

var ErrLayoutMismatch = errors.New("layout mismatch")

type MismatchError struct {
	Entity string
	Dest   Family
	Src    Family
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %v: destination is %v, source is %v", e.Entity, ErrLayoutMismatch, e.Dest, e.Src)
}

func (e *MismatchError) Unwrap() error {
	return ErrLayoutMismatch
}

// Concrete is implemented by every per-family layout struct.
type Concrete interface {
	Family() Family
}

// Variant binds one concrete layout of an entity to the first revision using it.
type Variant[I Concrete] struct {
	Since  version.Revision
	Family Family
	// At reinterprets p as this layout. It is the only place raw memory becomes typed.
	At func(p unsafe.Pointer) I
}

// Variants lists an entity's layouts in ascending Since order.
type Variants[I Concrete] []Variant[I]

// Select returns the layout active in rev. Constructing an accessor before the
// revision is known is a programming error and panics.
func (vs Variants[I]) Select(rev version.Revision) Variant[I] {
	if !rev.Valid() {
		panic(fmt.Sprintf("layout: cannot select a layout for %v", rev))
	}
	for i := len(vs) - 1; i >= 0; i-- {
		if rev >= vs[i].Since {
			return vs[i]
		}
	}
	panic(fmt.Sprintf("layout: no layout covers %v", rev))
}

// Of returns the variant of family f. Views only come from listed variants,
// so a missing family panics.
func (vs Variants[I]) Of(f Family) Variant[I] {
	for _, v := range vs {
		if v.Family == f {
			return v
		}
	}
	panic(fmt.Sprintf("layout: no %v layout", f))
}

// Owned stores one concrete layout inline in S, which must be at least as
// large and as aligned as every layout of the entity. Assigning an Owned
// copies the stored bytes.
type Owned[S any, I Concrete] struct {
	at    func(p unsafe.Pointer) I
	value S
}

// NewOwned returns zeroed storage interpreted through v.
func NewOwned[S any, I Concrete](v Variant[I]) Owned[S, I] {
	return Owned[S, I]{at: v.At}
}

// Get returns the stored layout. The result aliases o.
func (o *Owned[S, I]) Get() I {
	return o.at(unsafe.Pointer(&o.value))
}

// Assign copies the full byte image of src into dst when both are the same
// concrete layout. Nothing is written on mismatch.
func Assign[T any, PT interface {
	*T
	Concrete
}](entity string, dst PT, src Concrete) error {
	s, ok := src.(PT)
	if !ok {
		return &MismatchError{Entity: entity, Dest: dst.Family(), Src: src.Family()}
	}
	*dst = *s
	return nil
}

// At treats p as the first element of an array of T and returns element i.
// No bounds are checked.
func At[T any](p *T, i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(p), i*int(unsafe.Sizeof(*p))))
}
