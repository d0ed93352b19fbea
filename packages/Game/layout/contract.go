package layout

import (
	"fmt"
	"reflect"

	"github.com/modern-go/reflect2"
)

type Field struct {
	Name   string
	Offset uintptr
}

// Contract is the binary shape a layout struct must keep: its size and the
// offsets of its named fields.
type Contract struct {
	Entity string
	Family Family
	Size   uintptr
	Fields []Field
	typ    reflect2.Type
}

func ContractOf[T any](entity string, family Family, size uintptr, fields ...Field) Contract {
	var zero T
	return Contract{
		Entity: entity,
		Family: family,
		Size:   size,
		Fields: fields,
		typ:    reflect2.TypeOf(zero),
	}
}

func (c Contract) Type() reflect.Type {
	return c.typ.Type1()
}

// Verify compares the compiled layout with the contract.
func (c Contract) Verify() error {
	st, ok := c.typ.(reflect2.StructType)
	if !ok {
		return fmt.Errorf("%s_%v: %v is not a struct", c.Entity, c.Family, c.typ)
	}
	if got := c.typ.Type1().Size(); got != c.Size {
		return fmt.Errorf("%s_%v: size is %#x, want %#x", c.Entity, c.Family, got, c.Size)
	}
	for _, f := range c.Fields {
		sf := st.FieldByName(f.Name)
		if sf == nil {
			return fmt.Errorf("%s_%v: missing field %s", c.Entity, c.Family, f.Name)
		}
		if sf.Offset() != f.Offset {
			return fmt.Errorf("%s_%v: field %s at %#x, want %#x", c.Entity, c.Family, f.Name, sf.Offset(), f.Offset)
		}
	}
	return nil
}
