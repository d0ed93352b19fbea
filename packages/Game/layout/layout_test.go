package layout

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d2mapi/packages/Memory/version"
)

type pairA struct {
	X, Y int32
}

func (*pairA) Family() Family { return Family1_00 }

type pairB struct {
	Y, X int32
}

func (*pairB) Family() Family { return Family1_13C }

var pairVariants = Variants[Concrete]{
	{Since: version.First, Family: Family1_00, At: func(p unsafe.Pointer) Concrete { return (*pairA)(p) }},
	{Since: version.V1_13ABeta, Family: Family1_13C, At: func(p unsafe.Pointer) Concrete { return (*pairB)(p) }},
}

func TestSelect(t *testing.T) {
	assert.Equal(t, Family1_00, pairVariants.Select(version.First).Family)
	assert.Equal(t, Family1_00, pairVariants.Select(version.V1_12A).Family)
	assert.Equal(t, Family1_13C, pairVariants.Select(version.V1_13ABeta).Family)
	assert.Equal(t, Family1_13C, pairVariants.Select(version.Last).Family)
	assert.Panics(t, func() { pairVariants.Select(version.Unknown) })
}

func TestAssign(t *testing.T) {
	dst := &pairA{}
	require.NoError(t, Assign("Pair", dst, &pairA{X: 1, Y: 2}))
	assert.Equal(t, pairA{X: 1, Y: 2}, *dst)

	err := Assign("Pair", dst, &pairB{X: 9, Y: 9})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLayoutMismatch))
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Pair", mismatch.Entity)
	assert.Equal(t, Family1_00, mismatch.Dest)
	assert.Equal(t, Family1_13C, mismatch.Src)
	assert.Equal(t, pairA{X: 1, Y: 2}, *dst)
}

func TestAt(t *testing.T) {
	arr := [3]pairA{{1, 2}, {3, 4}, {5, 6}}
	assert.Same(t, &arr[2], At(&arr[0], 2))
	assert.Same(t, &arr[0], At(&arr[1], -1))
}

func TestOf(t *testing.T) {
	assert.Equal(t, version.V1_13ABeta, pairVariants.Of(Family1_13C).Since)
	assert.Equal(t, version.First, pairVariants.Of(Family1_00).Since)
	assert.Panics(t, func() { pairVariants.Of(Family1_12A) })
}

func TestOwnedCopiesValue(t *testing.T) {
	o := NewOwned[pairA](pairVariants.Of(Family1_00))
	p := o.Get().(*pairA)
	p.X = 5
	assert.Same(t, &o.value, p)

	c := o
	c.Get().(*pairA).X = 6
	assert.Equal(t, int32(5), o.value.X)
	assert.Equal(t, int32(6), c.value.X)
	assert.NotSame(t, o.Get(), c.Get())

	// Storage of another type read through the second layout.
	wide := NewOwned[[2]int32](pairVariants.Of(Family1_13C))
	wide.Get().(*pairB).X = 7
	assert.Equal(t, [2]int32{0, 7}, wide.value)
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "1_00", Family1_00.String())
	assert.Equal(t, "1_12A", Family1_12A.String())
	assert.Equal(t, "1_13C", Family1_13C.String())
	assert.Equal(t, "Family(7)", Family(7).String())
}

func TestContract(t *testing.T) {
	ok := ContractOf[pairB]("Pair", Family1_13C, 8, Field{Name: "Y", Offset: 0}, Field{Name: "X", Offset: 4})
	assert.NoError(t, ok.Verify())

	badSize := ContractOf[pairB]("Pair", Family1_13C, 12)
	assert.ErrorContains(t, badSize.Verify(), "size is 0x8")

	badOffset := ContractOf[pairB]("Pair", Family1_13C, 8, Field{Name: "X", Offset: 0})
	assert.ErrorContains(t, badOffset.Verify(), "field X at 0x4")

	missing := ContractOf[pairB]("Pair", Family1_13C, 8, Field{Name: "Z", Offset: 0})
	assert.ErrorContains(t, missing.Verify(), "missing field Z")

	notStruct := ContractOf[int32]("Scalar", Family1_00, 4)
	assert.ErrorContains(t, notStruct.Verify(), "is not a struct")
}
