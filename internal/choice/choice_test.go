package choice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	exact Slot = iota + 1
	lower
	upper
)

func TestNewAndGet(t *testing.T) {
	o := New(lower, int32(5))
	assert.Equal(t, lower, o.Slot())

	v, ok := o.Get(lower)
	assert.True(t, ok)
	assert.Equal(t, int32(5), v)

	_, ok = o.Get(exact)
	assert.False(t, ok)
	_, ok = o.Get(upper)
	assert.False(t, ok)
}

func TestNewNoneIsEmpty(t *testing.T) {
	o := New(None, "ignored")
	assert.True(t, o.IsZero())
	assert.Equal(t, Of[string]{}, o)
}

func TestFirstPicksLowestSlot(t *testing.T) {
	a, b := int32(1), int32(2)

	assert.Equal(t, New(exact, a), First(&a, &b, nil))
	assert.Equal(t, New(lower, b), First(nil, &b, &a))
	assert.Equal(t, New(upper, a), First(nil, nil, &a))
	assert.True(t, First[int32](nil, nil, nil).IsZero())
}

func TestPtrOnlyForChosenSlot(t *testing.T) {
	o := New(upper, int32(45))
	assert.Nil(t, o.Ptr(exact))
	assert.Nil(t, o.Ptr(lower))
	if p := o.Ptr(upper); assert.NotNil(t, p) {
		assert.Equal(t, int32(45), *p)
		*p = 0
		v, _ := o.Get(upper)
		assert.Equal(t, int32(45), v, "Ptr must not alias the stored value")
	}
}

func TestSome(t *testing.T) {
	o := Some("#ff0000")
	v, ok := o.Value()
	assert.True(t, ok)
	assert.Equal(t, "#ff0000", v)
	assert.Equal(t, Slot(1), o.Slot())
}
