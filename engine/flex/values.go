package flex

import "strings"

// valueArray constrains the backing arrays a Values may use. The size of a
// Values is therefore fixed by its type argument.
type valueArray interface {
	~[EdgeCount]CompactValue | ~[DimensionCount]CompactValue
}

// Values is a fixed-size array of style values, indexed by an enum such as
// Edge or Dimension. The zero value has all slots undefined.
type Values[A valueArray] struct {
	slots A
}

// EdgeValues holds one value per Edge.
type EdgeValues = Values[[EdgeCount]CompactValue]

// DimensionValues holds one value per Dimension.
type DimensionValues = Values[[DimensionCount]CompactValue]

// NewValues creates a Values with every slot set to def.
func NewValues[A valueArray](def CompactValue) Values[A] {
	var v Values[A]
	for i := 0; i < len(v.slots); i++ {
		v.slots[i] = def
	}
	return v
}

// Len is the number of slots.
func (v Values[A]) Len() int {
	return len(v.slots)
}

// Get returns the value at index i.
func (v Values[A]) Get(i int) CompactValue {
	return v.slots[i]
}

// Set changes the value at index i.
func (v *Values[A]) Set(i int, c CompactValue) {
	v.slots[i] = c
}

// Equals is true if all slots of v and other are equal.
func (v Values[A]) Equals(other Values[A]) bool {
	for i := 0; i < len(v.slots); i++ {
		if !v.slots[i].Equals(other.slots[i]) {
			return false
		}
	}
	return true
}

func (v Values[A]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < len(v.slots); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.slots[i].String())
	}
	b.WriteByte(']')
	return b.String()
}

// edgeValue is a typed shortcut for edge arrays.
func edgeValue(v *EdgeValues, e Edge) CompactValue {
	return v.slots[e]
}

// dimValue is a typed shortcut for dimension arrays.
func dimValue(v *DimensionValues, d Dimension) CompactValue {
	return v.slots[d]
}
