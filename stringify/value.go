// Package stringify converts arbitrary values into display text.
//
// Values are classified once into a closed set of variants and formatted by an
// exhaustive switch, so output never depends on the order of type checks.
package stringify

import (
	"fmt"
	"reflect"
)

// Value is one of Int, Text, Float, List or Other.
type Value interface {
	value()
}

// Int is any integral number.
type Int int64

// Text is a string shown as-is.
type Text string

// Float is a floating point number.
type Float float64

// List is an ordered collection whose elements are stringified recursively.
type List []Value

// Other holds the generic textual representation of any other value.
type Other string

func (Int) value()   {}
func (Text) value()  {}
func (Float) value() {}
func (List) value()  {}
func (Other) value() {}

// Null is the representation of an absent value.
const Null = Other("null")

// Of classifies x.
func Of(x any) Value {
	switch v := x.(type) {
	case nil:
		return Null
	case Value:
		return v
	case string:
		return Text(v)
	case int:
		return Int(v)
	case int8:
		return Int(v)
	case int16:
		return Int(v)
	case int32:
		return Int(v)
	case int64:
		return Int(v)
	case uint8:
		return Int(v)
	case uint16:
		return Int(v)
	case uint32:
		return Int(v)
	case uint:
		return Int(v)
	case uint64:
		return Int(v)
	case float32:
		return Float(v)
	case float64:
		return Float(v)
	case fmt.Stringer:
		return Other(v.String())
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return List{}
		}

		list := make(List, rv.Len())
		for i := range list {
			list[i] = Of(rv.Index(i).Interface())
		}
		return list
	default:
		return Other(fmt.Sprint(x))
	}
}
