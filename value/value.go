/*
Package value defines the kinds of values scripts compute with.

Value is a closed sum type: every value is one of Null, Bool, Num, Str, Arr,
*Obj, Error or Fn, and no other package can add kinds. Clients switch over
the concrete types:

	switch v := v.(type) {
	case value.Num:
		…
	case value.Str:
		…
	}

Arr and *Obj are handles. Copying them copies the handle, not the contents,
so mutations are visible to every holder.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package value

import (
	"slices"

	"github.com/npillmayer/textprim"
	"github.com/npillmayer/textprim/seq"
)

// Value is a script value.
type Value interface {
	isValue()
}

// Null is the absent value.
type Null struct{}

// Bool is a boolean value.
type Bool bool

// Num is a number. Scripts know only double precision floats.
type Num float64

// Str is a text value.
type Str struct {
	Text textprim.Text
}

// Arr is a handle to a sequence of values.
type Arr struct {
	*seq.Seq[Value]
}

// Obj is a mapping from keys to values which remembers the insertion order
// of its keys.
type Obj struct {
	keys []string
	vals map[string]Value
}

// Error is an error value, carrying a name and optional information.
type Error struct {
	Name string
	Info Value // may be nil
}

// Fn is a callable value. Only natively implemented functions are
// represented here.
type Fn struct {
	Name   string
	Native func(args []Value) (Value, error)
}

func (Null) isValue()  {}
func (Bool) isValue()  {}
func (Num) isValue()   {}
func (Str) isValue()   {}
func (Arr) isValue()   {}
func (*Obj) isValue()  {}
func (Error) isValue() {}
func (Fn) isValue()    {}

// NewStr creates a text value from a Go string.
func NewStr(s string) Str {
	return Str{Text: textprim.FromString(s)}
}

// NewArr creates an array holding vals.
func NewArr(vals ...Value) Arr {
	return Arr{seq.New(vals...)}
}

// NewError creates an error value.
func NewError(name string, info Value) Error {
	return Error{Name: name, Info: info}
}

// NewObj creates an empty object.
func NewObj() *Obj {
	return &Obj{vals: make(map[string]Value)}
}

// Get returns the value for key.
func (o *Obj) Get(key string) (Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Obj) Has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

// Set sets the value for key. New keys are appended to the key order.
func (o *Obj) Set(key string, v Value) {
	if o.vals == nil {
		o.vals = make(map[string]Value)
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Len returns the number of keys.
func (o *Obj) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Obj) Keys() []string {
	return slices.Clone(o.keys)
}

// Vals returns the values in key order.
func (o *Obj) Vals() []Value {
	vals := make([]Value, len(o.keys))
	for i, k := range o.keys {
		vals[i] = o.vals[k]
	}
	return vals
}

// Copy returns a shallow copy of o.
func (o *Obj) Copy() *Obj {
	c := NewObj()
	for _, k := range o.keys {
		c.Set(k, o.vals[k])
	}
	return c
}

// TypeName returns the name of the kind of v: "null", "bool", "num", "str",
// "arr", "obj", "error" or "fn". A nil Value counts as null.
func TypeName(v Value) string {
	switch v.(type) {
	case nil, Null:
		return "null"
	case Bool:
		return "bool"
	case Num:
		return "num"
	case Str:
		return "str"
	case Arr:
		return "arr"
	case *Obj:
		return "obj"
	case Error:
		return "error"
	case Fn:
		return "fn"
	}
	panic("value: unknown kind")
}
