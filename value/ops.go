package value

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"reflect"

	"github.com/npillmayer/textprim"
)

var (
	quote     = textprim.FromString(`"`)
	backslash = textprim.FromString(`\`)
	sepComma  = textprim.FromString(", ")
)

// Repr returns the text representation of v. Texts at the top level are
// returned as they are; nested texts are quoted. Values which contain
// themselves are printed as "..." at the point of recursion.
func Repr(v Value) textprim.Text {
	return repr(v, false, make(map[any]bool))
}

func repr(v Value, nested bool, seen map[any]bool) textprim.Text {
	switch v := v.(type) {
	case nil, Null:
		return textprim.FromString("null")
	case Bool:
		if v {
			return textprim.FromString("true")
		}
		return textprim.FromString("false")
	case Num:
		return textprim.FormatNumber(float64(v))
	case Str:
		if !nested {
			return v.Text
		}
		esc := v.Text.Replace(backslash, backslash.Concat(backslash))
		esc = esc.Replace(quote, backslash.Concat(quote))
		return quote.Concat(esc, quote)
	case Arr:
		if seen[v.Seq] {
			return textprim.FromString("...")
		}
		seen[v.Seq] = true
		defer delete(seen, v.Seq)
		parts := make([]textprim.Text, 0, v.Len())
		for _, x := range v.All() {
			parts = append(parts, repr(x, true, seen))
		}
		return textprim.FromString("[ ").Concat(textprim.Join(parts, sepComma), textprim.FromString(" ]"))
	case *Obj:
		if seen[v] {
			return textprim.FromString("...")
		}
		seen[v] = true
		defer delete(seen, v)
		parts := make([]textprim.Text, 0, v.Len())
		for _, k := range v.keys {
			parts = append(parts, textprim.FromString(k+": ").Concat(repr(v.vals[k], true, seen)))
		}
		return textprim.FromString("{ ").Concat(textprim.Join(parts, sepComma), textprim.FromString(" }"))
	case Error:
		t := textprim.FromString("Error<" + v.Name + ">")
		if v.Info != nil {
			t = t.Concat(textprim.FromString(": "), repr(v.Info, true, seen))
		}
		return t
	case Fn:
		if v.Name != "" {
			return textprim.FromString("@" + v.Name + "( ?? ) { native code }")
		}
		return textprim.FromString("@( ?? ) { native code }")
	}
	panic("value: unknown kind")
}

// Equal reports whether a and b are equal. Primitive values are compared by
// value, arrays and objects element by element. NaN is not equal to itself.
// Functions are equal if they are the same native function.
func Equal(a, b Value) bool {
	return equal(a, b, make(map[[2]any]bool))
}

func equal(a, b Value, visiting map[[2]any]bool) bool {
	switch a := a.(type) {
	case nil, Null:
		switch b.(type) {
		case nil, Null:
			return true
		}
		return false
	case Bool:
		bb, ok := b.(Bool)
		return ok && a == bb
	case Num:
		bn, ok := b.(Num)
		return ok && a == bn
	case Str:
		bs, ok := b.(Str)
		return ok && a.Text.Equal(bs.Text)
	case Arr:
		ba, ok := b.(Arr)
		if !ok || a.Len() != ba.Len() {
			return false
		}
		if a.Seq == ba.Seq {
			return true
		}
		key := [2]any{a.Seq, ba.Seq}
		if visiting[key] {
			return true
		}
		visiting[key] = true
		defer delete(visiting, key)
		for i, x := range a.All() {
			y, _ := ba.At(i)
			if !equal(x, y, visiting) {
				return false
			}
		}
		return true
	case *Obj:
		bo, ok := b.(*Obj)
		if !ok || a.Len() != bo.Len() {
			return false
		}
		if a == bo {
			return true
		}
		key := [2]any{a, bo}
		if visiting[key] {
			return true
		}
		visiting[key] = true
		defer delete(visiting, key)
		for _, k := range a.keys {
			y, ok := bo.vals[k]
			if !ok || !equal(a.vals[k], y, visiting) {
				return false
			}
		}
		return true
	case Error:
		be, ok := b.(Error)
		return ok && a.Name == be.Name && equal(a.Info, be.Info, visiting)
	case Fn:
		bf, ok := b.(Fn)
		if !ok || a.Native == nil || bf.Native == nil {
			return false
		}
		return reflect.ValueOf(a.Native).Pointer() == reflect.ValueOf(bf.Native).Pointer()
	}
	panic("value: unknown kind")
}

// Includes reports whether arr contains v. Only null, booleans, numbers and
// texts can be searched for; for other kinds Includes returns false.
func Includes(arr Arr, v Value) bool {
	switch v.(type) {
	case nil, Null, Bool, Num, Str:
	default:
		return false
	}
	for _, x := range arr.All() {
		if equal(x, v, nil) {
			return true
		}
	}
	return false
}

// Join concatenates the texts of arr, placing joiner between elements.
// Elements which are not texts contribute an empty text.
func Join(arr Arr, joiner textprim.Text) textprim.Text {
	parts := make([]textprim.Text, 0, arr.Len())
	for _, x := range arr.All() {
		if s, ok := x.(Str); ok {
			parts = append(parts, s.Text)
		} else {
			parts = append(parts, textprim.Text{})
		}
	}
	return textprim.Join(parts, joiner)
}
