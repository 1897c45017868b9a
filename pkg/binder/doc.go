// Package binder maps HTTP request data onto Go structs.
//
// Query and Form walk struct tags (`query:"..."`, `form:"..."`) and parse
// strings, numbers, bools, optional pointers and slices. JSON decodes a
// strict JSON object. Text reads a raw body. Bodies are capped at
// DefaultMaxBodySize unless the caller passes its own limit to Text.
//
// Fields whose parameter is absent keep their current value, so a handler
// can pre-fill defaults before binding:
//
//	p := params{Count: 1}
//	if err := binder.Query(r, &p); err != nil {
//		// errors.Is(err, binder.ErrInvalidQuery)
//	}
//
// Every error wraps one of the package sentinels.
package binder
