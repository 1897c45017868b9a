package binder

import "net/http"

// Query binds URL query parameters to the struct v points to.
//
// Tags: `query:"name"` binds parameter "name", `query:"-"` skips the field.
// Supported field types are strings, integers, floats, bools, pointers to
// those (left nil when absent) and slices (?tag=a&tag=b or ?tag=a,b).
//
//	type listParams struct {
//		Count   int     `query:"count"`
//		Ordered bool    `query:"ordered"`
//		Seed    *uint64 `query:"seed"`
//	}
//
//	var p listParams
//	if err := binder.Query(r, &p); err != nil {
//		http.Error(w, err.Error(), http.StatusBadRequest)
//	}
func Query(r *http.Request, v any) error {
	return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
}
