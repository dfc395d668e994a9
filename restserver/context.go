// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"context"
	"net/http"
	"net/url"

	"github.com/diffeo/go-conformance/conform"
	"github.com/gorilla/mux"
)

// requestContext holds all of the information that can be extracted
// from URL parameters, query strings, and conditional-request
// headers.  Fields that were absent from the request, or whose raw
// text failed to coerce, are nil; nothing here ever rejects a
// request.
type requestContext struct {
	// Context is the transport's request context, forwarded on
	// every call into the backing service.
	Context context.Context

	// ID is the widget ID from the {id} path segment, when the
	// route has one.
	ID *int32

	// IfMatch and IfNoneMatch carry the conditional-request
	// headers of the same names.
	IfMatch     *string
	IfNoneMatch *string

	// PathFields holds the eight typed path segments of the
	// path-style type-check route, when the route has them.
	PathFields *conform.CheckFields

	QueryParams url.Values
}

func (api *restAPI) Context(req *http.Request) (*requestContext, error) {
	ctx := &requestContext{
		Context:     req.Context(),
		QueryParams: req.URL.Query(),
	}
	vars := mux.Vars(req)

	if id, present := vars["id"]; present {
		// A segment that fails to coerce leaves ID unset; the
		// service decides what an absent ID means.
		ctx.ID = coerceInt32(id)
	}

	if v := req.Header.Get("If-None-Match"); v != "" {
		ctx.IfNoneMatch = &v
	}
	if v := req.Header.Get("If-Match"); v != "" {
		ctx.IfMatch = &v
	}

	if _, present := vars["string"]; present {
		// The type-check route guarantees all eight segments
		// are present; coercion failures leave individual
		// fields unset.
		fields := bindCheckFields(func(name string) string {
			return vars[name]
		})
		ctx.PathFields = &fields
	}

	return ctx, nil
}

// QueryString reads a named query parameter.  Present and non-empty
// sets the field; absent or empty leaves it unset.
func (ctx *requestContext) QueryString(name string) *string {
	return coerceString(ctx.QueryParams.Get(name))
}

// QueryFields binds the eight typed check fields from query
// parameters.
func (ctx *requestContext) QueryFields() conform.CheckFields {
	return bindCheckFields(func(name string) string {
		return ctx.QueryParams.Get(name)
	})
}

// bindCheckFields applies one primitive coercion per field.  get
// returns the raw text for a field name, or an empty string if the
// source does not have it; every coercion treats the empty string as
// absent.
func bindCheckFields(get func(name string) string) conform.CheckFields {
	return conform.CheckFields{
		String:   coerceString(get("string")),
		Boolean:  coerceBool(get("boolean")),
		Double:   coerceFloat(get("double")),
		Int32:    coerceInt32(get("int32")),
		Int64:    coerceInt64(get("int64")),
		Decimal:  coerceFloat(get("decimal")),
		Enum:     coerceEnum(get("enum")),
		Datetime: coerceDatetime(get("datetime")),
	}
}
