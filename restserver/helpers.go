// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains various HTTP-related helpers.  I sort of suspect
// most of them belong in some sort of standard library I haven't
// immediately found.

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
)

type urlBuilder struct {
	Router *mux.Router
	Params []string
	Error  error
}

func buildURLs(router *mux.Router, params ...string) *urlBuilder {
	return &urlBuilder{Router: router, Params: params}
}

func (u *urlBuilder) Route(route string) *mux.Route {
	if u.Error != nil {
		return nil
	}
	r := u.Router.Get(route)
	if r == nil {
		u.Error = fmt.Errorf("No such route %q", route)
	}
	return r
}

func (u *urlBuilder) URL(out *string, route string) *urlBuilder {
	var r *mux.Route
	var url *url.URL
	if u.Error == nil {
		r = u.Route(route)
	}
	if u.Error == nil {
		url, u.Error = r.URL(u.Params...)
	}
	if u.Error == nil {
		*out = url.String()
	}
	return u
}

func (u *urlBuilder) Template(out *string, route string, params ...string) *urlBuilder {
	var r *mux.Route
	var url *url.URL
	if u.Error == nil {
		r = u.Route(route)
	}
	if u.Error == nil {
		pairs := append([]string{}, u.Params...)
		for i, param := range params {
			pairs = append(pairs, param, fmt.Sprintf("---%d---", i))
		}
		url, u.Error = r.URL(pairs...)
	}
	if u.Error == nil {
		s := url.String()
		for i, param := range params {
			s = strings.Replace(s, fmt.Sprintf("---%d---", i), "{"+param+"}", 1)
		}
		*out = s
	}
	return u
}

// contractViolation reports a result union whose arms are both empty.
// That indicates a bug in the backing service, so it is fatal: the
// panic unwinds to the resourceHandler recovery path, which turns it
// into a 500 response, never a 200.
func contractViolation(method string) error {
	panic(fmt.Sprintf("service method %s returned neither a value nor an error", method))
}
