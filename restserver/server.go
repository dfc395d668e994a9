// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"

	"github.com/diffeo/go-conformance/conform"
	"github.com/diffeo/go-conformance/restdata"
	"github.com/gorilla/mux"
)

// NewRouter creates a new HTTP handler that processes all conformance
// requests.  All resources are under the URL path root, e.g.
// /widgets/17.  For more control over this setup, create a mux.Router
// and call PopulateRouter instead.
func NewRouter(s conform.Service) http.Handler {
	r := mux.NewRouter()
	PopulateRouter(r, s)
	return r
}

// PopulateRouter adds conformance routes to an existing
// github.com/gorilla/mux router object.  This can be used, for
// instance, to place the conformance interface under a subpath:
//
//	r := mux.NewRouter()
//	s := r.PathPrefix("/conformance").Subrouter()
//	PopulateRouter(s, memory.New(nil))
func PopulateRouter(r *mux.Router, s conform.Service) {
	api := &restAPI{Service: s, Router: r}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the conformance REST API.
type restAPI struct {
	Service conform.Service
	Router  *mux.Router
}

// PopulateRouter adds all conformance URL paths to a router.  The
// routing table is static: each route pairs a request binder with a
// service method and a response shaping rule, and no route mutates
// shared state.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	r.Path("/").Name("root").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.RootDocument,
	})
	// The batch route must be registered before the {id} route so
	// that "get" doesn't bind as a widget ID.
	r.Path("/widgets/get").Name("widgetBatch").Handler(&resourceHandler{
		Representation: restdata.BatchRequest{},
		Context:        api.Context,
		Post:           api.WidgetsBatchPost,
	})
	r.Path("/widgets").Name("widgets").Handler(&resourceHandler{
		Representation: conform.Widget{},
		Context:        api.Context,
		Get:            api.WidgetsGet,
		Post:           api.WidgetsPost,
	})
	r.Path("/widgets/{id}").Name("widget").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.WidgetGet,
		Delete:  api.WidgetDelete,
	})
	r.Path("/mirrorFields").Name("mirrorFields").Handler(&resourceHandler{
		Representation: map[string]interface{}{},
		Context:        api.Context,
		Post:           api.MirrorFieldsPost,
	})
	r.Path("/checkQuery").Name("checkQuery").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.CheckQueryGet,
	})
	r.Path("/checkPath/{string}/{boolean}/{double}/{int32}/{int64}/{decimal}/{enum}/{datetime}").
		Name("checkPath").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.CheckPathGet,
	})
}

func (api *restAPI) RootDocument(ctx *requestContext) (interface{}, error) {
	result := api.Service.GetInfo(ctx.Context, conform.GetInfoRequest{})
	if result.Err != nil {
		return nil, result.Err
	}
	if result.Info == nil {
		return nil, contractViolation("GetInfo")
	}
	resp := restdata.RootData{
		Service:   result.Info.Service,
		Version:   result.Info.Version,
		TestCases: result.Info.TestCases,
	}
	err := buildURLs(api.Router).
		URL(&resp.WidgetsURL, "widgets").
		Template(&resp.WidgetURL, "widget", "id").
		URL(&resp.WidgetBatchURL, "widgetBatch").
		URL(&resp.MirrorFieldsURL, "mirrorFields").
		URL(&resp.CheckQueryURL, "checkQuery").
		Template(&resp.CheckPathURL, "checkPath",
			"string", "boolean", "double", "int32",
			"int64", "decimal", "enum", "datetime").
		Error
	return resp, err
}
