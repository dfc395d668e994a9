// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient provides a conform.Service-compatible HTTP REST
// client that talks to the matching server in the "restserver"
// package.
//
// The server in github.com/diffeo/go-conformance/cmd/conformd runs a
// compatible REST server.  Call New() with the base URL of that
// service; for instance,
//
//	c, err := restclient.New("http://localhost:5980/")
//
// The client discovers all other URLs from the root document, so the
// URL layout of the server is not wired in here.
//
// Transport-level failures have no symbolic error code of their own;
// they surface in result unions as a ServiceUnavailable error.
package restclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/diffeo/go-conformance/conform"
	"github.com/diffeo/go-conformance/restdata"
)

var errAllSegments = errors.New("all path fields must be set")

// New creates a new conform.Service that speaks to an external REST
// server.
func New(baseURL string) (conform.Service, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	c := &restService{resource: resource{URL: parsed}}
	if err = c.Refresh(); err != nil {
		return nil, err
	}
	return c, nil
}

type restService struct {
	resource
	Representation restdata.RootData
}

// Refresh re-fetches the root document the client navigates from.
func (c *restService) Refresh() error {
	c.Representation = restdata.RootData{}
	_, err := c.Get(context.Background(), c.URL, &c.Representation)
	return err
}

// asError rebuilds the error arm of a result union from a client-side
// error.  Errors the server shaped keep their symbolic code; anything
// else, a connection failure say, degrades to ServiceUnavailable.
func asError(err error) *conform.Error {
	if ce, isService := err.(*conform.Error); isService {
		return ce
	}
	return &conform.Error{
		Code:    conform.CodeServiceUnavailable,
		Message: err.Error(),
	}
}

func (c *restService) GetInfo(ctx context.Context, req conform.GetInfoRequest) conform.GetInfoResult {
	root := restdata.RootData{}
	if _, err := c.Get(ctx, c.URL, &root); err != nil {
		return conform.GetInfoResult{Err: asError(err)}
	}
	return conform.GetInfoResult{Info: &conform.Info{
		Service:   root.Service,
		Version:   root.Version,
		TestCases: root.TestCases,
	}}
}

func (c *restService) ListWidgets(ctx context.Context, req conform.ListWidgetsRequest) conform.ListWidgetsResult {
	u, err := c.URL.Parse(c.Representation.WidgetsURL)
	if err != nil {
		return conform.ListWidgetsResult{Err: asError(err)}
	}
	if req.Query != nil {
		q := u.Query()
		q.Set("q", *req.Query)
		u.RawQuery = q.Encode()
	}
	list := restdata.WidgetList{}
	if _, err = c.Get(ctx, u, &list); err != nil {
		return conform.ListWidgetsResult{Err: asError(err)}
	}
	return conform.ListWidgetsResult{Value: &conform.WidgetList{Widgets: list.Widgets}}
}

func (c *restService) CreateWidget(ctx context.Context, req conform.CreateWidgetRequest) conform.CreateWidgetResult {
	u, err := c.URL.Parse(c.Representation.WidgetsURL)
	if err != nil {
		return conform.CreateWidgetResult{Err: asError(err)}
	}
	widget := conform.Widget{}
	ex, err := c.Post(ctx, u, req.Widget, &widget)
	if err != nil {
		return conform.CreateWidgetResult{Err: asError(err)}
	}
	return conform.CreateWidgetResult{Value: &conform.CreatedWidget{
		Widget: &widget,
		ETag:   ex.Header.Get("ETag"),
	}}
}

func (c *restService) GetWidget(ctx context.Context, req conform.GetWidgetRequest) conform.GetWidgetResult {
	if req.ID == nil {
		return conform.GetWidgetResult{
			Err: conform.InvalidRequestError("widget ID required"),
		}
	}
	u, err := c.Template(c.Representation.WidgetURL,
		map[string]interface{}{"id": strconv.FormatInt(int64(*req.ID), 10)})
	if err != nil {
		return conform.GetWidgetResult{Err: asError(err)}
	}
	headers := http.Header{}
	if req.IfNoneMatch != nil {
		headers.Set("If-None-Match", *req.IfNoneMatch)
	}
	widget := conform.Widget{}
	ex, err := c.Do(ctx, "GET", u, headers, nil, &widget)
	if err != nil {
		return conform.GetWidgetResult{Err: asError(err)}
	}
	if ex.StatusCode == http.StatusNotModified {
		return conform.GetWidgetResult{Value: &conform.WidgetVersion{
			ETag:        ex.Header.Get("ETag"),
			NotModified: true,
		}}
	}
	return conform.GetWidgetResult{Value: &conform.WidgetVersion{
		Widget: &widget,
		ETag:   ex.Header.Get("ETag"),
	}}
}

func (c *restService) DeleteWidget(ctx context.Context, req conform.DeleteWidgetRequest) conform.DeleteWidgetResult {
	if req.ID == nil {
		return conform.DeleteWidgetResult{
			Err: conform.InvalidRequestError("widget ID required"),
		}
	}
	u, err := c.Template(c.Representation.WidgetURL,
		map[string]interface{}{"id": strconv.FormatInt(int64(*req.ID), 10)})
	if err != nil {
		return conform.DeleteWidgetResult{Err: asError(err)}
	}
	headers := http.Header{}
	if req.IfMatch != nil {
		headers.Set("If-Match", *req.IfMatch)
	}
	_, err = c.Do(ctx, "DELETE", u, headers, nil, nil)
	if err != nil {
		// The wire collapses the delete outcome into error
		// responses; rebuild the outcome flags from the code.
		if ce, isService := err.(*conform.Error); isService {
			switch ce.Code {
			case conform.CodeNotFound:
				return conform.DeleteWidgetResult{Value: &conform.DeleteOutcome{NotFound: true}}
			case conform.CodeConflict:
				return conform.DeleteWidgetResult{Value: &conform.DeleteOutcome{Conflict: true}}
			}
		}
		return conform.DeleteWidgetResult{Err: asError(err)}
	}
	return conform.DeleteWidgetResult{Value: &conform.DeleteOutcome{}}
}

func (c *restService) GetWidgetBatch(ctx context.Context, req conform.GetWidgetBatchRequest) conform.GetWidgetBatchResult {
	u, err := c.URL.Parse(c.Representation.WidgetBatchURL)
	if err != nil {
		return conform.GetWidgetBatchResult{Err: asError(err)}
	}
	var results []conform.BatchEntry
	if _, err = c.Post(ctx, u, restdata.BatchRequest(req.IDs), &results); err != nil {
		return conform.GetWidgetBatchResult{Err: asError(err)}
	}
	return conform.GetWidgetBatchResult{Value: &conform.BatchResult{Results: results}}
}

func (c *restService) MirrorFields(ctx context.Context, req conform.MirrorFieldsRequest) conform.MirrorFieldsResult {
	u, err := c.URL.Parse(c.Representation.MirrorFieldsURL)
	if err != nil {
		return conform.MirrorFieldsResult{Err: asError(err)}
	}
	payload := conform.MirrorPayload{}
	if _, err = c.Post(ctx, u, req.Payload, &payload); err != nil {
		return conform.MirrorFieldsResult{Err: asError(err)}
	}
	return conform.MirrorFieldsResult{Value: &payload}
}

func (c *restService) CheckQuery(ctx context.Context, req conform.CheckRequest) conform.CheckResult {
	u, err := c.URL.Parse(c.Representation.CheckQueryURL)
	if err != nil {
		return conform.CheckResult{Err: asError(err)}
	}
	u.RawQuery = checkQueryValues(req.Fields).Encode()
	fields := conform.CheckFields{}
	if _, err = c.Get(ctx, u, &fields); err != nil {
		return conform.CheckResult{Err: asError(err)}
	}
	return conform.CheckResult{Value: &fields}
}

func (c *restService) CheckPath(ctx context.Context, req conform.CheckRequest) conform.CheckResult {
	vars, err := checkPathVars(req.Fields)
	if err != nil {
		return conform.CheckResult{Err: conform.InvalidRequestError(err.Error())}
	}
	u, err := c.Template(c.Representation.CheckPathURL, vars)
	if err != nil {
		return conform.CheckResult{Err: asError(err)}
	}
	fields := conform.CheckFields{}
	if _, err = c.Get(ctx, u, &fields); err != nil {
		return conform.CheckResult{Err: asError(err)}
	}
	return conform.CheckResult{Value: &fields}
}

// checkQueryValues renders the set fields of a check record as query
// parameters.  Unset fields produce no parameter at all.
func checkQueryValues(f conform.CheckFields) url.Values {
	q := url.Values{}
	if f.String != nil {
		q.Set("string", *f.String)
	}
	if f.Boolean != nil {
		q.Set("boolean", strconv.FormatBool(*f.Boolean))
	}
	if f.Double != nil {
		q.Set("double", strconv.FormatFloat(*f.Double, 'g', -1, 64))
	}
	if f.Int32 != nil {
		q.Set("int32", strconv.FormatInt(int64(*f.Int32), 10))
	}
	if f.Int64 != nil {
		q.Set("int64", strconv.FormatInt(*f.Int64, 10))
	}
	if f.Decimal != nil {
		q.Set("decimal", strconv.FormatFloat(*f.Decimal, 'g', -1, 64))
	}
	if f.Enum != nil {
		q.Set("enum", *f.Enum)
	}
	if f.Datetime != nil {
		q.Set("datetime", *f.Datetime)
	}
	return q
}

// checkPathVars renders a check record as URI template variables.
// The path route needs all eight segments, so every field must be
// set.
func checkPathVars(f conform.CheckFields) (map[string]interface{}, error) {
	if f.String == nil || f.Boolean == nil || f.Double == nil ||
		f.Int32 == nil || f.Int64 == nil || f.Decimal == nil ||
		f.Enum == nil || f.Datetime == nil {
		return nil, errAllSegments
	}
	return map[string]interface{}{
		"string":   *f.String,
		"boolean":  strconv.FormatBool(*f.Boolean),
		"double":   strconv.FormatFloat(*f.Double, 'g', -1, 64),
		"int32":    strconv.FormatInt(int64(*f.Int32), 10),
		"int64":    strconv.FormatInt(*f.Int64, 10),
		"decimal":  strconv.FormatFloat(*f.Decimal, 'g', -1, 64),
		"enum":     *f.Enum,
		"datetime": *f.Datetime,
	}, nil
}
