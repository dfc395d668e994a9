// Tests for the REST binding layer.
//
// These drive the router with synthetic HTTP requests over an
// in-memory backend.  The end-to-end path is also exercised by the
// conformtest tests driven from restclient.
//
// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/diffeo/go-conformance/conform"
	"github.com/diffeo/go-conformance/memory"
	"github.com/diffeo/go-conformance/restdata"
	"github.com/stretchr/testify/assert"
	"github.com/ugorji/go/codec"
)

// serve runs a single synthetic request through a router and captures
// the response.
func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

// decodeBody decodes a JSON response body into out.
func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, out interface{}) {
	json := &codec.JsonHandle{}
	decoder := codec.NewDecoder(resp.Body, json)
	assert.NoError(t, decoder.Decode(out))
}

// errorCode decodes an error response body and returns its symbolic
// code.
func errorCode(t *testing.T, resp *httptest.ResponseRecorder) string {
	var response restdata.ErrorResponse
	decodeBody(t, resp, &response)
	return response.Code
}

func TestRootDocument(t *testing.T) {
	router := NewRouter(memory.New(nil))
	resp := serve(router, "GET", "/", "")
	assert.Equal(t, http.StatusOK, resp.Code)

	var root restdata.RootData
	decodeBody(t, resp, &root)
	assert.Equal(t, "conformance", root.Service)
	assert.Equal(t, "/widgets", root.WidgetsURL)
	assert.Equal(t, "/widgets/{id}", root.WidgetURL)
	assert.Equal(t, "/widgets/get", root.WidgetBatchURL)
	assert.Equal(t, "/checkPath/{string}/{boolean}/{double}/{int32}/{int64}/{decimal}/{enum}/{datetime}", root.CheckPathURL)
}

func TestCreateWidget(t *testing.T) {
	router := NewRouter(memory.New(nil))
	resp := serve(router, "POST", "/widgets", `{"color":"red","weight":10}`)
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.NotEmpty(t, resp.Header().Get("ETag"))

	var widget conform.Widget
	decodeBody(t, resp, &widget)
	assert.NotZero(t, widget.ID)
	assert.Equal(t, "/widgets/"+itoa(widget.ID), resp.Header().Get("Location"))
}

func TestConditionalGet(t *testing.T) {
	router := NewRouter(memory.New(nil))
	resp := serve(router, "POST", "/widgets", `{"color":"blue"}`)
	if !assert.Equal(t, http.StatusCreated, resp.Code) {
		return
	}
	location := resp.Header().Get("Location")
	eTag := resp.Header().Get("ETag")

	// An unconditional get returns the widget and its tag.
	resp = serve(router, "GET", location, "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, eTag, resp.Header().Get("ETag"))

	// A conditional get with the current tag is a bodiless 304.
	req := httptest.NewRequest("GET", location, nil)
	req.Header.Set("If-None-Match", eTag)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNotModified, recorder.Code)
	assert.Equal(t, eTag, recorder.Header().Get("ETag"))
	assert.Empty(t, recorder.Body.String())
	assert.Empty(t, recorder.Header().Get("Content-Type"))

	// A stale tag gets the full response again.
	req = httptest.NewRequest("GET", location, nil)
	req.Header.Set("If-None-Match", "stale")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestDeleteWidget(t *testing.T) {
	router := NewRouter(memory.New(nil))
	resp := serve(router, "POST", "/widgets", `{"color":"red"}`)
	if !assert.Equal(t, http.StatusCreated, resp.Code) {
		return
	}
	location := resp.Header().Get("Location")
	eTag := resp.Header().Get("ETag")

	// A mismatched version token is a conflict.
	req := httptest.NewRequest("DELETE", location, nil)
	req.Header.Set("If-Match", "stale")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, conform.CodeConflict, errorCode(t, recorder))

	// The matching token deletes the widget with no body.
	req = httptest.NewRequest("DELETE", location, nil)
	req.Header.Set("If-Match", eTag)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())

	// Deleting again is a missing widget, and the missing widget
	// wins even with a bad version token.
	req = httptest.NewRequest("DELETE", location, nil)
	req.Header.Set("If-Match", "stale")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, conform.CodeNotFound, errorCode(t, recorder))
}

// TestMalformedWidgetID checks that a non-numeric widget ID is not a
// routing error: the binder leaves the ID unset and the service
// reports an invalid request.
func TestMalformedWidgetID(t *testing.T) {
	router := NewRouter(memory.New(nil))
	resp := serve(router, "GET", "/widgets/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, conform.CodeInvalidRequest, errorCode(t, resp))
}

func TestBatchAlignment(t *testing.T) {
	router := NewRouter(memory.New(nil))
	resp := serve(router, "POST", "/widgets", `{"color":"red"}`)
	if !assert.Equal(t, http.StatusCreated, resp.Code) {
		return
	}
	var widget conform.Widget
	decodeBody(t, resp, &widget)

	resp = serve(router, "POST", "/widgets/get", `[`+itoa(widget.ID)+`, 999]`)
	assert.Equal(t, http.StatusOK, resp.Code)

	var entries []conform.BatchEntry
	decodeBody(t, resp, &entries)
	if !assert.Len(t, entries, 2) {
		return
	}
	if assert.NotNil(t, entries[0].Widget) {
		assert.Equal(t, widget.ID, entries[0].Widget.ID)
	}
	assert.Nil(t, entries[0].Error)
	assert.Nil(t, entries[1].Widget)
	if assert.NotNil(t, entries[1].Error) {
		assert.Equal(t, conform.CodeNotFound, entries[1].Error.Code)
		assert.Equal(t, "no such widget 999", entries[1].Error.Message)
	}
}

// TestCheckQuerySparse checks that only supplied, parseable query
// parameters appear in the echo.
func TestCheckQuerySparse(t *testing.T) {
	router := NewRouter(memory.New(nil))
	resp := serve(router, "GET", "/checkQuery?int32=4&boolean=TRUE&double=nope&string=", "")
	assert.Equal(t, http.StatusOK, resp.Code)

	var fields conform.CheckFields
	decodeBody(t, resp, &fields)
	if assert.NotNil(t, fields.Int32) {
		assert.Equal(t, int32(4), *fields.Int32)
	}
	if assert.NotNil(t, fields.Boolean) {
		assert.True(t, *fields.Boolean)
	}
	// The malformed double and the empty string stay absent.
	assert.Nil(t, fields.Double)
	assert.Nil(t, fields.String)
	assert.Nil(t, fields.Int64)
	assert.Nil(t, fields.Decimal)
	assert.Nil(t, fields.Enum)
	assert.Nil(t, fields.Datetime)
}

func TestCheckPath(t *testing.T) {
	router := NewRouter(memory.New(nil))
	resp := serve(router, "GET",
		"/checkPath/hello/true/1.5/4/9007199254740993/6.25/red/2015-05-06T07:08:09Z", "")
	assert.Equal(t, http.StatusOK, resp.Code)

	var fields conform.CheckFields
	decodeBody(t, resp, &fields)
	if assert.NotNil(t, fields.String) {
		assert.Equal(t, "hello", *fields.String)
	}
	if assert.NotNil(t, fields.Boolean) {
		assert.True(t, *fields.Boolean)
	}
	if assert.NotNil(t, fields.Double) {
		assert.Equal(t, 1.5, *fields.Double)
	}
	if assert.NotNil(t, fields.Int32) {
		assert.Equal(t, int32(4), *fields.Int32)
	}
	if assert.NotNil(t, fields.Int64) {
		assert.Equal(t, int64(9007199254740993), *fields.Int64)
	}
	if assert.NotNil(t, fields.Decimal) {
		assert.Equal(t, 6.25, *fields.Decimal)
	}
	if assert.NotNil(t, fields.Enum) {
		assert.Equal(t, "red", *fields.Enum)
	}
	if assert.NotNil(t, fields.Datetime) {
		assert.Equal(t, "2015-05-06T07:08:09Z", *fields.Datetime)
	}
}

// TestCheckPathMalformedSegment checks that an unparseable path
// segment leaves that one field unset instead of failing the request.
func TestCheckPathMalformedSegment(t *testing.T) {
	router := NewRouter(memory.New(nil))
	resp := serve(router, "GET",
		"/checkPath/hello/maybe/1.5/4/5/6.25/red/2015-05-06T07:08:09Z", "")
	assert.Equal(t, http.StatusOK, resp.Code)

	var fields conform.CheckFields
	decodeBody(t, resp, &fields)
	assert.Nil(t, fields.Boolean)
	assert.NotNil(t, fields.String)
	assert.NotNil(t, fields.Double)
}

func TestMirrorFields(t *testing.T) {
	router := NewRouter(memory.New(nil))
	resp := serve(router, "POST", "/mirrorFields",
		`{"field":{"int32":4,"string":"mirrored"},"matrix":[[1,2],[3]]}`)
	assert.Equal(t, http.StatusOK, resp.Code)

	var payload conform.MirrorPayload
	decodeBody(t, resp, &payload)
	if assert.NotNil(t, payload.Field) {
		if assert.NotNil(t, payload.Field.Int32) {
			assert.Equal(t, int32(4), *payload.Field.Int32)
		}
		if assert.NotNil(t, payload.Field.String) {
			assert.Equal(t, "mirrored", *payload.Field.String)
		}
		assert.Nil(t, payload.Field.Boolean)
	}
	assert.Equal(t, [][]float64{{1, 2}, {3}}, payload.Matrix)
}

func TestUnsupportedMediaType(t *testing.T) {
	router := NewRouter(memory.New(nil))
	req := httptest.NewRequest("POST", "/widgets", strings.NewReader(`{"color":"red"}`))
	req.Header.Set("Content-Type", "text/plain")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.Code)
}

func TestNotAcceptable(t *testing.T) {
	router := NewRouter(memory.New(nil))
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept", "text/plain")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusNotAcceptable, resp.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	router := NewRouter(memory.New(nil))
	resp := serve(router, "DELETE", "/widgets", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}

// emptyService returns result unions with neither arm populated, which
// no correct service implementation ever does.
type emptyService struct{}

func (emptyService) GetInfo(context.Context, conform.GetInfoRequest) conform.GetInfoResult {
	return conform.GetInfoResult{}
}
func (emptyService) ListWidgets(context.Context, conform.ListWidgetsRequest) conform.ListWidgetsResult {
	return conform.ListWidgetsResult{}
}
func (emptyService) CreateWidget(context.Context, conform.CreateWidgetRequest) conform.CreateWidgetResult {
	return conform.CreateWidgetResult{}
}
func (emptyService) GetWidget(context.Context, conform.GetWidgetRequest) conform.GetWidgetResult {
	return conform.GetWidgetResult{}
}
func (emptyService) DeleteWidget(context.Context, conform.DeleteWidgetRequest) conform.DeleteWidgetResult {
	return conform.DeleteWidgetResult{}
}
func (emptyService) GetWidgetBatch(context.Context, conform.GetWidgetBatchRequest) conform.GetWidgetBatchResult {
	return conform.GetWidgetBatchResult{}
}
func (emptyService) MirrorFields(context.Context, conform.MirrorFieldsRequest) conform.MirrorFieldsResult {
	return conform.MirrorFieldsResult{}
}
func (emptyService) CheckQuery(context.Context, conform.CheckRequest) conform.CheckResult {
	return conform.CheckResult{}
}
func (emptyService) CheckPath(context.Context, conform.CheckRequest) conform.CheckResult {
	return conform.CheckResult{}
}

// TestEmptyResultUnion checks that a backing service that populates
// neither arm of its result produces a server error, never a 200.
func TestEmptyResultUnion(t *testing.T) {
	router := NewRouter(emptyService{})
	for _, test := range []struct {
		method string
		target string
		body   string
	}{
		{"GET", "/", ""},
		{"GET", "/widgets", ""},
		{"POST", "/widgets", `{"color":"red"}`},
		{"GET", "/widgets/1", ""},
		{"DELETE", "/widgets/1", ""},
		{"POST", "/widgets/get", `[1]`},
		{"POST", "/mirrorFields", `{}`},
		{"GET", "/checkQuery", ""},
		{"GET", "/checkPath/a/true/1/2/3/4/red/t", ""},
	} {
		resp := serve(router, test.method, test.target, test.body)
		assert.Equal(t, http.StatusInternalServerError, resp.Code,
			"%s %s", test.method, test.target)
		assert.NotEqual(t, http.StatusOK, resp.Code,
			"%s %s", test.method, test.target)
	}
}

type failResponseWriter struct {
	Headers    http.Header
	StatusCode int
}

func (rw *failResponseWriter) Header() http.Header {
	if rw.Headers == nil {
		rw.Headers = make(http.Header)
	}
	return rw.Headers
}

func (rw *failResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("foo")
}

func (rw *failResponseWriter) WriteHeader(code int) {
	rw.StatusCode = code
}

// TestDoubleFault checks that, if there is an error serializing a JSON
// response, it doesn't actually panic the process.
func TestDoubleFault(t *testing.T) {
	router := NewRouter(memory.New(nil))
	req := &http.Request{
		Method: http.MethodGet,
		URL: &url.URL{
			Path: "/",
		},
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     http.Header{},
		Close:      true,
		Host:       "localhost",
	}
	resp := &failResponseWriter{}
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func itoa(id int32) string {
	return strconv.FormatInt(int64(id), 10)
}
