// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"strconv"

	"github.com/diffeo/go-conformance/conform"
	"github.com/diffeo/go-conformance/restdata"
)

// errUnmarshal is returned if the post contract is violated and a
// handler function is passed the wrong type.
var errUnmarshal = restdata.ErrBadRequest{
	Err: errors.New("Invalid input format"),
}

func (api *restAPI) WidgetsGet(ctx *requestContext) (interface{}, error) {
	result := api.Service.ListWidgets(ctx.Context, conform.ListWidgetsRequest{
		Query: ctx.QueryString("q"),
	})
	if result.Err != nil {
		return nil, result.Err
	}
	if result.Value == nil {
		return nil, contractViolation("ListWidgets")
	}
	return restdata.WidgetList{Widgets: result.Value.Widgets}, nil
}

func (api *restAPI) WidgetsPost(ctx *requestContext, in interface{}) (interface{}, error) {
	widget, valid := in.(conform.Widget)
	if !valid {
		return nil, errUnmarshal
	}
	result := api.Service.CreateWidget(ctx.Context, conform.CreateWidgetRequest{
		Widget: widget,
	})
	if result.Err != nil {
		return nil, result.Err
	}
	v := result.Value
	if v == nil {
		return nil, contractViolation("CreateWidget")
	}
	resp := responseCreated{ETag: v.ETag, Body: v.Widget}
	if v.Widget != nil {
		err := buildURLs(api.Router,
			"id", strconv.FormatInt(int64(v.Widget.ID), 10),
		).URL(&resp.Location, "widget").Error
		if err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (api *restAPI) WidgetGet(ctx *requestContext) (interface{}, error) {
	result := api.Service.GetWidget(ctx.Context, conform.GetWidgetRequest{
		ID:          ctx.ID,
		IfNoneMatch: ctx.IfNoneMatch,
	})
	if result.Err != nil {
		return nil, result.Err
	}
	v := result.Value
	if v == nil {
		return nil, contractViolation("GetWidget")
	}
	if v.Widget != nil {
		return responseWithETag{ETag: v.ETag, Body: v.Widget}, nil
	}
	if v.NotModified {
		return responseNotModified{ETag: v.ETag}, nil
	}
	// A version with no widget and no not-modified marker is as
	// broken as an empty result union.
	return nil, contractViolation("GetWidget")
}

func (api *restAPI) WidgetDelete(ctx *requestContext) (interface{}, error) {
	result := api.Service.DeleteWidget(ctx.Context, conform.DeleteWidgetRequest{
		ID:      ctx.ID,
		IfMatch: ctx.IfMatch,
	})
	if result.Err != nil {
		return nil, result.Err
	}
	v := result.Value
	if v == nil {
		return nil, contractViolation("DeleteWidget")
	}
	// Not-found always wins over a version conflict.
	if v.NotFound {
		if ctx.ID != nil {
			return nil, conform.NotFoundError(*ctx.ID)
		}
		return nil, &conform.Error{Code: conform.CodeNotFound, Message: "no such widget"}
	}
	if v.Conflict {
		return nil, &conform.Error{Code: conform.CodeConflict, Message: "version token does not match"}
	}
	return nil, nil
}

func (api *restAPI) WidgetsBatchPost(ctx *requestContext, in interface{}) (interface{}, error) {
	ids, valid := in.(restdata.BatchRequest)
	if !valid {
		return nil, errUnmarshal
	}
	result := api.Service.GetWidgetBatch(ctx.Context, conform.GetWidgetBatchRequest{
		IDs: ids,
	})
	if result.Err != nil {
		return nil, result.Err
	}
	if result.Value == nil {
		return nil, contractViolation("GetWidgetBatch")
	}
	// The response body is the bare array, positionally aligned
	// to the requested IDs.
	return result.Value.Results, nil
}
