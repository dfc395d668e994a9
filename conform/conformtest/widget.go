// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package conformtest

import (
	"context"
	"strconv"

	"github.com/diffeo/go-conformance/conform"
)

// TestGetInfo validates the basic service description.
func (s *Suite) TestGetInfo() {
	res := s.Service.GetInfo(context.Background(), conform.GetInfoRequest{})
	s.Nil(res.Err)
	if s.NotNil(res.Info) {
		s.Equal("conformance", res.Info.Service)
		s.NotEmpty(res.Info.Version)
	}
}

// TestWidgetLifetime validates a basic widget lifetime: create, get,
// conditional get, delete.
func (s *Suite) TestWidgetLifetime() {
	ctx := context.Background()
	widget, eTag := s.CreateWidget(conform.Widget{
		Weight: Int32(10),
		Color:  String(conform.ColorRed),
	})
	s.NotZero(widget.ID)
	s.NotNil(widget.Created)

	// A plain get returns the widget and the same version token.
	res := s.Service.GetWidget(ctx, conform.GetWidgetRequest{ID: Int32(widget.ID)})
	s.Nil(res.Err)
	if s.NotNil(res.Value) {
		s.False(res.Value.NotModified)
		s.Equal(eTag, res.Value.ETag)
		if s.NotNil(res.Value.Widget) {
			s.Equal(widget.ID, res.Value.Widget.ID)
			if s.NotNil(res.Value.Widget.Weight) {
				s.Equal(int32(10), *res.Value.Widget.Weight)
			}
		}
	}

	// A conditional get with the current token reports not
	// modified and returns no widget.
	res = s.Service.GetWidget(ctx, conform.GetWidgetRequest{
		ID:          Int32(widget.ID),
		IfNoneMatch: String(eTag),
	})
	s.Nil(res.Err)
	if s.NotNil(res.Value) {
		s.True(res.Value.NotModified)
		s.Nil(res.Value.Widget)
		s.Equal(eTag, res.Value.ETag)
	}

	// A conditional get with a stale token returns the widget.
	res = s.Service.GetWidget(ctx, conform.GetWidgetRequest{
		ID:          Int32(widget.ID),
		IfNoneMatch: String("stale"),
	})
	s.Nil(res.Err)
	if s.NotNil(res.Value) {
		s.False(res.Value.NotModified)
		s.NotNil(res.Value.Widget)
	}

	// Deleting with a mismatched token is a conflict, and leaves
	// the widget in place.
	del := s.Service.DeleteWidget(ctx, conform.DeleteWidgetRequest{
		ID:      Int32(widget.ID),
		IfMatch: String("stale"),
	})
	s.Nil(del.Err)
	if s.NotNil(del.Value) {
		s.False(del.Value.NotFound)
		s.True(del.Value.Conflict)
	}

	// Deleting with the current token succeeds.
	del = s.Service.DeleteWidget(ctx, conform.DeleteWidgetRequest{
		ID:      Int32(widget.ID),
		IfMatch: String(eTag),
	})
	s.Nil(del.Err)
	if s.NotNil(del.Value) {
		s.False(del.Value.NotFound)
		s.False(del.Value.Conflict)
	}

	// The widget is gone now.
	res = s.Service.GetWidget(ctx, conform.GetWidgetRequest{ID: Int32(widget.ID)})
	s.Nil(res.Value)
	s.ErrorCode(conform.CodeNotFound, res.Err)
}

// TestDeleteMissing checks that deleting an absent widget reports
// NotFound, even when a version token is also mismatched.
func (s *Suite) TestDeleteMissing() {
	ctx := context.Background()
	del := s.Service.DeleteWidget(ctx, conform.DeleteWidgetRequest{
		ID: Int32(987654),
	})
	s.Nil(del.Err)
	if s.NotNil(del.Value) {
		s.True(del.Value.NotFound)
		s.False(del.Value.Conflict)
	}

	// The missing widget wins over any version check.
	del = s.Service.DeleteWidget(ctx, conform.DeleteWidgetRequest{
		ID:      Int32(987654),
		IfMatch: String("anything"),
	})
	s.Nil(del.Err)
	if s.NotNil(del.Value) {
		s.True(del.Value.NotFound)
		s.False(del.Value.Conflict)
	}
}

// TestGetWithoutID checks that a get with no usable widget ID is an
// invalid request, not a server fault.
func (s *Suite) TestGetWithoutID() {
	res := s.Service.GetWidget(context.Background(), conform.GetWidgetRequest{})
	s.Nil(res.Value)
	s.ErrorCode(conform.CodeInvalidRequest, res.Err)
}

// TestWidgetBatch checks that batch lookups stay positionally aligned
// with the requested IDs, with a per-entry error for missing widgets.
func (s *Suite) TestWidgetBatch() {
	ctx := context.Background()
	first, _ := s.CreateWidget(conform.Widget{Color: String(conform.ColorRed)})
	second, _ := s.CreateWidget(conform.Widget{Color: String(conform.ColorBlue)})

	res := s.Service.GetWidgetBatch(ctx, conform.GetWidgetBatchRequest{
		IDs: []int32{first.ID, 987654, second.ID},
	})
	s.Nil(res.Err)
	if !s.NotNil(res.Value) || !s.Len(res.Value.Results, 3) {
		return
	}
	results := res.Value.Results

	if s.NotNil(results[0].Widget) {
		s.Equal(first.ID, results[0].Widget.ID)
	}
	s.Nil(results[0].Error)

	s.Nil(results[1].Widget)
	s.ErrorCode(conform.CodeNotFound, results[1].Error)
	if results[1].Error != nil {
		s.Equal("no such widget 987654", results[1].Error.Message)
	}

	if s.NotNil(results[2].Widget) {
		s.Equal(second.ID, results[2].Widget.ID)
	}
	s.Nil(results[2].Error)
}

// TestListWidgets checks the free-text query filter.  The filter
// matches on the decimal widget ID and on the color.
func (s *Suite) TestListWidgets() {
	ctx := context.Background()
	widget, _ := s.CreateWidget(conform.Widget{Color: String(conform.ColorRed)})
	idString := strconv.FormatInt(int64(widget.ID), 10)

	res := s.Service.ListWidgets(ctx, conform.ListWidgetsRequest{
		Query: String(idString),
	})
	s.Nil(res.Err)
	if s.NotNil(res.Value) {
		found := false
		for _, w := range res.Value.Widgets {
			if w.ID == widget.ID {
				found = true
			}
		}
		s.True(found, "query %q should find widget %d", idString, widget.ID)
	}

	// An unfiltered list includes the widget too.
	res = s.Service.ListWidgets(ctx, conform.ListWidgetsRequest{})
	s.Nil(res.Err)
	if s.NotNil(res.Value) {
		found := false
		for _, w := range res.Value.Widgets {
			if w.ID == widget.ID {
				found = true
			}
		}
		s.True(found)
	}

	// A query that matches nothing returns an empty list, not an
	// error.
	res = s.Service.ListWidgets(ctx, conform.ListWidgetsRequest{
		Query: String("chartreuse"),
	})
	s.Nil(res.Err)
	if s.NotNil(res.Value) {
		s.Empty(res.Value.Widgets)
	}
}

// TestCreateInvalidColor checks that the service owns enum
// validation: a color outside the known set is an invalid request.
func (s *Suite) TestCreateInvalidColor() {
	res := s.Service.CreateWidget(context.Background(), conform.CreateWidgetRequest{
		Widget: conform.Widget{Color: String("chartreuse")},
	})
	s.Nil(res.Value)
	s.ErrorCode(conform.CodeInvalidRequest, res.Err)
}
