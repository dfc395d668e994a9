// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package memory provides an in-process, in-memory implementation of
// the conformance Service.  There is no persistence: the widget store
// lives behind a single global semaphore, which protects against
// concurrent updates at some cost in throughput.
//
// This is the reference implementation the conformance fixtures are
// replayed against, and the backend the end-to-end tests drive.  It
// is tuned for correctness, not performance.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-conformance/conform"
	"github.com/diffeo/go-conformance/fixture"
	uuid "github.com/satori/go.uuid"
)

const (
	serviceName    = "conformance"
	serviceVersion = "0.1.0"
)

// New creates a new conformance Service that operates purely in
// memory, holding the provided (possibly nil) list of conformance
// test cases.  The cases are never interpreted; the service only
// reports how many it was given.
func New(cases []fixture.Case) conform.Service {
	return NewWithClock(cases, clock.New())
}

// NewWithClock creates a memory service with an alternate time
// source.  Tests use this with a mock clock so that widget creation
// timestamps are predictable.
func NewWithClock(cases []fixture.Case, clk clock.Clock) conform.Service {
	return &memService{
		cases:   cases,
		clk:     clk,
		widgets: make(map[int32]*widgetRecord),
		nextID:  1,
	}
}

type widgetRecord struct {
	widget conform.Widget
	eTag   string
}

type memService struct {
	cases   []fixture.Case
	clk     clock.Clock
	widgets map[int32]*widgetRecord
	nextID  int32
	sem     sync.Mutex
}

// lock takes the global semaphore protecting the widget store.  Pair
// it with unlock, as
//
//	s.lock()
//	defer s.unlock()
func (s *memService) lock() {
	s.sem.Lock()
}

func (s *memService) unlock() {
	s.sem.Unlock()
}

func (s *memService) GetInfo(ctx context.Context, req conform.GetInfoRequest) conform.GetInfoResult {
	return conform.GetInfoResult{Info: &conform.Info{
		Service:   serviceName,
		Version:   serviceVersion,
		TestCases: len(s.cases),
	}}
}

func (s *memService) ListWidgets(ctx context.Context, req conform.ListWidgetsRequest) conform.ListWidgetsResult {
	s.lock()
	defer s.unlock()

	ids := make([]int32, 0, len(s.widgets))
	for id := range s.widgets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	widgets := make([]conform.Widget, 0, len(ids))
	for _, id := range ids {
		rec := s.widgets[id]
		if req.Query != nil && !matchesQuery(rec.widget, *req.Query) {
			continue
		}
		widgets = append(widgets, rec.widget)
	}
	return conform.ListWidgetsResult{Value: &conform.WidgetList{Widgets: widgets}}
}

// matchesQuery implements the free-text "q" filter: a widget matches
// if the query is a substring of its decimal ID or its color.
func matchesQuery(w conform.Widget, query string) bool {
	if strings.Contains(fmt.Sprintf("%d", w.ID), query) {
		return true
	}
	if w.Color != nil && strings.Contains(*w.Color, query) {
		return true
	}
	return false
}

func (s *memService) CreateWidget(ctx context.Context, req conform.CreateWidgetRequest) conform.CreateWidgetResult {
	s.lock()
	defer s.unlock()

	widget := req.Widget

	// The binding layer forwards enum tags without checking them;
	// membership validation happens here.
	if widget.Color != nil {
		switch *widget.Color {
		case conform.ColorRed, conform.ColorBlue:
		default:
			return conform.CreateWidgetResult{
				Err: conform.InvalidRequestError(fmt.Sprintf("invalid color %q", *widget.Color)),
			}
		}
	}

	if widget.ID == 0 {
		widget.ID = s.nextID
	} else if _, present := s.widgets[widget.ID]; present {
		return conform.CreateWidgetResult{
			Err: &conform.Error{
				Code:    conform.CodeConflict,
				Message: fmt.Sprintf("widget %d already exists", widget.ID),
			},
		}
	}
	if widget.ID >= s.nextID {
		s.nextID = widget.ID + 1
	}

	created := s.clk.Now().UTC().Format(time.RFC3339)
	widget.Created = &created

	rec := &widgetRecord{
		widget: widget,
		eTag:   uuid.NewV4().String(),
	}
	s.widgets[widget.ID] = rec

	stored := rec.widget
	return conform.CreateWidgetResult{Value: &conform.CreatedWidget{
		Widget: &stored,
		ETag:   rec.eTag,
	}}
}

func (s *memService) GetWidget(ctx context.Context, req conform.GetWidgetRequest) conform.GetWidgetResult {
	if req.ID == nil {
		return conform.GetWidgetResult{
			Err: conform.InvalidRequestError("widget ID missing or malformed"),
		}
	}

	s.lock()
	defer s.unlock()

	rec, present := s.widgets[*req.ID]
	if !present {
		return conform.GetWidgetResult{Err: conform.NotFoundError(*req.ID)}
	}
	if req.IfNoneMatch != nil && *req.IfNoneMatch == rec.eTag {
		return conform.GetWidgetResult{Value: &conform.WidgetVersion{
			ETag:        rec.eTag,
			NotModified: true,
		}}
	}
	widget := rec.widget
	return conform.GetWidgetResult{Value: &conform.WidgetVersion{
		Widget: &widget,
		ETag:   rec.eTag,
	}}
}

func (s *memService) DeleteWidget(ctx context.Context, req conform.DeleteWidgetRequest) conform.DeleteWidgetResult {
	if req.ID == nil {
		return conform.DeleteWidgetResult{
			Err: conform.InvalidRequestError("widget ID missing or malformed"),
		}
	}

	s.lock()
	defer s.unlock()

	rec, present := s.widgets[*req.ID]
	if !present {
		return conform.DeleteWidgetResult{Value: &conform.DeleteOutcome{NotFound: true}}
	}
	if req.IfMatch != nil && *req.IfMatch != rec.eTag {
		return conform.DeleteWidgetResult{Value: &conform.DeleteOutcome{Conflict: true}}
	}
	delete(s.widgets, *req.ID)
	return conform.DeleteWidgetResult{Value: &conform.DeleteOutcome{}}
}

func (s *memService) GetWidgetBatch(ctx context.Context, req conform.GetWidgetBatchRequest) conform.GetWidgetBatchResult {
	s.lock()
	defer s.unlock()

	results := make([]conform.BatchEntry, len(req.IDs))
	for i, id := range req.IDs {
		if rec, present := s.widgets[id]; present {
			widget := rec.widget
			results[i] = conform.BatchEntry{Widget: &widget}
		} else {
			results[i] = conform.BatchEntry{Error: conform.NotFoundError(id)}
		}
	}
	return conform.GetWidgetBatchResult{Value: &conform.BatchResult{Results: results}}
}

func (s *memService) MirrorFields(ctx context.Context, req conform.MirrorFieldsRequest) conform.MirrorFieldsResult {
	payload := req.Payload
	return conform.MirrorFieldsResult{Value: &payload}
}

func (s *memService) CheckQuery(ctx context.Context, req conform.CheckRequest) conform.CheckResult {
	fields := req.Fields
	return conform.CheckResult{Value: &fields}
}

func (s *memService) CheckPath(ctx context.Context, req conform.CheckRequest) conform.CheckResult {
	fields := req.Fields
	return conform.CheckResult{Value: &fields}
}
