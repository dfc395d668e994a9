// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package conformtest

import (
	"context"

	"github.com/diffeo/go-conformance/conform"
)

// allFields is a check record with every field populated.  The values
// survive a round trip through query strings and path segments.
func allFields() conform.CheckFields {
	return conform.CheckFields{
		String:   String("hello"),
		Boolean:  Bool(true),
		Double:   Float64(1.5),
		Int32:    Int32(42),
		Int64:    Int64(9007199254740993),
		Decimal:  Float64(6.25),
		Enum:     String(conform.ColorRed),
		Datetime: String("2015-05-06T07:08:09Z"),
	}
}

// TestCheckQuery checks that a fully populated record echoes back
// unchanged through the query-parameter path.
func (s *Suite) TestCheckQuery() {
	res := s.Service.CheckQuery(context.Background(), conform.CheckRequest{
		Fields: allFields(),
	})
	s.Nil(res.Err)
	if s.NotNil(res.Value) {
		s.Equal(allFields(), *res.Value)
	}
}

// TestCheckQuerySparse checks that fields never supplied come back
// absent, not as zero values.
func (s *Suite) TestCheckQuerySparse() {
	res := s.Service.CheckQuery(context.Background(), conform.CheckRequest{
		Fields: conform.CheckFields{
			Int32:   Int32(0),
			Boolean: Bool(false),
		},
	})
	s.Nil(res.Err)
	if !s.NotNil(res.Value) {
		return
	}
	// The zero values that were sent come back as zero values.
	if s.NotNil(res.Value.Int32) {
		s.Equal(int32(0), *res.Value.Int32)
	}
	if s.NotNil(res.Value.Boolean) {
		s.False(*res.Value.Boolean)
	}
	// Everything else stays absent.
	s.Nil(res.Value.String)
	s.Nil(res.Value.Double)
	s.Nil(res.Value.Int64)
	s.Nil(res.Value.Decimal)
	s.Nil(res.Value.Enum)
	s.Nil(res.Value.Datetime)
}

// TestCheckQueryEmpty checks the degenerate case of no fields at all.
func (s *Suite) TestCheckQueryEmpty() {
	res := s.Service.CheckQuery(context.Background(), conform.CheckRequest{})
	s.Nil(res.Err)
	if s.NotNil(res.Value) {
		s.Equal(conform.CheckFields{}, *res.Value)
	}
}

// TestCheckPath checks the path-segment variant of the round trip.
// Unlike the query variant, the path route requires every field.
func (s *Suite) TestCheckPath() {
	res := s.Service.CheckPath(context.Background(), conform.CheckRequest{
		Fields: allFields(),
	})
	s.Nil(res.Err)
	if s.NotNil(res.Value) {
		s.Equal(allFields(), *res.Value)
	}
}

// TestMirrorFields checks that a structured payload echoes back
// intact.
func (s *Suite) TestMirrorFields() {
	payload := conform.MirrorPayload{
		Field: &conform.CheckFields{
			String: String("mirrored"),
			Int64:  Int64(-7),
		},
		Matrix: [][]float64{{1, 2, 3}, {4.5}},
	}
	res := s.Service.MirrorFields(context.Background(), conform.MirrorFieldsRequest{
		Payload: payload,
	})
	s.Nil(res.Err)
	if s.NotNil(res.Value) {
		s.Equal(payload, *res.Value)
	}
}

// TestMirrorFieldsEmpty checks that an empty payload mirrors as
// empty.
func (s *Suite) TestMirrorFieldsEmpty() {
	res := s.Service.MirrorFields(context.Background(), conform.MirrorFieldsRequest{})
	s.Nil(res.Err)
	if s.NotNil(res.Value) {
		s.Nil(res.Value.Field)
		s.Empty(res.Value.Matrix)
	}
}
