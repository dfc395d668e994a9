// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceString(t *testing.T) {
	assert.Nil(t, coerceString(""))
	if s := coerceString("hello"); assert.NotNil(t, s) {
		assert.Equal(t, "hello", *s)
	}
	// Whitespace is a value, not absence.
	if s := coerceString(" "); assert.NotNil(t, s) {
		assert.Equal(t, " ", *s)
	}
}

func TestCoerceBool(t *testing.T) {
	for _, raw := range []string{"true", "TRUE", "True"} {
		if b := coerceBool(raw); assert.NotNil(t, b, "coerceBool(%q)", raw) {
			assert.True(t, *b, "coerceBool(%q)", raw)
		}
	}
	for _, raw := range []string{"false", "FALSE", "False"} {
		if b := coerceBool(raw); assert.NotNil(t, b, "coerceBool(%q)", raw) {
			assert.False(t, *b, "coerceBool(%q)", raw)
		}
	}
	// Truthy spellings other than the two literals do not parse.
	for _, raw := range []string{"1", "0", "yes", "no", "t", ""} {
		assert.Nil(t, coerceBool(raw), "coerceBool(%q)", raw)
	}
}

func TestCoerceInt32(t *testing.T) {
	if i := coerceInt32("42"); assert.NotNil(t, i) {
		assert.Equal(t, int32(42), *i)
	}
	if i := coerceInt32("-7"); assert.NotNil(t, i) {
		assert.Equal(t, int32(-7), *i)
	}
	if i := coerceInt32("2147483647"); assert.NotNil(t, i) {
		assert.Equal(t, int32(math.MaxInt32), *i)
	}
	// Out of range, fractional, and junk values all fail.
	assert.Nil(t, coerceInt32("2147483648"))
	assert.Nil(t, coerceInt32("4.5"))
	assert.Nil(t, coerceInt32("4.0"))
	assert.Nil(t, coerceInt32("abc"))
	assert.Nil(t, coerceInt32(""))
}

func TestCoerceInt64(t *testing.T) {
	// Values above 2^53 survive that would lose precision as
	// floats.
	if i := coerceInt64("9007199254740993"); assert.NotNil(t, i) {
		assert.Equal(t, int64(9007199254740993), *i)
	}
	if i := coerceInt64("-9223372036854775808"); assert.NotNil(t, i) {
		assert.Equal(t, int64(math.MinInt64), *i)
	}
	assert.Nil(t, coerceInt64("9223372036854775808"))
	assert.Nil(t, coerceInt64("1.5"))
	assert.Nil(t, coerceInt64(""))
}

func TestCoerceFloat(t *testing.T) {
	if f := coerceFloat("1.5"); assert.NotNil(t, f) {
		assert.Equal(t, 1.5, *f)
	}
	if f := coerceFloat("-0.25"); assert.NotNil(t, f) {
		assert.Equal(t, -0.25, *f)
	}
	if f := coerceFloat("1e3"); assert.NotNil(t, f) {
		assert.Equal(t, 1000.0, *f)
	}
	if f := coerceFloat("Inf"); assert.NotNil(t, f) {
		assert.True(t, math.IsInf(*f, 1))
	}
	assert.Nil(t, coerceFloat("abc"))
	assert.Nil(t, coerceFloat(""))
}

func TestCoercePassthrough(t *testing.T) {
	// Enum and datetime values are not validated at this layer.
	if s := coerceEnum("chartreuse"); assert.NotNil(t, s) {
		assert.Equal(t, "chartreuse", *s)
	}
	if s := coerceDatetime("not a date"); assert.NotNil(t, s) {
		assert.Equal(t, "not a date", *s)
	}
	assert.Nil(t, coerceEnum(""))
	assert.Nil(t, coerceDatetime(""))
}
