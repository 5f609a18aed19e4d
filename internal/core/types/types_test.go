package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityConversions(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		scaled int64
	}{
		{"whole units", 5, 50_000},
		{"fractional", 2.5, 25_000},
		{"four decimals", 0.0001, 1},
		{"rounding", 1.00005, 10_001},
		{"negative", -3.25, -32_500},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuantityFromFloat64(tt.input)
			assert.Equal(t, tt.scaled, q.Int64Scaled())
			assert.InDelta(t, tt.input, q.Float64(), 1e-9)
		})
	}
}

func TestQuantityFromInt(t *testing.T) {
	q := NewQuantityFromInt(7)
	assert.Equal(t, int64(70_000), q.Int64Scaled())
	assert.Equal(t, 7.0, q.Float64())
}

func TestQuantitySignHelpers(t *testing.T) {
	pos := NewQuantityFromInt(1)
	neg := pos.Neg()

	assert.True(t, pos.IsPositive())
	assert.True(t, neg.IsNegative())
	assert.True(t, Quantity(0).IsZero())
	assert.Equal(t, pos, neg.Abs())
	assert.Equal(t, pos, pos.Abs())
}

func TestQuantityString(t *testing.T) {
	tests := []struct {
		q    Quantity
		want string
	}{
		{NewQuantityFromInt(5), "5.0000"},
		{NewQuantityFromFloat64(2.5), "2.5000"},
		{NewQuantityFromFloat64(-0.75), "-0.7500"},
		{Quantity(1), "0.0001"},
		{Quantity(0), "0.0000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.q.String())
	}
}

func TestQuantityJSONRoundTrip(t *testing.T) {
	q := NewQuantityFromFloat64(12.3456)

	data, err := json.Marshal(q)
	require.NoError(t, err)
	assert.Equal(t, "12.3456", string(data))

	var parsed Quantity
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, q, parsed)
}

func TestQuantityUnmarshalVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Quantity
	}{
		{"number", "3.5", NewQuantityFromFloat64(3.5)},
		{"string", `"3.5"`, NewQuantityFromFloat64(3.5)},
		{"integer", "10", NewQuantityFromInt(10)},
		{"negative", "-1.25", NewQuantityFromFloat64(-1.25)},
		{"extra digits truncated", "1.99999", Quantity(19_999)},
		{"exponent", "1e2", NewQuantityFromInt(100)},
		{"null", "null", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q Quantity
			require.NoError(t, json.Unmarshal([]byte(tt.input), &q))
			assert.Equal(t, tt.want, q)
		})
	}
}

func TestQuantityUnmarshalRejectsGarbage(t *testing.T) {
	var q Quantity
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &q))
}

func TestQuantityDecimal(t *testing.T) {
	q := NewQuantityFromFloat64(2.5)
	assert.Equal(t, "2.5", q.Decimal().String())
}

func TestMoneyHelpers(t *testing.T) {
	m, err := NewMoneyFromString("10.99")
	require.NoError(t, err)
	assert.Equal(t, "10.99", m.String())

	assert.True(t, ZeroMoney().IsZero())
	assert.Panics(t, func() { MustMoney("not-a-number") })
}
