package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidNumberString(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected bool
	}{
		{name: "float", input: 1.5, expected: true},
		{name: "zero", input: 0, expected: true},
		{name: "negative int", input: -3, expected: true},
		{name: "uint64", input: uint64(7), expected: true},
		{name: "float32", input: float32(2.25), expected: true},
		{name: "decimal string", input: "1.5", expected: true},
		{name: "zero string", input: "0", expected: true},
		{name: "negative string", input: "-3", expected: true},
		{name: "exponent string", input: "1e3", expected: true},
		{name: "json number", input: json.Number("42.1"), expected: true},
		{name: "number string value", input: Text("12"), expected: true},
		{name: "native number value", input: Number(12), expected: true},
		{name: "nil", input: nil, expected: false},
		{name: "null number string", input: NumberString{}, expected: false},
		{name: "nil pointer", input: (*NumberString)(nil), expected: false},
		{name: "word", input: "abc", expected: false},
		{name: "empty string", input: "", expected: false},
		{name: "NaN", input: math.NaN(), expected: false},
		{name: "infinity", input: math.Inf(1), expected: false},
		{name: "infinity string", input: "Inf", expected: false},
		{name: "bool", input: true, expected: false},
		{name: "slice", input: []string{"1"}, expected: false},
		{name: "map", input: map[string]int{"a": 1}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidNumberString(tt.input))
		})
	}
}

func TestNumberString_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Num     NumberString `json:"num"`
		Str     NumberString `json:"str"`
		Null    NumberString `json:"null"`
		Missing NumberString `json:"missing"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"num": 12.5, "str": "0.0001", "null": null}`), &payload))

	assert.Equal(t, NumberNative, payload.Num.Kind())
	v, err := payload.Num.Float64()
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	assert.Equal(t, NumberText, payload.Str.Kind())
	d, err := payload.Str.Decimal()
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("0.0001")))

	assert.True(t, payload.Null.IsNull())
	assert.True(t, payload.Missing.IsNull())
}

func TestNumberString_UnmarshalJSON_Invalid(t *testing.T) {
	var n NumberString
	assert.Error(t, json.Unmarshal([]byte(`true`), &n))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &n))
}

func TestNumberString_Conversions(t *testing.T) {
	_, err := NumberString{}.Float64()
	assert.Error(t, err)
	_, err = NumberString{}.Decimal()
	assert.Error(t, err)

	_, err = Text("abc").Float64()
	assert.Error(t, err)
	_, err = Text("abc").Decimal()
	assert.Error(t, err)

	_, err = Number(math.Inf(-1)).Decimal()
	assert.Error(t, err)

	d, err := Number(0.5).Decimal()
	require.NoError(t, err)
	assert.Equal(t, "0.5", d.String())

	v, err := Text(" 42 ").Float64()
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
}

func TestNumberString_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A NumberString `json:"a"`
		B NumberString `json:"b"`
		C NumberString `json:"c"`
	}{A: Number(1.25), B: Text("0.1"), C: NumberString{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1.25, "b": "0.1", "c": null}`, string(out))

	assert.Equal(t, "1.25", Number(1.25).String())
	assert.Equal(t, "0.1", Text("0.1").String())
	assert.Equal(t, "", NumberString{}.String())
}
