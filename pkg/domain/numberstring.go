package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// NumberKind discriminates the payload of a NumberString.
type NumberKind uint8

const (
	// NumberNull is a JSON null or an absent field.
	NumberNull NumberKind = iota
	// NumberNative is a JSON number.
	NumberNative
	// NumberText is a JSON string.
	NumberText
)

// NumberString is a value that is numeric in meaning but arrives either as a
// native number, a numeric string, null or not at all.
type NumberString struct {
	kind NumberKind
	num  float64
	text string
}

// Number wraps a native number.
func Number(v float64) NumberString {
	return NumberString{kind: NumberNative, num: v}
}

// Text wraps a string value.
func Text(s string) NumberString {
	return NumberString{kind: NumberText, text: s}
}

// Kind returns the discriminant.
func (n NumberString) Kind() NumberKind {
	return n.kind
}

// IsNull reports whether the value was null or absent.
func (n NumberString) IsNull() bool {
	return n.kind == NumberNull
}

// Valid reports whether the value parses as a finite number.
func (n NumberString) Valid() bool {
	_, err := n.Float64()
	return err == nil
}

// Float64 converts the value, failing for null and non-numeric text.
func (n NumberString) Float64() (float64, error) {
	switch n.kind {
	case NumberNative:
		if math.IsNaN(n.num) || math.IsInf(n.num, 0) {
			return 0, errors.Errorf("number %v is not finite", n.num)
		}
		return n.num, nil
	case NumberText:
		return parseFinite(n.text)
	default:
		return 0, errors.New("number is null")
	}
}

// Decimal converts the value to a decimal, failing for null and non-numeric text.
func (n NumberString) Decimal() (decimal.Decimal, error) {
	switch n.kind {
	case NumberNative:
		if _, err := n.Float64(); err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromFloat(n.num), nil
	case NumberText:
		d, err := decimal.NewFromString(strings.TrimSpace(n.text))
		if err != nil {
			return decimal.Zero, errors.Wrapf(err, "parse %q as decimal", n.text)
		}
		return d, nil
	default:
		return decimal.Zero, errors.New("number is null")
	}
}

// String returns the value as received; null renders as an empty string.
func (n NumberString) String() string {
	switch n.kind {
	case NumberNative:
		return strconv.FormatFloat(n.num, 'f', -1, 64)
	case NumberText:
		return n.text
	default:
		return ""
	}
}

// MarshalJSON encodes the value in the form it was received.
func (n NumberString) MarshalJSON() ([]byte, error) {
	switch n.kind {
	case NumberNative:
		if math.IsNaN(n.num) || math.IsInf(n.num, 0) {
			return nil, errors.Errorf("number %v is not finite", n.num)
		}
		return []byte(strconv.FormatFloat(n.num, 'f', -1, 64)), nil
	case NumberText:
		return json.Marshal(n.text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a number, a string or null.
func (n *NumberString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*n = NumberString{}
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "decode number string")
		}
		*n = Text(s)
		return nil
	default:
		v, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return errors.Wrapf(err, "decode number %s", data)
		}
		*n = Number(v)
		return nil
	}
}

// IsValidNumberString reports whether v is a finite number or a string that
// parses as one. Any other type, including nil, is invalid.
func IsValidNumberString(v any) bool {
	switch x := v.(type) {
	case NumberString:
		return x.Valid()
	case *NumberString:
		return x != nil && x.Valid()
	case string:
		_, err := parseFinite(x)
		return err == nil
	case json.Number:
		_, err := parseFinite(string(x))
		return err == nil
	case float64:
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	case float32:
		f := float64(x)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %q as number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("number %q is not finite", s)
	}
	return v, nil
}
