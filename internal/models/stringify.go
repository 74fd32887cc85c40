package models

import (
	"math"
	"strconv"
	"strings"
)

// Stringify returns the text form of a value as it appears when the value
// is interpolated into XML, YAML or CSV output. Arrays are joined with
// commas (null elements render empty) and objects render as
// "[object Object]".
func Stringify(v JSONValue) string {
	switch val := v.(type) {
	case nil, JSONNull:
		return "null"
	case JSONBool:
		return strconv.FormatBool(bool(val))
	case JSONNumber:
		return FormatNumber(float64(val))
	case JSONString:
		return string(val)
	case JSONArray:
		parts := make([]string, len(val))
		for i, item := range val {
			if _, isNull := item.(JSONNull); isNull || item == nil {
				continue
			}
			parts[i] = Stringify(item)
		}
		return strings.Join(parts, ",")
	case *JSONObject:
		return "[object Object]"
	default:
		return ""
	}
}

// FormatNumber renders n using the shortest decimal that round-trips.
// Magnitudes in [1e-6, 1e21) use plain notation, everything else uses an
// exponent without leading zeros ("1e+21", "1.5e-7").
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}

	abs := math.Abs(n)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	s := strconv.FormatFloat(n, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
