package dashboard

import (
	stdjson "encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"attendance-dashboard/internal/constants"
)

// Payload maps metric name → department name → head count.
// Counts are never nil once the payload has been through ValidatePayload.
type Payload map[string]map[string]*big.Int

// ValidatePayload normalizes a decoded JSON value into a Payload.
// Unknown metrics and departments are dropped without notice, values that are not integers become 0.
func ValidatePayload(raw any) (Payload, error) {
	top, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrInvalidPayloadShape
	}

	payload := make(Payload, len(top))
	for metric, entry := range top {
		if !constants.IsMetric(metric) {
			continue
		}

		values := make(map[string]*big.Int)
		if inner, ok := entry.(map[string]any); ok {
			for dep, v := range inner {
				if !constants.IsDepartment(dep) {
					continue
				}
				values[dep] = toInt(v)
			}
		}

		payload[metric] = values
	}

	return payload, nil
}

func toInt(v any) *big.Int {
	switch val := v.(type) {
	case string:
		return parseDecimal(val)
	case stdjson.Number:
		if n, ok := new(big.Int).SetString(val.String(), 10); ok {
			return n
		}
		f, err := strconv.ParseFloat(val.String(), 64)
		if err != nil {
			return new(big.Int)
		}
		return truncate(f)
	case float64:
		return truncate(val)
	case float32:
		return truncate(float64(val))
	case *big.Int:
		if val == nil {
			return new(big.Int)
		}
		return new(big.Int).Set(val)
	case uint64:
		return new(big.Int).SetUint64(val)
	case uint:
		return new(big.Int).SetUint64(uint64(val))
	}

	n, err := cast.ToInt64E(v)
	if err != nil {
		return new(big.Int)
	}
	return big.NewInt(n)
}

// parseDecimal reads a base-10 integer with an optional sign. Surrounding
// whitespace is ignored and single underscores may separate digits ("1_000").
// Anything else yields 0.
func parseDecimal(s string) *big.Int {
	s = strings.TrimSpace(s)

	digits := s
	if digits != "" && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] != '_' {
			continue
		}
		if i == 0 || i == len(digits)-1 || !isDigit(digits[i-1]) || !isDigit(digits[i+1]) {
			return new(big.Int)
		}
	}

	n, ok := new(big.Int).SetString(strings.ReplaceAll(s, "_", ""), 10)
	if !ok {
		return new(big.Int)
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// truncate drops the fraction; NaN and infinities become 0.
func truncate(f float64) *big.Int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return new(big.Int)
	}
	n, _ := big.NewFloat(f).Int(nil)
	return n
}
