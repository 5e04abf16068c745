package repository

import (
	"fmt"
	"strconv"
)

// Amounts are stored as decimal strings so that DynamoDB number rounding never applies.

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("stored amount %q: %w", s, err)
	}
	return v, nil
}

func amountsToStrings(m map[string]float64) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = floatToString(v)
	}
	return out
}

func stringsToAmounts(m map[string]string) (map[string]float64, error) {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		f, err := stringToFloat(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out[k] = f
	}
	return out, nil
}
