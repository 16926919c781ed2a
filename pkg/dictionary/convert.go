package dictionary

import (
	"strconv"
	"strings"
)

// ConvertFn turns the value part of a key=value line into a V.
type ConvertFn[V any] func(s string) (V, error)

func ConvertString(s string) (string, error) {
	return s, nil
}

func ConvertInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func ConvertFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func ConvertBool(s string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s))
}
