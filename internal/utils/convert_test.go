package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"json number", json.Number("987654321"), "987654321"},
		{"float without fraction", float64(987654321), "987654321"},
		{"float with fraction", 1.5, "1.5"},
		{"int", 1234567, "1234567"},
		{"int64", int64(42), "42"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToString(tt.input))
		})
	}
}
