package ddl

import (
	"testing"

	"github.com/hatlonely/sqltable/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatDefault(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: "NULL"},
		{name: "string", value: "active", want: "'active'"},
		{name: "string with quote", value: "it's", want: "'it''s'"},
		{name: "keyword", value: "current_timestamp", want: "CURRENT_TIMESTAMP"},
		{name: "now", value: "now()", want: "NOW()"},
		{name: "null keyword", value: "NULL", want: "NULL"},
		{name: "function call", value: "gen_random_uuid()", want: "gen_random_uuid()"},
		{name: "not a function call", value: "f(x)", want: "'f(x)'"},
		{name: "true", value: true, want: "T"},
		{name: "false", value: false, want: "F"},
		{name: "int", value: 18, want: "18"},
		{name: "int64", value: int64(-1), want: "-1"},
		{name: "float64", value: 0.1, want: "0.1"},
		{name: "float32", value: float32(1.5), want: "1.5"},
		{name: "integral float", value: float64(3), want: "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDefault(tt.value, "T", "F"))
		})
	}
}

func TestFormatType(t *testing.T) {
	tests := []struct {
		name   string
		column model.ColumnObject
		want   string
	}{
		{name: "plain", column: model.ColumnObject{Type: "int"}, want: "INT"},
		{name: "size", column: model.ColumnObject{Type: "varchar", Size: 255}, want: "VARCHAR(255)"},
		{name: "precision", column: model.ColumnObject{Type: "DECIMAL", Precision: 10, Scale: 2}, want: "DECIMAL(10, 2)"},
		{name: "values", column: model.ColumnObject{Type: "ENUM", Values: []string{"a", "b'c"}}, want: "ENUM('a', 'b''c')"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatType(tt.column))
		})
	}
}

func TestQuoteIdentifier(t *testing.T) {
	assert.Equal(t, "`users`", quoteIdentifier("users", "`"))
	assert.Equal(t, "`a``b`", quoteIdentifier("a`b", "`"))
	assert.Equal(t, `"a""b"`, quoteIdentifier(`a"b`, `"`))
	assert.Equal(t, "`a`, `b`", quoteIdentifiers([]string{"a", "b"}, "`"))
}
