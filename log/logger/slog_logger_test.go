package logger

import (
	"testing"

	"github.com/hatlonely/sqltable/log/writer"
	"github.com/hatlonely/sqltable/ref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSLogWithOptions(t *testing.T) {
	tests := []struct {
		name    string
		options *SLogOptions
		wantErr bool
	}{
		{name: "nil options", options: nil, wantErr: true},
		{name: "default console output", options: &SLogOptions{}},
		{
			name: "console output through registry",
			options: &SLogOptions{
				Level:  "debug",
				Format: "json",
				Output: &ref.TypeOptions{
					Namespace: "github.com/hatlonely/sqltable/log/writer",
					Type:      "ConsoleWriter",
					Options:   &writer.ConsoleWriterOptions{Target: "stdout"},
				},
			},
		},
		{name: "invalid level", options: &SLogOptions{Level: "invalid"}, wantErr: true},
		{name: "invalid format", options: &SLogOptions{Format: "xml"}, wantErr: true},
		{
			name: "unknown writer",
			options: &SLogOptions{
				Output: &ref.TypeOptions{Namespace: "github.com/hatlonely/sqltable/log/writer", Type: "KafkaWriter"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewSLogWithOptions(tt.options)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

var sharedBuffer = writer.NewBufferWriter()

func newSharedBuffer() *writer.BufferWriter {
	return sharedBuffer
}

func TestSLog_Output(t *testing.T) {
	ref.MustRegister("github.com/hatlonely/sqltable/log/logger", "SharedBuffer", newSharedBuffer)

	l, err := NewSLogWithOptions(&SLogOptions{
		Level:  "debug",
		Format: "json",
		Output: &ref.TypeOptions{Namespace: "github.com/hatlonely/sqltable/log/logger", Type: "SharedBuffer"},
		Fields: map[string]any{"service": "sqltable"},
	})
	require.NoError(t, err)

	l.With("table", "users").WithGroup("ddl").Debug("generated", "dialect", "mysql")

	out := sharedBuffer.String()
	assert.Contains(t, out, `"msg":"generated"`)
	assert.Contains(t, out, `"service":"sqltable"`)
	assert.Contains(t, out, `"table":"users"`)
	assert.Contains(t, out, `"ddl":{"dialect":"mysql"}`)
}

func TestParseLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "", "warn", "warning", "error", "DEBUG"} {
		_, err := parseLevel(level)
		assert.NoError(t, err, level)
	}
	_, err := parseLevel("trace")
	assert.Error(t, err)
}
