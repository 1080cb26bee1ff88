package serializer

import (
	"testing"

	"github.com/hatlonely/sqltable/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTableObject() model.TableObject {
	comment := "user table"
	autoIncrement := true
	return model.TableObject{
		AutoIncrement:  &autoIncrement,
		Name:           "users",
		Comment:        &comment,
		Engine:         "InnoDB",
		DefaultCharset: "utf8mb4",
		Columns: []model.ColumnObject{
			{Name: "id", Type: "BIGINT", Unsigned: true, NotNull: true, AutoIncrement: true},
			{Name: "status", Type: "ENUM", Values: []string{"active", "deleted"}, Default: "active"},
			{Name: "enabled", Type: "TINYINT", Size: 1, Default: true, Comment: "enabled"},
		},
		Indexes: []model.IndexObject{
			{Name: "PRIMARY", Type: model.IndexTypePrimary, Columns: []string{"id"}},
			{Name: "idx_status", Type: model.IndexTypeKey, Columns: []string{"status", "enabled"}, Comment: "status"},
		},
	}
}

func TestByteSerializer(t *testing.T) {
	for _, format := range append(Formats(), "", "yml") {
		t.Run(format, func(t *testing.T) {
			s, err := NewByteSerializer[model.TableObject](format)
			require.NoError(t, err)

			obj := newTableObject()
			buf, err := s.Serialize(obj)
			require.NoError(t, err)
			assert.NotEmpty(t, buf)

			decoded, err := s.Deserialize(buf)
			require.NoError(t, err)
			assert.Equal(t, obj, decoded)
		})
	}
}

func TestByteSerializer_Pointer(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			s, err := NewByteSerializer[*model.TableObject](format)
			require.NoError(t, err)

			obj := newTableObject()
			buf, err := s.Serialize(&obj)
			require.NoError(t, err)

			decoded, err := s.Deserialize(buf)
			require.NoError(t, err)
			assert.Equal(t, &obj, decoded)
		})
	}
}

func TestNewByteSerializer_Unsupported(t *testing.T) {
	_, err := NewByteSerializer[model.TableObject]("protobuf")
	assert.Error(t, err)
}

func TestJSONSerializer_Indent(t *testing.T) {
	buf, err := NewIndentJSONSerializer[map[string]int]("  ").Serialize(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(buf))

	buf, err = NewJSONSerializer[map[string]int]().Serialize(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(buf))
}

func TestBSONSerializer_NotDocument(t *testing.T) {
	_, err := NewBSONSerializer[string]().Serialize("users")
	assert.Error(t, err)
}
