package table

import (
	"testing"

	"github.com/hatlonely/sqltable/model"
	"github.com/stretchr/testify/assert"
)

func TestFromDefinition_Error(t *testing.T) {
	driver := &fakeDriver{dialect: "fake"}

	t.Run("nil definition", func(t *testing.T) {
		_, err := FromDefinition[*fakeColumn, *fakeIndex](driver, nil)
		assert.Error(t, err)
	})

	t.Run("column cannot apply field", func(t *testing.T) {
		_, err := FromDefinition[*fakeColumn, *fakeIndex](driver, &model.TableDefinition{
			Name:   "users",
			Fields: []model.FieldDefinition{{Name: "id", Type: model.FieldTypeInt}},
		})
		assert.Error(t, err)
	})

	t.Run("table metadata only", func(t *testing.T) {
		comment := "user table"
		tbl, err := FromDefinition[*fakeColumn, *fakeIndex](driver, &model.TableDefinition{
			Name:           "users",
			Engine:         "InnoDB",
			DefaultCharset: "utf8mb4",
			Collate:        "utf8mb4_bin",
			Comment:        &comment,
		})
		assert.NoError(t, err)
		assert.Equal(t, "users", tbl.Name())
		assert.Equal(t, "InnoDB", tbl.Engine())
		assert.Equal(t, "utf8mb4", tbl.DefaultCharset())
		assert.Equal(t, "utf8mb4_bin", tbl.Collate())
		got, ok := tbl.Comment()
		assert.True(t, ok)
		assert.Equal(t, comment, got)
		_, ok = tbl.AutoIncrement()
		assert.False(t, ok)
	})
}
