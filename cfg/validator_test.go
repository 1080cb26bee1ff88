package cfg

import (
	"testing"

	"github.com/hatlonely/sqltable/model"
	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	var nilDef *model.TableDefinition

	tests := []struct {
		name    string
		object  any
		wantErr bool
	}{
		{name: "nil", object: nil},
		{name: "nil pointer", object: nilDef},
		{name: "not struct", object: "users"},
		{
			name: "valid definition",
			object: &model.TableDefinition{
				Name:   "users",
				Fields: []model.FieldDefinition{{Name: "id", Type: model.FieldTypeBigInt}},
			},
		},
		{
			name:    "missing name",
			object:  &model.TableDefinition{Fields: []model.FieldDefinition{{Name: "id"}}},
			wantErr: true,
		},
		{
			name:    "no fields",
			object:  &model.TableDefinition{Name: "users"},
			wantErr: true,
		},
		{
			name: "unknown field type",
			object: model.TableDefinition{
				Name:   "users",
				Fields: []model.FieldDefinition{{Name: "id", Type: "uuid"}},
			},
			wantErr: true,
		},
		{
			name: "index without fields",
			object: &model.TableDefinition{
				Name:    "users",
				Fields:  []model.FieldDefinition{{Name: "id"}},
				Indexes: []model.IndexDefinition{{Name: "idx_id"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.object)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
