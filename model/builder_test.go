package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试用的结构体
type userRecord struct {
	ID        int64             `rdb:"id,primary,autoIncrement,unsigned"`
	Name      string            `rdb:"name,size=64,required,unique,comment=user name"`
	Email     string            `rdb:"email,index=idx_email_status"`
	Status    string            `rdb:"status,size=16,default=active,index=idx_email_status"`
	Age       int               `rdb:"age,default=18"`
	Score     float64           `rdb:"score,type=decimal,precision=10,scale=2,default=0.5"`
	Enabled   bool              `rdb:"enabled,default=true"`
	Avatar    []byte            `rdb:"avatar"`
	CreatedAt time.Time         `rdb:"created_at,not_null"`
	Extra     map[string]string // 没有 tag 的字段使用字段名
	TempData  string            `rdb:"-"`
	internal  string
}

func (userRecord) TableName() string {
	return "users"
}

type orderRecord struct {
	UserID  int64  `rdb:"user_id,pk" table:"orders"`
	OrderID int64  `rdb:"order_id,pk"`
	Memo    string `rdb:"memo,type=text,default='n/a'"`
}

type Product struct {
	ID int32 `rdb:"id,primary"`
}

func TestDefinitionBuilder_FromStruct(t *testing.T) {
	builder := NewDefinitionBuilder()

	t.Run("users", func(t *testing.T) {
		def, err := builder.FromStruct(&userRecord{})
		require.NoError(t, err)

		assert.Equal(t, &TableDefinition{
			Name: "users",
			Fields: []FieldDefinition{
				{Name: "id", Type: FieldTypeBigInt, Unsigned: true, AutoIncrement: true},
				{Name: "name", Type: FieldTypeString, Size: 64, Required: true, Comment: "user name"},
				{Name: "email", Type: FieldTypeString},
				{Name: "status", Type: FieldTypeString, Size: 16, Default: "active"},
				{Name: "age", Type: FieldTypeInt, Default: int64(18)},
				{Name: "score", Type: FieldTypeDecimal, Precision: 10, Scale: 2, Default: 0.5},
				{Name: "enabled", Type: FieldTypeBool, Default: true},
				{Name: "avatar", Type: FieldTypeBytes},
				{Name: "created_at", Type: FieldTypeDate, Required: true},
				{Name: "Extra", Type: FieldTypeJSON},
			},
			PrimaryKey: []string{"id"},
			Indexes: []IndexDefinition{
				{Name: "uk_name", Fields: []string{"name"}, Unique: true},
				{Name: "idx_email_status", Fields: []string{"email", "status"}},
			},
		}, def)
	})

	t.Run("table tag and composite primary key", func(t *testing.T) {
		def, err := builder.FromStruct(orderRecord{})
		require.NoError(t, err)

		assert.Equal(t, "orders", def.Name)
		assert.Equal(t, []string{"user_id", "order_id"}, def.PrimaryKey)
		assert.Equal(t, FieldTypeText, def.Fields[2].Type)
		assert.Equal(t, "n/a", def.Fields[2].Default)
		assert.Empty(t, def.Indexes)
	})

	t.Run("struct name as table name", func(t *testing.T) {
		def, err := builder.FromStruct(Product{})
		require.NoError(t, err)
		assert.Equal(t, "product", def.Name)
		assert.Equal(t, FieldTypeInt, def.Fields[0].Type)
	})
}

func TestDefinitionBuilder_FromStruct_Error(t *testing.T) {
	builder := NewDefinitionBuilder()

	tests := []struct {
		name string
		v    any
	}{
		{name: "not struct", v: "users"},
		{name: "unknown option", v: struct {
			ID int `rdb:"id,primary_key"`
		}{}},
		{name: "unknown key option", v: struct {
			ID int `rdb:"id,length=10"`
		}{}},
		{name: "invalid size", v: struct {
			Name string `rdb:"name,size=abc"`
		}{}},
		{name: "negative precision", v: struct {
			Price float64 `rdb:"price,precision=-1"`
		}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := builder.FromStruct(tt.v)
			assert.Error(t, err)
		})
	}
}

func TestParseDefaultValue(t *testing.T) {
	tests := []struct {
		value     string
		fieldType FieldType
		want      any
	}{
		{value: "active", fieldType: FieldTypeString, want: "active"},
		{value: `"quoted"`, fieldType: FieldTypeString, want: "quoted"},
		{value: "'quoted'", fieldType: FieldTypeText, want: "quoted"},
		{value: "18", fieldType: FieldTypeInt, want: int64(18)},
		{value: "-1", fieldType: FieldTypeBigInt, want: int64(-1)},
		{value: "0.5", fieldType: FieldTypeFloat, want: 0.5},
		{value: "10.25", fieldType: FieldTypeDecimal, want: 10.25},
		{value: "true", fieldType: FieldTypeBool, want: true},
		{value: "CURRENT_TIMESTAMP", fieldType: FieldTypeDate, want: "CURRENT_TIMESTAMP"},
		{value: "abc", fieldType: FieldTypeInt, want: "abc"},
	}

	for _, tt := range tests {
		t.Run(string(tt.fieldType)+"/"+tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDefaultValue(tt.value, tt.fieldType))
		})
	}
}
