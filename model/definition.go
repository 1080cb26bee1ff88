package model

// TableDefinition 与方言无关的表定义，可以来自结构体标签、gorm 模型或配置文件
type TableDefinition struct {
	Name           string            `json:"name" yaml:"name" toml:"name" validate:"required"`
	Engine         string            `json:"engine,omitempty" yaml:"engine,omitempty" toml:"engine,omitempty"`
	DefaultCharset string            `json:"defaultCharset,omitempty" yaml:"defaultCharset,omitempty" toml:"defaultCharset,omitempty"`
	Collate        string            `json:"collate,omitempty" yaml:"collate,omitempty" toml:"collate,omitempty"`
	Comment        *string           `json:"comment,omitempty" yaml:"comment,omitempty" toml:"comment,omitempty"`
	AutoIncrement  *bool             `json:"autoIncrement,omitempty" yaml:"autoIncrement,omitempty" toml:"autoIncrement,omitempty"`
	Fields         []FieldDefinition `json:"fields" yaml:"fields" toml:"fields" validate:"required,min=1,dive"`
	PrimaryKey     []string          `json:"primaryKey,omitempty" yaml:"primaryKey,omitempty" toml:"primaryKey,omitempty"` // 主键字段名列表，支持复合主键
	Indexes        []IndexDefinition `json:"indexes,omitempty" yaml:"indexes,omitempty" toml:"indexes,omitempty" validate:"dive"`
}

// FieldDefinition 字段定义
type FieldDefinition struct {
	Name          string    `json:"name" yaml:"name" toml:"name" validate:"required"`
	Type          FieldType `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty" def:"string" validate:"omitempty,oneof=string text int bigint float decimal bool date json bytes"`
	Size          int       `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty" validate:"gte=0"` // 字段长度，如 VARCHAR(255)
	Precision     int       `json:"precision,omitempty" yaml:"precision,omitempty" toml:"precision,omitempty" validate:"gte=0"`
	Scale         int       `json:"scale,omitempty" yaml:"scale,omitempty" toml:"scale,omitempty" validate:"gte=0"`
	Unsigned      bool      `json:"unsigned,omitempty" yaml:"unsigned,omitempty" toml:"unsigned,omitempty"`
	Required      bool      `json:"required,omitempty" yaml:"required,omitempty" toml:"required,omitempty"`
	Default       any       `json:"default,omitempty" yaml:"default,omitempty" toml:"default,omitempty"`
	AutoIncrement bool      `json:"autoIncrement,omitempty" yaml:"autoIncrement,omitempty" toml:"autoIncrement,omitempty"`
	Comment       string    `json:"comment,omitempty" yaml:"comment,omitempty" toml:"comment,omitempty"`
}

// FieldType 字段类型
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeText    FieldType = "text"
	FieldTypeInt     FieldType = "int"
	FieldTypeBigInt  FieldType = "bigint"
	FieldTypeFloat   FieldType = "float"
	FieldTypeDecimal FieldType = "decimal"
	FieldTypeBool    FieldType = "bool"
	FieldTypeDate    FieldType = "date"
	FieldTypeJSON    FieldType = "json"
	FieldTypeBytes   FieldType = "bytes"
)

// IndexDefinition 索引定义
type IndexDefinition struct {
	Name     string   `json:"name" yaml:"name" toml:"name" validate:"required"`
	Fields   []string `json:"fields" yaml:"fields" toml:"fields" validate:"required,min=1"`
	Primary  bool     `json:"primary,omitempty" yaml:"primary,omitempty" toml:"primary,omitempty"`
	Unique   bool     `json:"unique,omitempty" yaml:"unique,omitempty" toml:"unique,omitempty"`
	Fulltext bool     `json:"fulltext,omitempty" yaml:"fulltext,omitempty" toml:"fulltext,omitempty"`
	Comment  string   `json:"comment,omitempty" yaml:"comment,omitempty" toml:"comment,omitempty"`
}

// IndexType 返回索引定义对应的索引类型
func (d IndexDefinition) IndexType() IndexType {
	switch {
	case d.Primary:
		return IndexTypePrimary
	case d.Fulltext:
		return IndexTypeFulltext
	case d.Unique:
		return IndexTypeUnique
	default:
		return IndexTypeKey
	}
}
