package model

// TableObject 表的规范化表示，不包含任何行为，是语句生成器的输入
type TableObject struct {
	AutoIncrement  *bool          `json:"autoIncrement" yaml:"autoIncrement" bson:"autoIncrement" msgpack:"autoIncrement"`
	Name           string         `json:"name" yaml:"name" bson:"name" msgpack:"name" validate:"required"`
	Comment        *string        `json:"comment" yaml:"comment" bson:"comment" msgpack:"comment"`
	Engine         string         `json:"engine" yaml:"engine" bson:"engine" msgpack:"engine"`
	Collate        string         `json:"collate" yaml:"collate" bson:"collate" msgpack:"collate"`
	DefaultCharset string         `json:"defaultCharset" yaml:"defaultCharset" bson:"defaultCharset" msgpack:"defaultCharset"`
	Columns        []ColumnObject `json:"columns" yaml:"columns" bson:"columns" msgpack:"columns" validate:"required,min=1,dive"`
	Indexes        []IndexObject  `json:"indexes" yaml:"indexes" bson:"indexes" msgpack:"indexes" validate:"dive"`
}

// ColumnObject 列的规范化表示，具体包含哪些属性由方言的列构建器决定
type ColumnObject struct {
	Name          string   `json:"name" yaml:"name" bson:"name" msgpack:"name" validate:"required"`
	Type          string   `json:"type" yaml:"type" bson:"type" msgpack:"type" validate:"required"`
	Size          int      `json:"size,omitempty" yaml:"size,omitempty" bson:"size,omitempty" msgpack:"size,omitempty" validate:"gte=0"`
	Precision     int      `json:"precision,omitempty" yaml:"precision,omitempty" bson:"precision,omitempty" msgpack:"precision,omitempty" validate:"gte=0"`
	Scale         int      `json:"scale,omitempty" yaml:"scale,omitempty" bson:"scale,omitempty" msgpack:"scale,omitempty" validate:"gte=0"`
	Values        []string `json:"values,omitempty" yaml:"values,omitempty" bson:"values,omitempty" msgpack:"values,omitempty"`
	Unsigned      bool     `json:"unsigned,omitempty" yaml:"unsigned,omitempty" bson:"unsigned,omitempty" msgpack:"unsigned,omitempty"`
	NotNull       bool     `json:"notNull,omitempty" yaml:"notNull,omitempty" bson:"notNull,omitempty" msgpack:"notNull,omitempty"`
	Default       any      `json:"default,omitempty" yaml:"default,omitempty" bson:"default,omitempty" msgpack:"default,omitempty"`
	AutoIncrement bool     `json:"autoIncrement,omitempty" yaml:"autoIncrement,omitempty" bson:"autoIncrement,omitempty" msgpack:"autoIncrement,omitempty"`
	Comment       string   `json:"comment,omitempty" yaml:"comment,omitempty" bson:"comment,omitempty" msgpack:"comment,omitempty"`
	Charset       string   `json:"charset,omitempty" yaml:"charset,omitempty" bson:"charset,omitempty" msgpack:"charset,omitempty"`
	Collate       string   `json:"collate,omitempty" yaml:"collate,omitempty" bson:"collate,omitempty" msgpack:"collate,omitempty"`
	OnUpdate      string   `json:"onUpdate,omitempty" yaml:"onUpdate,omitempty" bson:"onUpdate,omitempty" msgpack:"onUpdate,omitempty"`
}

// IndexType 索引类型
type IndexType string

const (
	IndexTypePrimary  IndexType = "PRIMARY"
	IndexTypeUnique   IndexType = "UNIQUE"
	IndexTypeKey      IndexType = "KEY"
	IndexTypeFulltext IndexType = "FULLTEXT"
)

// IndexObject 索引的规范化表示
type IndexObject struct {
	Name    string    `json:"name" yaml:"name" bson:"name" msgpack:"name" validate:"required"`
	Type    IndexType `json:"type" yaml:"type" bson:"type" msgpack:"type" validate:"required,oneof=PRIMARY UNIQUE KEY FULLTEXT"`
	Columns []string  `json:"columns" yaml:"columns" bson:"columns" msgpack:"columns" validate:"required,min=1,dive,required"`
	Comment string    `json:"comment,omitempty" yaml:"comment,omitempty" bson:"comment,omitempty" msgpack:"comment,omitempty"`
}

// Column 按名称查找列
func (t *TableObject) Column(name string) (ColumnObject, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnObject{}, false
}

// PrimaryKey 返回主键索引，没有主键时返回 false
func (t *TableObject) PrimaryKey() (IndexObject, bool) {
	for _, idx := range t.Indexes {
		if idx.Type == IndexTypePrimary {
			return idx, true
		}
	}
	return IndexObject{}, false
}
