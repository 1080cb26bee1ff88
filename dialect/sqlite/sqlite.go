package sqlite

import (
	"github.com/hatlonely/sqltable/ddl"
	"github.com/hatlonely/sqltable/dialect"
	"github.com/hatlonely/sqltable/model"
	"github.com/hatlonely/sqltable/table"
	"github.com/pkg/errors"
)

// Table SQLite 方言的表
type Table = table.Table[*Column, *Index]

// Driver SQLite 方言驱动。SQLite 没有存储引擎、字符集和注释，这些元数据会被生成器忽略
type Driver struct{}

var _ table.Driver[*Column, *Index] = (*Driver)(nil)

func NewDriver() *Driver {
	return &Driver{}
}

func (d *Driver) Dialect() string {
	return ddl.DialectSQLite
}

func (d *Driver) NewColumnsContainer(t *Table) *table.ColumnsContainer[*Column, *Index] {
	return table.NewColumnsContainer(t, NewColumn)
}

func (d *Driver) NewIndexesContainer(t *Table) *table.IndexesContainer[*Column, *Index] {
	return table.NewIndexesContainer(t, NewIndex)
}

func NewTable(opts ...table.Option) *Table {
	return table.New[*Column, *Index](NewDriver(), opts...)
}

func FromDefinition(def *model.TableDefinition, opts ...table.Option) (*Table, error) {
	return table.FromDefinition[*Column, *Index](NewDriver(), def, opts...)
}

// Column SQLite 列构建器，类型即 SQLite 的五种类型亲和性
type Column struct {
	dialect.Column[*Column]
}

func NewColumn(name string) *Column {
	c := &Column{}
	c.Init(c, name)
	return c
}

func (c *Column) Integer() *Column { return c.Type("INTEGER") }
func (c *Column) Real() *Column    { return c.Type("REAL") }
func (c *Column) Text() *Column    { return c.Type("TEXT") }
func (c *Column) Blob() *Column    { return c.Type("BLOB") }
func (c *Column) Numeric() *Column { return c.Type("NUMERIC") }

func (c *Column) ApplyField(field model.FieldDefinition) error {
	switch field.Type {
	case model.FieldTypeString, model.FieldTypeText, model.FieldTypeDate, model.FieldTypeJSON, "":
		c.Text()
	case model.FieldTypeInt, model.FieldTypeBigInt, model.FieldTypeBool:
		c.Integer()
	case model.FieldTypeFloat:
		c.Real()
	case model.FieldTypeDecimal:
		c.Numeric()
	case model.FieldTypeBytes:
		c.Blob()
	default:
		return errors.Errorf("unsupported field type %q", field.Type)
	}

	c.Apply(field)
	// SQLite 不支持列注释
	c.Comment("")
	return nil
}

// Index SQLite 索引构建器，不支持 FULLTEXT
type Index struct {
	dialect.Index[*Index]
}

func NewIndex(name string) *Index {
	i := &Index{}
	i.Init(i, name)
	return i
}

func (i *Index) ApplyIndex(index model.IndexDefinition) error {
	if index.IndexType() == model.IndexTypeFulltext {
		return errors.New("sqlite does not support fulltext indexes")
	}
	i.IndexType(index.IndexType()).Columns(index.Fields...)
	return nil
}
