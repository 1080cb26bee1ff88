package mysql

import (
	"github.com/hatlonely/sqltable/ddl"
	"github.com/hatlonely/sqltable/dialect"
	"github.com/hatlonely/sqltable/model"
	"github.com/hatlonely/sqltable/table"
	"github.com/pkg/errors"
)

// Table MySQL 方言的表
type Table = table.Table[*Column, *Index]

// Driver MySQL 方言驱动，也是默认的基准方言
type Driver struct{}

var _ table.Driver[*Column, *Index] = (*Driver)(nil)

func NewDriver() *Driver {
	return &Driver{}
}

func (d *Driver) Dialect() string {
	return ddl.DialectMySQL
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

// Column MySQL 列构建器
type Column struct {
	dialect.Column[*Column]
}

func NewColumn(name string) *Column {
	c := &Column{}
	c.Init(c, name)
	return c
}

func (c *Column) TinyInt() *Column   { return c.Type("TINYINT") }
func (c *Column) SmallInt() *Column  { return c.Type("SMALLINT") }
func (c *Column) MediumInt() *Column { return c.Type("MEDIUMINT") }
func (c *Column) Int() *Column       { return c.Type("INT") }
func (c *Column) BigInt() *Column    { return c.Type("BIGINT") }
func (c *Column) Float() *Column     { return c.Type("FLOAT") }
func (c *Column) Double() *Column    { return c.Type("DOUBLE") }

// Boolean MySQL 中 BOOLEAN 即 TINYINT(1)
func (c *Column) Boolean() *Column { return c.Type("TINYINT", 1) }

func (c *Column) Decimal(precision, scale int) *Column {
	return c.Type("DECIMAL", precision, scale)
}

func (c *Column) Char(size int) *Column      { return c.Type("CHAR", size) }
func (c *Column) Varchar(size int) *Column   { return c.Type("VARCHAR", size) }
func (c *Column) Text() *Column              { return c.Type("TEXT") }
func (c *Column) MediumText() *Column        { return c.Type("MEDIUMTEXT") }
func (c *Column) LongText() *Column          { return c.Type("LONGTEXT") }
func (c *Column) Blob() *Column              { return c.Type("BLOB") }
func (c *Column) VarBinary(size int) *Column { return c.Type("VARBINARY", size) }
func (c *Column) Date() *Column              { return c.Type("DATE") }
func (c *Column) DateTime() *Column          { return c.Type("DATETIME") }
func (c *Column) Timestamp() *Column         { return c.Type("TIMESTAMP") }
func (c *Column) JSON() *Column              { return c.Type("JSON") }

func (c *Column) Enum(values ...string) *Column { return c.Values("ENUM", values...) }
func (c *Column) Set(values ...string) *Column  { return c.Values("SET", values...) }

func (c *Column) Unsigned() *Column {
	return c.Mutate(func(obj *model.ColumnObject) { obj.Unsigned = true })
}

func (c *Column) Charset(charset string) *Column {
	return c.Mutate(func(obj *model.ColumnObject) { obj.Charset = charset })
}

// OnUpdate 如 CURRENT_TIMESTAMP
func (c *Column) OnUpdate(expr string) *Column {
	return c.Mutate(func(obj *model.ColumnObject) { obj.OnUpdate = expr })
}

// ApplyField 将与方言无关的字段类型映射为 MySQL 类型
func (c *Column) ApplyField(field model.FieldDefinition) error {
	switch field.Type {
	case model.FieldTypeString, "":
		size := field.Size
		if size <= 0 {
			size = 255
		}
		c.Varchar(size)
	case model.FieldTypeText:
		c.Text()
	case model.FieldTypeInt:
		c.Int()
	case model.FieldTypeBigInt:
		c.BigInt()
	case model.FieldTypeFloat:
		c.Float()
	case model.FieldTypeDecimal:
		precision, scale := field.Precision, field.Scale
		if precision <= 0 {
			precision = 10
		}
		c.Decimal(precision, scale)
	case model.FieldTypeBool:
		c.Boolean()
	case model.FieldTypeDate:
		c.DateTime()
	case model.FieldTypeJSON:
		c.JSON()
	case model.FieldTypeBytes:
		if field.Size > 0 {
			c.VarBinary(field.Size)
		} else {
			c.Blob()
		}
	default:
		return errors.Errorf("unsupported field type %q", field.Type)
	}

	c.Apply(field)
	if field.Unsigned {
		c.Unsigned()
	}
	return nil
}

// Index MySQL 索引构建器
type Index struct {
	dialect.Index[*Index]
}

func NewIndex(name string) *Index {
	i := &Index{}
	i.Init(i, name)
	return i
}

func (i *Index) Fulltext() *Index {
	return i.IndexType(model.IndexTypeFulltext)
}

func (i *Index) ApplyIndex(index model.IndexDefinition) error {
	i.IndexType(index.IndexType()).Columns(index.Fields...).Comment(index.Comment)
	return nil
}
