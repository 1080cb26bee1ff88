package postgres

import (
	"github.com/hatlonely/sqltable/ddl"
	"github.com/hatlonely/sqltable/dialect"
	"github.com/hatlonely/sqltable/model"
	"github.com/hatlonely/sqltable/table"
	"github.com/pkg/errors"
)

// Table PostgreSQL 方言的表，表名可以带 schema，如 public.users
type Table = table.Table[*Column, *Index]

type Driver struct{}

var _ table.Driver[*Column, *Index] = (*Driver)(nil)

func NewDriver() *Driver {
	return &Driver{}
}

func (d *Driver) Dialect() string {
	return ddl.DialectPostgres
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

// Column PostgreSQL 列构建器
type Column struct {
	dialect.Column[*Column]
}

func NewColumn(name string) *Column {
	c := &Column{}
	c.Init(c, name)
	return c
}

func (c *Column) SmallInt() *Column        { return c.Type("SMALLINT") }
func (c *Column) Integer() *Column         { return c.Type("INTEGER") }
func (c *Column) BigInt() *Column          { return c.Type("BIGINT") }
func (c *Column) Serial() *Column          { return c.Type("SERIAL") }
func (c *Column) BigSerial() *Column       { return c.Type("BIGSERIAL") }
func (c *Column) Real() *Column            { return c.Type("REAL") }
func (c *Column) DoublePrecision() *Column { return c.Type("DOUBLE PRECISION") }
func (c *Column) Varchar(size int) *Column { return c.Type("VARCHAR", size) }
func (c *Column) Text() *Column            { return c.Type("TEXT") }
func (c *Column) Boolean() *Column         { return c.Type("BOOLEAN") }
func (c *Column) Date() *Column            { return c.Type("DATE") }
func (c *Column) Timestamp() *Column       { return c.Type("TIMESTAMP") }
func (c *Column) TimestampTz() *Column     { return c.Type("TIMESTAMPTZ") }
func (c *Column) JSONB() *Column           { return c.Type("JSONB") }
func (c *Column) UUID() *Column            { return c.Type("UUID") }
func (c *Column) Bytea() *Column           { return c.Type("BYTEA") }

func (c *Column) Numeric(precision, scale int) *Column {
	return c.Type("NUMERIC", precision, scale)
}

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
		c.Integer()
	case model.FieldTypeBigInt:
		c.BigInt()
	case model.FieldTypeFloat:
		c.DoublePrecision()
	case model.FieldTypeDecimal:
		precision := field.Precision
		if precision <= 0 {
			precision = 10
		}
		c.Numeric(precision, field.Scale)
	case model.FieldTypeBool:
		c.Boolean()
	case model.FieldTypeDate:
		c.Timestamp()
	case model.FieldTypeJSON:
		c.JSONB()
	case model.FieldTypeBytes:
		c.Bytea()
	default:
		return errors.Errorf("unsupported field type %q", field.Type)
	}

	c.Apply(field)
	return nil
}

// Index PostgreSQL 索引构建器，不支持 FULLTEXT
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
		return errors.New("postgres does not support fulltext indexes, use a GIN index instead")
	}
	i.IndexType(index.IndexType()).Columns(index.Fields...).Comment(index.Comment)
	return nil
}
