package dialect_test

import (
	"testing"

	"github.com/hatlonely/sqltable/ddl"
	"github.com/hatlonely/sqltable/dialect/mysql"
	"github.com/hatlonely/sqltable/dialect/postgres"
	"github.com/hatlonely/sqltable/dialect/sqlite"
	"github.com/hatlonely/sqltable/model"
	"github.com/hatlonely/sqltable/table"
	"github.com/stretchr/testify/assert"
)

func TestDriverIsolation(t *testing.T) {
	options := table.WithOptions(table.Options{Name: "users", Engine: "InnoDB", DefaultCharset: "utf8mb4"})
	mysqlTable := mysql.NewTable(options)
	sqliteTable := sqlite.NewTable(options)
	postgresTable := postgres.NewTable(options)

	assert.IsType(t, &mysql.Column{}, mysqlTable.Column("id"))
	assert.IsType(t, &sqlite.Column{}, sqliteTable.Column("id"))
	assert.IsType(t, &postgres.Column{}, postgresTable.Column("id"))
	assert.IsType(t, &mysql.Index{}, mysqlTable.Index("PRIMARY"))
	assert.IsType(t, &sqlite.Index{}, sqliteTable.Index("PRIMARY"))
	assert.IsType(t, &postgres.Index{}, postgresTable.Index("PRIMARY"))

	assert.Equal(t, ddl.DialectMySQL, mysqlTable.Driver().Dialect())
	assert.Equal(t, ddl.DialectSQLite, sqliteTable.Driver().Dialect())
	assert.Equal(t, ddl.DialectPostgres, postgresTable.Driver().Dialect())

	for _, got := range []table.Options{mysqlTable.Options(), sqliteTable.Options(), postgresTable.Options()} {
		assert.Equal(t, "users", got.Name)
		assert.Equal(t, "InnoDB", got.Engine)
		assert.Equal(t, "utf8mb4", got.DefaultCharset)
	}

	mysqlTable.Column("name")
	assert.Equal(t, []string{"id", "name"}, mysqlTable.ColumnNames())
	assert.Equal(t, []string{"id"}, sqliteTable.ColumnNames())
}

func TestColumn_Chaining(t *testing.T) {
	c := mysql.NewColumn("id")
	same := c.BigInt().NotNull().AutoIncrement().Default(nil).Comment("id")
	assert.Same(t, c, same)
	assert.Equal(t, "id", c.Name())

	obj := c.Object()
	obj.Name = "changed"
	assert.Equal(t, "id", c.Object().Name)

	i := mysql.NewIndex("idx_name")
	assert.Equal(t, model.IndexTypeKey, i.Object().Type)
	columns := []string{"a", "b"}
	i.Columns(columns...)
	columns[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, i.Object().Columns)
	assert.Equal(t, model.IndexTypePrimary, i.Primary().Object().Type)
	assert.Equal(t, model.IndexTypeKey, i.Key().Object().Type)
}
