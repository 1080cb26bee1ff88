package ddl

import (
	"fmt"
	"strings"

	"github.com/hatlonely/sqltable/model"
	"github.com/pkg/errors"
)

type SQLiteGeneratorOptions struct {
	IfNotExists bool `cfg:"ifNotExists"`
}

// SQLiteGenerator 生成 SQLite 建表语句。
// 普通索引无法在 CREATE TABLE 中声明，会生成在建表语句之后的 CREATE INDEX 语句。
// 存储引擎、字符集和注释在 SQLite 中不存在，会被忽略
type SQLiteGenerator struct {
	options SQLiteGeneratorOptions
}

func NewSQLiteGeneratorWithOptions(options *SQLiteGeneratorOptions) *SQLiteGenerator {
	g := &SQLiteGenerator{}
	if options != nil {
		g.options = *options
	}
	return g
}

func (g *SQLiteGenerator) Generate(obj *model.TableObject) (string, error) {
	if err := Validate(obj); err != nil {
		return "", err
	}

	// INTEGER PRIMARY KEY AUTOINCREMENT 只能写在列定义上
	inlinePrimary := ""
	if pk, ok := obj.PrimaryKey(); ok && len(pk.Columns) == 1 {
		if c, _ := obj.Column(pk.Columns[0]); c.AutoIncrement {
			inlinePrimary = c.Name
		}
	}

	var defs []string
	for _, c := range obj.Columns {
		def, err := g.buildColumnDefinition(c, c.Name == inlinePrimary)
		if err != nil {
			return "", err
		}
		defs = append(defs, def)
	}

	var indexStmts []string
	for _, idx := range obj.Indexes {
		columns := quoteIdentifiers(idx.Columns, `"`)
		switch idx.Type {
		case model.IndexTypePrimary:
			if inlinePrimary == "" {
				defs = append(defs, fmt.Sprintf("PRIMARY KEY (%s)", columns))
			}
		case model.IndexTypeUnique:
			defs = append(defs, fmt.Sprintf("CONSTRAINT %s UNIQUE (%s)", quoteIdentifier(idx.Name, `"`), columns))
		case model.IndexTypeKey:
			indexStmts = append(indexStmts, fmt.Sprintf("CREATE INDEX %s%s ON %s (%s)",
				g.ifNotExists(), quoteIdentifier(idx.Name, `"`), quoteIdentifier(obj.Name, `"`), columns))
		default:
			return "", errors.Errorf("index %q: sqlite does not support %s indexes", idx.Name, idx.Type)
		}
	}

	create := fmt.Sprintf("CREATE TABLE %s%s (\n  %s\n)",
		g.ifNotExists(), quoteIdentifier(obj.Name, `"`), strings.Join(defs, ",\n  "))
	return statements(append([]string{create}, indexStmts...)), nil
}

func (g *SQLiteGenerator) buildColumnDefinition(c model.ColumnObject, inlinePrimary bool) (string, error) {
	parts := []string{quoteIdentifier(c.Name, `"`), formatType(c)}

	if inlinePrimary {
		if !strings.EqualFold(c.Type, "INTEGER") {
			return "", errors.Errorf("column %q: sqlite AUTOINCREMENT requires INTEGER type, got %s", c.Name, c.Type)
		}
		parts = append(parts, "PRIMARY KEY AUTOINCREMENT")
	} else if c.AutoIncrement {
		return "", errors.Errorf("column %q: sqlite AUTOINCREMENT requires a single column primary key", c.Name)
	}

	if c.NotNull {
		parts = append(parts, "NOT NULL")
	}
	if c.Default != nil {
		parts = append(parts, "DEFAULT "+formatDefault(c.Default, "1", "0"))
	}
	if c.Collate != "" {
		parts = append(parts, "COLLATE "+c.Collate)
	}
	return strings.Join(parts, " "), nil
}

func (g *SQLiteGenerator) ifNotExists() string {
	if g.options.IfNotExists {
		return "IF NOT EXISTS "
	}
	return ""
}
