package ddl

import (
	"fmt"
	"strings"

	"github.com/hatlonely/sqltable/model"
	"github.com/pkg/errors"
)

type MySQLGeneratorOptions struct {
	IfNotExists bool `cfg:"ifNotExists"`
	// 表级 autoIncrement 开启时的 AUTO_INCREMENT 起始值，<= 0 时为 1
	AutoIncrementStart int64 `cfg:"autoIncrementStart" def:"1"`
}

// MySQLGenerator 生成 MySQL 建表语句，标识符使用反引号
type MySQLGenerator struct {
	options MySQLGeneratorOptions
}

func NewMySQLGeneratorWithOptions(options *MySQLGeneratorOptions) *MySQLGenerator {
	g := &MySQLGenerator{}
	if options != nil {
		g.options = *options
	}
	if g.options.AutoIncrementStart <= 0 {
		g.options.AutoIncrementStart = 1
	}
	return g
}

func (g *MySQLGenerator) Generate(obj *model.TableObject) (string, error) {
	if err := Validate(obj); err != nil {
		return "", err
	}
	// MySQL 中 PRIMARY 是主键的保留索引名
	for _, idx := range obj.Indexes {
		if idx.Type != model.IndexTypePrimary && strings.EqualFold(idx.Name, "PRIMARY") {
			return "", errors.Errorf("index %q: mysql reserves the name PRIMARY for the primary key, got %s index", idx.Name, idx.Type)
		}
	}

	var defs []string
	for _, c := range obj.Columns {
		defs = append(defs, g.buildColumnDefinition(c))
	}
	for _, idx := range obj.Indexes {
		defs = append(defs, g.buildIndexDefinition(idx))
	}

	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	if g.options.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(quoteIdentifier(obj.Name, "`"))
	sb.WriteString(" (\n  ")
	sb.WriteString(strings.Join(defs, ",\n  "))
	sb.WriteString("\n)")
	for _, opt := range g.buildTableOptions(obj) {
		sb.WriteString(" ")
		sb.WriteString(opt)
	}
	sb.WriteString(";")
	return sb.String(), nil
}

func (g *MySQLGenerator) buildColumnDefinition(c model.ColumnObject) string {
	parts := []string{quoteIdentifier(c.Name, "`"), formatType(c)}

	if c.Unsigned {
		parts = append(parts, "UNSIGNED")
	}
	if c.Charset != "" {
		parts = append(parts, "CHARACTER SET "+c.Charset)
	}
	if c.Collate != "" {
		parts = append(parts, "COLLATE "+c.Collate)
	}
	if c.NotNull {
		parts = append(parts, "NOT NULL")
	}
	if c.Default != nil {
		parts = append(parts, "DEFAULT "+formatDefault(c.Default, "1", "0"))
	}
	if c.AutoIncrement {
		parts = append(parts, "AUTO_INCREMENT")
	}
	if c.OnUpdate != "" {
		parts = append(parts, "ON UPDATE "+c.OnUpdate)
	}
	if c.Comment != "" {
		parts = append(parts, "COMMENT "+quoteString(c.Comment))
	}

	return strings.Join(parts, " ")
}

func (g *MySQLGenerator) buildIndexDefinition(idx model.IndexObject) string {
	columns := quoteIdentifiers(idx.Columns, "`")

	var def string
	switch idx.Type {
	case model.IndexTypePrimary:
		def = fmt.Sprintf("PRIMARY KEY (%s)", columns)
	case model.IndexTypeUnique:
		def = fmt.Sprintf("UNIQUE KEY %s (%s)", quoteIdentifier(idx.Name, "`"), columns)
	case model.IndexTypeFulltext:
		def = fmt.Sprintf("FULLTEXT KEY %s (%s)", quoteIdentifier(idx.Name, "`"), columns)
	default:
		def = fmt.Sprintf("KEY %s (%s)", quoteIdentifier(idx.Name, "`"), columns)
	}

	if idx.Comment != "" {
		def += " COMMENT " + quoteString(idx.Comment)
	}
	return def
}

func (g *MySQLGenerator) buildTableOptions(obj *model.TableObject) []string {
	var opts []string
	if obj.Engine != "" {
		opts = append(opts, "ENGINE="+obj.Engine)
	}
	if obj.AutoIncrement != nil && *obj.AutoIncrement {
		opts = append(opts, fmt.Sprintf("AUTO_INCREMENT=%d", g.options.AutoIncrementStart))
	}
	if obj.DefaultCharset != "" {
		opts = append(opts, "DEFAULT CHARSET="+obj.DefaultCharset)
	}
	if obj.Collate != "" {
		opts = append(opts, "COLLATE="+obj.Collate)
	}
	if obj.Comment != nil {
		opts = append(opts, "COMMENT="+quoteString(*obj.Comment))
	}
	return opts
}
