package ddl

import (
	"fmt"
	"strings"

	"github.com/hatlonely/sqltable/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

type PostgresGeneratorOptions struct {
	IfNotExists bool `cfg:"ifNotExists"`
}

// PostgresGenerator 生成 PostgreSQL 建表语句。
// 表名按 schema.table 拆分后用 pgx.Identifier 转义；普通索引和注释生成在建表语句之后
type PostgresGenerator struct {
	options PostgresGeneratorOptions
}

func NewPostgresGeneratorWithOptions(options *PostgresGeneratorOptions) *PostgresGenerator {
	g := &PostgresGenerator{}
	if options != nil {
		g.options = *options
	}
	return g
}

// splitFQN 将 "schema.table" 转换为 pgx.Identifier{"schema", "table"}
func splitFQN(fqn string) pgx.Identifier {
	parts := strings.Split(fqn, ".")
	id := make(pgx.Identifier, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			id = append(id, p)
		}
	}
	return id
}

func quotePostgres(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func (g *PostgresGenerator) Generate(obj *model.TableObject) (string, error) {
	if err := Validate(obj); err != nil {
		return "", err
	}

	table := splitFQN(obj.Name).Sanitize()

	var defs []string
	for _, c := range obj.Columns {
		defs = append(defs, g.buildColumnDefinition(c))
	}

	var trailing []string
	for _, idx := range obj.Indexes {
		columns := make([]string, 0, len(idx.Columns))
		for _, c := range idx.Columns {
			columns = append(columns, quotePostgres(c))
		}
		joined := strings.Join(columns, ", ")

		switch idx.Type {
		case model.IndexTypePrimary:
			defs = append(defs, fmt.Sprintf("PRIMARY KEY (%s)", joined))
		case model.IndexTypeUnique:
			defs = append(defs, fmt.Sprintf("CONSTRAINT %s UNIQUE (%s)", quotePostgres(idx.Name), joined))
		case model.IndexTypeKey:
			trailing = append(trailing, fmt.Sprintf("CREATE INDEX %s%s ON %s (%s)",
				g.ifNotExists(), quotePostgres(idx.Name), table, joined))
		default:
			return "", errors.Errorf("index %q: postgres does not support %s indexes", idx.Name, idx.Type)
		}

		// 主键和唯一约束的索引与约束同名
		if idx.Comment != "" && idx.Type != model.IndexTypePrimary {
			trailing = append(trailing, fmt.Sprintf("COMMENT ON INDEX %s IS %s", g.indexIdentifier(obj.Name, idx.Name), quoteString(idx.Comment)))
		}
	}

	if obj.Comment != nil {
		trailing = append(trailing, fmt.Sprintf("COMMENT ON TABLE %s IS %s", table, quoteString(*obj.Comment)))
	}
	for _, c := range obj.Columns {
		if c.Comment != "" {
			trailing = append(trailing, fmt.Sprintf("COMMENT ON COLUMN %s.%s IS %s", table, quotePostgres(c.Name), quoteString(c.Comment)))
		}
	}

	create := fmt.Sprintf("CREATE TABLE %s%s (\n  %s\n)", g.ifNotExists(), table, strings.Join(defs, ",\n  "))
	return statements(append([]string{create}, trailing...)), nil
}

func (g *PostgresGenerator) buildColumnDefinition(c model.ColumnObject) string {
	parts := []string{quotePostgres(c.Name), formatType(c)}

	if c.Collate != "" {
		parts = append(parts, "COLLATE "+quotePostgres(c.Collate))
	}
	if c.AutoIncrement && !strings.HasSuffix(strings.ToUpper(c.Type), "SERIAL") {
		parts = append(parts, "GENERATED BY DEFAULT AS IDENTITY")
	}
	if c.NotNull {
		parts = append(parts, "NOT NULL")
	}
	if c.Default != nil {
		parts = append(parts, "DEFAULT "+formatDefault(c.Default, "TRUE", "FALSE"))
	}
	return strings.Join(parts, " ")
}

// indexIdentifier 索引与表在同一个 schema 下
func (g *PostgresGenerator) indexIdentifier(table string, index string) string {
	id := splitFQN(table)
	if len(id) > 1 {
		return append(id[:len(id)-1:len(id)-1], index).Sanitize()
	}
	return quotePostgres(index)
}

func (g *PostgresGenerator) ifNotExists() string {
	if g.options.IfNotExists {
		return "IF NOT EXISTS "
	}
	return ""
}
