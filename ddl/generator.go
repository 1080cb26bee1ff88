package ddl

import (
	"strings"

	"github.com/hatlonely/sqltable/model"
	"github.com/hatlonely/sqltable/ref"
	"github.com/pkg/errors"
)

const (
	DialectMySQL    = "mysql"
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

const namespace = "github.com/hatlonely/sqltable/ddl"

func init() {
	ref.MustRegisterT[MySQLGenerator](NewMySQLGeneratorWithOptions)
	ref.MustRegisterT[SQLiteGenerator](NewSQLiteGeneratorWithOptions)
	ref.MustRegisterT[PostgresGenerator](NewPostgresGeneratorWithOptions)
	ref.MustRegisterT[ObjectGenerator](NewObjectGeneratorWithOptions)
}

// Generator 将表的规范化表示渲染为建表语句
type Generator interface {
	Generate(obj *model.TableObject) (string, error)
}

var dialectGenerators = map[string]string{
	DialectMySQL:    "MySQLGenerator",
	"mariadb":       "MySQLGenerator",
	DialectSQLite:   "SQLiteGenerator",
	"sqlite":        "SQLiteGenerator",
	DialectPostgres: "PostgresGenerator",
	"postgresql":    "PostgresGenerator",
	"pgx":           "PostgresGenerator",
}

// NewGeneratorWithOptions 通过 ref 创建生成器，Namespace 为空时使用本包
func NewGeneratorWithOptions(options *ref.TypeOptions) (Generator, error) {
	if options == nil {
		return nil, errors.New("generator options cannot be nil")
	}
	ns := options.Namespace
	if ns == "" {
		ns = namespace
	}

	if !ref.Has(ns, options.Type) {
		return nil, errors.Errorf("unknown generator %q, available: %s", options.Type, strings.Join(ref.Types(ns), ", "))
	}

	obj, err := ref.New(ns, options.Type, options.Options)
	if err != nil {
		return nil, errors.WithMessage(err, "ref.New failed")
	}
	generator, ok := obj.(Generator)
	if !ok {
		return nil, errors.Errorf("%T is not a Generator", obj)
	}
	return generator, nil
}

// ForDialect 返回方言默认配置的生成器
func ForDialect(dialect string) (Generator, error) {
	type_, ok := dialectGenerators[dialect]
	if !ok {
		return nil, errors.Errorf("no generator registered for dialect %q", dialect)
	}
	return NewGeneratorWithOptions(&ref.TypeOptions{Type: type_})
}

// Dialects 返回所有支持的方言名
func Dialects() []string {
	return []string{DialectMySQL, DialectSQLite, DialectPostgres}
}
