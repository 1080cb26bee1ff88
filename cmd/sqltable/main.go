// sqltable 读取表定义文件（json, yaml, toml, ini），输出指定方言的建表语句或规范化表示
//
//	sqltable -dialect postgres -if-not-exists users.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hatlonely/sqltable/cfg"
	"github.com/hatlonely/sqltable/ddl"
	"github.com/hatlonely/sqltable/dialect/mysql"
	"github.com/hatlonely/sqltable/dialect/postgres"
	"github.com/hatlonely/sqltable/dialect/sqlite"
	"github.com/hatlonely/sqltable/log"
	"github.com/hatlonely/sqltable/model"
	"github.com/hatlonely/sqltable/ref"
	"github.com/hatlonely/sqltable/table"
	"github.com/pkg/errors"
)

type Options struct {
	Definition         string `cfg:"definition" validate:"required"`
	Dialect            string `cfg:"dialect" def:"mysql" validate:"oneof=mysql sqlite3 postgres"`
	Output             string `cfg:"output" def:"sql" validate:"oneof=sql json yaml msgpack bson"`
	IfNotExists        bool   `cfg:"ifNotExists"`
	AutoIncrementStart int64  `cfg:"autoIncrementStart" def:"1"`
	LogLevel           string `cfg:"logLevel" def:"warn" validate:"oneof=debug info warn error"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "sqltable: %v\n", err)
		os.Exit(1)
	}
}

func parseOptions(args []string) (*Options, error) {
	options := &Options{}

	fs := flag.NewFlagSet("sqltable", flag.ContinueOnError)
	fs.StringVar(&options.Definition, "f", "", "table definition file, can also be given as the first argument")
	fs.StringVar(&options.Dialect, "dialect", "", "sql dialect: mysql, sqlite3, postgres (default mysql)")
	fs.StringVar(&options.Output, "output", "", "output: sql, json, yaml, msgpack, bson (default sql)")
	fs.BoolVar(&options.IfNotExists, "if-not-exists", false, "generate CREATE TABLE IF NOT EXISTS")
	fs.Int64Var(&options.AutoIncrementStart, "auto-increment-start", 0, "mysql AUTO_INCREMENT table option (default 1)")
	fs.StringVar(&options.LogLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if options.Definition == "" {
		options.Definition = fs.Arg(0)
	}

	if err := cfg.SetDefaults(options); err != nil {
		return nil, errors.WithMessage(err, "cfg.SetDefaults failed")
	}
	if err := cfg.ValidateStruct(options); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}
	return options, nil
}

func run(args []string, stdout io.Writer) error {
	options, err := parseOptions(args)
	if err != nil {
		return err
	}

	l, err := log.NewLogWithOptions(&log.Options{Level: options.LogLevel, Format: "text"})
	if err != nil {
		return errors.WithMessage(err, "log.NewLogWithOptions failed")
	}
	log.SetDefault(l)

	def, err := cfg.LoadDefinition(options.Definition)
	if err != nil {
		return err
	}
	l.Info("definition loaded", "file", options.Definition, "table", def.Name, "fields", len(def.Fields), "indexes", len(def.Indexes))

	generator, err := newGenerator(options)
	if err != nil {
		return err
	}

	out, err := render(options.Dialect, def, table.WithGenerator(generator), table.WithLogger(l))
	if err != nil {
		return errors.WithMessagef(err, "render table %q failed", def.Name)
	}
	if options.Output == "msgpack" || options.Output == "bson" {
		_, err = io.WriteString(stdout, out)
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

func newGenerator(options *Options) (ddl.Generator, error) {
	typeOptions := &ref.TypeOptions{}
	switch {
	case options.Output != "sql":
		typeOptions.Type = "ObjectGenerator"
		typeOptions.Options = &ddl.ObjectGeneratorOptions{Format: options.Output, Indent: "  "}
	case options.Dialect == ddl.DialectMySQL:
		typeOptions.Type = "MySQLGenerator"
		typeOptions.Options = &ddl.MySQLGeneratorOptions{IfNotExists: options.IfNotExists, AutoIncrementStart: options.AutoIncrementStart}
	case options.Dialect == ddl.DialectSQLite:
		typeOptions.Type = "SQLiteGenerator"
		typeOptions.Options = &ddl.SQLiteGeneratorOptions{IfNotExists: options.IfNotExists}
	case options.Dialect == ddl.DialectPostgres:
		typeOptions.Type = "PostgresGenerator"
		typeOptions.Options = &ddl.PostgresGeneratorOptions{IfNotExists: options.IfNotExists}
	default:
		return nil, errors.Errorf("unsupported dialect %q", options.Dialect)
	}
	return ddl.NewGeneratorWithOptions(typeOptions)
}

func render(dialect string, def *model.TableDefinition, opts ...table.Option) (string, error) {
	switch dialect {
	case ddl.DialectMySQL:
		return renderWithDriver[*mysql.Column, *mysql.Index](mysql.NewDriver(), def, opts...)
	case ddl.DialectSQLite:
		return renderWithDriver[*sqlite.Column, *sqlite.Index](sqlite.NewDriver(), def, opts...)
	case ddl.DialectPostgres:
		return renderWithDriver[*postgres.Column, *postgres.Index](postgres.NewDriver(), def, opts...)
	default:
		return "", errors.Errorf("unsupported dialect %q", dialect)
	}
}

func renderWithDriver[C table.Column, I table.Index](driver table.Driver[C, I], def *model.TableDefinition, opts ...table.Option) (string, error) {
	t, err := table.FromDefinition(driver, def, opts...)
	if err != nil {
		return "", err
	}
	return t.ToSQL()
}
