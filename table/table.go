package table

import (
	"github.com/hatlonely/sqltable/ddl"
	"github.com/hatlonely/sqltable/log"
	"github.com/hatlonely/sqltable/log/logger"
	"github.com/hatlonely/sqltable/model"
)

// Options 表级元数据
type Options struct {
	Name           string  `cfg:"name"`
	Engine         string  `cfg:"engine"`
	DefaultCharset string  `cfg:"defaultCharset"`
	Collate        string  `cfg:"collate"`
	Comment        *string `cfg:"comment"`
	AutoIncrement  *bool   `cfg:"autoIncrement"`
}

type settings struct {
	options   Options
	generator ddl.Generator
	logger    logger.Logger
}

type Option func(*settings)

func WithOptions(options Options) Option {
	return func(s *settings) {
		s.options = options
		s.options.Comment = clonePtr(options.Comment)
		s.options.AutoIncrement = clonePtr(options.AutoIncrement)
	}
}

// WithGenerator 指定语句生成器，默认使用 Driver 方言注册的生成器
func WithGenerator(generator ddl.Generator) Option {
	return func(s *settings) {
		s.generator = generator
	}
}

func WithLogger(l logger.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// Table 表定义的聚合根。
// 持有表级元数据和按插入顺序排列的列、索引，列和索引通过 Driver 提供的容器创建。
// Table 不是并发安全的，应在一个 goroutine 中构建完成后再只读使用
type Table[C Column, I Index] struct {
	options   Options
	driver    Driver[C, I]
	generator ddl.Generator
	logger    logger.Logger

	columns     map[string]C
	columnNames []string
	indexes     map[string]I
	indexNames  []string

	columnsContainer *ColumnsContainer[C, I]
	indexesContainer *IndexesContainer[C, I]
}

// New 使用 driver 创建 Table，driver 在 Table 的生命周期内不可替换
func New[C Column, I Index](driver Driver[C, I], opts ...Option) *Table[C, I] {
	if driver == nil {
		panic("table: driver cannot be nil")
	}

	s := &settings{logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}

	t := &Table[C, I]{
		options:   s.options,
		driver:    driver,
		generator: s.generator,
		logger:    s.logger,
		columns:   map[string]C{},
		indexes:   map[string]I{},
	}
	t.columnsContainer = driver.NewColumnsContainer(t)
	t.indexesContainer = driver.NewIndexesContainer(t)
	return t
}

func (t *Table[C, I]) Driver() Driver[C, I] {
	return t.driver
}

func (t *Table[C, I]) ColumnsContainer() *ColumnsContainer[C, I] {
	return t.columnsContainer
}

func (t *Table[C, I]) IndexesContainer() *IndexesContainer[C, I] {
	return t.indexesContainer
}

// Column 返回名为 name 的列构建器，不存在时创建
func (t *Table[C, I]) Column(name string) C {
	return t.columnsContainer.Column(name)
}

// Index 返回名为 name 的索引构建器，不存在时创建
func (t *Table[C, I]) Index(name string) I {
	return t.indexesContainer.Index(name)
}

func (t *Table[C, I]) GetColumn(name string) (C, bool) {
	column, ok := t.columns[name]
	return column, ok
}

// SetColumn 注册列。同名的列会被替换，位置保持不变
func (t *Table[C, I]) SetColumn(name string, column C) *Table[C, I] {
	if _, ok := t.columns[name]; ok {
		t.logger.Debug("column replaced", "table", t.options.Name, "column", name)
	} else {
		t.columnNames = append(t.columnNames, name)
	}
	t.columns[name] = column
	return t
}

// Columns 返回列的副本，顺序见 ColumnNames
func (t *Table[C, I]) Columns() map[string]C {
	columns := make(map[string]C, len(t.columns))
	for name, column := range t.columns {
		columns[name] = column
	}
	return columns
}

// ColumnNames 按注册顺序返回列名
func (t *Table[C, I]) ColumnNames() []string {
	return append([]string(nil), t.columnNames...)
}

func (t *Table[C, I]) GetIndex(name string) (I, bool) {
	index, ok := t.indexes[name]
	return index, ok
}

// SetIndex 注册索引。同名的索引会被替换，位置保持不变
func (t *Table[C, I]) SetIndex(name string, index I) *Table[C, I] {
	if _, ok := t.indexes[name]; ok {
		t.logger.Debug("index replaced", "table", t.options.Name, "index", name)
	} else {
		t.indexNames = append(t.indexNames, name)
	}
	t.indexes[name] = index
	return t
}

func (t *Table[C, I]) Indexes() map[string]I {
	indexes := make(map[string]I, len(t.indexes))
	for name, index := range t.indexes {
		indexes[name] = index
	}
	return indexes
}

func (t *Table[C, I]) IndexNames() []string {
	return append([]string(nil), t.indexNames...)
}

func (t *Table[C, I]) SetName(name string) *Table[C, I] {
	t.options.Name = name
	return t
}

func (t *Table[C, I]) Name() string {
	return t.options.Name
}

func (t *Table[C, I]) SetEngine(engine string) *Table[C, I] {
	t.options.Engine = engine
	return t
}

func (t *Table[C, I]) Engine() string {
	return t.options.Engine
}

func (t *Table[C, I]) SetDefaultCharset(charset string) *Table[C, I] {
	t.options.DefaultCharset = charset
	return t
}

func (t *Table[C, I]) DefaultCharset() string {
	return t.options.DefaultCharset
}

func (t *Table[C, I]) SetCollate(collate string) *Table[C, I] {
	t.options.Collate = collate
	return t
}

func (t *Table[C, I]) Collate() string {
	return t.options.Collate
}

func (t *Table[C, I]) SetComment(comment string) *Table[C, I] {
	t.options.Comment = &comment
	return t
}

// Comment 返回表注释，未设置时第二个返回值为 false
func (t *Table[C, I]) Comment() (string, bool) {
	if t.options.Comment == nil {
		return "", false
	}
	return *t.options.Comment, true
}

// SetAutoIncrement 不带参数调用时开启自增
func (t *Table[C, I]) SetAutoIncrement(autoIncrement ...bool) *Table[C, I] {
	v := true
	if len(autoIncrement) > 0 {
		v = autoIncrement[0]
	}
	t.options.AutoIncrement = &v
	return t
}

// AutoIncrement 返回自增标记，未设置时第二个返回值为 false
func (t *Table[C, I]) AutoIncrement() (bool, bool) {
	if t.options.AutoIncrement == nil {
		return false, false
	}
	return *t.options.AutoIncrement, true
}

func (t *Table[C, I]) Options() Options {
	options := t.options
	options.Comment = clonePtr(t.options.Comment)
	options.AutoIncrement = clonePtr(t.options.AutoIncrement)
	return options
}

// ToObject 将表转换为规范化表示，列和索引按注册顺序排列。
// 不修改 Table，对同一个 Table 多次调用结果相同
func (t *Table[C, I]) ToObject() *model.TableObject {
	obj := &model.TableObject{
		AutoIncrement:  clonePtr(t.options.AutoIncrement),
		Name:           t.options.Name,
		Comment:        clonePtr(t.options.Comment),
		Engine:         t.options.Engine,
		Collate:        t.options.Collate,
		DefaultCharset: t.options.DefaultCharset,
		Columns:        make([]model.ColumnObject, 0, len(t.columnNames)),
		Indexes:        make([]model.IndexObject, 0, len(t.indexNames)),
	}
	for _, name := range t.columnNames {
		obj.Columns = append(obj.Columns, t.columns[name].Object())
	}
	for _, name := range t.indexNames {
		obj.Indexes = append(obj.Indexes, t.indexes[name].Object())
	}
	return obj
}

// ToSQL 将规范化表示交给语句生成器，生成器的错误原样返回
func (t *Table[C, I]) ToSQL() (string, error) {
	generator := t.generator
	if generator == nil {
		g, err := ddl.ForDialect(t.driver.Dialect())
		if err != nil {
			return "", err
		}
		generator = g
	}

	sql, err := generator.Generate(t.ToObject())
	if err != nil {
		return "", err
	}
	t.logger.Debug("create table statement generated", "table", t.options.Name, "dialect", t.driver.Dialect())
	return sql, nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
