package table

import "github.com/hatlonely/sqltable/model"

// Column 方言提供的列构建器
type Column interface {
	Name() string
	Object() model.ColumnObject
}

// Index 方言提供的索引构建器
type Index interface {
	Name() string
	Object() model.IndexObject
}

// FieldApplier 可以从与方言无关的字段定义配置自身的列构建器
type FieldApplier interface {
	ApplyField(field model.FieldDefinition) error
}

// IndexApplier 可以从与方言无关的索引定义配置自身的索引构建器
type IndexApplier interface {
	ApplyIndex(index model.IndexDefinition) error
}

// Driver 方言策略，为 Table 提供列容器和索引容器。
// Driver 不保存任何表相关的状态，New 在构造 Table 时各调用一次两个工厂方法
type Driver[C Column, I Index] interface {
	// Dialect 方言名，用于选择默认的语句生成器
	Dialect() string
	NewColumnsContainer(t *Table[C, I]) *ColumnsContainer[C, I]
	NewIndexesContainer(t *Table[C, I]) *IndexesContainer[C, I]
}
