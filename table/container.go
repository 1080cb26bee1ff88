package table

// ColumnsContainer 绑定到一个 Table 的列容器，提供"查找或创建"的入口。
// 容器本身不保存列，Table 的 columns 是唯一的数据来源
type ColumnsContainer[C Column, I Index] struct {
	table     *Table[C, I]
	newColumn func(name string) C
}

func NewColumnsContainer[C Column, I Index](t *Table[C, I], newColumn func(name string) C) *ColumnsContainer[C, I] {
	return &ColumnsContainer[C, I]{table: t, newColumn: newColumn}
}

// Column 返回名为 name 的列构建器，不存在时创建并注册到 Table
func (c *ColumnsContainer[C, I]) Column(name string) C {
	if column, ok := c.table.GetColumn(name); ok {
		return column
	}
	column := c.newColumn(name)
	c.table.SetColumn(name, column)
	return column
}

func (c *ColumnsContainer[C, I]) Table() *Table[C, I] {
	return c.table
}

// IndexesContainer 绑定到一个 Table 的索引容器
type IndexesContainer[C Column, I Index] struct {
	table    *Table[C, I]
	newIndex func(name string) I
}

func NewIndexesContainer[C Column, I Index](t *Table[C, I], newIndex func(name string) I) *IndexesContainer[C, I] {
	return &IndexesContainer[C, I]{table: t, newIndex: newIndex}
}

// Index 返回名为 name 的索引构建器，不存在时创建并注册到 Table
func (c *IndexesContainer[C, I]) Index(name string) I {
	if index, ok := c.table.GetIndex(name); ok {
		return index
	}
	index := c.newIndex(name)
	c.table.SetIndex(name, index)
	return index
}

func (c *IndexesContainer[C, I]) Table() *Table[C, I] {
	return c.table
}
