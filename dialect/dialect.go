// Package dialect 提供各方言列、索引构建器共用的属性设置方法。
// 方言包通过嵌入 Column[T] / Index[T] 复用这些方法，T 为方言自己的构建器类型，保证链式调用返回具体类型
package dialect

import (
	"github.com/hatlonely/sqltable/model"
)

type Column[T any] struct {
	self T
	obj  model.ColumnObject
}

// Init 由方言构建器的构造函数调用，self 为外层构建器
func (c *Column[T]) Init(self T, name string) {
	c.self = self
	c.obj = model.ColumnObject{Name: name}
}

func (c *Column[T]) Name() string {
	return c.obj.Name
}

// Object 返回列的规范化表示，切片会被复制
func (c *Column[T]) Object() model.ColumnObject {
	obj := c.obj
	if c.obj.Values != nil {
		obj.Values = append([]string(nil), c.obj.Values...)
	}
	return obj
}

// Type 直接设置列类型，size 依次为长度（或精度）和小数位
func (c *Column[T]) Type(typ string, size ...int) T {
	c.obj.Type = typ
	c.obj.Size, c.obj.Precision, c.obj.Scale = 0, 0, 0
	c.obj.Values = nil
	switch len(size) {
	case 0:
	case 1:
		c.obj.Size = size[0]
	default:
		c.obj.Precision, c.obj.Scale = size[0], size[1]
	}
	return c.self
}

// Values 设置 ENUM / SET 的可选值
func (c *Column[T]) Values(typ string, values ...string) T {
	c.Type(typ)
	c.obj.Values = append([]string(nil), values...)
	return c.self
}

func (c *Column[T]) NotNull() T {
	c.obj.NotNull = true
	return c.self
}

func (c *Column[T]) Nullable() T {
	c.obj.NotNull = false
	return c.self
}

// Default 设置默认值，字符串会被生成器加引号，CURRENT_TIMESTAMP 等关键字除外
func (c *Column[T]) Default(value any) T {
	c.obj.Default = value
	return c.self
}

func (c *Column[T]) AutoIncrement() T {
	c.obj.AutoIncrement = true
	return c.self
}

func (c *Column[T]) Comment(comment string) T {
	c.obj.Comment = comment
	return c.self
}

func (c *Column[T]) Collate(collate string) T {
	c.obj.Collate = collate
	return c.self
}

// Apply 设置字段定义中与类型无关的通用属性
func (c *Column[T]) Apply(field model.FieldDefinition) {
	c.obj.NotNull = field.Required
	c.obj.Default = field.Default
	c.obj.AutoIncrement = field.AutoIncrement
	c.obj.Comment = field.Comment
}

// Mutate 供方言设置自身特有的属性
func (c *Column[T]) Mutate(fn func(obj *model.ColumnObject)) T {
	fn(&c.obj)
	return c.self
}

type Index[T any] struct {
	self T
	obj  model.IndexObject
}

// Init 新建的索引默认为普通索引
func (i *Index[T]) Init(self T, name string) {
	i.self = self
	i.obj = model.IndexObject{Name: name, Type: model.IndexTypeKey}
}

func (i *Index[T]) Name() string {
	return i.obj.Name
}

func (i *Index[T]) Object() model.IndexObject {
	obj := i.obj
	obj.Columns = append([]string(nil), i.obj.Columns...)
	return obj
}

// Columns 设置索引列，重复调用会覆盖之前的列
func (i *Index[T]) Columns(columns ...string) T {
	i.obj.Columns = append([]string(nil), columns...)
	return i.self
}

func (i *Index[T]) Primary() T {
	i.obj.Type = model.IndexTypePrimary
	return i.self
}

func (i *Index[T]) Unique() T {
	i.obj.Type = model.IndexTypeUnique
	return i.self
}

func (i *Index[T]) Key() T {
	i.obj.Type = model.IndexTypeKey
	return i.self
}

func (i *Index[T]) Comment(comment string) T {
	i.obj.Comment = comment
	return i.self
}

func (i *Index[T]) IndexType(typ model.IndexType) T {
	i.obj.Type = typ
	return i.self
}
