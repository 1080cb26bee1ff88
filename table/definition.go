package table

import (
	"github.com/hatlonely/sqltable/model"
	"github.com/pkg/errors"
)

// PrimaryIndexName TableDefinition.PrimaryKey 转换成的主键索引名
const PrimaryIndexName = "PRIMARY"

// FromDefinition 使用 driver 从与方言无关的表定义构建 Table。
// 与 SetColumn 的静默替换不同，定义中出现重复的字段名或索引名会返回错误
func FromDefinition[C Column, I Index](driver Driver[C, I], def *model.TableDefinition, opts ...Option) (*Table[C, I], error) {
	if def == nil {
		return nil, errors.New("table definition cannot be nil")
	}

	t := New(driver, opts...)
	t.SetName(def.Name)
	if def.Engine != "" {
		t.SetEngine(def.Engine)
	}
	if def.DefaultCharset != "" {
		t.SetDefaultCharset(def.DefaultCharset)
	}
	if def.Collate != "" {
		t.SetCollate(def.Collate)
	}
	if def.Comment != nil {
		t.SetComment(*def.Comment)
	}
	if def.AutoIncrement != nil {
		t.SetAutoIncrement(*def.AutoIncrement)
	}

	for _, field := range def.Fields {
		if _, ok := t.GetColumn(field.Name); ok {
			return nil, errors.Errorf("duplicate field %q in table %q", field.Name, def.Name)
		}
		applier, ok := any(t.Column(field.Name)).(FieldApplier)
		if !ok {
			return nil, errors.Errorf("column type of dialect %q cannot be built from a field definition", driver.Dialect())
		}
		if err := applier.ApplyField(field); err != nil {
			return nil, errors.WithMessagef(err, "apply field %q", field.Name)
		}
	}

	indexes := def.Indexes
	if len(def.PrimaryKey) > 0 {
		primary := model.IndexDefinition{Name: PrimaryIndexName, Fields: def.PrimaryKey, Primary: true}
		indexes = append([]model.IndexDefinition{primary}, indexes...)
	}
	for _, index := range indexes {
		if _, ok := t.GetIndex(index.Name); ok {
			return nil, errors.Errorf("duplicate index %q in table %q", index.Name, def.Name)
		}
		for _, field := range index.Fields {
			if _, ok := t.GetColumn(field); !ok {
				return nil, errors.Errorf("index %q references unknown field %q", index.Name, field)
			}
		}
		applier, ok := any(t.Index(index.Name)).(IndexApplier)
		if !ok {
			return nil, errors.Errorf("index type of dialect %q cannot be built from an index definition", driver.Dialect())
		}
		if err := applier.ApplyIndex(index); err != nil {
			return nil, errors.WithMessagef(err, "apply index %q", index.Name)
		}
	}

	return t, nil
}
