package ddl

import (
	"github.com/go-playground/validator/v10"
	"github.com/hatlonely/sqltable/model"
	"github.com/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate 检查规范化表示是否可以生成建表语句。
// 除结构体标签外，还要求列名、索引名唯一，索引列必须存在，主键最多一个
func Validate(obj *model.TableObject) error {
	if obj == nil {
		return errors.New("table object cannot be nil")
	}
	if err := validate.Struct(obj); err != nil {
		return errors.WithMessagef(err, "invalid table %q", obj.Name)
	}

	columns := map[string]bool{}
	for _, c := range obj.Columns {
		if columns[c.Name] {
			return errors.Errorf("invalid table %q: duplicate column %q", obj.Name, c.Name)
		}
		columns[c.Name] = true
	}

	indexes := map[string]bool{}
	primary := 0
	for _, idx := range obj.Indexes {
		if indexes[idx.Name] {
			return errors.Errorf("invalid table %q: duplicate index %q", obj.Name, idx.Name)
		}
		indexes[idx.Name] = true
		if idx.Type == model.IndexTypePrimary {
			primary++
		}
		for _, c := range idx.Columns {
			if !columns[c] {
				return errors.Errorf("invalid table %q: index %q references unknown column %q", obj.Name, idx.Name, c)
			}
		}
	}
	if primary > 1 {
		return errors.Errorf("invalid table %q: multiple primary keys", obj.Name)
	}

	return nil
}
