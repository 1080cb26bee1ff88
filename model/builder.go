package model

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// TableNamer 实现该接口的结构体使用自定义表名
type TableNamer interface {
	TableName() string
}

// DefinitionBuilder 从带 rdb 标签的结构体构建 TableDefinition
type DefinitionBuilder struct{}

func NewDefinitionBuilder() *DefinitionBuilder {
	return &DefinitionBuilder{}
}

// FromStruct 从结构体构建 TableDefinition
// 支持的 tag 格式：
//   - `rdb:"column_name,type=string,size=255,required,primary,autoIncrement,index,unique,comment=xxx"`
//   - `table:"table_name"` 用于指定表名（任意字段上）
//
// 表名优先级：TableName() 方法 > table tag > 结构体名小写
func (b *DefinitionBuilder) FromStruct(v any) (*TableDefinition, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct, got %T", v)
	}
	rt := rv.Type()

	def := &TableDefinition{Name: b.tableName(v, rt)}

	var order []string
	indexes := map[string]*IndexDefinition{}

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("rdb")
		if tag == "-" {
			continue
		}

		fieldDef, isPrimary, fieldIndexes, err := b.parseFieldTag(field, tag)
		if err != nil {
			return nil, fmt.Errorf("failed to parse field %s: %w", field.Name, err)
		}
		def.Fields = append(def.Fields, fieldDef)

		if isPrimary {
			def.PrimaryKey = append(def.PrimaryKey, fieldDef.Name)
		}

		// 同名索引合并为联合索引，字段顺序即结构体字段顺序
		for _, idx := range fieldIndexes {
			if existing, ok := indexes[idx.Name]; ok {
				existing.Fields = append(existing.Fields, fieldDef.Name)
				existing.Unique = existing.Unique || idx.Unique
				continue
			}
			idx.Fields = []string{fieldDef.Name}
			indexes[idx.Name] = &idx
			order = append(order, idx.Name)
		}
	}

	for _, name := range order {
		def.Indexes = append(def.Indexes, *indexes[name])
	}

	return def, nil
}

func (b *DefinitionBuilder) tableName(v any, rt reflect.Type) string {
	if namer, ok := v.(TableNamer); ok {
		return namer.TableName()
	}
	if namer, ok := reflect.New(rt).Interface().(TableNamer); ok {
		return namer.TableName()
	}
	for i := 0; i < rt.NumField(); i++ {
		if name := rt.Field(i).Tag.Get("table"); name != "" {
			return name
		}
	}
	return strings.ToLower(rt.Name())
}

// parseFieldTag 解析字段的 rdb tag
func (b *DefinitionBuilder) parseFieldTag(field reflect.StructField, tag string) (FieldDefinition, bool, []IndexDefinition, error) {
	fieldDef := FieldDefinition{
		Name: field.Name,
		Type: b.inferFieldType(field.Type),
	}

	var isPrimary bool
	var indexes []IndexDefinition

	if tag == "" {
		return fieldDef, false, nil, nil
	}

	parts := strings.Split(tag, ",")
	if parts[0] != "" && !strings.Contains(parts[0], "=") {
		fieldDef.Name = parts[0]
		parts = parts[1:]
	}

	var defaultValue *string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if key, value, ok := strings.Cut(part, "="); ok {
			key, value = strings.TrimSpace(key), strings.TrimSpace(value)
			switch key {
			case "type":
				fieldDef.Type = FieldType(value)
			case "size", "precision", "scale":
				n, err := strconv.Atoi(value)
				if err != nil || n < 0 {
					return fieldDef, false, nil, fmt.Errorf("invalid %s %q", key, value)
				}
				switch key {
				case "size":
					fieldDef.Size = n
				case "precision":
					fieldDef.Precision = n
				default:
					fieldDef.Scale = n
				}
			case "default":
				defaultValue = &value
			case "comment":
				fieldDef.Comment = value
			case "index":
				indexes = append(indexes, IndexDefinition{Name: value})
			case "unique":
				indexes = append(indexes, IndexDefinition{Name: value, Unique: true})
			default:
				return fieldDef, false, nil, fmt.Errorf("unknown tag option %q", key)
			}
			continue
		}

		switch part {
		case "required", "not_null":
			fieldDef.Required = true
		case "primary", "pk":
			isPrimary = true
		case "autoIncrement", "auto_increment":
			fieldDef.AutoIncrement = true
		case "unsigned":
			fieldDef.Unsigned = true
		case "index":
			indexes = append(indexes, IndexDefinition{Name: "idx_" + fieldDef.Name})
		case "unique":
			indexes = append(indexes, IndexDefinition{Name: "uk_" + fieldDef.Name, Unique: true})
		default:
			return fieldDef, false, nil, fmt.Errorf("unknown tag option %q", part)
		}
	}

	// default 依赖最终的字段类型，放在最后解析
	if defaultValue != nil {
		fieldDef.Default = ParseDefaultValue(*defaultValue, fieldDef.Type)
	}

	return fieldDef, isPrimary, indexes, nil
}

var timeType = reflect.TypeOf(time.Time{})

// inferFieldType 从 Go 类型推断字段类型
func (b *DefinitionBuilder) inferFieldType(t reflect.Type) FieldType {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return FieldTypeString
	case reflect.Int64, reflect.Uint64:
		return FieldTypeBigInt
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return FieldTypeInt
	case reflect.Float32, reflect.Float64:
		return FieldTypeFloat
	case reflect.Bool:
		return FieldTypeBool
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return FieldTypeBytes
		}
		return FieldTypeJSON
	default:
		if t == timeType {
			return FieldTypeDate
		}
		return FieldTypeJSON
	}
}

// ParseDefaultValue 按字段类型解析字符串形式的默认值，解析失败时保留原始字符串
func ParseDefaultValue(value string, fieldType FieldType) any {
	switch fieldType {
	case FieldTypeString, FieldTypeText, "":
		if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
			return value[1 : len(value)-1]
		}
		return value
	case FieldTypeInt, FieldTypeBigInt:
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	case FieldTypeFloat, FieldTypeDecimal:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	case FieldTypeBool:
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return value
}
