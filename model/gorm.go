package model

import (
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm/schema"
)

var gormSchemaCache sync.Map

// FromGorm 使用 gorm 的 schema 解析器从 gorm 模型构建 TableDefinition
// 支持 column, type, size, precision, scale, primaryKey, autoIncrement, not null, default, comment,
// unique, index, uniqueIndex 等 gorm 标签
func FromGorm(v any) (*TableDefinition, error) {
	sch, err := schema.Parse(v, &gormSchemaCache, schema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse gorm model %T: %w", v, err)
	}

	def := &TableDefinition{Name: sch.Table}

	var order []string
	indexes := map[string]*IndexDefinition{}
	addIndex := func(name string, field string, unique bool) {
		if existing, ok := indexes[name]; ok {
			existing.Fields = append(existing.Fields, field)
			return
		}
		indexes[name] = &IndexDefinition{Name: name, Fields: []string{field}, Unique: unique}
		order = append(order, name)
	}

	for _, field := range sch.Fields {
		if field.DBName == "" || field.IgnoreMigration {
			continue
		}

		fieldDef := FieldDefinition{
			Name:          field.DBName,
			Type:          gormFieldType(field),
			Precision:     field.Precision,
			Scale:         field.Scale,
			Required:      field.NotNull || field.PrimaryKey,
			AutoIncrement: field.AutoIncrement,
			Comment:       field.Comment,
		}
		switch fieldDef.Type {
		case FieldTypeString, FieldTypeText, FieldTypeBytes:
			// 数值类型的 Size 是 gorm 的位宽，不是列长度
			fieldDef.Size = field.Size
		}
		if field.DataType == schema.Uint {
			fieldDef.Unsigned = true
		}
		if field.HasDefaultValue && field.DefaultValue != "" {
			fieldDef.Default = gormDefaultValue(field.DefaultValue, fieldDef.Type)
		}
		def.Fields = append(def.Fields, fieldDef)

		if field.PrimaryKey {
			def.PrimaryKey = append(def.PrimaryKey, field.DBName)
		}
		if field.Unique {
			addIndex("uk_"+field.DBName, field.DBName, true)
		}
		for _, key := range []string{"INDEX", "UNIQUEINDEX"} {
			setting, ok := field.TagSettings[key]
			if !ok {
				continue
			}
			// 没有指定名称时 gorm 把 tag 名本身作为值
			name, _, _ := strings.Cut(setting, ",")
			if name == "" || strings.EqualFold(name, key) {
				prefix := "idx_"
				if key == "UNIQUEINDEX" {
					prefix = "uk_"
				}
				name = prefix + sch.Table + "_" + field.DBName
			}
			addIndex(name, field.DBName, key == "UNIQUEINDEX")
		}
	}

	for _, name := range order {
		def.Indexes = append(def.Indexes, *indexes[name])
	}
	return def, nil
}

func gormFieldType(field *schema.Field) FieldType {
	switch field.DataType {
	case schema.Bool:
		return FieldTypeBool
	case schema.Int, schema.Uint:
		if field.Size > 32 {
			return FieldTypeBigInt
		}
		return FieldTypeInt
	case schema.Float:
		if field.Precision > 0 {
			return FieldTypeDecimal
		}
		return FieldTypeFloat
	case schema.String:
		return FieldTypeString
	case schema.Time:
		return FieldTypeDate
	case schema.Bytes:
		return FieldTypeBytes
	default:
		// type:xxx 之类的自定义类型
		if strings.Contains(strings.ToLower(string(field.DataType)), "json") {
			return FieldTypeJSON
		}
		return FieldTypeText
	}
}

func gormDefaultValue(value string, fieldType FieldType) any {
	value = strings.TrimSpace(value)
	if fieldType == FieldTypeString || fieldType == FieldTypeText {
		return strings.Trim(value, `'"`)
	}
	return ParseDefaultValue(value, fieldType)
}
