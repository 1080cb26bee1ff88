package cfg

import (
	"strings"

	"github.com/hatlonely/sqltable/model"
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// ini 格式的表定义：
//
//	[table]
//	name = users
//	primaryKey = id
//
//	[field.id]
//	type = bigint
//	autoIncrement = true
//
//	[index.idx_name]
//	fields = name, email
//	unique = true
//
// 字段和索引按 section 出现的顺序排列
const (
	iniTableSection = "table"
	iniFieldPrefix  = "field."
	iniIndexPrefix  = "index."
)

func decodeINIDefinition(data []byte) (*model.TableDefinition, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		SpaceBeforeInlineComment: true,
	}, data)
	if err != nil {
		return nil, err
	}

	if !file.HasSection(iniTableSection) {
		return nil, errors.Errorf("missing [%s] section", iniTableSection)
	}
	tableSection := file.Section(iniTableSection)

	def := &model.TableDefinition{
		Name:           tableSection.Key("name").String(),
		Engine:         tableSection.Key("engine").String(),
		DefaultCharset: tableSection.Key("defaultCharset").String(),
		Collate:        tableSection.Key("collate").String(),
	}
	if tableSection.HasKey("primaryKey") {
		def.PrimaryKey = tableSection.Key("primaryKey").Strings(",")
	}
	if tableSection.HasKey("comment") {
		comment := tableSection.Key("comment").String()
		def.Comment = &comment
	}
	if tableSection.HasKey("autoIncrement") {
		autoIncrement, err := tableSection.Key("autoIncrement").Bool()
		if err != nil {
			return nil, errors.Wrap(err, "table.autoIncrement")
		}
		def.AutoIncrement = &autoIncrement
	}

	for _, section := range file.Sections() {
		switch name := section.Name(); {
		case strings.HasPrefix(name, iniFieldPrefix):
			field, err := iniField(strings.TrimPrefix(name, iniFieldPrefix), section)
			if err != nil {
				return nil, errors.WithMessagef(err, "section [%s]", name)
			}
			def.Fields = append(def.Fields, field)
		case strings.HasPrefix(name, iniIndexPrefix):
			index, err := iniIndex(strings.TrimPrefix(name, iniIndexPrefix), section)
			if err != nil {
				return nil, errors.WithMessagef(err, "section [%s]", name)
			}
			def.Indexes = append(def.Indexes, index)
		}
	}

	return def, nil
}

func iniField(name string, section *ini.Section) (model.FieldDefinition, error) {
	field := model.FieldDefinition{
		Name:    name,
		Type:    model.FieldType(section.Key("type").String()),
		Comment: section.Key("comment").String(),
	}

	ints := map[string]*int{"size": &field.Size, "precision": &field.Precision, "scale": &field.Scale}
	for key, dst := range ints {
		if !section.HasKey(key) {
			continue
		}
		v, err := section.Key(key).Int()
		if err != nil {
			return field, errors.Wrapf(err, "invalid %s", key)
		}
		*dst = v
	}

	bools := map[string]*bool{"unsigned": &field.Unsigned, "required": &field.Required, "autoIncrement": &field.AutoIncrement}
	for key, dst := range bools {
		if !section.HasKey(key) {
			continue
		}
		v, err := section.Key(key).Bool()
		if err != nil {
			return field, errors.Wrapf(err, "invalid %s", key)
		}
		*dst = v
	}

	if section.HasKey("default") {
		fieldType := field.Type
		if fieldType == "" {
			fieldType = model.FieldTypeString
		}
		field.Default = model.ParseDefaultValue(section.Key("default").String(), fieldType)
	}
	return field, nil
}

func iniIndex(name string, section *ini.Section) (model.IndexDefinition, error) {
	index := model.IndexDefinition{
		Name:    name,
		Fields:  section.Key("fields").Strings(","),
		Comment: section.Key("comment").String(),
	}

	bools := map[string]*bool{"primary": &index.Primary, "unique": &index.Unique, "fulltext": &index.Fulltext}
	for key, dst := range bools {
		if !section.HasKey(key) {
			continue
		}
		v, err := section.Key(key).Bool()
		if err != nil {
			return index, errors.Wrapf(err, "invalid %s", key)
		}
		*dst = v
	}
	return index, nil
}
