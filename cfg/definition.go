package cfg

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hatlonely/sqltable/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// 表定义文件格式
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatINI  = "ini"
)

// FormatFromFilename 根据扩展名推断表定义文件格式
func FormatFromFilename(filename string) (string, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")); ext {
	case FormatJSON, FormatTOML, FormatINI:
		return ext, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", errors.Errorf("unsupported definition file extension %q", filepath.Ext(filename))
	}
}

// LoadDefinition 读取表定义文件，格式由扩展名决定
func LoadDefinition(filename string) (*model.TableDefinition, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "read definition file %s failed", filename)
	}
	def, err := DecodeDefinition(data, format)
	if err != nil {
		return nil, errors.WithMessagef(err, "load definition file %s failed", filename)
	}
	return def, nil
}

// DecodeDefinition 解码表定义，填充默认值后校验
func DecodeDefinition(data []byte, format string) (*model.TableDefinition, error) {
	def := &model.TableDefinition{}

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, def)
	case FormatYAML, "yml":
		err = yaml.Unmarshal(data, def)
	case FormatTOML:
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(def)
	case FormatINI:
		def, err = decodeINIDefinition(data)
	default:
		return nil, errors.Errorf("unsupported definition format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s definition failed", format)
	}

	if err := SetDefaults(def); err != nil {
		return nil, errors.WithMessage(err, "SetDefaults failed")
	}
	if err := ValidateStruct(def); err != nil {
		return nil, errors.WithMessagef(err, "invalid definition %q", def.Name)
	}
	return def, nil
}
