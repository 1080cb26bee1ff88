package ddl

import (
	"github.com/hatlonely/sqltable/model"
	"github.com/hatlonely/sqltable/serializer"
	"github.com/pkg/errors"
)

type ObjectGeneratorOptions struct {
	// 输出格式：json, yaml, msgpack, bson
	Format string `cfg:"format" def:"json" validate:"omitempty,oneof=json yaml msgpack bson"`
	// json 缩进，为空时输出单行
	Indent string `cfg:"indent"`
}

// ObjectGenerator 不生成 SQL，而是把规范化表示原样序列化输出，用于预览或交给外部工具。
// msgpack 和 bson 的输出是二进制内容
type ObjectGenerator struct {
	serializer serializer.Serializer[*model.TableObject, []byte]
}

func NewObjectGeneratorWithOptions(options *ObjectGeneratorOptions) (*ObjectGenerator, error) {
	if options == nil {
		options = &ObjectGeneratorOptions{}
	}

	if options.Format == serializer.FormatJSON || options.Format == "" {
		return &ObjectGenerator{serializer: serializer.NewIndentJSONSerializer[*model.TableObject](options.Indent)}, nil
	}
	s, err := serializer.NewByteSerializer[*model.TableObject](options.Format)
	if err != nil {
		return nil, errors.WithMessage(err, "create object serializer failed")
	}
	return &ObjectGenerator{serializer: s}, nil
}

// Generate 不做校验，任何规范化表示都可以被输出
func (g *ObjectGenerator) Generate(obj *model.TableObject) (string, error) {
	if obj == nil {
		return "", errors.New("table object cannot be nil")
	}
	buf, err := g.serializer.Serialize(obj)
	if err != nil {
		return "", errors.Wrap(err, "serialize table object failed")
	}
	return string(buf), nil
}
