package serializer

import (
	"github.com/pkg/errors"
)

type Serializer[F, T any] interface {
	Serialize(from F) (T, error)
	Deserialize(to T) (F, error)
}

const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMsgPack = "msgpack"
	FormatBSON    = "bson"
)

// NewByteSerializer 按格式名创建字节序列化器，format 为空时使用 json
func NewByteSerializer[T any](format string) (Serializer[T, []byte], error) {
	switch format {
	case FormatJSON, "":
		return NewJSONSerializer[T](), nil
	case FormatYAML, "yml":
		return NewYAMLSerializer[T](), nil
	case FormatMsgPack:
		return NewMsgPackSerializer[T](), nil
	case FormatBSON:
		return NewBSONSerializer[T](), nil
	default:
		return nil, errors.Errorf("unsupported serializer format %q", format)
	}
}

// Formats 支持的格式名
func Formats() []string {
	return []string{FormatJSON, FormatYAML, FormatMsgPack, FormatBSON}
}
