package serializer

import (
	"encoding/json"
)

type JSONSerializer[T any] struct {
	Indent string
}

func NewJSONSerializer[T any]() *JSONSerializer[T] {
	return &JSONSerializer[T]{}
}

func NewIndentJSONSerializer[T any](indent string) *JSONSerializer[T] {
	return &JSONSerializer[T]{Indent: indent}
}

func (s *JSONSerializer[T]) Serialize(from T) ([]byte, error) {
	if s.Indent != "" {
		return json.MarshalIndent(from, "", s.Indent)
	}
	return json.Marshal(from)
}

func (s *JSONSerializer[T]) Deserialize(to []byte) (T, error) {
	var result T
	err := json.Unmarshal(to, &result)
	return result, err
}
