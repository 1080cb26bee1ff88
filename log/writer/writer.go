package writer

import (
	"io"

	"github.com/hatlonely/sqltable/ref"
	"github.com/pkg/errors"
)

// Writer 日志输出目标，建表语句走 stdout，所以默认输出到 stderr
type Writer interface {
	io.Writer
	io.Closer
}

func init() {
	ref.MustRegisterT[ConsoleWriter](NewConsoleWriterWithOptions)
	ref.MustRegisterT[BufferWriter](NewBufferWriter)
}

// NewWriterWithOptions 通过 ref 创建输出器，未指定类型时输出到 stderr
func NewWriterWithOptions(options *ref.TypeOptions) (Writer, error) {
	if options == nil || options.Type == "" {
		return NewConsoleWriterWithOptions(&ConsoleWriterOptions{Target: "stderr"})
	}
	if options.Namespace == "" {
		options = &ref.TypeOptions{Namespace: namespace, Type: options.Type, Options: options.Options}
	}

	obj, err := ref.NewWithOptions(options)
	if err != nil {
		return nil, errors.WithMessage(err, "ref.NewWithOptions failed")
	}
	w, ok := obj.(Writer)
	if !ok {
		return nil, errors.Errorf("%T is not a Writer", obj)
	}
	return w, nil
}

const namespace = "github.com/hatlonely/sqltable/log/writer"
