package writer

import (
	"os"
	"testing"

	"github.com/hatlonely/sqltable/ref"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConsoleWriter(t *testing.T) {
	Convey("ConsoleWriter", t, func() {
		Convey("默认输出到 stderr", func() {
			w, err := NewConsoleWriterWithOptions(nil)
			So(err, ShouldBeNil)
			So(w.writer, ShouldEqual, os.Stderr)
			So(w.Close(), ShouldBeNil)
		})

		Convey("输出到 stdout", func() {
			w, err := NewConsoleWriterWithOptions(&ConsoleWriterOptions{Target: "stdout"})
			So(err, ShouldBeNil)
			So(w.writer, ShouldEqual, os.Stdout)
		})

		Convey("不支持的输出目标", func() {
			_, err := NewConsoleWriterWithOptions(&ConsoleWriterOptions{Target: "file"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestBufferWriter(t *testing.T) {
	Convey("BufferWriter 保留写入内容", t, func() {
		w := NewBufferWriter()
		n, err := w.Write([]byte("hello "))
		So(err, ShouldBeNil)
		So(n, ShouldEqual, 6)
		_, _ = w.Write([]byte("world"))
		So(w.String(), ShouldEqual, "hello world")
		So(w.Close(), ShouldBeNil)
	})
}

func TestNewWriterWithOptions(t *testing.T) {
	Convey("NewWriterWithOptions", t, func() {
		Convey("未指定类型时输出到 stderr", func() {
			w, err := NewWriterWithOptions(nil)
			So(err, ShouldBeNil)
			So(w.(*ConsoleWriter).writer, ShouldEqual, os.Stderr)
		})

		Convey("namespace 为空时使用本包", func() {
			w, err := NewWriterWithOptions(&ref.TypeOptions{Type: "ConsoleWriter", Options: &ConsoleWriterOptions{Target: "stdout"}})
			So(err, ShouldBeNil)
			So(w.(*ConsoleWriter).writer, ShouldEqual, os.Stdout)

			w, err = NewWriterWithOptions(&ref.TypeOptions{Type: "BufferWriter"})
			So(err, ShouldBeNil)
			So(w, ShouldHaveSameTypeAs, &BufferWriter{})
		})

		Convey("未注册的类型", func() {
			_, err := NewWriterWithOptions(&ref.TypeOptions{Type: "FileWriter"})
			So(err, ShouldNotBeNil)
		})
	})
}
