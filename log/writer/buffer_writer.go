package writer

import (
	"bytes"
	"sync"
)

// BufferWriter 写入内存缓冲区，主要用于测试中断言日志内容
type BufferWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func NewBufferWriter() *BufferWriter {
	return &BufferWriter{}
}

func (b *BufferWriter) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *BufferWriter) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *BufferWriter) Close() error {
	return nil
}
