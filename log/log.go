package log

import (
	"sync/atomic"

	"github.com/hatlonely/sqltable/log/logger"
)

type Options = logger.SLogOptions

type holder struct {
	logger logger.Logger
}

var defaultLogger atomic.Pointer[holder]

func init() {
	l, err := logger.NewSLogWithOptions(&logger.SLogOptions{
		Level:  "info",
		Format: "text",
	})
	if err != nil {
		panic("failed to initialize default logger: " + err.Error())
	}
	defaultLogger.Store(&holder{logger: l})
}

func Default() logger.Logger {
	return defaultLogger.Load().logger
}

// SetDefault 替换进程级默认日志器，nil 被忽略
func SetDefault(l logger.Logger) {
	if l != nil {
		defaultLogger.Store(&holder{logger: l})
	}
}

func NewLogWithOptions(options *Options) (logger.Logger, error) {
	l, err := logger.NewSLogWithOptions(options)
	if err != nil {
		return nil, err
	}
	return l, nil
}
