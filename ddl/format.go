package ddl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hatlonely/sqltable/model"
)

// 默认值中不加引号的关键字
var defaultKeywords = map[string]bool{
	"NULL":              true,
	"CURRENT_TIMESTAMP": true,
	"CURRENT_DATE":      true,
	"CURRENT_TIME":      true,
	"LOCALTIMESTAMP":    true,
	"NOW()":             true,
}

// 无参函数调用作为表达式输出，如 gen_random_uuid()
var functionCall = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*\(\)$`)

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// quoteIdentifier 用 quote 包裹标识符，标识符内的 quote 双写转义
func quoteIdentifier(name string, quote string) string {
	return quote + strings.ReplaceAll(name, quote, quote+quote) + quote
}

func quoteIdentifiers(names []string, quote string) string {
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		quoted = append(quoted, quoteIdentifier(name, quote))
	}
	return strings.Join(quoted, ", ")
}

// formatDefault 格式化默认值，boolTrue/boolFalse 为方言的布尔字面量
func formatDefault(value any, boolTrue string, boolFalse string) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case string:
		if defaultKeywords[strings.ToUpper(v)] {
			return strings.ToUpper(v)
		}
		if functionCall.MatchString(v) {
			return v
		}
		return quoteString(v)
	case bool:
		if v {
			return boolTrue
		}
		return boolFalse
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatType 渲染列类型，如 VARCHAR(255)、DECIMAL(10, 2)、ENUM('a', 'b')
func formatType(c model.ColumnObject) string {
	typ := strings.ToUpper(c.Type)
	switch {
	case len(c.Values) > 0:
		values := make([]string, 0, len(c.Values))
		for _, v := range c.Values {
			values = append(values, quoteString(v))
		}
		return fmt.Sprintf("%s(%s)", typ, strings.Join(values, ", "))
	case c.Precision > 0:
		return fmt.Sprintf("%s(%d, %d)", typ, c.Precision, c.Scale)
	case c.Size > 0:
		return fmt.Sprintf("%s(%d)", typ, c.Size)
	default:
		return typ
	}
}

// statements 将多条语句拼接为一个字符串，每条以分号结尾
func statements(stmts []string) string {
	return strings.Join(stmts, ";\n") + ";"
}
