package ref

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// TypeOptions 通过 namespace + type 定位一个已注册的构造函数
type TypeOptions struct {
	Namespace string `cfg:"namespace" json:"namespace" yaml:"namespace"`
	Type      string `cfg:"type" json:"type" yaml:"type"`
	Options   any    `cfg:"options" json:"options,omitempty" yaml:"options,omitempty"`
}

type constructor struct {
	fn           any
	fv           reflect.Value
	in           reflect.Type // nil 表示无参构造
	returnsError bool
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func newConstructor(fn any) (*constructor, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		return nil, fmt.Errorf("constructor must be a function, got %T", fn)
	}

	ft := fv.Type()
	if ft.NumIn() > 1 {
		return nil, fmt.Errorf("constructor must have 0 or 1 input parameters, got %d", ft.NumIn())
	}
	if ft.NumOut() != 1 && ft.NumOut() != 2 {
		return nil, fmt.Errorf("constructor must have 1 or 2 return values, got %d", ft.NumOut())
	}
	if ft.NumOut() == 2 && !ft.Out(1).Implements(errorType) {
		return nil, fmt.Errorf("second return value must be error type")
	}

	c := &constructor{fn: fn, fv: fv, returnsError: ft.NumOut() == 2}
	if ft.NumIn() == 1 {
		c.in = ft.In(0)
	}
	return c, nil
}

func (c *constructor) call(options any) (any, error) {
	var args []reflect.Value
	if c.in != nil {
		arg, err := c.argument(options)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	results := c.fv.Call(args)
	if c.returnsError && !results[1].IsNil() {
		return nil, results[1].Interface().(error)
	}
	return results[0].Interface(), nil
}

// argument 将 options 转换为构造函数的入参，nil 指针参数会被替换为零值对象
func (c *constructor) argument(options any) (reflect.Value, error) {
	if options == nil {
		if c.in.Kind() == reflect.Ptr {
			return reflect.New(c.in.Elem()), nil
		}
		return reflect.Zero(c.in), nil
	}

	ov := reflect.ValueOf(options)
	switch {
	case ov.Type().AssignableTo(c.in):
		return ov, nil
	case ov.Kind() == reflect.Ptr && !ov.IsNil() && ov.Elem().Type().AssignableTo(c.in):
		return ov.Elem(), nil
	case c.in.Kind() == reflect.Ptr && ov.Type().AssignableTo(c.in.Elem()):
		pv := reflect.New(c.in.Elem())
		pv.Elem().Set(ov)
		return pv, nil
	}
	return reflect.Value{}, fmt.Errorf("options type %T is not assignable to %v", options, c.in)
}

// Registry 构造函数注册表，key 为 namespace:type
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]*constructor
}

func NewRegistry() *Registry {
	return &Registry{constructors: map[string]*constructor{}}
}

func key(namespace string, type_ string) string {
	return namespace + ":" + type_
}

// Register 注册构造函数。同一个 key 重复注册同一个函数是幂等的，注册不同函数返回错误
func (r *Registry) Register(namespace string, type_ string, fn any) error {
	c, err := newConstructor(fn)
	if err != nil {
		return fmt.Errorf("invalid constructor for %s: %w", key(namespace, type_), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.constructors[key(namespace, type_)]; ok {
		if existing.fv.Pointer() == c.fv.Pointer() {
			return nil
		}
		return fmt.Errorf("constructor for %s already registered with different function", key(namespace, type_))
	}
	r.constructors[key(namespace, type_)] = c
	return nil
}

func (r *Registry) New(namespace string, type_ string, options any) (any, error) {
	r.mu.RLock()
	c, ok := r.constructors[key(namespace, type_)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("constructor not found for %s", key(namespace, type_))
	}
	return c.call(options)
}

func (r *Registry) Has(namespace string, type_ string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.constructors[key(namespace, type_)]
	return ok
}

// Types 返回 namespace 下所有已注册的类型名，按字典序排列
func (r *Registry) Types(namespace string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var types []string
	prefix := namespace + ":"
	for k := range r.constructors {
		if strings.HasPrefix(k, prefix) {
			types = append(types, strings.TrimPrefix(k, prefix))
		}
	}
	sort.Strings(types)
	return types
}

var defaultRegistry = NewRegistry()

func Register(namespace string, type_ string, fn any) error {
	return defaultRegistry.Register(namespace, type_, fn)
}

func MustRegister(namespace string, type_ string, fn any) {
	if err := Register(namespace, type_, fn); err != nil {
		panic(err)
	}
}

// RegisterT 以 T 的包路径和类型名作为 namespace 和 type 注册
func RegisterT[T any](fn any) error {
	namespace, type_, err := typeKey[T]()
	if err != nil {
		return err
	}
	return Register(namespace, type_, fn)
}

func MustRegisterT[T any](fn any) {
	if err := RegisterT[T](fn); err != nil {
		panic(err)
	}
}

func New(namespace string, type_ string, options any) (any, error) {
	return defaultRegistry.New(namespace, type_, options)
}

func NewWithOptions(options *TypeOptions) (any, error) {
	if options == nil {
		return nil, fmt.Errorf("type options cannot be nil")
	}
	return New(options.Namespace, options.Type, options.Options)
}

func Has(namespace string, type_ string) bool {
	return defaultRegistry.Has(namespace, type_)
}

func Types(namespace string) []string {
	return defaultRegistry.Types(namespace)
}

func typeKey[T any]() (string, string, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.PkgPath() == "" || t.Name() == "" {
		return "", "", fmt.Errorf("cannot determine package path or type name for type %v", t)
	}
	return t.PkgPath(), t.Name(), nil
}
