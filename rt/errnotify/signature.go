package errnotify

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

var (
	errorType          = reflect.TypeOf((*error)(nil)).Elem()
	errFuncType        = reflect.TypeOf((func(error))(nil))
	errOptsFuncType    = reflect.TypeOf((func(error, any))(nil))
	subscriberFuncType = reflect.TypeOf(SubscriberFunc(nil))
)

// isFunction reports whether v is a non-nil func value.
func isFunction(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// isNil reports whether v is nil or a typed nil of a nillable kind.
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Interface, reflect.Chan, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// argumentTypes returns the declared parameter types of fn, in order.
// It returns nil for anything that is not a non-nil func.
func argumentTypes(fn any) []reflect.Type {
	if !isFunction(fn) {
		return nil
	}
	t := reflect.TypeOf(fn)
	out := make([]reflect.Type, t.NumIn())
	for i := range out {
		out[i] = t.In(i)
	}
	return out
}

// adaptFunc converts fn to a SubscriberFunc when its signature is one of the accepted shapes.
// Named func types with an accepted underlying signature are converted as well.
func adaptFunc(fn any) (SubscriberFunc, bool) {
	rv := reflect.ValueOf(fn)
	t := rv.Type()
	switch {
	case t.ConvertibleTo(subscriberFuncType):
		return rv.Convert(subscriberFuncType).Interface().(SubscriberFunc), true
	case t.ConvertibleTo(errOptsFuncType):
		f := rv.Convert(errOptsFuncType).Interface().(func(error, any))
		return func(err error, opts any, _ Failback) { f(err, opts) }, true
	case t.ConvertibleTo(errFuncType):
		f := rv.Convert(errFuncType).Interface().(func(error))
		return func(err error, _ any, _ Failback) { f(err) }, true
	default:
		return nil, false
	}
}

// funcName returns the runtime symbol of fn without import path and package qualifier,
// e.g. "reportToSentry", "(*Client).Notify-fm" or "main.func1".
func funcName(fn any) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func subscriberName(s ErrorSubscriber) string {
	if n, ok := s.(namer); ok {
		return n.SubscriberName()
	}
	return fmt.Sprintf("%T", s)
}
