package swipe

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Callback is invoked with no arguments when a gesture is recognised.
type Callback func()

// Config holds the resolved detector callbacks. Nil callbacks are skipped.
type Config struct {
	LeftCallback  Callback // fires on a leftward swipe
	RightCallback Callback // fires on a rightward swipe
	EndCallback   Callback // fires on every gesture end, swipe or not

	// Debug prints gesture decisions to stderr.
	Debug bool
}

// Options is a loosely typed configuration, keyed by option name
// (e.g. "leftCallback"). Unknown keys are ignored. Recognised keys are
// type-checked before use.
type Options map[string]any

// Option names and expected types, keyed the same way Options is.
var (
	defaultOptions = Options{
		"leftCallback":  nil,
		"rightCallback": nil,
		"endCallback":   nil,
		"debug":         false,
	}
	defaultOptionTypes = map[string]string{
		"leftCallback":  "(function|null)",
		"rightCallback": "(function|null)",
		"endCallback":   "(function|null)",
		"debug":         "(boolean|null)",
	}
)

// ConfigurationError reports an option whose value does not match the
// expected type table.
type ConfigurationError struct {
	Component string // component name, e.g. "swipe"
	Option    string // offending key
	Received  string // type name of the supplied value
	Expected  string // expected type expression, e.g. "(function|null)"
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: Option %q provided type %q but expected type %q.",
		strings.ToUpper(e.Component), e.Option, e.Received, e.Expected)
}

// resolveOptions merges opts over the defaults and type-checks the result.
func resolveOptions(opts Options) (Config, error) {
	merged := make(Options, len(defaultOptions)+len(opts))
	for k, v := range defaultOptions {
		merged[k] = v
	}
	for k, v := range opts {
		merged[k] = v
	}
	if err := typeCheckConfig(componentName, merged, defaultOptionTypes); err != nil {
		return Config{}, err
	}

	debug, _ := merged["debug"].(bool)
	return Config{
		LeftCallback:  asCallback(merged["leftCallback"]),
		RightCallback: asCallback(merged["rightCallback"]),
		EndCallback:   asCallback(merged["endCallback"]),
		Debug:         debug,
	}, nil
}

// typeCheckConfig validates every key in types against the value in cfg.
// An expected type is a type name or a parenthesised alternation such as
// "(function|null)". Keys are checked in sorted order so the reported
// error is deterministic.
func typeCheckConfig(component string, cfg Options, types map[string]string) error {
	keys := make([]string, 0, len(types))
	for k := range types {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		expected := types[key]
		got := typeName(cfg[key])
		if !typeMatches(expected, got) {
			return &ConfigurationError{
				Component: component,
				Option:    key,
				Received:  got,
				Expected:  expected,
			}
		}
	}
	return nil
}

func typeMatches(expected, got string) bool {
	expected = strings.TrimSuffix(strings.TrimPrefix(expected, "("), ")")
	for _, alt := range strings.Split(expected, "|") {
		if alt == got {
			return true
		}
	}
	return false
}

// typeName classifies a config value. Only functions without parameters or
// results count as "function", whatever their named type; other func
// signatures report "func" so they fail validation.
func typeName(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case Callback:
		if x == nil {
			return "null"
		}
		return "function"
	case func():
		if x == nil {
			return "null"
		}
		return "function"
	case bool:
		return "boolean"
	case string:
		return "string"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "number"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Map, reflect.Slice, reflect.Pointer:
		if rv.IsNil() {
			return "null"
		}
	}
	if isNullaryFunc(rv) {
		return "function"
	}
	return strings.ToLower(rv.Kind().String())
}

var callbackType = reflect.TypeOf(Callback(nil))

func isNullaryFunc(rv reflect.Value) bool {
	return rv.Kind() == reflect.Func && rv.Type().NumIn() == 0 && rv.Type().NumOut() == 0
}

func asCallback(v any) Callback {
	switch x := v.(type) {
	case Callback:
		return x
	case func():
		return x
	}
	rv := reflect.ValueOf(v)
	if isNullaryFunc(rv) && !rv.IsNil() {
		return rv.Convert(callbackType).Interface().(Callback)
	}
	return nil
}
