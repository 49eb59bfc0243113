// Package env reads typed configuration values from the process environment.
package env

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"go.llib.dev/prelude/pkg/errorkit"
)

const (
	ErrInvalidValue errorkit.Error = "ErrInvalidValue"
	ErrMissingValue errorkit.Error = "ErrMissingValue"
)

// Lookup will look up an environment variable and parse it into T.
// The boolean result tells if the variable was present or had a default value.
func Lookup[T any](key string, opts ...LookupOption) (T, bool, error) {
	var conf lookupEnvOptions
	for _, opt := range opts {
		opt.configure(&conf)
	}
	raw, ok := os.LookupEnv(key)
	if !ok && conf.DefaultValue != nil {
		raw, ok = *conf.DefaultValue, true
	}
	if !ok {
		var err error
		if conf.IsRequired {
			err = ErrMissingValue.F("missing environment variable: %s", key)
		}
		return *new(T), false, err
	}
	if conf.Parser != nil {
		v, err := conf.Parser(raw)
		if err != nil {
			return *new(T), false, ErrInvalidValue.Wrap(err)
		}
		out, ok := v.(T)
		if !ok {
			return *new(T), false, ErrInvalidValue.F("%s: parser returned %T", key, v)
		}
		return out, true, nil
	}
	var v T
	if err := parse(raw, &v); err != nil {
		return *new(T), false, ErrInvalidValue.F("%s: %w", key, err)
	}
	return v, true, nil
}

type LookupOption interface{ configure(*lookupEnvOptions) }

type funcLookupOption func(*lookupEnvOptions)

func (fn funcLookupOption) configure(options *lookupEnvOptions) { fn(options) }

func DefaultValue(val string) LookupOption {
	return funcLookupOption(func(options *lookupEnvOptions) {
		options.DefaultValue = &val
	})
}

func Required() LookupOption {
	return funcLookupOption(func(options *lookupEnvOptions) {
		options.IsRequired = true
	})
}

type ParserFunc[T any] func(envValue string) (T, error)

func ParseWith[T any](parser ParserFunc[T]) LookupOption {
	return funcLookupOption(func(options *lookupEnvOptions) {
		options.Parser = func(ev string) (any, error) {
			return parser(ev)
		}
	})
}

type lookupEnvOptions struct {
	DefaultValue *string
	IsRequired   bool
	Parser       func(string) (any, error)
}

var durationType = reflect.TypeOf(time.Duration(0))

func parse(raw string, ptr any) error {
	rv := reflect.ValueOf(ptr).Elem()
	if rv.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		rv.SetInt(int64(d))
		return nil
	}
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetFloat(f)
	default:
		if err := json.Unmarshal([]byte(raw), ptr); err != nil {
			return fmt.Errorf("unsupported value for %s: %w", rv.Type(), err)
		}
	}
	return nil
}
