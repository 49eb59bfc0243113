package logging

// Detail is a logging detail that enrich the logging message with additional contextual detail.
type Detail interface {
	addTo(l *Logger, e entry)
}

type entry map[string]any

// Field creates a single key value pair based logging detail.
func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(l *Logger, e entry) {
	e[l.formatKey(f.Key)] = f.Value
}

// Fields is a collection of field that you can add to your loggig record.
type Fields map[string]any

func (fields Fields) addTo(l *Logger, e entry) {
	for k, v := range fields {
		e[l.formatKey(k)] = v
	}
}

// ErrField adds the error message of err under the "error" key.
func ErrField(err error) Detail {
	if err == nil {
		return Fields{}
	}
	return field{Key: "error", Value: err.Error()}
}

// LazyDetail lets you add logging details that aren't evaluated until the log is actually created.
// This is useful for debug logs with details that take effort to calculate.
type LazyDetail func() Detail

func (df LazyDetail) addTo(l *Logger, e entry) {
	if df == nil {
		return
	}
	if d := df(); d != nil {
		d.addTo(l, e)
	}
}
