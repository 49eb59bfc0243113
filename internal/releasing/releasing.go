// Package releasing implements the end-of-life hook shared by the value wrappers.
package releasing

// Releaser is implemented by payloads that need to know when a wrapper stops owning them.
type Releaser interface {
	Release()
}

// Release calls Release on v when it implements Releaser.
// Pointer receivers are honoured through ptr.
func Release[T any](ptr *T) {
	if ptr == nil {
		return
	}
	if r, ok := any(*ptr).(Releaser); ok {
		r.Release()
		return
	}
	if r, ok := any(ptr).(Releaser); ok {
		r.Release()
	}
}
