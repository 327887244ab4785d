package fn

// Func is a callable carrying a GUID. The zero Func is a no-op with no identity.
type Func[E any] struct {
	guid GUID
	call func(E)
}

// New wraps f with a fresh identity.
func New[E any](f func(E)) Func[E] {
	if f == nil {
		return Func[E]{}
	}
	return Func[E]{guid: NewGUID(), call: f}
}

// Bind returns method bound to receiver with a fresh identity.
func Bind[R any, E any](receiver R, method func(R, E)) Func[E] {
	return BindAs(NewGUID(), receiver, method)
}

// BindAs returns method bound to receiver sharing the given identity.
// Passing an existing Func's GUID makes the result remove the same listener.
func BindAs[R any, E any](guid GUID, receiver R, method func(R, E)) Func[E] {
	if method == nil {
		return Func[E]{}
	}
	return Func[E]{guid: guid, call: func(e E) { method(receiver, e) }}
}

// WithGUID returns f re-labelled with guid.
func WithGUID[E any](guid GUID, f func(E)) Func[E] {
	if f == nil {
		return Func[E]{}
	}
	return Func[E]{guid: guid, call: f}
}

// GUID returns the identity of f.
func (f Func[E]) GUID() GUID {
	return f.guid
}

// IsZero reports whether f has no callable.
func (f Func[E]) IsZero() bool {
	return f.call == nil
}

// Call invokes f. Calling the zero Func does nothing.
func (f Func[E]) Call(e E) {
	if f.call != nil {
		f.call(e)
	}
}
