package fn

import "sync/atomic"

// GUID identifies a bound function. The zero GUID is never issued.
type GUID uint64

var lastGUID atomic.Uint64

// NewGUID returns a process-unique identifier.
func NewGUID() GUID {
	return GUID(lastGUID.Add(1))
}
