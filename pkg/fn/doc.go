// Package fn binds callbacks to receivers while keeping an identity that
// survives re-binding, and rate-limits them.
//
// Go function values cannot be compared, so a listener registered with
// [events.Bus] is removed by its GUID rather than by function equality.
// Two bindings that share a GUID are interchangeable for removal:
//
//	keyDown := fn.Bind(b, (*Button).handleKeyPress)
//	bus.On(doc, "keydown", keyDown)
//	...
//	bus.Off(doc, "keydown", fn.BindAs(keyDown.GUID(), b, (*Button).handleKeyPress))
package fn
