// Package component is the composable unit of the player UI.
//
// A Component owns one element, an ordered list of child widgets, the event
// bindings it made, and an immutable set of merged options. Concrete widgets
// embed *Component and inject their behavior through Hooks; there is no
// inheritance chain to walk. Everything that a Component registers is
// released on Dispose, after which every method is a no-op.
//
// Components are NOT thread-safe. All calls must happen on the UI loop.
package component
