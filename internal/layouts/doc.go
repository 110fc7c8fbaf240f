// Package layouts registers the built-in obstacle layouts with core. Import it
// for its side effects.
package layouts
