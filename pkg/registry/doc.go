// Package registry provides a generic, thread-safe name to item registry.
// The renderer factories are kept in one and populated from init()
// functions of the packages that define them.
package registry
