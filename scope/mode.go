// Package scope decides, per simple selector, whether a class or id is local
// to its stylesheet (and must be wrapped in a :local(...) marker for a later
// renaming pass) or global (left exactly as written).
package scope

//go:generate go-enum -f=$GOFILE --marshal --lower

// Default treatment of class and id selectors without an explicit override.
// Pure is local plus a validation pass rejecting selectors without any
// locally scoped class or id.
// ENUM(global, local, pure)
type Mode int
