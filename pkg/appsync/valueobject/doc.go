// Package valueobject holds the AppSync request and response fragments used
// when building control-plane calls.
//
// Every value object is immutable once constructed. Objects can be built from
// a typed input struct or, through the Create functions, from an untyped map
// keyed by the AppSync wire field names.
package valueobject
