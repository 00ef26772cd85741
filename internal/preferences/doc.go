// Package preferences implements the typed, observable user preference store.
//
// A preference is described once by a Spec (kebab-case id, type, default) and
// backed by a Preference cell holding both the raw input and its converted
// value. Values that arrive from configuration before their Spec is registered
// are kept as unknown preferences and applied as soon as the Spec shows up, so
// hosts can load configuration before every command has registered its
// preferences.
//
// Listeners run synchronously on the goroutine that changed the value.
package preferences
