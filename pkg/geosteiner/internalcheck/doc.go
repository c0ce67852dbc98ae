// Package internalcheck holds repository policy tests for the GeoSteiner
// bindings. It is not intended for external use.
package internalcheck
