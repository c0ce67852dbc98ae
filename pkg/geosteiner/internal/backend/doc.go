// Package backend hosts the thin cgo layer that links the Go API to the
// native GeoSteiner library. It is the only package in the module that imports
// "C" or "unsafe". The real binding lives behind the geosteiner build tag so
// that the rest of the repository can compile and test without the native
// library.
package backend
