// Package server hosts the page shell over HTTP.
//
// Start binds the listener up front so port conflicts surface as errors, then
// serves until the context is cancelled. NewHandler exposes the same routing
// for in-process tests.
package server
