// Package controller implements the form controller: it holds the raw value
// and validation state of each field, re-validates a field whenever it
// changes, and on a valid submission presents a success toast and emits the
// configuration to a sink.
package controller
