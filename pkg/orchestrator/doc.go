// Package orchestrator wires the form definition, optional transformers and a
// renderer registry behind a single Generate call.
package orchestrator
