// Package model defines the typed form model consumed by the controller,
// the validator and the renderers. A FormModel lists its fields in display
// order and groups them into sections (rendered as tabs in HTML and as
// headings in the terminal). Validation rules expose canonical identifiers
// (minLength, pattern, min, max) with string parameters so numeric bounds
// survive JSON snapshots and template contexts without precision loss.
package model
