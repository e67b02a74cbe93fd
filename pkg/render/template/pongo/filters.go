package pongo

import (
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var (
	// pongo2 keeps filters in an unguarded global map.
	filtersMu      sync.Mutex
	defaultFilters sync.Once
)

func registerDefaultFilters() {
	defaultFilters.Do(func() {
		filtersMu.Lock()
		defer filtersMu.Unlock()
		if !pongo2.FilterExists("trim") {
			_ = pongo2.RegisterFilter("trim", filterTrim)
		}
		if !pongo2.FilterExists("fieldid") {
			_ = pongo2.RegisterFilter("fieldid", filterFieldID)
		}
	})
}

func filterExists(name string) bool {
	filtersMu.Lock()
	defer filtersMu.Unlock()
	return pongo2.FilterExists(name)
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterFieldID builds the DOM id used for a field control. The optional
// parameter is a suffix, e.g. {{ name|fieldid:"error" }} -> field-name-error.
func filterFieldID(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	name := strings.TrimSpace(in.String())
	if name == "" {
		return pongo2.AsValue(""), nil
	}
	id := "field-" + name
	if param != nil && !param.IsNil() {
		if suffix := strings.TrimSpace(param.String()); suffix != "" {
			id += "-" + suffix
		}
	}
	return pongo2.AsValue(id), nil
}
