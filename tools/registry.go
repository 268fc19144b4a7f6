package tools

import (
	"fmt"
)

// Registry is the immutable capability table. Populated once at startup;
// safe for unsynchronized concurrent reads afterwards.
type Registry struct {
	defs   []ToolDefinition
	byName map[string]*ToolDefinition
}

// NewRegistry builds a registry from definitions, preserving their order.
// Every name must be non-empty and unique: exactly one executor per name.
func NewRegistry(defs ...ToolDefinition) (*Registry, error) {
	r := &Registry{
		defs:   make([]ToolDefinition, len(defs)),
		byName: make(map[string]*ToolDefinition, len(defs)),
	}
	copy(r.defs, defs)
	for i := range r.defs {
		name := r.defs[i].Name
		if name == "" {
			return nil, fmt.Errorf("tool at index %d has an empty name", i)
		}
		if r.defs[i].Function == nil {
			return nil, fmt.Errorf("tool %s has no executor", name)
		}
		if _, exists := r.byName[name]; exists {
			return nil, fmt.Errorf("tool %s registered twice", name)
		}
		r.byName[name] = &r.defs[i]
	}
	return r, nil
}

// Default wires the full capability set. The completer backs the tools that
// call back into the completion service.
func Default(completer TextCompleter) (*Registry, error) {
	return NewRegistry(
		WeatherDefinition,
		CurrencyDefinition,
		TranslateDefinition(completer),
		SummarizeDefinition(completer),
		SearchDefinition,
		FetchURLDefinition,
		CalcDefinition,
		ClockDefinition,
	)
}

// DescribeAll returns every definition in registration order. The slice is a
// copy; the order is what the completion service sees on every call.
func (r *Registry) DescribeAll() []ToolDefinition {
	out := make([]ToolDefinition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Resolve looks up the executor for a capability name.
func (r *Registry) Resolve(name string) (*ToolDefinition, bool) {
	def, ok := r.byName[name]
	return def, ok
}
