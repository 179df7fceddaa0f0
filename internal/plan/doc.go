// Package plan provides the resolution pipeline that produces the Plan
// consumed by code generation.
//
// Resolution pipeline:
//  1. Analyze the model package → type graph
//  2. Load the YAML declarations → validate
//  3. For each declared resource:
//     - Bind each key to its Go field, explicitly or by matching the key
//     against struct tags and field names
//     - Derive the value kind from the Go field type
//  4. Order resources so that every nested format is declared before the
//     formats using it, and emit diagnostics (unmatched keys, ambiguity,
//     unsupported field types, cycles)
package plan
