package mapping

import (
	"strings"

	"apiresource/internal/analyze"
)

// ResolveType finds a declared type name in the graph. Accepted forms:
//   - "AccountNonce" (name only, looked up in pkgPath)
//   - "paypal.AccountNonce" (package name or path suffix)
//   - "apiresource/paypal.AccountNonce" (full import path)
func ResolveType(graph *analyze.TypeGraph, pkgPath, name string) *analyze.TypeInfo {
	if graph == nil || name == "" {
		return nil
	}

	lastDot := strings.LastIndex(name, ".")
	if lastDot < 0 {
		return graph.Lookup(pkgPath, name)
	}

	pkgStr, typeName := name[:lastDot], name[lastDot+1:]
	if pkgStr == "" || typeName == "" {
		return nil
	}

	if t := graph.Lookup(pkgStr, typeName); t != nil {
		return t
	}

	for _, pkg := range graph.Packages {
		if pkg.Name == pkgStr || strings.HasSuffix(pkg.Path, "/"+pkgStr) {
			if t := graph.Lookup(pkg.Path, typeName); t != nil {
				return t
			}
		}
	}

	return nil
}
