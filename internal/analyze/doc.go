// Package analyze loads the Go package holding the model types and extracts
// the type graph the generator resolves declarations against.
//
// It uses golang.org/x/tools/go/packages with go/types.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/named/pointer/slice/map/external)
//   - FieldInfo: describes field name, type, tags, and embedding
package analyze
