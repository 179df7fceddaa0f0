// Package diagnostic provides structured errors and warnings produced while
// validating format declarations, both the in-code declarations built by
// package resource and the YAML declaration files consumed by the generator.
//
// Each diagnostic names the model type and the API key it concerns, so a
// caller can render "[Type] key: [code] message" lines without parsing text.
package diagnostic
