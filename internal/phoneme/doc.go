// Package phoneme defines the data model loaded at startup: phoneme
// descriptors used for display, and named replacement rules whose ordered
// mappings drive the substitution engine in package rules.
//
// Values are decoded from JSON or YAML documents and are never mutated after
// loading. [Mapping] keeps the document order of its pairs in both formats,
// since rule application is sequential and order-sensitive.
package phoneme
