// Package ir provides the intermediate representation (IR) for parsed KDL
// documents.
//
// # Overview
//
// A Document is an ordered sequence of nodes. Each Node has a name, an
// ordered list of entries, and optional child nodes. An Entry is either a
// positional argument (a bare value) or a named property (key plus value);
// a single entry is never both.
//
// Values form a closed tagged union: null, boolean, number, string, or a
// structured extension value that only shows up in non-standard cases. The
// Type field is the discriminant and the per-type fields carry the payload:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: Int64, Float64, or Number (string fallback)
//   - StringType: String
//   - ExtensionType: Extension (any JSON-serializable structure)
//
// # Creating Values
//
// Use constructor functions:
//
//	v := ir.FromString("hello")
//	n := ir.FromInt(42)
//	b := ir.FromBool(true)
//	z := ir.Null()
//
// # Lifecycle
//
// Documents are produced by a parser and never mutated afterwards. Consumers
// (projection, rendering) treat them as read-only snapshots; a fresh input
// produces a fresh Document.
//
// # Related Packages
//
//   - github.com/kdl-tools/kdlview/kdl - adapts the external parser into IR
//   - github.com/kdl-tools/kdlview/project - projects IR to plain data
//   - github.com/kdl-tools/kdlview/render - renders IR as a collapsible tree
package ir
