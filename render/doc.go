// Package render converts parsed KDL documents into a collapsible visual
// tree.
//
// The renderer is split from its backends: Render produces an abstract
// Markup tree (tag, attributes, text, children) and WriteHTML serializes
// that tree as HTML, escaping every piece of user-controlled text on the
// way out. Lines produces the flat, line-oriented form of the same tree for
// terminal display.
//
// Expand/collapse state lives in an explicit State value keyed by structural
// path, outside the document itself, so it survives re-renders when the
// input text changes. Nodes default to collapsed on first appearance of a
// given path.
//
// Three mutually exclusive top-level renderings exist: RenderEmpty for
// empty input, RenderError for a parse failure, and Render for a parsed
// document (which shows a distinct placeholder when the document has zero
// nodes).
package render
