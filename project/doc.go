// Package project converts parsed KDL documents into plain, JSON-serializable
// structures and encodes them as text.
//
// Project is a pure function: structurally equal documents always produce
// deeply equal projections, and projecting never fails. Nodes omit their
// arguments, properties, and children fields entirely when empty, which keeps
// the JSON view compact and matches the natural reading of a KDL node that
// has none.
//
// Encode writes a projection as pretty-printed JSON with stable indentation
// and sorted property keys, optionally colorized for terminals in the manner
// of:
//
//	project.Encode(p, os.Stdout, project.EncodeColors(project.NewColors()))
package project
