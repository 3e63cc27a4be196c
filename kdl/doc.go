// Package kdl adapts the external KDL parser into the inspector's IR.
//
// The KDL grammar itself is out of scope here: parsing is delegated to
// github.com/sblinch/kdl-go and the resulting document is converted into
// ir values. Parse errors pass through untouched so their messages can be
// surfaced verbatim.
//
// The upstream parser exposes node properties as a mapping, so adapted
// property entries are ordered by key; duplicate property keys are already
// collapsed upstream, consistent with mapping semantics.
package kdl
