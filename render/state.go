package render

import "strconv"

// State is the expand/collapse set for tree nodes, keyed by structural
// path. It is UI state, not document state: paths reference positions, not
// node instances, so the state survives document replacement when the input
// text changes. Unknown paths are collapsed.
//
// A nil *State is valid and means "everything expanded"; it is used for
// one-shot output where no interaction exists.
//
// State is not safe for concurrent use; renders and toggles happen on a
// single event loop.
type State struct {
	expanded map[string]bool
}

func NewState() *State {
	return &State{expanded: map[string]bool{}}
}

// Expanded reports whether the node at path is expanded.
func (s *State) Expanded(path string) bool {
	if s == nil {
		return true
	}
	return s.expanded[path]
}

// Toggle flips the expand/collapse state of the node at path.
func (s *State) Toggle(path string) {
	s.expanded[path] = !s.expanded[path]
}

// Expand marks the node at path expanded.
func (s *State) Expand(path string) {
	s.expanded[path] = true
}

// Reset collapses everything.
func (s *State) Reset() {
	s.expanded = map[string]bool{}
}

// ChildPath derives the structural path of a node from its parent's path,
// its name, and its index among its siblings. The index disambiguates
// same-named siblings, so each gets independent expand/collapse state.
func ChildPath(parent, name string, index int) string {
	seg := name + ":" + strconv.Itoa(index)
	if parent == "" {
		return seg
	}
	return parent + "/" + seg
}
