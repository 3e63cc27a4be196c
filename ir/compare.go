package ir

import (
	"cmp"
	"encoding/json"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ExtensionType:
		return compareExtensions(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Extension
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ExtensionType:
		return 4
	}
	return 100
}

func compareNumbers(a, b *Value) int {
	// Sub-rank: Int64 < Float64 < String
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}
	if a.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if a.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return strings.Compare(a.Number, b.Number)
}

func numberSubRank(v *Value) int {
	if v.Int64 != nil {
		return 0
	}
	if v.Float64 != nil {
		return 1
	}
	return 2
}

// Extension payloads have no natural order; their JSON serializations are
// compared as strings, which is stable for structurally equal values.
func compareExtensions(a, b *Value) int {
	da, errA := json.Marshal(a.Extension)
	db, errB := json.Marshal(b.Extension)
	if errA != nil || errB != nil {
		if errA == nil {
			return -1
		}
		if errB == nil {
			return 1
		}
		return 0
	}
	return strings.Compare(string(da), string(db))
}

// CompareEntries orders entries by kind (arguments before properties), then
// key, then value.
func CompareEntries(a, b Entry) int {
	if a.Kind != b.Kind {
		return cmp.Compare(int(a.Kind), int(b.Kind))
	}
	if c := strings.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	return Compare(a.Value, b.Value)
}

// CompareNodes orders nodes by name, then entries, then children.
func CompareNodes(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	lenA, lenB := len(a.Entries), len(b.Entries)
	for i := range min(lenA, lenB) {
		if c := CompareEntries(a.Entries[i], b.Entries[i]); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(lenA, lenB); c != 0 {
		return c
	}
	lenA, lenB = len(a.Children), len(b.Children)
	for i := range min(lenA, lenB) {
		if c := CompareNodes(a.Children[i], b.Children[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// CompareDocuments orders documents by their node sequences. A nil document
// equals an empty one.
func CompareDocuments(a, b *Document) int {
	var nodesA, nodesB []*Node
	if a != nil {
		nodesA = a.Nodes
	}
	if b != nil {
		nodesB = b.Nodes
	}
	lenA, lenB := len(nodesA), len(nodesB)
	for i := range min(lenA, lenB) {
		if c := CompareNodes(nodesA[i], nodesB[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
