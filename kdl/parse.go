package kdl

import (
	"maps"
	"math/big"
	"slices"
	"strconv"
	"strings"

	kdlgo "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	"github.com/kdl-tools/kdlview/ir"
)

// Parse turns raw KDL text into a document. The error, if any, is the
// parser's own descriptive message.
func Parse(text string) (*ir.Document, error) {
	src, err := kdlgo.Parse(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	return fromDocument(src), nil
}

func fromDocument(src *document.Document) *ir.Document {
	res := &ir.Document{}
	for _, n := range src.Nodes {
		res.Nodes = append(res.Nodes, fromNode(n))
	}
	return res
}

func fromNode(src *document.Node) *ir.Node {
	// Name.String() returns the KDL source form, quotes included for
	// quoted names; the identifier itself is the resolved value.
	res := &ir.Node{Name: src.Name.ValueString()}
	for _, a := range src.Arguments {
		res.Entries = append(res.Entries, ir.Argument(fromValue(a.ResolvedValue())))
	}
	for _, key := range slices.Sorted(maps.Keys(src.Properties)) {
		res.Entries = append(res.Entries,
			ir.Property(key, fromValue(src.Properties[key].ResolvedValue())))
	}
	for _, c := range src.Children {
		res.Children = append(res.Children, fromNode(c))
	}
	return res
}

func fromValue(v any) *ir.Value {
	switch x := v.(type) {
	case nil:
		return ir.Null()
	case bool:
		return ir.FromBool(x)
	case string:
		return ir.FromString(x)
	case int64:
		return ir.FromInt(x)
	case int:
		return ir.FromInt(int64(x))
	case uint64:
		if x <= 1<<63-1 {
			return ir.FromInt(int64(x))
		}
		return ir.FromNumber(strconv.FormatUint(x, 10))
	case float64:
		return ir.FromFloat(x)
	case *big.Int:
		return ir.FromNumber(x.String())
	case *big.Float:
		return ir.FromNumber(x.String())
	default:
		return ir.FromExtension(v)
	}
}
