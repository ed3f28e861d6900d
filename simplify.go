package symgql

// simplify.go provides the response side of the library: collapsing the
// edges/node pagination idiom in received data

import (
	"github.com/symgql/symgql/internal/simplify"
)

// SimplifyEdges returns tree with every pagination wrapper - a key whose
// value is a single-entry {"edges": [...]} object of {"node": ...} entries -
// replaced by a plain ordered list of the node contents.  The tree is a
// decoded response: jsonmap.Ordered objects (order preserving),
// map[string]interface{} objects, []interface{} lists, and scalars.
// Scalars and anything that is not a wrapper are returned unchanged, so
// applying SimplifyEdges twice gives the same result as applying it once.
func SimplifyEdges(tree interface{}) interface{} {
	return simplify.Edges(tree)
}

// SimplifyJSON decodes a raw response body (a JSON object), simplifies it
// with SimplifyEdges, and re-encodes it preserving field order.
func SimplifyJSON(data []byte) ([]byte, error) {
	return simplify.JSON(data)
}
