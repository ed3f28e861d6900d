// Package simplify collapses the edges/node pagination idiom found in
// GraphQL response trees.  A collection returned as
//
//	"repos": {"edges": [{"node": {...}}, {"node": {...}}]}
//
// becomes a plain ordered list of the node contents:
//
//	"repos": [{...}, {...}]
//
// The transform is purely structural and idempotent; everything that is not
// a pagination wrapper passes through unchanged.
package simplify

// simplify.go walks a decoded response tree rewriting pagination wrappers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/dolmen-go/jsonmap"
)

// Response objects are decoded into jsonmap.Ordered (a map plus a slice
// remembering insertion order) so that field order survives the rewrite.
// Plain map[string]interface{} objects are also handled for callers that
// decode with encoding/json directly, though those lose field order.

// Edges returns tree with every pagination wrapper replaced by the ordered
// list of its (recursively simplified) node values.  Scalars, and any
// structure containing no wrapper, are returned unchanged.
func Edges(tree interface{}) interface{} {
	switch v := tree.(type) {
	case jsonmap.Ordered:
		out := jsonmap.Ordered{
			Data:  make(map[string]interface{}, len(v.Data)),
			Order: append([]string(nil), v.Order...),
		}
		for _, key := range v.Order {
			out.Data[key] = simplifyValue(v.Data[key])
		}
		// Keys present in Data but not listed in Order still belong to the
		// object (jsonmap marshals them after the ordered ones, sorted);
		// carry them the same way rather than dropping them.
		if len(out.Data) < len(v.Data) {
			extra := make([]string, 0, len(v.Data)-len(out.Data))
			for key := range v.Data {
				if _, done := out.Data[key]; !done {
					extra = append(extra, key)
				}
			}
			sort.Strings(extra)
			for _, key := range extra {
				out.Order = append(out.Order, key)
				out.Data[key] = simplifyValue(v.Data[key])
			}
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, value := range v {
			out[key] = simplifyValue(value)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = Edges(e)
		}
		return out
	}
	return tree // scalar (or nil) - nothing to do
}

// simplifyValue handles the value side of one key/value pair: if the value
// is a single-entry container tagged "edges" the whole wrapper collapses to
// the list of node values, otherwise the value is simplified as usual.
func simplifyValue(value interface{}) interface{} {
	if edges, ok := edgeList(value); ok {
		return collapse(edges)
	}
	return Edges(value)
}

// edgeList reports whether v is a pagination wrapper body: a container
// whose single entry is "edges" holding a list.
func edgeList(v interface{}) ([]interface{}, bool) {
	switch m := v.(type) {
	case jsonmap.Ordered:
		// Data can hold keys beyond those listed in Order, so both must
		// agree that "edges" is the sole entry.
		if len(m.Data) == 1 && len(m.Order) == 1 && m.Order[0] == "edges" {
			list, ok := m.Data["edges"].([]interface{})
			return list, ok
		}
	case map[string]interface{}:
		if len(m) == 1 {
			list, ok := m["edges"].([]interface{})
			return list, ok
		}
	}
	return nil, false
}

// collapse replaces each edge with the simplified value of its "node"
// entry, preserving edge order.  An edge without a node entry yields nil,
// matching the lenient lookup of the original idiom.
func collapse(edges []interface{}) []interface{} {
	out := make([]interface{}, len(edges))
	for i, edge := range edges {
		out[i] = Edges(nodeOf(edge))
	}
	return out
}

func nodeOf(edge interface{}) interface{} {
	switch m := edge.(type) {
	case jsonmap.Ordered:
		return m.Data["node"]
	case map[string]interface{}:
		return m["node"]
	}
	return nil
}

// JSON decodes a raw response body, simplifies it, and re-encodes it.  The
// body must be a JSON object; field order is preserved end to end, at
// every nesting level.
func JSON(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber() // keep numeric literals exactly as received
	tree, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w decoding response body", err)
	}
	if _, ok := tree.(jsonmap.Ordered); !ok {
		return nil, fmt.Errorf("response body must be a JSON object, not %T", tree)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after response body")
	}
	out, err := json.Marshal(Edges(tree))
	if err != nil {
		return nil, fmt.Errorf("%w re-encoding simplified response", err)
	}
	return out, nil
}

// decodeValue reads one JSON value from dec, building a jsonmap.Ordered
// for every object so that key order survives at all nesting levels.
// (jsonmap's own UnmarshalJSON only keeps order for the outermost object -
// nested objects come back as unordered maps - so objects are assembled
// here token by token instead.)
func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil // string, number, bool, or null
	}
	switch delim {
	case '{':
		o := jsonmap.Ordered{
			Data:  make(map[string]interface{}),
			Order: []string{},
		}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v is not a string", keyTok)
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			if _, seen := o.Data[key]; !seen {
				o.Order = append(o.Order, key)
			}
			o.Data[key] = value
		}
		_, err := dec.Token() // consume the closing brace
		return o, err
	case '[':
		list := []interface{}{}
		for dec.More() {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		_, err := dec.Token() // consume the closing bracket
		return list, err
	}
	return nil, fmt.Errorf("unexpected %q in response body", delim.String())
}
