package symgql

// symgql.go provides the entry points for encoding graphs as query text

import (
	"fmt"

	"github.com/symgql/symgql/internal/encoder"
)

// Encode returns the GraphQL text for a graph value.  A graph value is
// either an atom (Token, String, or number) naming a bare field, or a List
// holding the object identifier, optional Keyword metadata pairs, and any
// child fields.  Child field order is preserved in the output; the segments
// of each node are always emitted as name, arguments, parameters, fields.
// An error means the graph is malformed (a value with no textual form) -
// there is nothing to recover at run time, fix the graph construction.
func Encode(graph interface{}) (string, error) {
	return encoder.Encode(graph)
}

// MustEncode is the same as Encode but panics on error.
func MustEncode(graph interface{}) string {
	s, err := encoder.Encode(graph)
	if err != nil {
		panic(err)
	}
	return s
}

// Query builds the text of a query operation.  It accepts exactly three
// call shapes:
//
//	Query(graph)                          an anonymous query
//	Query(List{name}, graph)              a named query
//	Query(List{name, params}, graph)      a named query with variables
//
// where graph is a List of top level fields.  Any other shape returns an
// error immediately.
func Query(args ...interface{}) (string, error) {
	return operation(Token("query"), args)
}

// Mutation builds the text of a mutation operation.  It accepts the same
// three call shapes as Query.
func Mutation(args ...interface{}) (string, error) {
	return operation(Token("mutation"), args)
}

// operation wraps graph in a node headed by the operation kind, attaching
// the name and parameters (if given) as metadata, and encodes it.
func operation(kind Token, args []interface{}) (string, error) {
	var head List
	var graph interface{}
	switch len(args) {
	case 1:
		graph = args[0]
	case 2:
		h, ok := args[0].(List)
		if !ok || len(h) < 1 || len(h) > 2 {
			return "", fmt.Errorf("%s: first argument must be List{name} or List{name, parameters}", kind)
		}
		head = h
		graph = args[1]
	default:
		return "", fmt.Errorf("%s: accepts (graph), (List{name}, graph) or (List{name, parameters}, graph)", kind)
	}

	fields, ok := graph.(List)
	if !ok {
		return "", fmt.Errorf("%s: graph must be a List of fields, not %T", kind, graph)
	}

	node := List{kind}
	if len(head) > 0 {
		node = append(node, OpName, head[0])
	}
	if len(head) > 1 {
		node = append(node, OpParams, head[1])
	}
	node = append(node, fields...)
	return encoder.Encode(node)
}
