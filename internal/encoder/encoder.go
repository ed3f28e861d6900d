package encoder

// encoder.go assembles the query text for one graph node (and, recursively,
// its child fields)

import (
	"fmt"
	"strings"
)

// metadata holds the out-of-band parts of a graph node after extraction.
// A nil field means the corresponding tag was not supplied.
type metadata struct {
	name   interface{} // operation name (from OpName)
	params interface{} // operation variable declarations (from OpParams)
	args   interface{} // field arguments (from Arguments)
}

// extract splits a graph value into its metadata and its positional
// elements (object identifier plus child fields).  Metadata pairs may be
// interleaved at arbitrary points in the list; the relative order of the
// remaining positional elements is preserved.  A value that is not a List
// yields empty metadata and a single positional element.
func extract(g interface{}) (metadata, []interface{}) {
	list, ok := g.(List)
	if !ok {
		return metadata{}, []interface{}{g}
	}
	var md metadata
	graph := make([]interface{}, 0, len(list))
	for i := 0; i < len(list); i++ {
		kw, ok := list[i].(Keyword)
		if !ok {
			graph = append(graph, list[i])
			continue
		}
		var value interface{}
		if i+1 < len(list) {
			i++
			value = list[i]
		}
		switch kw {
		case OpName:
			md.name = value
		case OpParams:
			md.params = value
		case Arguments:
			md.args = value
		}
		// unrecognized keywords (and their values) are dropped
	}
	return md, graph
}

// Encode returns the GraphQL text for the graph value g.  The segments of a
// node are always emitted in the same order - object identifier, operation
// name, arguments, operation parameters, child fields - with absent
// segments omitted entirely.  An error is returned if g (or any value
// inside it) has no valid textual form, which indicates a malformed graph.
func Encode(g interface{}) (string, error) {
	md, graph := extract(g)
	if len(graph) == 0 {
		return "", fmt.Errorf("graph %v has no object identifier", g)
	}
	object, fields := graph[0], graph[1:]

	var b strings.Builder
	s, err := encodeObject(object)
	if err != nil {
		return "", err
	}
	b.WriteString(s)

	if md.name != nil {
		// The operation name is always emitted double-quoted, even when it
		// is a bare token.
		name, err := textOf(md.name)
		if err != nil {
			return "", fmt.Errorf("%w encoding operation name", err)
		}
		b.WriteString(` "`)
		b.WriteString(name)
		b.WriteByte('"')
	}

	if md.args != nil {
		args, err := asArgs(md.args)
		if err != nil {
			return "", fmt.Errorf("%w encoding arguments of %q", err, s)
		}
		b.WriteByte('(')
		for i, a := range args {
			if i > 0 {
				b.WriteByte(',')
			}
			enc, err := encodeArgument(a)
			if err != nil {
				return "", fmt.Errorf("%w encoding arguments of %q", err, s)
			}
			b.WriteString(enc)
		}
		b.WriteByte(')')
	}

	if md.params != nil {
		params, err := asParams(md.params)
		if err != nil {
			return "", fmt.Errorf("%w encoding parameters of %q", err, s)
		}
		b.WriteByte('(')
		for i, p := range params {
			if i > 0 {
				b.WriteByte(',')
			}
			enc, err := encodeParam(p)
			if err != nil {
				return "", fmt.Errorf("%w encoding parameters of %q", err, s)
			}
			b.WriteString(enc)
		}
		b.WriteByte(')')
	}

	if len(fields) > 0 {
		b.WriteByte('{')
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(' ')
			}
			enc, err := Encode(f)
			if err != nil {
				return "", err
			}
			b.WriteString(enc)
		}
		b.WriteByte('}')
	}
	return b.String(), nil
}

// asArgs normalizes the value of the Arguments tag to a flat []Arg.
// Accepted forms are []Arg, a single Arg, or a List of Arg elements.
func asArgs(v interface{}) ([]Arg, error) {
	switch args := v.(type) {
	case []Arg:
		return args, nil
	case Arg:
		return []Arg{args}, nil
	case List:
		out := make([]Arg, len(args))
		for i, e := range args {
			a, ok := e.(Arg)
			if !ok {
				return nil, fmt.Errorf("argument %d is %T, not an Arg pair", i, e)
			}
			out[i] = a
		}
		return out, nil
	}
	return nil, fmt.Errorf("cannot use %T as an argument list", v)
}
