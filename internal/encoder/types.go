// Package encoder turns symbolic graph values into GraphQL query text.
// A graph value describes one query/mutation field or object, possibly with
// nested fields, and is built from a small closed set of value types (see
// types.go).  Encode walks the graph and emits the textual wire syntax.
package encoder

// types.go declares the value shapes that may appear in a graph

type (
	// Token is a bare identifier or enum value.  It is always rendered as its
	// literal text, without quotes.
	Token string

	// String is a string literal.  As an argument value it is rendered in
	// double quotes; as an object identifier it is rendered bare.
	String string

	// Var is a reference to an operation variable, rendered as $name.
	Var string

	// List is an ordered compound.  As a graph node it holds the object
	// identifier followed by child fields, with Keyword metadata pairs
	// interleaved anywhere among them.  As an argument value it is the
	// nested input object form (an ordered list of Arg pairs).
	List []interface{}

	// Arg is one key:value pair in an argument list or nested input object.
	Arg struct {
		Name  string
		Value interface{}
	}

	// SubQuery embeds a whole graph node as an argument value.  It is
	// rendered by the full encoder, so a sub-query can appear anywhere an
	// argument value can.
	SubQuery List

	// Keyword tags out-of-band metadata within a List.  A Keyword and the
	// element immediately following it form one metadata pair; the pair is
	// removed from the positional elements before the object identifier and
	// child fields are determined.
	Keyword string
)

// Metadata tags recognized by the extractor.  Tags may appear anywhere in a
// List and in any order; each tag should be supplied at most once (if
// repeated the last one wins).
const (
	OpName    Keyword = ":op-name"   // operation name (value rendered as a quoted string)
	OpParams  Keyword = ":op-params" // operation variable declarations
	Arguments Keyword = ":arguments" // field arguments
)

// varMarker is the reserved token that introduces a variable reference in
// the two-element list form, e.g. List{varMarker, Token("id")}.
const varMarker = Token("$")

// Param declares one operation variable: $Name:Type, an optional required
// flag (rendered as a trailing "!") and an optional default value (any
// argument value, rendered after "=").  A nil Default means no default;
// Required and Default are independent.
type Param struct {
	Name     string
	Type     string
	Required bool
	Default  interface{}
}
