package symgql

// types.go re-exports the graph value types from the internal encoder

import (
	"github.com/symgql/symgql/internal/encoder"
)

type (
	// Token is a bare identifier or enum value, rendered without quotes.
	Token = encoder.Token
	// String is a string literal - quoted as an argument value, bare as an
	// object identifier.
	String = encoder.String
	// Var is a reference to an operation variable, rendered as $name.
	Var = encoder.Var
	// List is an ordered compound: a graph node, or the nested input object
	// argument form.
	List = encoder.List
	// Arg is one key:value pair in an argument list or input object.
	Arg = encoder.Arg
	// Param declares one operation variable ($name:Type! = default).
	Param = encoder.Param
	// SubQuery embeds a whole graph node as an argument value.
	SubQuery = encoder.SubQuery
	// Keyword tags out-of-band metadata (name/parameters/arguments) in a
	// graph node's List.
	Keyword = encoder.Keyword
)

// Metadata tags that may be interleaved in a graph node's List.  Each tag
// is followed by its value and is extracted before the object identifier
// and child fields are determined, so position among the fields does not
// matter.
const (
	OpName    = encoder.OpName
	OpParams  = encoder.OpParams
	Arguments = encoder.Arguments
)
