package symgql

// check.go provides a syntax check over query text

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// CheckSyntax parses query text as a GraphQL executable document and
// returns the first syntax error, or nil if the document is well formed.
// It is a purely syntactic check - no schema validation is performed.
// Note that a named operation built with Query/Mutation emits its name in
// double quotes, which a standard GraphQL parser will reject; CheckSyntax
// is useful for anonymous operations and for query text from other sources.
func CheckSyntax(query string) error {
	_, err := parser.ParseQuery(&ast.Source{Name: "query", Input: query})
	if err != nil {
		return err
	}
	return nil
}
