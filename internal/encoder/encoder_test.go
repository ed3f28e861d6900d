package encoder_test

import (
	"strings"
	"testing"

	"github.com/symgql/symgql/internal/encoder"
)

// encodeData drives TestEncode: each entry is one graph value and the exact
// query text it must produce.
var encodeData = map[string]struct {
	in  interface{}
	exp string
}{
	"TokenAtom":    {encoder.Token("viewer"), "viewer"},
	"StringAtom":   {encoder.String("viewer"), "viewer"}, // bare in object position
	"IntAtom":      {42, "42"},
	"FloatAtom":    {1.5, "1.5"},
	"SoleObject":   {encoder.List{encoder.Token("viewer")}, "viewer"},
	"OneField":     {encoder.List{encoder.Token("viewer"), encoder.Token("login")}, "viewer{login}"},
	"FieldOrder": {
		encoder.List{encoder.Token("viewer"), encoder.Token("login"), encoder.Token("name")},
		"viewer{login name}",
	},
	"NestedFields": {
		encoder.List{
			encoder.Token("viewer"),
			encoder.List{encoder.Token("repos"), encoder.Token("name")},
			encoder.Token("login"),
		},
		"viewer{repos{name} login}",
	},
	"Arguments": {
		encoder.List{
			encoder.Arguments, encoder.List{encoder.Arg{Name: "id", Value: 1}},
			encoder.Token("user"),
			encoder.Token("name"),
		},
		"user(id:1){name}",
	},
	"ArgumentsInterleaved": { // metadata after the object must encode the same
		encoder.List{
			encoder.Token("user"),
			encoder.Arguments, encoder.List{encoder.Arg{Name: "id", Value: 1}},
			encoder.Token("name"),
		},
		"user(id:1){name}",
	},
	"ArgumentsSlice": {
		encoder.List{
			encoder.Arguments, []encoder.Arg{{Name: "id", Value: 1}, {Name: "active", Value: encoder.Token("true")}},
			encoder.Token("user"),
		},
		"user(id:1,active:true)",
	},
	"OpNameString": {
		encoder.List{encoder.OpName, encoder.String("Foo"), encoder.Token("query"), encoder.Token("viewer")},
		`query "Foo"{viewer}`,
	},
	"OpNameToken": { // the name is quoted even when it is a bare token
		encoder.List{encoder.OpName, encoder.Token("Foo"), encoder.Token("query"), encoder.Token("viewer")},
		`query "Foo"{viewer}`,
	},
	"OpParams": {
		encoder.List{
			encoder.Token("query"),
			encoder.OpParams, encoder.List{encoder.List{encoder.Token("id"), encoder.Token("Int")}},
			encoder.Token("viewer"),
		},
		"query($id:Int){viewer}",
	},
	"ParamsNoFields": {
		encoder.List{
			encoder.Token("q"),
			encoder.OpParams, encoder.List{encoder.List{encoder.Token("id"), encoder.Token("Int")}},
		},
		"q($id:Int)",
	},
	"AllSegments": { // fixed order: object, name, arguments, params, fields
		encoder.List{
			encoder.OpName, encoder.String("N"),
			encoder.Arguments, encoder.List{encoder.Arg{Name: "a", Value: 1}},
			encoder.OpParams, encoder.List{encoder.List{encoder.Token("id"), encoder.Token("Int")}},
			encoder.Token("f"),
			encoder.Token("g"),
		},
		`f "N"(a:1)($id:Int){g}`,
	},
	"AliasPairDropped": { // only the primary name of an identifier pair is emitted
		encoder.List{
			encoder.List{encoder.Token("user"), encoder.Token("u")},
			encoder.Token("name"),
		},
		"user{name}",
	},
	"RepeatedTagLastWins": {
		encoder.List{
			encoder.OpName, encoder.String("Old"),
			encoder.OpName, encoder.String("New"),
			encoder.Token("q"),
		},
		`q "New"`,
	},
}

func TestEncode(t *testing.T) {
	for name, data := range encodeData {
		got, err := encoder.Encode(data.in)
		Assertf(t, err == nil, "Error : %20s: expected no error got %v", name, err)
		Assertf(t, got == data.exp, "Result: %20s: expected %q got %q", name, data.exp, got)
	}
}

// encodeErrData holds graphs with no valid textual form: all of them are
// caller bugs and must surface as errors.
var encodeErrData = map[string]interface{}{
	"EmptyList":       encoder.List{},
	"OnlyMetadata":    encoder.List{encoder.OpName, encoder.String("N")},
	"BoolAtom":        true,
	"ObjectIsList":    encoder.List{encoder.List{encoder.Token("a"), encoder.List{encoder.Token("b")}, encoder.Token("c")}},
	"BadArgumentList": encoder.List{encoder.Arguments, 7, encoder.Token("q")},
	"BadArgElement":   encoder.List{encoder.Arguments, encoder.List{7}, encoder.Token("q")},
	"BadParamList":    encoder.List{encoder.OpParams, 7, encoder.Token("q")},
	"BadParamSpec":    encoder.List{encoder.OpParams, encoder.List{encoder.List{encoder.Token("id")}}, encoder.Token("q")},
	"BadFieldValue":   encoder.List{encoder.Token("q"), true},
}

func TestEncodeErrors(t *testing.T) {
	for name, in := range encodeErrData {
		got, err := encoder.Encode(in)
		Assertf(t, err != nil, "Error : %20s: expected an error got %q", name, got)
	}
}

// TestSegmentOrder checks that which metadata tags are supplied only
// toggles segments on and off - it never reorders them.  The object always
// comes first, then the quoted name, the argument list, the parameter list
// and finally the fields block.
func TestSegmentOrder(t *testing.T) {
	name := []interface{}{encoder.OpName, encoder.String("N")}
	args := []interface{}{encoder.Arguments, encoder.List{encoder.Arg{Name: "a", Value: 1}}}
	params := []interface{}{encoder.OpParams, encoder.List{encoder.List{encoder.Token("v"), encoder.Token("Int")}}}

	for mask := 0; mask < 8; mask++ {
		g := encoder.List{}
		// supply the present tags in scrambled order to show order of
		// supply does not matter either
		if mask&4 != 0 {
			g = append(g, params...)
		}
		if mask&1 != 0 {
			g = append(g, name...)
		}
		g = append(g, encoder.Token("obj"))
		if mask&2 != 0 {
			g = append(g, args...)
		}
		g = append(g, encoder.Token("field"))

		got, err := encoder.Encode(g)
		Assertf(t, err == nil, "Error : mask %03b: expected no error got %v", mask, err)

		last := 0 // object is always at the start
		Assertf(t, strings.HasPrefix(got, "obj"), "Object: mask %03b: %q must start with the object", mask, got)
		for _, segment := range []struct {
			on   bool
			text string
		}{
			{mask&1 != 0, ` "N"`},
			{mask&2 != 0, `(a:1)`},
			{mask&4 != 0, `($v:Int)`},
			{true, `{field}`},
		} {
			pos := strings.Index(got, segment.text)
			if !segment.on {
				Assertf(t, pos < 0, "Absent: mask %03b: %q must not contain %q", mask, got, segment.text)
				continue
			}
			Assertf(t, pos > last, "Order : mask %03b: %q must have %q after position %d", mask, got, segment.text, last)
			last = pos
		}
	}
}

func Assertf(t *testing.T, succeeded bool, format string, args ...interface{}) {
	const (
		succeed = "✓" // tick
		failed  = "X"      //"✗" // cross
	)

	t.Helper()
	if !succeeded {
		t.Errorf("%s\t"+format, append([]interface{}{failed}, args...)...)
	} else {
		t.Logf("%s\t"+format, append([]interface{}{succeed}, args...)...)
	}
}
