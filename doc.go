// Package symgql builds GraphQL query text from symbolic graph values and
// simplifies the responses that come back.  (SYMGQL might be an acronym for
// SYMbolic Graph Query Language.)

// A graph value is an ordinary Go value tree: a Token names a bare field,
// and a List holds an object identifier followed by its child fields, with
// optional metadata (operation name, operation parameters, field arguments)
// tagged inline by Keywords.  Encode walks the tree and emits one compact
// query string:

//	s, err := symgql.Query(symgql.List{
//		symgql.List{
//			symgql.Arguments, symgql.List{symgql.Arg{Name: "login", Value: symgql.String("octocat")}},
//			symgql.Token("user"),
//			symgql.Token("name"),
//		},
//	})
//	// s == `query{user(login:"octocat"){name}}`

// The response side is independent of encoding: SimplifyEdges collapses the
// common pagination idiom, where a collection is wrapped in "edges" entries
// each holding a "node", into a plain list of nodes:

//	{"repos": {"edges": [{"node": {"name": "a"}}, {"node": {"name": "b"}}]}}

// becomes

//	{"repos": [{"name": "a"}, {"name": "b"}]}

// Everything is a pure, synchronous transform over in-memory values: no
// transport, no shared state, nothing to initialize.  Concurrent use needs
// no coordination.

// See the README.md file for more details on using the package.

package symgql

// TODO:
// emit the alias form (name:field) - the alias half of an identifier pair
//   is currently dropped to stay compatible with existing consumers
// escape embedded quotes in string literals - currently emitted verbatim,
//   so changing it affects wire compatibility for existing consumers
