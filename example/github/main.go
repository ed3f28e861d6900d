// This example builds the kind of query you would send to the GitHub
// GraphQL API and simplifies the kind of response it sends back.
package main

import (
	"fmt"
	"log"

	"github.com/symgql/symgql"
)

// response is a canned reply in GitHub's pagination style: the repository
// list comes back wrapped in edges/node pairs.
const response = `{
  "data": {
    "viewer": {
      "login": "octocat",
      "repositories": {"edges": [
        {"node": {"name": "hello-world", "stargazerCount": 80}},
        {"node": {"name": "spoon-knife", "stargazerCount": 12}}
      ]}
    }
  }
}`

func main() {
	query, err := symgql.Query(
		symgql.List{
			symgql.String("Repos"),
			symgql.List{symgql.List{symgql.Token("count"), symgql.Token("Int"), nil, 10}},
		},
		symgql.List{
			symgql.List{
				symgql.Token("viewer"),
				symgql.Token("login"),
				symgql.List{
					symgql.Arguments, symgql.List{symgql.Arg{Name: "first", Value: symgql.Var("count")}},
					symgql.Token("repositories"),
					symgql.List{symgql.Token("nodes"), symgql.Token("name"), symgql.Token("stargazerCount")},
				},
			},
		},
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("query:", query)

	simplified, err := symgql.SimplifyJSON([]byte(response))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("simplified response:", string(simplified))
}
