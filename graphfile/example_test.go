package graphfile_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graphfile"
)

// ExampleDecodeYAML decodes an undirected graph and queries it.
func ExampleDecodeYAML() {
	src := `
directed: false
edges:
  - {from: home, to: park, weight: 1.5}
  - {from: park, to: shop, weight: 0.5}
  - {from: home, to: shop, weight: 2.5}
`
	b, err := graphfile.DecodeYAML(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	table, _ := dijkstra.ShortestPaths(b.Graph(), "shop")
	path, _ := table.PathTo("home")
	fmt.Println(path)
	// Output: [shop park home]
}
