// SPDX-License-Identifier: MIT
package vf2_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/isomatch/core"
	"github.com/katalvlaran/isomatch/vf2"
)

func triangle(ids ...string) *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge(ids[0], ids[1], 0)
	_, _ = g.AddEdge(ids[1], ids[2], 0)
	_, _ = g.AddEdge(ids[2], ids[0], 0)

	return g
}

// ExampleNewMatcher finds a triangle inside a triangle plus an isolated vertex.
func ExampleNewMatcher() {
	pattern := triangle("a", "b", "c")
	target := triangle("x", "y", "z")
	_ = target.AddVertex("w")

	m, err := vf2.NewMatcher(pattern, target, vf2.ModeSubgraph)
	if err != nil {
		fmt.Println(err)
		return
	}
	for mp := range m.All() {
		fmt.Println(mp)
	}

	exact, _ := vf2.NewMatcher(pattern, target, vf2.ModeIsomorphism)
	fmt.Println("exact:", vf2.Count(exact), errors.Is(exact.Err(), vf2.ErrSizeMismatch))
	// Output:
	// a=x b=y c=z
	// a=x b=z c=y
	// a=y b=x c=z
	// a=y b=z c=x
	// a=z b=x c=y
	// a=z b=y c=x
	// exact: 0 true
}

// ExampleMatcher_Next pulls mappings one at a time.
func ExampleMatcher_Next() {
	edge := core.NewGraph()
	_, _ = edge.AddEdge("u", "v", 0)
	path := core.NewGraph()
	_, _ = path.AddEdge("a", "b", 0)
	_, _ = path.AddEdge("b", "c", 0)

	m, _ := vf2.NewMatcher(edge, path, vf2.ModeSubgraph)
	first, _ := m.Next()
	fmt.Println(first, m.Phase())
	img, _ := first.ImageOf("v")
	pre, _ := first.PreimageOf("a")
	fmt.Println(img, pre)
	fmt.Println(vf2.Count(m), m.Phase())
	// Output:
	// u=a v=b yielded
	// b u
	// 3 exhausted
}

func ExampleIsomorphic() {
	ok, err := vf2.Isomorphic(triangle("a", "b", "c"), triangle("1", "2", "3"))
	fmt.Println(ok, err)
	// Output: true <nil>
}
