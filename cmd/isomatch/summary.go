// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/isomatch/graphfmt"
	"github.com/katalvlaran/isomatch/vf2"
)

// summary groups mappings by the target vertex set they cover. Keys are the
// sorted ID slices themselves, so IDs containing separators stay distinct.
type summary struct {
	images *redblacktree.Tree
	total  int
}

func newSummary() *summary {
	return &summary{images: redblacktree.NewWith(func(a, b interface{}) int {
		return compareIDSets(a.([]string), b.([]string))
	})}
}

// compareIDSets orders sorted ID slices element by element, shorter first on
// a common prefix.
func compareIDSets(a, b []string) int {
	for i := range a {
		if i == len(b) {
			return 1
		}
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	if len(a) < len(b) {
		return -1
	}

	return 0
}

func (s *summary) add(mp *vf2.Mapping) {
	key := mp.TargetVertices()
	n := 0
	if v, found := s.images.Get(key); found {
		n = v.(int)
	}
	s.images.Put(key, n+1)
	s.total++
}

func (s *summary) write(w io.Writer) {
	fmt.Fprintf(w, "# %d mapping(s) over %d target vertex set(s)\n", s.total, s.images.Size())
	it := s.images.Iterator()
	for it.Next() {
		ids := it.Key().([]string)
		quoted := make([]string, len(ids))
		for i, id := range ids {
			quoted[i] = graphfmt.QuoteID(id)
		}
		fmt.Fprintf(w, "#   {%s} x%d\n", strings.Join(quoted, ", "), it.Value())
	}
}
