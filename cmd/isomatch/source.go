// SPDX-License-Identifier: MIT
package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/isomatch/builder"
	"github.com/katalvlaran/isomatch/core"
	"github.com/katalvlaran/isomatch/graphfmt"
)

const (
	genPrefix    = "gen:"
	inlinePrefix = "inline:"
)

// loadSource resolves one -pattern/-target argument. directed applies to
// gen: sources only; graphfmt text carries its own directedness.
func loadSource(src string, directed bool) (*core.Graph, error) {
	switch {
	case strings.HasPrefix(src, genPrefix):
		return builder.Parse(strings.TrimPrefix(src, genPrefix), core.WithDirected(directed))
	case strings.HasPrefix(src, inlinePrefix):
		return graphfmt.Parse(strings.TrimPrefix(src, inlinePrefix))
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return nil, errors.Wrap(err, "read graph file")
	}
	g, err := graphfmt.Parse(string(data))

	return g, errors.Wrapf(err, "%s", src)
}
