// SPDX-License-Identifier: MIT
// File: parse.go
// Role: Parse short shape descriptions ("cycle:5", "grid:2x3") into graphs.
//
// Grammar (case-insensitive shape name):
//
//	cycle:N | path:N | star:N | wheel:N | complete:N
//	bipartite:A,B | grid:RxC | random:N,P[,SEED]
//
// random without SEED uses seed 1 so repeated CLI runs agree.

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/isomatch/core"
)

const defaultParseSeed = int64(1)

// Parse builds the graph described by spec. gopts configure the resulting
// core.Graph (e.g. core.WithDirected(true)); vertex IDs use DefaultIDFn.
//
// Errors:
//   - ErrBadSpec (wrapped): unknown shape, wrong argument count, bad number.
//   - Constructor sentinels (ErrTooFewVertices, ErrInvalidProbability).
func Parse(spec string, gopts ...core.GraphOption) (*core.Graph, error) {
	name, args, ok := strings.Cut(strings.TrimSpace(spec), ":")
	if !ok {
		return nil, fmt.Errorf("Parse(%q): missing ':': %w", spec, ErrBadSpec)
	}
	name = strings.ToLower(name)

	c, bopts, err := shape(name, args)
	if err != nil {
		return nil, fmt.Errorf("Parse(%q): %w", spec, err)
	}

	return BuildGraph(gopts, bopts, c)
}

func shape(name, args string) (Constructor, []BuilderOption, error) {
	switch name {
	case "cycle", "path", "star", "wheel", "complete":
		n, err := ints(args, 1, ",")
		if err != nil {
			return nil, nil, err
		}
		ctor := map[string]func(int) Constructor{
			"cycle": Cycle, "path": Path, "star": Star, "wheel": Wheel, "complete": Complete,
		}[name]

		return ctor(n[0]), nil, nil
	case "bipartite":
		n, err := ints(args, 2, ",")
		if err != nil {
			return nil, nil, err
		}

		return CompleteBipartite(n[0], n[1]), nil, nil
	case "grid":
		n, err := ints(args, 2, "x")
		if err != nil {
			return nil, nil, err
		}

		return Grid(n[0], n[1]), nil, nil
	case "random":
		parts := strings.Split(args, ",")
		if len(parts) != 2 && len(parts) != 3 {
			return nil, nil, fmt.Errorf("random wants N,P[,SEED]: %w", ErrBadSpec)
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, nil, fmt.Errorf("random N: %v: %w", err, ErrBadSpec)
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("random P: %v: %w", err, ErrBadSpec)
		}
		seed := defaultParseSeed
		if len(parts) == 3 {
			if seed, err = strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64); err != nil {
				return nil, nil, fmt.Errorf("random SEED: %v: %w", err, ErrBadSpec)
			}
		}

		return RandomSparse(n, p), []BuilderOption{WithSeed(seed)}, nil
	}

	return nil, nil, fmt.Errorf("unknown shape %q: %w", name, ErrBadSpec)
}

// ints splits s by sep and expects exactly want integers.
func ints(s string, want int, sep string) ([]int, error) {
	parts := strings.Split(s, sep)
	if len(parts) != want {
		return nil, fmt.Errorf("want %d values separated by %q, got %q: %w", want, sep, s, ErrBadSpec)
	}
	out := make([]int, want)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%q: %v: %w", p, err, ErrBadSpec)
		}
		out[i] = v
	}

	return out, nil
}
