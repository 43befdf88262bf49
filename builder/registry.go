package builder

import (
	"fmt"
	"slices"
	"strings"
)

// topology pairs a constructor with its method name and minimum size.
type topology struct {
	method string
	min    int
	ctor   func(size int) Constructor
}

// registry maps the lower-case topology names accepted on the command line
// and in config files to their constructors.
var registry = map[string]topology{
	"complete":    {MethodComplete, MinCompleteNodes, Complete},
	"ring":        {MethodRing, MinRingNodes, Ring},
	"grid":        {MethodGrid, MinGridDim, Grid},
	"second-ring": {MethodSecondLevelRing, MinSecondLevelRingNodes, SecondLevelRing},
	"star":        {MethodStar, MinStarNodes, Star},
}

// Topologies returns the registered topology names in sorted order.
func Topologies() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// ByName returns the Constructor registered under name (case-insensitive)
// for the given size.
//
// Errors:
//   - ErrUnknownTopology (wrapped) for an unregistered name.
//   - ErrTooFewVertices (wrapped) when size is below the topology minimum.
func ByName(name string, size int) (Constructor, error) {
	top, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTopology, name, strings.Join(Topologies(), ", "))
	}
	if err := validateMin(top.method, size, top.min); err != nil {
		return nil, err
	}

	return top.ctor(size), nil
}
