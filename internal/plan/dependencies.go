package plan

import (
	"fmt"
	"slices"
	"strings"
)

// orderResources returns the resources so that every nested format is
// declared before its users. Declaration order is kept where dependencies
// allow it.
func orderResources(resources []ResourcePlan) ([]ResourcePlan, error) {
	index := make(map[string]int, len(resources))
	for i, rp := range resources {
		index[rp.TypeName] = i
	}

	order, cycle := topoSort(len(resources), func(i int) []int {
		var deps []int
		for _, name := range resources[i].DependsOn() {
			if j, ok := index[name]; ok {
				deps = append(deps, j)
			}
		}

		return deps
	})

	if cycle != nil {
		names := make([]string, len(cycle))
		for i, j := range cycle {
			names[i] = resources[j].TypeName
		}

		return nil, fmt.Errorf("formats refer to each other in a cycle: %s", strings.Join(names, ", "))
	}

	out := make([]ResourcePlan, len(order))
	for i, j := range order {
		out[i] = resources[j]
	}

	return out, nil
}

// topoSort returns node indices so that depsFn(i) precede i. When several
// nodes are ready the smallest index goes first. On a cycle the order is nil
// and the second result lists, ascending, the nodes that could not be placed.
func topoSort(n int, depsFn func(i int) []int) ([]int, []int) {
	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int
	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)
	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]
		order = append(order, i)

		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k, _ := slices.BinarySearch(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	if len(order) == n {
		return order, nil
	}

	var stuck []int
	for i := range n {
		if indeg[i] > 0 {
			stuck = append(stuck, i)
		}
	}

	return nil, stuck
}
