package reconcile

import (
	"fmt"
	"sort"
	"strings"
)

// breakCycles finds cycles in the parent map with a visited-set walk,
// reports each cycle exactly once, and removes one edge per cycle from the
// traversal map so chain-walking queries cannot loop. The removed edge is
// the one leaving the lexicographically smallest cycle member, which makes
// the break deterministic. The matching raw relation is marked Cyclic but
// retained.
func breakCycles(m *UnifiedModel) {
	for _, cycle := range findCycles(m.Parents) {
		smallest := cycle[0]
		delete(m.Parents, smallest)
		for i := range m.Relations {
			if m.Relations[i].ChildKey == smallest && m.Relations[i].ParentKey == parentInCycle(cycle, smallest) {
				m.Relations[i].Cyclic = true
			}
		}
		m.addInconsistency(InconsistencyCyclicRelation, smallest,
			fmt.Sprintf("parent cycle %s", formatCycle(cycle)))
	}
}

// findCycles walks every chain once using three-state coloring and returns
// each cycle as its member keys, rotated to start at the smallest member.
func findCycles(parents map[string]string) [][]string {
	const (
		unvisited = 0
		inChain   = 1
		done      = 2
	)
	state := make(map[string]int, len(parents))

	keys := make([]string, 0, len(parents))
	for key := range parents {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var cycles [][]string
	for _, start := range keys {
		if state[start] != unvisited {
			continue
		}

		var chain []string
		node := start
		for {
			state[node] = inChain
			chain = append(chain, node)

			next, ok := parents[node]
			if !ok || state[next] == done {
				break
			}
			if state[next] == inChain {
				cycles = append(cycles, rotateToSmallest(chain[indexOf(chain, next):]))
				break
			}
			node = next
		}
		for _, visited := range chain {
			state[visited] = done
		}
	}
	return cycles
}

// parentInCycle returns the cycle member that child points at.
func parentInCycle(cycle []string, child string) string {
	for i, member := range cycle {
		if member == child {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return ""
}

func rotateToSmallest(cycle []string) []string {
	smallest := 0
	for i, key := range cycle {
		if key < cycle[smallest] {
			smallest = i
		}
	}
	rotated := make([]string, 0, len(cycle))
	rotated = append(rotated, cycle[smallest:]...)
	rotated = append(rotated, cycle[:smallest]...)
	return rotated
}

func indexOf(chain []string, key string) int {
	for i, member := range chain {
		if member == key {
			return i
		}
	}
	return 0
}

func formatCycle(cycle []string) string {
	return strings.Join(append(append([]string{}, cycle...), cycle[0]), " -> ")
}
