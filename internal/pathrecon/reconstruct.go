// Package pathrecon materializes explicit node-index sequences from
// an APSP next-hop matrix, with an optional guided mode that falls
// back to a secondary next-hop matrix when the primary is absent.
package pathrecon

import (
	"fmt"

	"github.com/okdaichi/tilfa/internal/apsp"
)

// InvariantViolation is raised when a next-hop walk fails to
// terminate within n steps — an internal assertion that should never
// trigger if the APSP engine and next-hop builders obey their
// contracts.
type InvariantViolation struct {
	From, To int
	Steps    int
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("next-hop walk from %d toward %d did not terminate within %d steps", e.From, e.To, e.Steps)
}

// Primary walks res.Next from i toward j, emitting every node
// visited including both endpoints. It returns an empty slice if a
// NoHop sentinel is encountered before reaching j (the pair is
// unreachable).
func Primary(res apsp.Result, i, j int) []int {
	if i == j {
		return []int{i}
	}
	path := []int{i}
	cur := i
	for steps := 0; steps <= res.N; steps++ {
		next := res.Next[cur][j]
		if next == apsp.NoHop {
			return nil
		}
		path = append(path, next)
		cur = next
		if cur == j {
			return path
		}
	}
	panic(&InvariantViolation{From: i, To: j, Steps: res.N + 1})
}

// Guided walks primary.Next from i toward j, falling back to
// secondary.Next at each step where the primary entry is absent,
// provided the secondary hop does not immediately backtrack to the
// previously visited node (forbidding the degenerate 2-cycle that
// secondary tables can form at detour endpoints). Returns an empty
// slice if no hop is available at some step.
func Guided(primary apsp.Result, secondary [][]int, i, j int) []int {
	if i == j {
		return []int{i}
	}
	path := []int{i}
	cur := i
	prev := -1
	for steps := 0; steps <= primary.N; steps++ {
		next := primary.Next[cur][j]
		if next == apsp.NoHop {
			if secondary != nil {
				if alt := secondary[cur][j]; alt != apsp.NoHop && alt != prev {
					next = alt
				}
			}
		}
		if next == apsp.NoHop {
			return nil
		}
		path = append(path, next)
		prev = cur
		cur = next
		if cur == j {
			return path
		}
	}
	panic(&InvariantViolation{From: i, To: j, Steps: primary.N + 1})
}
