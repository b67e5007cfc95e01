/* permutations.go
 * Contains the restartable lexicographic permutation generator used by the rematch-avoidance search
 * Authors: Zachary Bower
 */

package seeding

// permutationGenerator enumerates every permutation of 0..n-1 in lexicographic
// order: the identity comes first and later (worse-ranked) indexes are perturbed
// before earlier ones, so the best seeds stay untouched for as long as possible.
// The generator keeps its position between Next calls, so a search can resume
// from where it stopped
type permutationGenerator struct {
	current []int
	started bool
	done    bool
}

func newPermutationGenerator(n int) *permutationGenerator {
	current := make([]int, n)
	for i := range current {
		current[i] = i
	}
	return &permutationGenerator{current: current}
}

// Next returns the next permutation and true, or nil and false once the space
// is exhausted. The returned slice is a copy and safe to keep
func (g *permutationGenerator) Next() ([]int, bool) {
	if g.done {
		return nil, false
	}
	if g.started {
		if !nextPermutation(g.current) {
			g.done = true
			return nil, false
		}
	}
	g.started = true
	out := make([]int, len(g.current))
	copy(out, g.current)
	return out, true
}

// nextPermutation advances p to its lexicographic successor in place, returning
// false when p is already the final permutation
func nextPermutation(p []int) bool {
	// Find the rightmost index whose successor is larger
	pivot := len(p) - 2
	for pivot >= 0 && p[pivot] >= p[pivot+1] {
		pivot--
	}
	if pivot < 0 {
		return false
	}

	// Swap it with the rightmost element larger than it, then reverse the tail
	swap := len(p) - 1
	for p[swap] <= p[pivot] {
		swap--
	}
	p[pivot], p[swap] = p[swap], p[pivot]
	for left, right := pivot+1, len(p)-1; left < right; left, right = left+1, right-1 {
		p[left], p[right] = p[right], p[left]
	}
	return true
}
