/* rematches.go
 * Contains the rematch-avoidance search over ranking permutations
 * Authors: Zachary Bower
 */

package seeding

import (
	"errors"
	"fmt"

	"bracket-engine/api/series"
	"bracket-engine/api/team"
)

// ErrNoRematchFreeSeeding is returned when every permutation of the ordering
// produces at least one rematch pairing. This is a legitimate terminal outcome,
// not a bug; callers can fall back to an alternative policy
var ErrNoRematchFreeSeeding = errors.New("no rematch-free seeding exists")

// SortNoRematches searches for a permutation of the current ordering such that
// no pairing produced by the interpreter matches two teams with any prior
// registered series between them, exhausted or not. If sort criteria are given
// the seeding is sorted with them first, then rematches are eliminated from that
// baseline. Permutations are tried in lexicographic order, so worse-ranked seeds
// are disturbed first and the best seeds keep their rank whenever possible. The
// first rematch-free permutation found replaces the ordering
// Preconditions: Receives a series Container, a pairwise Interpreter and optional sort criteria;
// every slot in the seeding must be filled
// Postconditions: Ordering is replaced with the first rematch-free permutation and this instance
// is returned, or ErrNoRematchFreeSeeding is returned after the whole space is exhausted
func (s *Seeding) SortNoRematches(sc *series.Container, interpret Interpreter, criteria ...Criterion) (*Seeding, error) {
	if len(criteria) > 0 {
		if _, err := s.Sort(criteria...); err != nil {
			return nil, err
		}
	}
	for _, t := range s.order {
		if t == nil {
			return nil, fmt.Errorf("cannot search a seeding with empty slots")
		}
	}

	pairs, err := interpret(len(s.order))
	if err != nil {
		return nil, err
	}

	// Index every prior matchup between teams of this seeding by rank pair in the
	// current ordering, both ways round. Exhaustion is deliberately ignored: a
	// rematch is a rematch whether or not the series was already claimed
	played := make(map[[2]int]bool)
	for _, prior := range sc.AllSeries() {
		index1, ok1 := s.IndexOf(prior.Team1)
		index2, ok2 := s.IndexOf(prior.Team2)
		if !ok1 || !ok2 {
			continue
		}
		played[[2]int{index1, index2}] = true
		played[[2]int{index2, index1}] = true
	}

	generator := newPermutationGenerator(len(s.order))
	for {
		permutation, ok := generator.Next()
		if !ok {
			return nil, ErrNoRematchFreeSeeding
		}

		rematch := false
		for _, pair := range pairs {
			if played[[2]int{permutation[pair[0]], permutation[pair[1]]}] {
				rematch = true
				break
			}
		}
		if rematch {
			continue
		}

		order := make([]*team.Team, len(s.order))
		for i, rank := range permutation {
			order[i] = s.order[rank]
		}
		s.order = order
		return s, nil
	}
}
