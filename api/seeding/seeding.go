/* seeding.go
 * Contains the Seeding struct, an explicit ordered ranking of teams, and its multi-key stable sort
 * Authors: Zachary Bower
 */

package seeding

import (
	"fmt"
	"sort"

	"bracket-engine/api/team"
)

// Direction controls which way a sort criterion orders its keys
type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// KeySource produces a numeric sort key for a team. A diff.Ledger contributes
// the team's counter; another Seeding contributes the team's rank index
// (lower index is better)
type KeySource interface {
	SortKey(t *team.Team) (int, error)
}

// Criterion is one key of a composite sort: a direction and where the key comes from
type Criterion struct {
	Direction Direction
	Source    KeySource
}

// Seeding is an ordered ranking of teams. Insertion order defines rank 0..n-1.
// Order is the only state and is always replaced wholesale by Set, Sort or
// SortNoRematches, never partially mutated
type Seeding struct {
	tc    *team.Container
	order []*team.Team
}

// New creates an empty Seeding backed by the given team Container
func New(tc *team.Container) *Seeding {
	return &Seeding{tc: tc}
}

// Set replaces the ordering with the teams the given refs resolve to, in argument order
// Preconditions: Receives zero or more team Refs
// Postconditions: Ordering is fully replaced; returns this instance for chaining, or an error if any ref fails to resolve
func (s *Seeding) Set(refs ...team.Ref) (*Seeding, error) {
	order := make([]*team.Team, len(refs))
	for i, ref := range refs {
		t, err := s.tc.Resolve(ref)
		if err != nil {
			return nil, err
		}
		order[i] = t
	}
	s.order = order
	return s, nil
}

// SetTeams replaces the ordering with already-resolved teams. Nil entries are
// legal and mark empty slots (e.g. a round whose feeder has not produced a team)
func (s *Seeding) SetTeams(teams ...*team.Team) *Seeding {
	order := make([]*team.Team, len(teams))
	copy(order, teams)
	s.order = order
	return s
}

// At returns the team at the given rank, or nil when the rank is out of range or empty
func (s *Seeding) At(rank int) *team.Team {
	if rank < 0 || rank >= len(s.order) {
		return nil
	}
	return s.order[rank]
}

// SetAt places a team at the given rank, growing the ordering with empty slots if needed
func (s *Seeding) SetAt(rank int, t *team.Team) *Seeding {
	for len(s.order) <= rank {
		s.order = append(s.order, nil)
	}
	s.order[rank] = t
	return s
}

// Len returns the number of ranks in the seeding
func (s *Seeding) Len() int {
	return len(s.order)
}

// Teams returns a copy of the current ordering
func (s *Seeding) Teams() []*team.Team {
	out := make([]*team.Team, len(s.order))
	copy(out, s.order)
	return out
}

// IndexOf returns the rank of the given team in the current ordering
func (s *Seeding) IndexOf(t *team.Team) (int, bool) {
	for i, other := range s.order {
		if other == t {
			return i, true
		}
	}
	return 0, false
}

// SortKey returns the team's rank index so a Seeding can be used as a sort
// criterion for another Seeding
func (s *Seeding) SortKey(t *team.Team) (int, error) {
	index, ok := s.IndexOf(t)
	if !ok {
		return 0, fmt.Errorf("team \"%s\" is not in the seeding", t.Name)
	}
	return index, nil
}

// Sort re-ranks the seeding by comparing teams criterion by criterion, left to
// right. The first criterion is the primary key; no single criterion is
// authoritative alone. The sort is stable, so teams tied on every criterion keep
// their relative order from the current ordering
// Preconditions: Receives one or more Criterion values; every slot in the seeding must be filled
// Postconditions: Ordering is fully replaced with the sorted one; returns this instance for
// chaining, or an error if a key cannot be produced for some team
func (s *Seeding) Sort(criteria ...Criterion) (*Seeding, error) {
	for _, t := range s.order {
		if t == nil {
			return nil, fmt.Errorf("cannot sort a seeding with empty slots")
		}
	}

	// Precompute the full key vector for every team so key errors surface before
	// any reordering happens
	keys := make([][]int, len(s.order))
	for i, t := range s.order {
		keys[i] = make([]int, len(criteria))
		for j, criterion := range criteria {
			key, err := criterion.Source.SortKey(t)
			if err != nil {
				return nil, err
			}
			keys[i][j] = key * int(criterion.Direction)
		}
	}

	ranks := make([]int, len(s.order))
	for i := range ranks {
		ranks[i] = i
	}
	sort.SliceStable(ranks, func(a, b int) bool {
		keysA, keysB := keys[ranks[a]], keys[ranks[b]]
		for j := range keysA {
			if keysA[j] != keysB[j] {
				return keysA[j] < keysB[j]
			}
		}
		return false
	})

	order := make([]*team.Team, len(s.order))
	for i, rank := range ranks {
		order[i] = s.order[rank]
	}
	s.order = order
	return s, nil
}
