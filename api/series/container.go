/* container.go
 * Contains the Container struct that stores series results and hands them out one-shot to matchups
 * Authors: Zachary Bower
 */

package series

import (
	"bracket-engine/api/team"
)

type pairKey struct {
	id1 int
	id2 int
}

// Container stores the series results of multiple matchups, indexed by unordered
// team pair. A series is handed out at most once via Claim; HasPlayed sees every
// registered series regardless of claim status
type Container struct {
	tc      *team.Container
	indexes map[pairKey]int
	series  [][]*Series
}

// NewContainer creates an empty series Container backed by the given team Container
func NewContainer(tc *team.Container) *Container {
	return &Container{
		tc:      tc,
		indexes: make(map[pairKey]int),
	}
}

// Register adds a new series to the container. Duplicate pairs are legal since
// the same two teams can meet repeatedly across a season
// Preconditions: Receives a pointer to a Series
// Postconditions: Series is appended to the bucket for its unordered team pair, preserving registration order
func (c *Container) Register(s *Series) {
	key := pairKey{id1: s.Team1.Id, id2: s.Team2.Id}
	if index, ok := c.indexes[key]; ok {
		c.series[index] = append(c.series[index], s)
		return
	}
	index := len(c.series)
	c.series = append(c.series, []*Series{s})
	c.indexes[key] = index
	c.indexes[pairKey{id1: s.Team2.Id, id2: s.Team1.Id}] = index
}

// Claim resolves both identifiers and returns the earliest-registered series
// between the pair that has not been claimed yet, marking it exhausted.
// Absence of history is a legitimate outcome, not an error
// Preconditions: Receives two team Refs
// Postconditions: Returns (series, true, nil) on a claim, (nil, false, nil) when no unexhausted
// series exists for the pair, or a non-nil error if either identifier fails to resolve
func (c *Container) Claim(ref1, ref2 team.Ref) (*Series, bool, error) {
	bucket, err := c.lookup(ref1, ref2)
	if err != nil {
		return nil, false, err
	}
	for _, s := range bucket {
		if !s.exhausted {
			s.exhausted = true
			return s, true, nil
		}
	}
	return nil, false, nil
}

// HasPlayed reports whether the two teams have any registered series between them,
// exhausted or not. Used by rematch avoidance, which must see prior matchups
// regardless of claim status. Never mutates state
// Preconditions: Receives two team Refs
// Postconditions: Returns whether any series exists for the pair, or an error if either identifier fails to resolve
func (c *Container) HasPlayed(ref1, ref2 team.Ref) (bool, error) {
	bucket, err := c.lookup(ref1, ref2)
	if err != nil {
		return false, err
	}
	return len(bucket) > 0, nil
}

// lookup resolves both refs and returns the bucket for the unordered pair, which
// is nil when the pair has never been registered
func (c *Container) lookup(ref1, ref2 team.Ref) ([]*Series, error) {
	t1, err := c.tc.Resolve(ref1)
	if err != nil {
		return nil, err
	}
	t2, err := c.tc.Resolve(ref2)
	if err != nil {
		return nil, err
	}
	index, ok := c.indexes[pairKey{id1: t1.Id, id2: t2.Id}]
	if !ok {
		return nil, nil
	}
	return c.series[index], nil
}

// PlayedSeries returns every series that has been claimed so far, in registration order per pair
func (c *Container) PlayedSeries() []*Series {
	var played []*Series
	for _, bucket := range c.series {
		for _, s := range bucket {
			if s.exhausted {
				played = append(played, s)
			}
		}
	}
	return played
}

// AllSeries returns every registered series regardless of claim status
func (c *Container) AllSeries() []*Series {
	var all []*Series
	for _, bucket := range c.series {
		all = append(all, bucket...)
	}
	return all
}
