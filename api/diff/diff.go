/* diff.go
 * Contains the Ledger and Differentials structs used to accumulate per-team score differentials
 * Authors: Zachary Bower
 */

package diff

import (
	"bracket-engine/api/team"
)

// Ledger is a single named bucket of per-team signed counters, keyed by team id.
// Unseen teams default to zero
type Ledger struct {
	values map[int]int
}

// NewLedger creates an empty Ledger
func NewLedger() *Ledger {
	return &Ledger{values: make(map[int]int)}
}

// Get returns the counter for the given team, defaulting to zero for unseen teams
func (l *Ledger) Get(t *team.Team) int {
	return l.values[t.Id]
}

// Set replaces the counter for the given team
func (l *Ledger) Set(t *team.Team, value int) {
	l.values[t.Id] = value
}

// Add adds a delta onto the counter for the given team
func (l *Ledger) Add(t *team.Team, delta int) {
	l.values[t.Id] += delta
}

// Apply adds every non-zero entry of another ledger into this one. Used to merge
// a matchup's instance differentials into the running model-wide ledger
func (l *Ledger) Apply(other *Ledger) {
	for id, value := range other.values {
		if value == 0 {
			continue
		}
		l.values[id] += value
	}
}

// Copy returns an independent copy of this ledger
func (l *Ledger) Copy() *Ledger {
	out := NewLedger()
	for id, value := range l.values {
		out.values[id] = value
	}
	return out
}

// Reset clears every counter back to zero
func (l *Ledger) Reset() {
	l.values = make(map[int]int)
}

// SortKey returns the team's counter so a Ledger can be used directly as a
// seeding sort criterion
func (l *Ledger) SortKey(t *team.Team) (int, error) {
	return l.Get(t), nil
}

// Differentials composes the four independent ledgers tracked per matchup:
// real and virtual game differential, real and virtual series differential.
// They are separate ledgers rather than one multi-valued entry so merging and
// sorting stay uniform across buckets
type Differentials struct {
	RealGame      *Ledger
	VirtualGame   *Ledger
	RealSeries    *Ledger
	VirtualSeries *Ledger
}

// New creates a Differentials with four empty ledgers
func New() *Differentials {
	return &Differentials{
		RealGame:      NewLedger(),
		VirtualGame:   NewLedger(),
		RealSeries:    NewLedger(),
		VirtualSeries: NewLedger(),
	}
}

// AddRaw adds deltas for one team across all four buckets at once
// Preconditions: Receives a team and the four deltas in bucket order
// Postconditions: Each bucket's counter for the team is incremented by its delta
func (d *Differentials) AddRaw(t *team.Team, realGame, virtualGame, realSeries, virtualSeries int) {
	d.RealGame.Add(t, realGame)
	d.VirtualGame.Add(t, virtualGame)
	d.RealSeries.Add(t, realSeries)
	d.VirtualSeries.Add(t, virtualSeries)
}

// Combine merges the given differentials into this one, bucket by bucket
func (d *Differentials) Combine(others ...*Differentials) {
	for _, other := range others {
		if other == nil {
			continue
		}
		d.RealGame.Apply(other.RealGame)
		d.VirtualGame.Apply(other.VirtualGame)
		d.RealSeries.Apply(other.RealSeries)
		d.VirtualSeries.Apply(other.VirtualSeries)
	}
}

// Copy returns an independent copy of all four ledgers
func (d *Differentials) Copy() *Differentials {
	return &Differentials{
		RealGame:      d.RealGame.Copy(),
		VirtualGame:   d.VirtualGame.Copy(),
		RealSeries:    d.RealSeries.Copy(),
		VirtualSeries: d.VirtualSeries.Copy(),
	}
}
