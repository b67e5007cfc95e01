/* matchset.go
 * Contains the MatchSet struct: a deferred seeding interpreted into one matchup per pairing
 * Authors: Zachary Bower
 */

package bracket

import (
	"fmt"

	"bracket-engine/api/diff"
	"bracket-engine/api/seeding"
	"bracket-engine/api/series"
	"bracket-engine/api/team"
)

// SeedRef is a seeding reference that may not be resolvable until evaluation
// time, such as "the winners of the previous round"
type SeedRef struct {
	seeding  *seeding.Seeding
	deferred func() (*seeding.Seeding, error)
}

// BySeeding creates a SeedRef wrapping an already-known Seeding
func BySeeding(sg *seeding.Seeding) SeedRef {
	return SeedRef{seeding: sg}
}

// DeferredSeeding creates a SeedRef whose seeding is produced at resolution time.
// The function is invoked once per Calculate call and never cached
func DeferredSeeding(fn func() (*seeding.Seeding, error)) SeedRef {
	return SeedRef{deferred: fn}
}

func (r SeedRef) resolve() (*seeding.Seeding, error) {
	if r.deferred != nil {
		return r.deferred()
	}
	if r.seeding == nil {
		return nil, fmt.Errorf("empty seeding reference")
	}
	return r.seeding, nil
}

// MatchSet is a whole round: a deferred seeding plus an interpreter that turns
// the seeding into pairings, resolved into one matchup per pairing
type MatchSet struct {
	seed      SeedRef
	interpret seeding.Interpreter
	result    *SetResult
}

// NewMatchSet creates a MatchSet over the given seeding reference and interpreter
func NewMatchSet(seed SeedRef, interpret seeding.Interpreter) *MatchSet {
	return &MatchSet{seed: seed, interpret: interpret}
}

// SetResult aggregates one round's outcomes. Winners and Losers are new
// Seedings ordered by the interpreter's pairing order, not the original seed
// order, so round losers can be re-ranked independently of where they started
type SetResult struct {
	Results []*Result
	Winners *seeding.Seeding
	Losers  *seeding.Seeding

	Diffs         *diff.Differentials
	InstanceDiffs *diff.Differentials
}

// GetType returns the step result kind, used to tell matchup and match-set
// results apart in a model's results mapping
func (r *SetResult) GetType() string {
	return "matchset"
}

// Calculate resolves the seeding, interprets it into pairings and calculates one
// matchup per pairing, aggregating winners, losers and instance differentials
// Preconditions: Receives the team Container, the series Container and an optional running Differentials (may be nil)
// Postconditions: Returns the SetResult and stores it on the match set, or the first error any pairing produces
func (ms *MatchSet) Calculate(tc *team.Container, sc *series.Container, df *diff.Differentials) (*SetResult, error) {
	sg, err := ms.seed.resolve()
	if err != nil {
		return nil, err
	}
	pairs, err := ms.interpret(sg.Len())
	if err != nil {
		return nil, err
	}

	results := make([]*Result, 0, len(pairs))
	winners := make([]*team.Team, 0, len(pairs))
	losers := make([]*team.Team, 0, len(pairs))
	instance := diff.New()

	for _, pair := range pairs {
		matchup := NewMatchup(team.ByTeam(sg.At(pair[0])), team.ByTeam(sg.At(pair[1])))
		result, err := matchup.Calculate(tc, sc, df)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
		winners = append(winners, result.Winner)
		losers = append(losers, result.Loser)
		instance.Combine(result.InstanceDiffs)
	}

	ms.result = &SetResult{
		Results:       results,
		Winners:       seeding.New(tc).SetTeams(winners...),
		Losers:        seeding.New(tc).SetTeams(losers...),
		Diffs:         df,
		InstanceDiffs: instance,
	}
	return ms.result, nil
}

// Result returns the stored result, or nil if the match set has not been calculated
func (ms *MatchSet) Result() *SetResult {
	return ms.result
}
