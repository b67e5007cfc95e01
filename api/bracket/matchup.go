/* matchup.go
 * Contains the Matchup struct: a pair of deferred team references resolved against the series pool
 * Authors: Zachary Bower
 */

package bracket

import (
	"fmt"

	"bracket-engine/api/diff"
	"bracket-engine/api/series"
	"bracket-engine/api/team"
)

// Matchup is a single pairing whose participants are deferred team references,
// resolved at the moment the matchup is calculated
type Matchup struct {
	team1  team.Ref
	team2  team.Ref
	result *Result
}

// NewMatchup creates a Matchup between two team references
func NewMatchup(team1, team2 team.Ref) *Matchup {
	return &Matchup{team1: team1, team2: team2}
}

// Result holds the fully resolved outcome of one matchup. The winner and loser
// are decided by real score; virtual scores and win flags are advisory data for
// tie-break policies layered on top
type Result struct {
	Team1     *team.Team
	Team2     *team.Team
	RScore1   int
	RScore2   int
	VScore1   int
	VScore2   int
	RWin1     bool
	RWin2     bool
	VWin1     bool
	VWin2     bool
	IsWinner1 bool
	IsWinner2 bool
	Winner    *team.Team
	Loser     *team.Team

	WinnerRScore int
	LoserRScore  int

	// Diffs is the model-wide running ledger this matchup was applied to;
	// InstanceDiffs holds only this matchup's delta
	Diffs         *diff.Differentials
	InstanceDiffs *diff.Differentials
}

// GetType returns the step result kind, used to tell matchup and match-set
// results apart in a model's results mapping
func (r *Result) GetType() string {
	return "matchup"
}

// Calculate resolves both team references, claims the earliest unclaimed series
// between them and builds the Result. The matchup's instance differentials are
// applied into the given running ledger when one is provided
// Preconditions: Receives the team Container, the series Container and an optional running Differentials (may be nil)
// Postconditions: Returns the Result and stores it on the matchup, or an error: resolution failures
// propagate unchanged and a missing series surfaces ErrNoSeriesForMatchup
func (m *Matchup) Calculate(tc *team.Container, sc *series.Container, df *diff.Differentials) (*Result, error) {
	team1, err := tc.Resolve(m.team1)
	if err != nil {
		return nil, err
	}
	team2, err := tc.Resolve(m.team2)
	if err != nil {
		return nil, err
	}

	claimed, ok, err := sc.Claim(team.ByTeam(team1), team.ByTeam(team2))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s vs %s", ErrNoSeriesForMatchup, team1.Name, team2.Name)
	}

	// Orient the series data so side 1 is this matchup's team1, whichever way
	// round the series was registered
	rScore1, vScore1, rWin1, vWin1 := claimed.RScore1, claimed.VScore1, claimed.RWin1, claimed.VWin1
	rScore2, vScore2, rWin2, vWin2 := claimed.RScore2, claimed.VScore2, claimed.RWin2, claimed.VWin2
	if claimed.Team1 != team1 {
		rScore1, vScore1, rWin1, vWin1, rScore2, vScore2, rWin2, vWin2 = rScore2, vScore2, rWin2, vWin2, rScore1, vScore1, rWin1, vWin1
	}

	instance := diff.New()
	instance.AddRaw(team1, rScore1-rScore2, vScore1-vScore2, winDelta(rWin1), winDelta(vWin1))
	instance.AddRaw(team2, rScore2-rScore1, vScore2-vScore1, winDelta(rWin2), winDelta(vWin2))
	if df != nil {
		df.Combine(instance)
	}

	winner, loser := team1, team2
	winnerRScore, loserRScore := rScore1, rScore2
	if rScore1 < rScore2 {
		winner, loser = team2, team1
		winnerRScore, loserRScore = rScore2, rScore1
	}

	m.result = &Result{
		Team1:         team1,
		Team2:         team2,
		RScore1:       rScore1,
		RScore2:       rScore2,
		VScore1:       vScore1,
		VScore2:       vScore2,
		RWin1:         rWin1,
		RWin2:         rWin2,
		VWin1:         vWin1,
		VWin2:         vWin2,
		IsWinner1:     rScore1 > rScore2,
		IsWinner2:     rScore1 < rScore2,
		Winner:        winner,
		Loser:         loser,
		WinnerRScore:  winnerRScore,
		LoserRScore:   loserRScore,
		Diffs:         df,
		InstanceDiffs: instance,
	}
	return m.result, nil
}

// Result returns the stored result, or nil if the matchup has not been calculated
func (m *Matchup) Result() *Result {
	return m.result
}

// Winner returns the winning team, or nil if the matchup has not been calculated
func (m *Matchup) Winner() *team.Team {
	if m.result == nil {
		return nil
	}
	return m.result.Winner
}

// Loser returns the losing team, or nil if the matchup has not been calculated
func (m *Matchup) Loser() *team.Team {
	if m.result == nil {
		return nil
	}
	return m.result.Loser
}

// InstanceDiffs returns this matchup's delta ledgers, or nil if the matchup has not been calculated
func (m *Matchup) InstanceDiffs() *diff.Differentials {
	if m.result == nil {
		return nil
	}
	return m.result.InstanceDiffs
}

// winDelta maps a win flag onto the +1/-1 series differential contribution
func winDelta(won bool) int {
	if won {
		return 1
	}
	return -1
}
