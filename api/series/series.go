/* series.go
 * Contains the Series struct representing one already-played result between two teams
 * Authors: Zachary Bower
 */

package series

import (
	"bracket-engine/api/team"
)

// Series represents the result of one series played between two teams.
// Real scores decide the winner; virtual scores carry a finer-grained outcome
// (e.g. map or round differential) and are informational only
type Series struct {
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
	exhausted bool
}

// New creates a new Series from real scores only. Virtual scores default to the
// real scores and all win flags are derived from the scores
// Preconditions: Receives two non-nil Teams and their real scores
// Postconditions: Returns a pointer to the new Series
func New(team1, team2 *team.Team, rscore1, rscore2 int) *Series {
	return NewWithVirtual(team1, team2, rscore1, rscore2, rscore1, rscore2)
}

// NewWithVirtual creates a new Series with distinct real and virtual scores
// Preconditions: Receives two non-nil Teams, their real scores and their virtual scores
// Postconditions: Returns a pointer to the new Series with win flags derived per score set
func NewWithVirtual(team1, team2 *team.Team, rscore1, rscore2, vscore1, vscore2 int) *Series {
	return &Series{
		Team1:   team1,
		Team2:   team2,
		RScore1: rscore1,
		RScore2: rscore2,
		VScore1: vscore1,
		VScore2: vscore2,
		RWin1:   rscore1 > rscore2,
		RWin2:   rscore2 > rscore1,
		VWin1:   vscore1 > vscore2,
		VWin2:   vscore2 > vscore1,
	}
}

// Exhausted reports whether this series has already been claimed by a matchup
func (s *Series) Exhausted() bool {
	return s.exhausted
}

// Involves reports whether the given team is one of the two participants
func (s *Series) Involves(t *team.Team) bool {
	return s.Team1 == t || s.Team2 == t
}
