/* seeding_test.go
 * Contains unit tests for seeding.go functions
 * Authors: Zachary Bower
 */

package seeding

import (
	"testing"

	"bracket-engine/api/diff"
	"bracket-engine/api/team"

	"github.com/stretchr/testify/assert"
)

func testContainer(t *testing.T, names ...string) (*team.Container, []*team.Team) {
	t.Helper()
	tc := team.NewContainer()
	teams := make([]*team.Team, len(names))
	for i, name := range names {
		teams[i] = team.New(i+1, name)
		assert.NoError(t, tc.Register(teams[i]))
	}
	return tc, teams
}

// TestSet_ResolvesIdentifiers tests that Set resolves refs in argument order
func TestSet_ResolvesIdentifiers(t *testing.T) {
	tc, teams := testContainer(t, "Team A", "Team B")

	sg, err := New(tc).Set(team.ByName("Team B"), team.ById(1))
	assert.NoError(t, err)
	assert.Equal(t, 2, sg.Len())
	assert.Same(t, teams[1], sg.At(0))
	assert.Same(t, teams[0], sg.At(1))
}

// TestSet_UnknownIdentifier tests that Set fails on unresolvable refs
func TestSet_UnknownIdentifier(t *testing.T) {
	tc, _ := testContainer(t, "Team A")

	_, err := New(tc).Set(team.ByName("missing"))
	assert.ErrorIs(t, err, team.ErrUnknownIdentifier)
}

// TestSetAt_GapFill tests index assignment past the current length
func TestSetAt_GapFill(t *testing.T) {
	tc, teams := testContainer(t, "Team A")

	sg := New(tc).SetAt(2, teams[0])
	assert.Equal(t, 3, sg.Len())
	assert.Nil(t, sg.At(0))
	assert.Nil(t, sg.At(1))
	assert.Same(t, teams[0], sg.At(2))
}

// TestAt_OutOfRange tests that out-of-range ranks return nil
func TestAt_OutOfRange(t *testing.T) {
	tc, _ := testContainer(t, "Team A")
	sg := New(tc)

	assert.Nil(t, sg.At(0))
	assert.Nil(t, sg.At(-1))
}

// TestSort_StableOnTies tests that teams tied on every criterion keep their current relative order
func TestSort_StableOnTies(t *testing.T) {
	tc, teams := testContainer(t, "Team A", "Team B", "Team C")
	teamA, teamB, teamC := teams[0], teams[1], teams[2]

	wins := diff.NewLedger()
	wins.Set(teamA, 3)
	wins.Set(teamB, 3)
	wins.Set(teamC, 5)

	sg := New(tc).SetTeams(teamA, teamB, teamC)
	_, err := sg.Sort(Criterion{Direction: Descending, Source: wins})
	assert.NoError(t, err)

	assert.Equal(t, []*team.Team{teamC, teamA, teamB}, sg.Teams())
}

// TestSort_TieBreakSeeding tests that a second criterion breaks ties by rank in another seeding
func TestSort_TieBreakSeeding(t *testing.T) {
	tc, teams := testContainer(t, "Team A", "Team B", "Team C")
	teamA, teamB, teamC := teams[0], teams[1], teams[2]

	wins := diff.NewLedger()
	wins.Set(teamA, 3)
	wins.Set(teamB, 3)
	wins.Set(teamC, 5)

	tieBreak := New(tc).SetTeams(teamB, teamA, teamC)

	sg := New(tc).SetTeams(teamA, teamB, teamC)
	_, err := sg.Sort(
		Criterion{Direction: Descending, Source: wins},
		Criterion{Direction: Ascending, Source: tieBreak},
	)
	assert.NoError(t, err)

	// C leads on the primary key; the A-B tie is broken by tieBreak order, B first
	assert.Equal(t, []*team.Team{teamC, teamB, teamA}, sg.Teams())
}

// TestSort_DirectionFlipIsPerCriterion tests that reversing one direction flag only
// reverses that criterion's influence
func TestSort_DirectionFlipIsPerCriterion(t *testing.T) {
	tc, teams := testContainer(t, "Team A", "Team B", "Team C", "Team D")
	teamA, teamB, teamC, teamD := teams[0], teams[1], teams[2], teams[3]

	wins := diff.NewLedger()
	wins.Set(teamA, 1)
	wins.Set(teamB, 1)
	wins.Set(teamC, 2)
	wins.Set(teamD, 2)

	tieBreak := New(tc).SetTeams(teamA, teamB, teamC, teamD)

	sg := New(tc).SetTeams(teamA, teamB, teamC, teamD)
	_, err := sg.Sort(
		Criterion{Direction: Descending, Source: wins},
		Criterion{Direction: Ascending, Source: tieBreak},
	)
	assert.NoError(t, err)
	assert.Equal(t, []*team.Team{teamC, teamD, teamA, teamB}, sg.Teams())

	// Flipping only the tie-break direction reverses order within the tied groups,
	// not the primary grouping
	sg = New(tc).SetTeams(teamA, teamB, teamC, teamD)
	_, err = sg.Sort(
		Criterion{Direction: Descending, Source: wins},
		Criterion{Direction: Descending, Source: tieBreak},
	)
	assert.NoError(t, err)
	assert.Equal(t, []*team.Team{teamD, teamC, teamB, teamA}, sg.Teams())
}

// TestSort_EmptySlot tests that sorting an incomplete seeding fails
func TestSort_EmptySlot(t *testing.T) {
	tc, teams := testContainer(t, "Team A")

	sg := New(tc).SetTeams(teams[0], nil)
	_, err := sg.Sort(Criterion{Direction: Ascending, Source: diff.NewLedger()})
	assert.Error(t, err)
}

// TestSortKey_NotInSeeding tests the key error for a team missing from a criterion seeding
func TestSortKey_NotInSeeding(t *testing.T) {
	tc, teams := testContainer(t, "Team A", "Team B")

	reference := New(tc).SetTeams(teams[0])
	sg := New(tc).SetTeams(teams[0], teams[1])

	_, err := sg.Sort(Criterion{Direction: Ascending, Source: reference})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Team B")
}
