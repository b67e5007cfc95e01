/* model_test.go
 * Contains unit tests for model.go functions
 * Authors: Zachary Bower
 */

package bracket

import (
	"testing"

	"bracket-engine/api/diff"
	"bracket-engine/api/seeding"
	"bracket-engine/api/series"
	"bracket-engine/api/team"

	"github.com/stretchr/testify/assert"
)

// TestModelCalculate_SingleElimination tests a four-team single elimination bracket end to end
func TestModelCalculate_SingleElimination(t *testing.T) {
	tc, sc, teams := testContext(t, "Team A", "Team B", "Team C", "Team D")
	teamA, teamB, teamC, teamD := teams[0], teams[1], teams[2], teams[3]

	sc.Register(series.New(teamA, teamB, 1, 3))
	sc.Register(series.New(teamC, teamD, 3, 2))
	sc.Register(series.New(teamB, teamC, 0, 3))

	sg, err := seeding.New(tc).Set(team.ById(1), team.ById(2), team.ById(3), team.ById(4))
	assert.NoError(t, err)

	model := NewModel()
	assert.NoError(t, model.Next("series_1", NewMatchup(team.ByTeam(sg.At(0)), team.ByTeam(sg.At(1)))))
	assert.NoError(t, model.Next("series_2", NewMatchup(team.ByTeam(sg.At(2)), team.ByTeam(sg.At(3)))))
	assert.NoError(t, model.Next("series_3", NewMatchup(model.Winner("series_1"), model.Winner("series_2"))))

	df := diff.New()
	err = model.Calculate(sg, tc, sc, df)
	assert.NoError(t, err)
	assert.True(t, model.Complete())
	assert.Equal(t, StateComplete, model.State())

	result1, ok := model.Result("series_1")
	assert.True(t, ok)
	assert.Same(t, teamB, result1.(*Result).Winner)

	result2, ok := model.Result("series_2")
	assert.True(t, ok)
	assert.Same(t, teamC, result2.(*Result).Winner)

	result3, ok := model.Result("series_3")
	assert.True(t, ok)
	assert.Same(t, teamB, result3.(*Result).Team1)
	assert.Same(t, teamC, result3.(*Result).Team2)
	assert.Same(t, teamC, result3.(*Result).Winner)
}

// TestModelCalculate_FailurePath tests that a missing series fails the model, names the
// failing step and keeps earlier results readable
func TestModelCalculate_FailurePath(t *testing.T) {
	tc, sc, teams := testContext(t, "Team A", "Team B", "Team C", "Team D")
	teamA, teamB := teams[0], teams[1]
	sc.Register(series.New(teamA, teamB, 2, 0))

	model := NewModel()
	assert.NoError(t, model.Next("opener", NewMatchup(team.ByTeam(teamA), team.ByTeam(teamB))))
	assert.NoError(t, model.Next("decider", NewMatchup(team.ByTeam(teams[2]), team.ByTeam(teams[3]))))

	sg := seeding.New(tc).SetTeams(teams...)
	err := model.Calculate(sg, tc, sc, diff.New())
	assert.ErrorIs(t, err, ErrNoSeriesForMatchup)
	assert.Contains(t, err.Error(), "decider")
	assert.False(t, model.Complete())
	assert.Equal(t, StateFailed, model.State())

	// The completed step stays readable after the failure
	result, ok := model.Result("opener")
	assert.True(t, ok)
	assert.Same(t, teamA, result.(*Result).Winner)

	_, ok = model.Result("decider")
	assert.False(t, ok)
}

// TestModelCalculate_ForwardReference tests that referencing a later step is rejected
func TestModelCalculate_ForwardReference(t *testing.T) {
	tc, sc, teams := testContext(t, "Team A", "Team B", "Team C")
	sc.Register(series.New(teams[0], teams[1], 2, 0))

	model := NewModel()
	assert.NoError(t, model.Next("final", NewMatchup(model.Winner("semi"), team.ByTeam(teams[2]))))
	assert.NoError(t, model.Next("semi", NewMatchup(team.ByTeam(teams[0]), team.ByTeam(teams[1]))))

	sg := seeding.New(tc).SetTeams(teams...)
	err := model.Calculate(sg, tc, sc, diff.New())
	assert.ErrorIs(t, err, ErrUnresolvedForwardReference)
	assert.Contains(t, err.Error(), "semi")
	assert.False(t, model.Complete())
}

// TestModelNext_AfterCalculate tests that steps cannot be appended once evaluation has started
func TestModelNext_AfterCalculate(t *testing.T) {
	tc, sc, teams := testContext(t, "Team A", "Team B")
	sc.Register(series.New(teams[0], teams[1], 2, 0))

	model := NewModel()
	assert.NoError(t, model.Next("opener", NewMatchup(team.ByTeam(teams[0]), team.ByTeam(teams[1]))))

	sg := seeding.New(tc).SetTeams(teams...)
	assert.NoError(t, model.Calculate(sg, tc, sc, diff.New()))

	err := model.Next("late", NewMatchup(team.ByTeam(teams[0]), team.ByTeam(teams[1])))
	assert.ErrorIs(t, err, ErrModelAlreadyEvaluating)
}

// TestModelNext_DuplicateName tests that step names must be unique
func TestModelNext_DuplicateName(t *testing.T) {
	_, _, teams := testContext(t, "Team A", "Team B")

	model := NewModel()
	assert.NoError(t, model.Next("opener", NewMatchup(team.ByTeam(teams[0]), team.ByTeam(teams[1]))))
	err := model.Next("opener", NewMatchup(team.ByTeam(teams[0]), team.ByTeam(teams[1])))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

// TestModelCalculate_RoundsViaMatchSets tests chaining rounds through deferred winner seedings
func TestModelCalculate_RoundsViaMatchSets(t *testing.T) {
	tc, sc, teams := testContext(t, "Team A", "Team B", "Team C", "Team D")
	teamA, teamB, teamC, teamD := teams[0], teams[1], teams[2], teams[3]

	sc.Register(series.New(teamA, teamD, 2, 0))
	sc.Register(series.New(teamB, teamC, 0, 2))
	sc.Register(series.New(teamA, teamC, 1, 2))
	sc.Register(series.New(teamD, teamB, 2, 1))

	sg := seeding.New(tc).SetTeams(teamA, teamB, teamC, teamD)

	model := NewModel()
	assert.NoError(t, model.Next("semifinals", NewMatchSet(BySeeding(sg), seeding.Reversed)))
	assert.NoError(t, model.Next("final", NewMatchSet(model.WinnersOf("semifinals"), seeding.Standard)))
	assert.NoError(t, model.Next("third_place", NewMatchSet(model.LosersOf("semifinals"), seeding.Standard)))

	err := model.Calculate(sg, tc, sc, diff.New())
	assert.NoError(t, err)
	assert.True(t, model.Complete())

	final, ok := model.Result("final")
	assert.True(t, ok)
	assert.Equal(t, []*team.Team{teamC}, final.(*SetResult).Winners.Teams())

	thirdPlace, ok := model.Result("third_place")
	assert.True(t, ok)
	assert.Equal(t, []*team.Team{teamD}, thirdPlace.(*SetResult).Winners.Teams())
}

// TestModelWinner_WrongStepKind tests that a matchup accessor on a match-set step fails
func TestModelWinner_WrongStepKind(t *testing.T) {
	tc, sc, teams := testContext(t, "Team A", "Team B")
	sc.Register(series.New(teams[0], teams[1], 2, 0))

	sg := seeding.New(tc).SetTeams(teams...)

	model := NewModel()
	assert.NoError(t, model.Next("round", NewMatchSet(BySeeding(sg), seeding.Standard)))
	assert.NoError(t, model.Calculate(sg, tc, sc, diff.New()))

	_, err := tc.Resolve(model.Winner("round"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a single matchup")
}

// TestModelCalculate_StepNames tests evaluation-order enumeration of step names
func TestModelCalculate_StepNames(t *testing.T) {
	_, _, teams := testContext(t, "Team A", "Team B")

	model := NewModel()
	assert.NoError(t, model.Next("first", NewMatchup(team.ByTeam(teams[0]), team.ByTeam(teams[1]))))
	assert.NoError(t, model.Next("second", NewMatchup(team.ByTeam(teams[0]), team.ByTeam(teams[1]))))

	assert.Equal(t, []string{"first", "second"}, model.StepNames())
	assert.Equal(t, StateUnevaluated, model.State())
}
