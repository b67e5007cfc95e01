/* api.go
 * This file contains the public methods for interacting with this package. For consistent results, fuctions should
 * only be called from this file, not the sub packages for team, series, seeding and bracket
 * Authors: Zachary Bower
 */

package api

import (
	"errors"
	"fmt"
	"strings"

	"bracket-engine/api/bracket"
	"bracket-engine/api/diff"
	"bracket-engine/api/seeding"
	"bracket-engine/api/series"
	"bracket-engine/api/store"
	"bracket-engine/api/team"
)

// API wires the engine's containers together and layers persistence and
// presentation over them. The Store is optional; with a nil Store the API is a
// purely in-memory engine
type API struct {
	Teams  *team.Container
	Series *series.Container
	Diffs  *diff.Differentials
	Store  store.Interface
}

// NewAPI creates a new API instance with empty containers
// Preconditions: Receives a store.Interface, which may be nil for in-memory use
// Postconditions: Returns pointer to the API object
func NewAPI(s store.Interface) *API {
	tc := team.NewContainer()
	return &API{
		Teams:  tc,
		Series: series.NewContainer(tc),
		Diffs:  diff.New(),
		Store:  s,
	}
}

// RegisterTeam registers a new team with the engine's team pool
// Preconditions: Receives an int id, a name and zero or more aliases
// Postconditions: Team is registered, or an error is returned if any handle is already taken
func (a *API) RegisterTeam(id int, name string, aliases ...string) error {
	return a.Teams.Register(team.New(id, name, aliases...))
}

// RegisterResult registers a played series between two teams, identified by name or alias.
// Virtual scores default to the real scores
// Preconditions: Receives two team names and their real scores
// Postconditions: Series is registered, or an error is returned if either name does not resolve
func (a *API) RegisterResult(name1 string, name2 string, rscore1 int, rscore2 int) error {
	return a.RegisterResultWithVirtual(name1, name2, rscore1, rscore2, rscore1, rscore2)
}

// RegisterResultWithVirtual registers a played series with distinct real and virtual scores
// Preconditions: Receives two team names, their real scores and their virtual scores
// Postconditions: Series is registered, or an error is returned if either name does not resolve
func (a *API) RegisterResultWithVirtual(name1 string, name2 string, rscore1 int, rscore2 int, vscore1 int, vscore2 int) error {
	team1, err := a.Teams.GetByName(name1)
	if err != nil {
		return err
	}
	team2, err := a.Teams.GetByName(name2)
	if err != nil {
		return err
	}
	a.Series.Register(series.NewWithVirtual(team1, team2, rscore1, rscore2, vscore1, vscore2))
	return nil
}

// GetTeams gets a list of all registered team names in registration order
func (a *API) GetTeams() []string {
	return a.Teams.Names()
}

// NewSeeding creates a Seeding over the engine's team pool from team names
// Preconditions: Receives team names in rank order
// Postconditions: Returns the Seeding, or an error if any name does not resolve
func (a *API) NewSeeding(names ...string) (*seeding.Seeding, error) {
	refs := make([]team.Ref, len(names))
	for i, name := range names {
		refs[i] = team.ByName(name)
	}
	return seeding.New(a.Teams).Set(refs...)
}

// RunModel calculates a bracket model against the engine's containers and, when
// a store is configured, persists the bracket result and a standings snapshot
// Preconditions: Receives a BracketModel with its steps registered and the initial Seeding
// Postconditions: Model is calculated; returns the first step error if the model failed, or a
// persistence error. A failed model is still persisted so partial progress is inspectable
func (a *API) RunModel(model *bracket.BracketModel, sg *seeding.Seeding) error {
	calcErr := model.Calculate(sg, a.Teams, a.Series, a.Diffs)

	if a.Store != nil {
		record := a.BuildBracketRecord(model)
		if err := a.Store.StoreBracketResult(record); err != nil {
			return err
		}
		entries, err := a.StandingsEntries(sg)
		if err != nil {
			return err
		}
		if err := a.Store.StoreStandings(store.StandingsRecord{Entries: entries}); err != nil {
			return err
		}
	}
	return calcErr
}

// BuildBracketRecord flattens a model's results into the storable record shape.
// Match sets contribute one step record per pairing, suffixed with the pairing number
func (a *API) BuildBracketRecord(model *bracket.BracketModel) store.BracketRecord {
	record := store.BracketRecord{Complete: model.Complete()}
	for _, name := range model.StepNames() {
		stepResult, ok := model.Result(name)
		if !ok {
			continue
		}
		switch result := stepResult.(type) {
		case *bracket.Result:
			record.Steps = append(record.Steps, toStepRecord(name, result))
		case *bracket.SetResult:
			for i, sub := range result.Results {
				record.Steps = append(record.Steps, toStepRecord(fmt.Sprintf("%s_%d", name, i+1), sub))
			}
		}
	}
	return record
}

func toStepRecord(name string, r *bracket.Result) store.StepRecord {
	return store.StepRecord{
		Step:    name,
		Team1:   r.Team1.Name,
		Team2:   r.Team2.Name,
		RScore1: r.RScore1,
		RScore2: r.RScore2,
		VScore1: r.VScore1,
		VScore2: r.VScore2,
		Winner:  r.Winner.Name,
		Loser:   r.Loser.Name,
	}
}

// StandingsEntries ranks the given seeding by the engine's accumulated
// differentials and returns one entry per team. Ranking is by real series
// differential, then real game differential, then virtual game differential,
// with the incoming seed order as the final tie break
// Preconditions: Receives the Seeding to rank; every slot must be filled
// Postconditions: Returns the ranked entries, or an error if ranking fails
func (a *API) StandingsEntries(sg *seeding.Seeding) ([]store.StandingEntry, error) {
	ranked := seeding.New(a.Teams).SetTeams(sg.Teams()...)
	_, err := ranked.Sort(
		seeding.Criterion{Direction: seeding.Descending, Source: a.Diffs.RealSeries},
		seeding.Criterion{Direction: seeding.Descending, Source: a.Diffs.RealGame},
		seeding.Criterion{Direction: seeding.Descending, Source: a.Diffs.VirtualGame},
		seeding.Criterion{Direction: seeding.Ascending, Source: sg},
	)
	if err != nil {
		return nil, err
	}

	entries := make([]store.StandingEntry, 0, ranked.Len())
	for i, t := range ranked.Teams() {
		entries = append(entries, store.StandingEntry{
			Rank:          i + 1,
			Team:          t.Name,
			RealGame:      a.Diffs.RealGame.Get(t),
			VirtualGame:   a.Diffs.VirtualGame.Get(t),
			RealSeries:    a.Diffs.RealSeries.Get(t),
			VirtualSeries: a.Diffs.VirtualSeries.Get(t),
		})
	}
	return entries, nil
}

// GetStandings generates a response string summarising the current standings
// Preconditions: Receives the Seeding to rank
// Postconditions: Returns the standings report, or an error if ranking fails
func (a *API) GetStandings(sg *seeding.Seeding) (string, error) {
	entries, err := a.StandingsEntries(sg)
	if err != nil {
		return "", err
	}

	var response strings.Builder
	response.WriteString("Current standings:\n")
	for _, entry := range entries {
		response.WriteString(fmt.Sprintf("%d. %s (series %+d, games %+d)\n", entry.Rank, entry.Team, entry.RealSeries, entry.RealGame))
	}
	return response.String(), nil
}

// GetBracketReport generates a response string summarising every evaluated step of a model
// Preconditions: Receives a BracketModel that has been calculated (fully or partially)
// Postconditions: Returns the report string. Steps without a result are listed as pending
func (a *API) GetBracketReport(model *bracket.BracketModel) string {
	var response strings.Builder
	for _, name := range model.StepNames() {
		stepResult, ok := model.Result(name)
		if !ok {
			response.WriteString(fmt.Sprintf("%s: [Pending]\n", name))
			continue
		}
		switch result := stepResult.(type) {
		case *bracket.Result:
			response.WriteString(fmt.Sprintf("%s: %s\n", name, formatResult(result)))
		case *bracket.SetResult:
			response.WriteString(fmt.Sprintf("%s:\n", name))
			for _, sub := range result.Results {
				response.WriteString(fmt.Sprintf("- %s\n", formatResult(sub)))
			}
		}
	}
	return response.String()
}

// GetStepReport generates a response string for a single step of a model
// Preconditions: Receives a BracketModel and a step name
// Postconditions: Returns the report string, or an error if the step does not exist or has no result
func (a *API) GetStepReport(model *bracket.BracketModel, name string) (string, error) {
	stepResult, ok := model.Result(name)
	if !ok {
		return "", fmt.Errorf("no result for step \"%s\"", name)
	}
	switch result := stepResult.(type) {
	case *bracket.Result:
		return formatResult(result), nil
	case *bracket.SetResult:
		var response strings.Builder
		for _, sub := range result.Results {
			response.WriteString(fmt.Sprintf("%s\n", formatResult(sub)))
		}
		return response.String(), nil
	default:
		return "", fmt.Errorf("unknown result type: %s", stepResult.GetType())
	}
}

// GetHeadToHead generates a response string of every registered series between two teams,
// matched from user input with fuzzy matching
// Preconditions: Receives two input names
// Postconditions: Returns the head-to-head report, or an error if either input matches no team
func (a *API) GetHeadToHead(input1 string, input2 string) (string, error) {
	matched, invalid := a.Teams.MatchNames([]string{input1, input2})
	if len(invalid) > 0 {
		var str strings.Builder
		str.WriteString("the following team names are invalid:")
		for i := range invalid {
			str.WriteString(fmt.Sprintf(" '%s'", invalid[i]))
		}
		return "", errors.New(str.String())
	}
	team1, team2 := matched[0], matched[1]

	var response strings.Builder
	response.WriteString(fmt.Sprintf("%s vs %s:\n", team1.Name, team2.Name))
	found := false
	for _, s := range a.Series.AllSeries() {
		if !s.Involves(team1) || !s.Involves(team2) {
			continue
		}
		found = true
		claimed := ""
		if s.Exhausted() {
			claimed = " (used)"
		}
		response.WriteString(fmt.Sprintf("- %s %d - %d %s%s\n", s.Team1.Name, s.RScore1, s.RScore2, s.Team2.Name, claimed))
	}
	if !found {
		response.WriteString("No series on record\n")
	}
	return response.String(), nil
}

// formatResult renders one matchup result in the report style used across the package
func formatResult(r *bracket.Result) string {
	return fmt.Sprintf("%s %d - %d %s (Winner: %s)", r.Team1.Name, r.RScore1, r.RScore2, r.Team2.Name, r.Winner.Name)
}
