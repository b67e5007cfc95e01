/* model.go
 * Contains the BracketModel struct: an ordered, named sequence of matchups and match sets
 * evaluated strictly in declaration order
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

// State tracks where a model is in its lifecycle. The only transitions are
// Unevaluated -> Evaluating -> Complete or Failed
type State int

const (
	StateUnevaluated State = iota
	StateEvaluating
	StateComplete
	StateFailed
)

// StepResult unifies the result types of the two node kinds. Concrete types are
// *Result ("matchup") and *SetResult ("matchset")
type StepResult interface {
	GetType() string
}

// Node is a bracket step: either a single Matchup or a MatchSet
type Node interface {
	calculateStep(tc *team.Container, sc *series.Container, df *diff.Differentials) (StepResult, error)
}

func (m *Matchup) calculateStep(tc *team.Container, sc *series.Container, df *diff.Differentials) (StepResult, error) {
	result, err := m.Calculate(tc, sc, df)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (ms *MatchSet) calculateStep(tc *team.Container, sc *series.Container, df *diff.Differentials) (StepResult, error) {
	result, err := ms.Calculate(tc, sc, df)
	if err != nil {
		return nil, err
	}
	return result, nil
}

type step struct {
	name string
	node Node
}

// BracketModel is an ordered mapping from step name to node. Insertion order is
// evaluation order. Results accumulate monotonically during one Calculate pass;
// a changed upstream result never auto-propagates, re-running from scratch with
// fresh containers is the correctness contract
type BracketModel struct {
	steps   []step
	names   map[string]bool
	results map[string]StepResult
	state   State

	tc *team.Container
	sc *series.Container
	df *diff.Differentials
	sg *seeding.Seeding
}

// NewModel creates an empty BracketModel in the Unevaluated state
func NewModel() *BracketModel {
	return &BracketModel{
		names:   make(map[string]bool),
		results: make(map[string]StepResult),
	}
}

// Next appends a step under a unique name. Steps can only be appended before
// evaluation starts
// Preconditions: Receives a step name and a Matchup or MatchSet node
// Postconditions: Step is appended, or ErrModelAlreadyEvaluating once Calculate has been called,
// or an error for a duplicate name
func (m *BracketModel) Next(name string, node Node) error {
	if m.state != StateUnevaluated {
		return fmt.Errorf("%w: cannot append step \"%s\"", ErrModelAlreadyEvaluating, name)
	}
	if m.names[name] {
		return fmt.Errorf("step \"%s\" already registered", name)
	}
	m.steps = append(m.steps, step{name: name, node: node})
	m.names[name] = true
	return nil
}

// Calculate evaluates every step in insertion order against the given context.
// Deferred references are resolved at the moment each step runs, so earlier
// results are visible and later ones are not. The first failing step transitions
// the model to Failed; results of already-completed steps stay readable and
// applied differentials are not rolled back
// Preconditions: Receives the initial Seeding, the team Container, the series Container and the running Differentials
// Postconditions: Model is Complete and nil is returned, or the model is Failed and the error names the failing step
func (m *BracketModel) Calculate(sg *seeding.Seeding, tc *team.Container, sc *series.Container, df *diff.Differentials) error {
	if m.state == StateEvaluating {
		return ErrModelAlreadyEvaluating
	}
	m.sg = sg
	m.tc = tc
	m.sc = sc
	m.df = df
	m.results = make(map[string]StepResult)
	m.state = StateEvaluating

	for _, s := range m.steps {
		result, err := s.node.calculateStep(tc, sc, df)
		if err != nil {
			m.state = StateFailed
			return fmt.Errorf("step \"%s\": %w", s.name, err)
		}
		m.results[s.name] = result
	}
	m.state = StateComplete
	return nil
}

// State returns the model's lifecycle state
func (m *BracketModel) State() State {
	return m.state
}

// Complete reports whether every registered step produced a result
func (m *BracketModel) Complete() bool {
	return m.state == StateComplete
}

// Result returns the result stored under the given step name, if that step has run
func (m *BracketModel) Result(name string) (StepResult, bool) {
	result, ok := m.results[name]
	return result, ok
}

// StepNames returns the step names in insertion (evaluation) order
func (m *BracketModel) StepNames() []string {
	names := make([]string, len(m.steps))
	for i, s := range m.steps {
		names[i] = s.name
	}
	return names
}

// Seeding returns the initial seeding the model was calculated with
func (m *BracketModel) Seeding() *seeding.Seeding {
	return m.sg
}

// Differentials returns the running ledger the model was calculated with
func (m *BracketModel) Differentials() *diff.Differentials {
	return m.df
}

// Winner returns a deferred team reference to the winner of a matchup step.
// Resolving it before that step has run surfaces ErrUnresolvedForwardReference
func (m *BracketModel) Winner(name string) team.Ref {
	return team.Deferred(func() (team.Ref, error) {
		result, err := m.matchupResult(name)
		if err != nil {
			return team.Ref{}, err
		}
		return team.ByTeam(result.Winner), nil
	})
}

// Loser returns a deferred team reference to the loser of a matchup step.
// Resolving it before that step has run surfaces ErrUnresolvedForwardReference
func (m *BracketModel) Loser(name string) team.Ref {
	return team.Deferred(func() (team.Ref, error) {
		result, err := m.matchupResult(name)
		if err != nil {
			return team.Ref{}, err
		}
		return team.ByTeam(result.Loser), nil
	})
}

// WinnersOf returns a deferred seeding reference to the winners of a match-set step,
// in that step's pairing order
func (m *BracketModel) WinnersOf(name string) SeedRef {
	return DeferredSeeding(func() (*seeding.Seeding, error) {
		result, err := m.setResult(name)
		if err != nil {
			return nil, err
		}
		return result.Winners, nil
	})
}

// LosersOf returns a deferred seeding reference to the losers of a match-set step,
// in that step's pairing order
func (m *BracketModel) LosersOf(name string) SeedRef {
	return DeferredSeeding(func() (*seeding.Seeding, error) {
		result, err := m.setResult(name)
		if err != nil {
			return nil, err
		}
		return result.Losers, nil
	})
}

func (m *BracketModel) matchupResult(name string) (*Result, error) {
	stepResult, ok := m.results[name]
	if !ok {
		return nil, fmt.Errorf("%w: step \"%s\" has not been evaluated", ErrUnresolvedForwardReference, name)
	}
	result, ok := stepResult.(*Result)
	if !ok {
		return nil, fmt.Errorf("step \"%s\" is not a single matchup", name)
	}
	return result, nil
}

func (m *BracketModel) setResult(name string) (*SetResult, error) {
	stepResult, ok := m.results[name]
	if !ok {
		return nil, fmt.Errorf("%w: step \"%s\" has not been evaluated", ErrUnresolvedForwardReference, name)
	}
	result, ok := stepResult.(*SetResult)
	if !ok {
		return nil, fmt.Errorf("step \"%s\" is not a match set", name)
	}
	return result, nil
}
