/* container.go
 * Contains the Container struct used to register teams and resolve identifiers to canonical Team records
 * Authors: Zachary Bower
 */

package team

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrUnknownIdentifier is returned when an identifier does not resolve to a registered team
var ErrUnknownIdentifier = errors.New("unknown team identifier")

// Container holds the pool of registered teams and the indexes used to resolve
// any identifier (id, name or alias) back to the canonical Team record
type Container struct {
	teams  []*Team
	byId   map[int]int
	byName map[string]int
}

// NewContainer creates an empty team Container
func NewContainer() *Container {
	return &Container{
		byId:   make(map[int]int),
		byName: make(map[string]int),
	}
}

// Register adds a new team to the container
// Preconditions: Receives a pointer to a Team
// Postconditions: Team is added and indexed by id, name and every alias, or an error is returned if any handle is already taken
func (c *Container) Register(t *Team) error {
	if _, exists := c.byId[t.Id]; exists {
		return fmt.Errorf("team with id \"%d\" already exists", t.Id)
	}
	if _, exists := c.byName[t.Name]; exists {
		return fmt.Errorf("team with name \"%s\" already exists", t.Name)
	}
	for _, alias := range t.Aliases {
		if _, exists := c.byName[alias]; exists {
			return fmt.Errorf("team with alias \"%s\" already exists", alias)
		}
	}

	index := len(c.teams)
	c.teams = append(c.teams, t)
	c.byId[t.Id] = index
	c.byName[t.Name] = index
	for _, alias := range t.Aliases {
		c.byName[alias] = index
	}
	return nil
}

// GetById returns the team with the given numeric id
// Preconditions: Receives an int id
// Postconditions: Returns the canonical Team, or ErrUnknownIdentifier if no team has that id
func (c *Container) GetById(id int) (*Team, error) {
	index, ok := c.byId[id]
	if !ok {
		return nil, fmt.Errorf("%w: no team with id \"%d\"", ErrUnknownIdentifier, id)
	}
	return c.teams[index], nil
}

// GetByName returns the team whose primary name or alias exactly matches the given string
// Preconditions: Receives a name string. Matching is case sensitive
// Postconditions: Returns the canonical Team, or ErrUnknownIdentifier if nothing matches
func (c *Container) GetByName(name string) (*Team, error) {
	index, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: no team with name or alias \"%s\"", ErrUnknownIdentifier, name)
	}
	return c.teams[index], nil
}

// Resolve resolves a Ref to its canonical Team. Deferred refs are evaluated
// eagerly, exactly once per call, with no caching between calls
// Preconditions: Receives a Ref constructed with ByTeam, ById, ByName or Deferred
// Postconditions: Returns the canonical Team, or an error if resolution fails at any layer
func (c *Container) Resolve(ref Ref) (*Team, error) {
	switch ref.kind {
	case refTeam:
		if ref.team == nil {
			return nil, fmt.Errorf("%w: nil team reference", ErrUnknownIdentifier)
		}
		return ref.team, nil
	case refId:
		return c.GetById(ref.id)
	case refName:
		return c.GetByName(ref.name)
	case refDeferred:
		inner, err := ref.deferred()
		if err != nil {
			return nil, err
		}
		return c.Resolve(inner)
	default:
		return nil, fmt.Errorf("%w: unrecognised reference", ErrUnknownIdentifier)
	}
}

// Teams returns the registered teams in registration order
func (c *Container) Teams() []*Team {
	out := make([]*Team, len(c.teams))
	copy(out, c.teams)
	return out
}

// Names returns the primary names of all registered teams in registration order
func (c *Container) Names() []string {
	names := make([]string, len(c.teams))
	for i, t := range c.teams {
		names[i] = t.Name
	}
	return names
}

// Len returns the number of registered teams
func (c *Container) Len() int {
	return len(c.teams)
}

// MatchNames processes team names from user input and checks if they are valid.
// Unlike Resolve, matching here is fuzzy and case insensitive, so this is only for
// user-facing input paths, never for identity resolution inside the engine
// Preconditions: Receives a string slice of input names
// Postconditions: Returns a slice of canonical Teams for the matched inputs and a slice of the inputs that matched nothing
func (c *Container) MatchNames(inputs []string) ([]*Team, []string) {
	var matched []*Team
	var invalid []string

	// Build a lowercase lookup over every registered handle
	lookup := make(map[string]int)
	var handles []string
	for i, t := range c.teams {
		lower := strings.ToLower(t.Name)
		lookup[lower] = i
		handles = append(handles, lower)
		for _, alias := range t.Aliases {
			lowerAlias := strings.ToLower(alias)
			lookup[lowerAlias] = i
			handles = append(handles, lowerAlias)
		}
	}

	for _, input := range inputs {
		lowerInput := strings.ToLower(input)
		fuzzyResults := fuzzy.RankFind(lowerInput, handles)
		if len(fuzzyResults) == 0 {
			invalid = append(invalid, input)
			continue
		}

		// If there are multiple matches, prefer an exact match with the input
		target := ""
		for i := range fuzzyResults {
			if fuzzyResults[i].Target == lowerInput {
				target = fuzzyResults[i].Target
			}
		}
		if target == "" {
			target = fuzzyResults[0].Target
		}
		matched = append(matched, c.teams[lookup[target]])
	}
	return matched, invalid
}
