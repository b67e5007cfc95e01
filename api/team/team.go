/* team.go
 * Contains the Team struct and the Ref type used to identify teams throughout the engine
 * Authors: Zachary Bower
 */

package team

// Team represents a single registered team. Identity is by Id; Name and Aliases
// are alternative handles that resolve to the same record
type Team struct {
	Id      int
	Name    string
	Aliases []string
}

// New creates a new Team with the given id, primary name and any number of aliases
// Preconditions: Receives an int id, a name string and zero or more alias strings
// Postconditions: Returns a pointer to the new Team. Uniqueness is not checked here, that is the container's job
func New(id int, name string, aliases ...string) *Team {
	return &Team{
		Id:      id,
		Name:    name,
		Aliases: aliases,
	}
}

// Ref is a team reference that has not been resolved yet. It holds exactly one of:
// a known Team, a numeric id, a name/alias string, or a deferred function that
// produces another Ref when called (e.g. "winner of an earlier series").
// Construct one with ByTeam, ById, ByName or Deferred; resolve it with Container.Resolve
type Ref struct {
	team     *Team
	id       int
	name     string
	deferred func() (Ref, error)
	kind     refKind
}

type refKind int

const (
	refTeam refKind = iota
	refId
	refName
	refDeferred
)

// ByTeam creates a Ref wrapping an already-known Team
func ByTeam(t *Team) Ref {
	return Ref{team: t, kind: refTeam}
}

// ById creates a Ref that resolves by numeric team id
func ById(id int) Ref {
	return Ref{id: id, kind: refId}
}

// ByName creates a Ref that resolves by primary name or alias (exact, case sensitive)
func ByName(name string) Ref {
	return Ref{name: name, kind: refName}
}

// Deferred creates a Ref whose value is not known until resolution time.
// The function is invoked exactly once per Resolve call and never cached,
// so a deferred ref can legitimately produce different teams on different calls
func Deferred(fn func() (Ref, error)) Ref {
	return Ref{deferred: fn, kind: refDeferred}
}
