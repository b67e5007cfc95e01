/* errors.go
 * Contains the sentinel errors surfaced by bracket evaluation
 * Authors: Zachary Bower
 */

package bracket

import "errors"

var (
	// ErrNoSeriesForMatchup is returned when a matchup resolves both teams but no
	// unclaimed series exists between them. It fails the enclosing step and the model
	ErrNoSeriesForMatchup = errors.New("no series registered for matchup")

	// ErrUnresolvedForwardReference is returned when a deferred reference points at
	// a step that has not produced a result yet. Always a model-construction bug
	ErrUnresolvedForwardReference = errors.New("unresolved forward reference")

	// ErrModelAlreadyEvaluating is returned when steps are appended after
	// evaluation has started
	ErrModelAlreadyEvaluating = errors.New("model is already evaluating")
)
