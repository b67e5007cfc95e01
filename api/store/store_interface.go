/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 * Authors: Zachary Bower
 */

package store

import (
	"context"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	StoreBracketResult(record BracketRecord) error
	FetchBracketResult() (BracketRecord, error)
	StoreStandings(record StandingsRecord) error
	FetchStandings() (StandingsRecord, error)

	// Getter methods for accessing fields
	GetTournament() string
	GetStage() string
	GetDatabase() interface{ Name() string }
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// GetTournament returns the tournament name
func (s *Store) GetTournament() string {
	return s.Tournament
}

// GetStage returns the tournament stage name
func (s *Store) GetStage() string {
	return s.Stage
}

// GetDatabase returns the database instance
func (s *Store) GetDatabase() interface{ Name() string } {
	return s.Database
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
