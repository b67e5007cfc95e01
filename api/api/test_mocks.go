/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package
 * Authors: Zachary Bower
 */

package api

import (
	"context"

	"bracket-engine/api/store"

	"go.mongodb.org/mongo-driver/mongo"
)

// MockStore implements the store Interface for testing
type MockStore struct {
	// Storage for mock data
	BracketResult  store.BracketRecord
	Standings      store.StandingsRecord
	HasBracket     bool
	HasStandings   bool

	// Error injection for testing error paths
	StoreBracketResultError error
	FetchBracketResultError error
	StoreStandingsError     error
	FetchStandingsError     error

	// Tournament info
	TournamentName string
	StageName      string
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// mockClient implements the minimal Client interface needed for tests
type mockClient struct{}

func (m *mockClient) Disconnect(ctx context.Context) error {
	return nil
}

// NewMockStore creates a new MockStore with default values
func NewMockStore(tournament string, stage string) *MockStore {
	return &MockStore{
		TournamentName: tournament,
		StageName:      stage,
	}
}

// Ensure MockStore implements the store Interface
var _ store.Interface = (*MockStore)(nil)

// StoreBracketResult stores the record in memory
func (m *MockStore) StoreBracketResult(record store.BracketRecord) error {
	if m.StoreBracketResultError != nil {
		return m.StoreBracketResultError
	}
	m.BracketResult = record
	m.HasBracket = true
	return nil
}

// FetchBracketResult returns the in-memory record, or mongo.ErrNoDocuments if none was stored
func (m *MockStore) FetchBracketResult() (store.BracketRecord, error) {
	if m.FetchBracketResultError != nil {
		return store.BracketRecord{}, m.FetchBracketResultError
	}
	if !m.HasBracket {
		return store.BracketRecord{}, mongo.ErrNoDocuments
	}
	return m.BracketResult, nil
}

// StoreStandings stores the record in memory
func (m *MockStore) StoreStandings(record store.StandingsRecord) error {
	if m.StoreStandingsError != nil {
		return m.StoreStandingsError
	}
	m.Standings = record
	m.HasStandings = true
	return nil
}

// FetchStandings returns the in-memory record, or mongo.ErrNoDocuments if none was stored
func (m *MockStore) FetchStandings() (store.StandingsRecord, error) {
	if m.FetchStandingsError != nil {
		return store.StandingsRecord{}, m.FetchStandingsError
	}
	if !m.HasStandings {
		return store.StandingsRecord{}, mongo.ErrNoDocuments
	}
	return m.Standings, nil
}

// GetTournament returns the tournament name
func (m *MockStore) GetTournament() string {
	return m.TournamentName
}

// GetStage returns the tournament stage name
func (m *MockStore) GetStage() string {
	return m.StageName
}

// GetDatabase returns a mock database
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return &mockDatabase{name: "mock_db"}
}

// GetClient returns a mock client
func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}
