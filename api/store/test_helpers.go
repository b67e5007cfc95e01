/* test_helpers.go
 * Contains test helper functions for store package tests
 * Authors: Zachary Bower
 */

package store

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMockStore creates a Store instance for testing purposes.
// This can be used with a real test database or in-memory MongoDB.
func NewMockStore(dbName string, mongoURI string) (*Store, error) {
	return NewStore(dbName, mongoURI, "Test/Tournament/2025", "test_stage")
}

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	store, err := NewMockStore("test_brackets", mongoURI)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if store.Client != nil {
			// Drop test database
			store.Database.Drop(context.TODO())
			// Disconnect client
			store.Client.Disconnect(context.TODO())
		}
	}

	return store, cleanup, nil
}

// CreateTestClient creates a test MongoDB client.
func CreateTestClient(mongoURI string) (*mongo.Client, error) {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	return client, nil
}

// CreateSampleBracketRecord creates sample BracketRecord data for testing.
func CreateSampleBracketRecord() BracketRecord {
	return BracketRecord{
		Tournament: "Test/Tournament/2025",
		Stage:      "test_stage",
		Complete:   true,
		Steps: []StepRecord{
			{
				Step:    "semi_1",
				Team1:   "Team A",
				Team2:   "Team B",
				RScore1: 2,
				RScore2: 1,
				VScore1: 2,
				VScore2: 1,
				Winner:  "Team A",
				Loser:   "Team B",
			},
			{
				Step:    "semi_2",
				Team1:   "Team C",
				Team2:   "Team D",
				RScore1: 0,
				RScore2: 2,
				VScore1: 0,
				VScore2: 2,
				Winner:  "Team D",
				Loser:   "Team C",
			},
		},
	}
}
