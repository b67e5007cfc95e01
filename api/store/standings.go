/* standings.go
 * Contains the methods for interacting with the standings collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Function to store a standings snapshot in the DB, replacing any previous snapshot for this tournament stage
// Preconditions: Receives a StandingsRecord. Tournament and Stage are filled in from the store if empty
// Postconditions: Record is upserted into the standings collection, or an error is returned
func (s *Store) StoreStandings(record StandingsRecord) error {
	if record.Tournament == "" {
		record.Tournament = s.Tournament
	}
	if record.Stage == "" {
		record.Stage = s.Stage
	}
	record.UpdatedAt = time.Now().Unix()

	filter := bson.D{{Key: "tournament", Value: record.Tournament}, {Key: "stage", Value: record.Stage}}
	opts := options.Replace().SetUpsert(true)

	_, err := s.Collections.Standings.ReplaceOne(context.TODO(), filter, record, opts)
	if err != nil {
		return fmt.Errorf("error storing standings: %w", err)
	}
	return nil
}

// Function to retrieve the stored standings snapshot for this tournament stage from the DB
// Preconditions: None
// Postconditions: Returns the StandingsRecord, or mongo.ErrNoDocuments if nothing is stored, or another error if it occurs
func (s *Store) FetchStandings() (StandingsRecord, error) {
	filter := bson.D{{Key: "tournament", Value: s.Tournament}, {Key: "stage", Value: s.Stage}}

	var record StandingsRecord
	err := s.Collections.Standings.FindOne(context.TODO(), filter).Decode(&record)
	if err != nil {
		return StandingsRecord{}, err
	}
	return record, nil
}
