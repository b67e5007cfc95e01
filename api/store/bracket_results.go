/* bracket_results.go
 * Contains the methods for interacting with the bracket_results collection
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

// Function to store a calculated bracket in the DB, replacing any previous document for this tournament stage
// Preconditions: Receives a BracketRecord. Tournament and Stage are filled in from the store if empty
// Postconditions: Record is upserted into the bracket_results collection, or an error is returned
func (s *Store) StoreBracketResult(record BracketRecord) error {
	if record.Tournament == "" {
		record.Tournament = s.Tournament
	}
	if record.Stage == "" {
		record.Stage = s.Stage
	}
	record.UpdatedAt = time.Now().Unix()

	filter := bson.D{{Key: "tournament", Value: record.Tournament}, {Key: "stage", Value: record.Stage}}
	opts := options.Replace().SetUpsert(true)

	_, err := s.Collections.BracketResults.ReplaceOne(context.TODO(), filter, record, opts)
	if err != nil {
		return fmt.Errorf("error storing bracket result: %w", err)
	}
	return nil
}

// Function to retrieve the stored bracket for this tournament stage from the DB
// Preconditions: None
// Postconditions: Returns the BracketRecord, or mongo.ErrNoDocuments if nothing is stored, or another error if it occurs
func (s *Store) FetchBracketResult() (BracketRecord, error) {
	filter := bson.D{{Key: "tournament", Value: s.Tournament}, {Key: "stage", Value: s.Stage}}

	var record BracketRecord
	err := s.Collections.BracketResults.FindOne(context.TODO(), filter).Decode(&record)
	if err != nil {
		return BracketRecord{}, err
	}
	return record, nil
}
