/* store.go
 * Contains the Store struct and NewStore function. The methods for this package were split into two files:
 * bracket_results and standings. Each of these files contain methods for interacting with that
 * part of the database
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Tournament  string
	Stage       string
	Collections struct {
		BracketResults *mongo.Collection
		Standings      *mongo.Collection
	}
}

// Function for initialsing Store. Sets global values and initialises db connection
// Preconditions: Receives strings containing the following: dbName, mongoURI, tournament and stage
// Postconditions: Sets collection values and returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string, tournament string, stage string) (*Store, error) {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	if tournament == "" || stage == "" {
		return nil, fmt.Errorf("tournament or stage cannot be empty")
	}

	return &Store{
		Client:     client,
		Database:   db,
		Tournament: tournament,
		Stage:      stage,
		Collections: struct {
			BracketResults *mongo.Collection
			Standings      *mongo.Collection
		}{
			BracketResults: db.Collection("bracket_results"),
			Standings:      db.Collection("standings"),
		},
	}, nil
}
