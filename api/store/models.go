/* models.go
 * This file contain the structs that relate to DB objects
 * Authors: Zachary Bower
 */

package store

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StepRecord represents one resolved matchup inside a stored bracket result
type StepRecord struct {
	Step    string `bson:"step,omitempty"`
	Team1   string `bson:"team1,omitempty"`
	Team2   string `bson:"team2,omitempty"`
	RScore1 int    `bson:"rscore1"`
	RScore2 int    `bson:"rscore2"`
	VScore1 int    `bson:"vscore1"`
	VScore2 int    `bson:"vscore2"`
	Winner  string `bson:"winner,omitempty"`
	Loser   string `bson:"loser,omitempty"`
}

// BracketRecord represents the way a calculated bracket is stored in the DB.
// One document is kept per tournament stage and replaced on recalculation
type BracketRecord struct {
	Id         primitive.ObjectID `bson:"_id,omitempty"`
	Tournament string             `bson:"tournament,omitempty"`
	Stage      string             `bson:"stage,omitempty"`
	Complete   bool               `bson:"complete"`
	Steps      []StepRecord       `bson:"steps,omitempty"`
	UpdatedAt  int64              `bson:"updated_at,omitempty"`
}

// StandingEntry represents one team's row in a standings snapshot
type StandingEntry struct {
	Rank          int    `bson:"rank"`
	Team          string `bson:"team,omitempty"`
	RealGame      int    `bson:"real_game"`
	VirtualGame   int    `bson:"virtual_game"`
	RealSeries    int    `bson:"real_series"`
	VirtualSeries int    `bson:"virtual_series"`
}

// StandingsRecord represents the way a standings snapshot is stored in the DB
type StandingsRecord struct {
	Id         primitive.ObjectID `bson:"_id,omitempty"`
	Tournament string             `bson:"tournament,omitempty"`
	Stage      string             `bson:"stage,omitempty"`
	Entries    []StandingEntry    `bson:"entries,omitempty"`
	UpdatedAt  int64              `bson:"updated_at,omitempty"`
}
