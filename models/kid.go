package models

import "time"

// Kid is a dependant a client can book sessions for.
type Kid struct {
	ID        string    `bson:"id" json:"id"`
	User      string    `bson:"user" json:"user"`
	Name      string    `bson:"name" json:"name"`
	Age       string    `bson:"age" json:"age"`
	Summary   string    `bson:"summary" json:"summary"`
	Disorder  string    `bson:"disorder" json:"disorder"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type KidInput struct {
	Name     string `json:"name"`
	Age      string `json:"age"`
	Summary  string `json:"summary"`
	Disorder string `json:"disorder"`
}
