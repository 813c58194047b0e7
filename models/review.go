package models

import "time"

// Review is a rating one party of a session leaves about the other.
type Review struct {
	ID          string    `bson:"id" json:"id"`
	Author      string    `bson:"author" json:"author"`
	Subject     string    `bson:"subject" json:"subject"`
	SubjectType UserType  `bson:"subjectType" json:"subjectType"`
	Rating      int       `bson:"rating" json:"rating"`
	Message     string    `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

type ReviewInput struct {
	Subject string `json:"subject"`
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

// TherapistDetails is the public directory page of a therapist.
type TherapistDetails struct {
	Profile        PublicProfile       `json:"profile"`
	Schedule       []AvailabilityEntry `json:"schedule"`
	Reviews        []Review            `json:"reviews"`
	Certifications []Certification     `json:"certifications"`
	AverageRating  float64             `json:"averageRating"`
}

// TherapistQuery filters the directory.
type TherapistQuery struct {
	Name          string
	Lat           *float64
	Lng           *float64
	MaxDistanceKm float64
}
