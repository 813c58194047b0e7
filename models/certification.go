package models

import "time"

// CertificationMedia points at an uploaded scan of the certificate.
type CertificationMedia struct {
	MediaType string `bson:"mediaType" json:"mediaType"`
	URL       string `bson:"url" json:"url"`
}

// Certification is a qualification a therapist lists on their profile.
type Certification struct {
	ID             string              `bson:"id" json:"id"`
	UserID         string              `bson:"userId" json:"userId"`
	DegreeName     string              `bson:"degreeName" json:"degreeName"`
	InstituteName  string              `bson:"instituteName" json:"instituteName"`
	CompletionYear string              `bson:"completionYear" json:"completionYear"`
	Media          *CertificationMedia `bson:"media,omitempty" json:"media,omitempty"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`
}

type CertificationInput struct {
	DegreeName     string              `json:"degreeName"`
	InstituteName  string              `json:"instituteName"`
	CompletionYear string              `json:"completionYear"`
	Media          *CertificationMedia `json:"media"`
}
