package models

import "time"

type VideoType string

const (
	VideoFrontView VideoType = "frontView"
	VideoFullView  VideoType = "fullView"
	VideoSideView  VideoType = "sideView"
)

func (v VideoType) Valid() bool {
	return v == VideoFrontView || v == VideoFullView || v == VideoSideView
}

type Video struct {
	Type        VideoType `bson:"type" json:"type"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	URL         string    `bson:"url" json:"url"`
}

// Alphabet is one letter of a speech resource with its practice videos.
type Alphabet struct {
	Letter         string  `bson:"letter" json:"letter"`
	AcquisitionAge string  `bson:"acquisitionAge,omitempty" json:"acquisitionAge,omitempty"`
	Videos         []Video `bson:"videos" json:"videos"`
	Locked         bool    `bson:"-" json:"locked"`
}

// Resource is a speech-practice course.
type Resource struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	TotalTasks  int        `bson:"totalTasks" json:"totalTasks"`
	Alphabets   []Alphabet `bson:"alphabets" json:"alphabets,omitempty"`
	// Locked is per viewer: part of the resource needs the premium entitlement.
	Locked    bool      `bson:"-" json:"locked"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type AuthorDetails struct {
	Name    string `bson:"name" json:"name"`
	Picture string `bson:"picture,omitempty" json:"picture,omitempty"`
}

// Ebook is premium reading material.
type Ebook struct {
	ID            string        `bson:"id" json:"id"`
	Picture       string        `bson:"picture,omitempty" json:"picture,omitempty"`
	Title         string        `bson:"title" json:"title"`
	Description   string        `bson:"description,omitempty" json:"description,omitempty"`
	URL           string        `bson:"url" json:"url"`
	AuthorDetails AuthorDetails `bson:"authorDetails" json:"authorDetails"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
}
