package models

import "time"

type DeviceType string

const (
	DeviceAndroid DeviceType = "Android"
	DeviceIOS     DeviceType = "IOS"
	DevicePostman DeviceType = "Postman"
)

func (t DeviceType) Valid() bool {
	return t == DeviceAndroid || t == DeviceIOS || t == DevicePostman
}

// Device links a push token to the account that last signed in with it.
// A token belongs to at most one account.
type Device struct {
	ID          string     `bson:"id" json:"id"`
	UserID      string     `bson:"userId" json:"userId"`
	DeviceToken string     `bson:"deviceToken" json:"deviceToken"`
	DeviceType  DeviceType `bson:"deviceType" json:"deviceType"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// DeviceInput is the optional device part of signup and login.
type DeviceInput struct {
	DeviceToken string     `json:"deviceToken"`
	DeviceType  DeviceType `json:"deviceType"`
}
