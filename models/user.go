package models

import "time"

// UserType distinguishes clients from service providers.
type UserType string

const (
	UserTypeClient    UserType = "User"
	UserTypeTherapist UserType = "Therapist"
)

// Valid reports whether t is a known account type.
func (t UserType) Valid() bool {
	return t == UserTypeClient || t == UserTypeTherapist
}

// Entitlement is the subscription tier that gates premium content.
type Entitlement string

const (
	EntitlementFreemium Entitlement = "FREEMIUM"
	EntitlementPremium  Entitlement = "PREMIUM"
)

// GeoLocation is stored as a GeoJSON point so it can carry a 2dsphere index.
type GeoLocation struct {
	Type        string    `bson:"type" json:"type"`               // always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
}

// NewPoint builds a GeoJSON point from latitude and longitude.
func NewPoint(lat, lng float64, address string) *GeoLocation {
	return &GeoLocation{Type: "Point", Coordinates: []float64{lng, lat}, Address: address}
}

// User is a client or therapist account.
type User struct {
	ID                    string       `bson:"id" json:"id"`
	Email                 string       `bson:"email" json:"email"`
	PasswordHash          string       `bson:"passwordHash" json:"-"`
	FirstName             string       `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName              string       `bson:"lastName,omitempty" json:"lastName,omitempty"`
	PhoneNumber           string       `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	CountryCode           string       `bson:"countryCode,omitempty" json:"countryCode,omitempty"`
	SessionCharges        float64      `bson:"sessionCharges,omitempty" json:"sessionCharges,omitempty"`
	UserType              UserType     `bson:"userType" json:"userType"`
	Gender                string       `bson:"gender,omitempty" json:"gender,omitempty"`
	Age                   string       `bson:"age,omitempty" json:"age,omitempty"`
	ProfilePicture        string       `bson:"profilePicture" json:"profilePicture"`
	Speciality            []string     `bson:"speciality,omitempty" json:"speciality,omitempty"`
	Bio                   string       `bson:"bio,omitempty" json:"bio,omitempty"`
	IsVerified            bool         `bson:"isVerified" json:"isVerified"`
	IsProfileCompleted    bool         `bson:"isProfileCompleted" json:"isProfileCompleted"`
	IsSelectSlots         bool         `bson:"isSelectSlots" json:"isSelectSlots"`
	IsNotificationEnabled bool         `bson:"isNotificationEnabled" json:"isNotificationEnabled"`
	Type                  Entitlement  `bson:"type" json:"type"`
	StripeCustomerID      string       `bson:"stripeCustomerId,omitempty" json:"-"`
	Location              *GeoLocation `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt             time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// IsTherapist reports whether the account is a service provider.
func (u *User) IsTherapist() bool {
	return u != nil && u.UserType == UserTypeTherapist
}

// IsPremium reports whether the account holds the premium entitlement.
func (u *User) IsPremium() bool {
	return u != nil && u.Type == EntitlementPremium
}

// PublicProfile is what one party of a booking sees about the other.
type PublicProfile struct {
	ID             string       `json:"id"`
	FirstName      string       `json:"firstName,omitempty"`
	LastName       string       `json:"lastName,omitempty"`
	ProfilePicture string       `json:"profilePicture"`
	UserType       UserType     `json:"userType"`
	SessionCharges float64      `json:"sessionCharges,omitempty"`
	Speciality     []string     `json:"speciality,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	Gender         string       `json:"gender,omitempty"`
	Location       *GeoLocation `json:"location,omitempty"`
}

// Public strips private account fields.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		ProfilePicture: u.ProfilePicture,
		UserType:       u.UserType,
		SessionCharges: u.SessionCharges,
		Speciality:     u.Speciality,
		Bio:            u.Bio,
		Gender:         u.Gender,
		Location:       u.Location,
	}
}

// ProfileInput carries the editable profile fields. Nil pointers are left untouched.
type ProfileInput struct {
	FirstName             *string   `json:"firstName"`
	LastName              *string   `json:"lastName"`
	PhoneNumber           *string   `json:"phoneNumber"`
	CountryCode           *string   `json:"countryCode"`
	Gender                *string   `json:"gender"`
	Age                   *string   `json:"age"`
	ProfilePicture        *string   `json:"profilePicture"`
	SessionCharges        *float64  `json:"sessionCharges"`
	Speciality            *[]string `json:"speciality"`
	Bio                   *string   `json:"bio"`
	IsNotificationEnabled *bool     `json:"isNotificationEnabled"`
}
