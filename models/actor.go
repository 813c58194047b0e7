package models

// Capability is a single permission an authenticated actor may hold.
type Capability string

const (
	CanConfigureAvailability Capability = "configure_availability"
	CanRespondToBooking      Capability = "respond_to_booking"
	CanRequestBooking        Capability = "request_booking"
	CanReview                Capability = "review"
	CanManageCredentials     Capability = "manage_credentials"
)

var roleCapabilities = map[UserType][]Capability{
	UserTypeTherapist: {CanConfigureAvailability, CanRespondToBooking, CanReview, CanManageCredentials},
	UserTypeClient:    {CanRequestBooking, CanReview},
}

// Actor is the verified caller of an operation. It is resolved once at the
// HTTP boundary and passed down to services.
type Actor struct {
	ID    string
	Email string
	Role  UserType
	caps  map[Capability]struct{}
}

// NewActor builds an actor with the capability set of its role.
func NewActor(id, email string, role UserType) Actor {
	caps := make(map[Capability]struct{})
	for _, c := range roleCapabilities[role] {
		caps[c] = struct{}{}
	}
	return Actor{ID: id, Email: email, Role: role, caps: caps}
}

// Can reports whether the actor holds capability c.
func (a Actor) Can(c Capability) bool {
	_, ok := a.caps[c]
	return ok
}

// IsTherapist reports whether the actor acts as a service provider.
func (a Actor) IsTherapist() bool {
	return a.Role == UserTypeTherapist
}
