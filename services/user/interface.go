package user

import (
	"context"
	"time"

	"doctospeech/database/repository"
	"doctospeech/models"
)

type UserService interface {
	// Authentication
	Signup(ctx context.Context, in SignupInput) (*AuthResponse, error)
	Login(ctx context.Context, in LoginInput) (*AuthResponse, error)
	Logout(ctx context.Context, token, deviceToken string) error
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) (*AuthResponse, error)
	ResetPassword(ctx context.Context, actor models.Actor, newPassword string) error

	// Profile
	GetProfile(ctx context.Context, actor models.Actor) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.PublicProfile, error)
	CreateProfile(ctx context.Context, actor models.Actor, in models.ProfileInput) (*models.User, error)
	UpdateProfile(ctx context.Context, actor models.Actor, in models.ProfileInput) (*models.User, error)
	UpdateLocation(ctx context.Context, actor models.Actor, in LocationInput) (*models.User, error)
	ChangePassword(ctx context.Context, actor models.Actor, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, actor models.Actor, token string) error

	// Kids
	ListKids(ctx context.Context, actor models.Actor) ([]models.Kid, error)
	AddKid(ctx context.Context, actor models.Actor, in models.KidInput) (*models.Kid, error)
	DeleteKid(ctx context.Context, actor models.Actor, kidID string) error

	// Reviews
	Review(ctx context.Context, actor models.Actor, in models.ReviewInput) (*models.Review, error)
}

// TokenRevoker records logged-out tokens.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenHash string, expiresAt time.Time) error
}

// OTPIssuer keeps the pending email verification code of each user.
type OTPIssuer interface {
	Issue(ctx context.Context, userID string) (string, error)
	Verify(ctx context.Context, userID, code string) error
}

// OTPSender delivers a verification code to an address.
type OTPSender interface {
	SendOTP(ctx context.Context, email, code string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Users          repository.UserRepository
	Bookings       repository.BookingRepository
	Availability   repository.AvailabilityRepository
	Transactions   repository.TransactionRepository
	Reviews        repository.ReviewRepository
	Kids           repository.KidRepository
	Devices        repository.DeviceRepository
	Certifications repository.CertificationRepository
	Tokens         TokenRevoker
	OTPs           OTPIssuer
	Sender         OTPSender
	JWTSecret      string
	TokenTTL       time.Duration
}

func NewUserService(repos *repository.Repositories, tokens TokenRevoker, otps OTPIssuer, sender OTPSender, jwtSecret string, tokenTTL time.Duration) *DefaultUserService {
	return &DefaultUserService{
		Users:          repos.Users,
		Bookings:       repos.Bookings,
		Availability:   repos.Availability,
		Transactions:   repos.Transactions,
		Reviews:        repos.Reviews,
		Kids:           repos.Kids,
		Devices:        repos.Devices,
		Certifications: repos.Certifications,
		Tokens:         tokens,
		OTPs:           otps,
		Sender:         sender,
		JWTSecret:      jwtSecret,
		TokenTTL:       tokenTTL,
	}
}

// SignupInput registers an account. Device is optional.
type SignupInput struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	UserType models.UserType `json:"userType"`
	models.DeviceInput
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	models.DeviceInput
}

// AuthResponse contains the token and the signed-in user. Token is empty
// until the email is verified.
type AuthResponse struct {
	Token   string       `json:"token,omitempty"`
	User    *models.User `json:"user"`
	Message string       `json:"message,omitempty"`
}

// LocationInput carries coordinates from the client. Both are required.
type LocationInput struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
}
