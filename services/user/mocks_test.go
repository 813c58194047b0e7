package user

import (
	"context"

	"doctospeech/models"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) EnsureIndexes(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *mockUserRepo) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) SetSelectSlots(ctx context.Context, id string, selected bool) error {
	return m.Called(ctx, id, selected).Error(0)
}

func (m *mockUserRepo) SetEntitlement(ctx context.Context, id string, e models.Entitlement) error {
	return m.Called(ctx, id, e).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) FindTherapists(ctx context.Context, q models.TherapistQuery, limit int64) ([]models.User, error) {
	args := m.Called(ctx, q, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) EnsureIndexes(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingRepo) Transition(ctx context.Context, id string, t models.Transition) (*models.Booking, error) {
	args := m.Called(ctx, id, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingRepo) DeleteActive(ctx context.Context, id, bookedBy string) error {
	return m.Called(ctx, id, bookedBy).Error(0)
}

func (m *mockBookingRepo) SetPaid(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBookingRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) ListActiveTimeIDs(ctx context.Context, therapistID, date string) ([]string, error) {
	args := m.Called(ctx, therapistID, date)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockBookingRepo) ListByClient(ctx context.Context, clientID string, f models.BookingFilter) ([]models.Booking, error) {
	args := m.Called(ctx, clientID, f)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockBookingRepo) ListByTherapist(ctx context.Context, therapistID string, f models.BookingFilter) ([]models.Booking, error) {
	args := m.Called(ctx, therapistID, f)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockBookingRepo) CountByStatus(ctx context.Context, therapistID string) (map[models.BookingStatus]int64, error) {
	args := m.Called(ctx, therapistID)
	return args.Get(0).(map[models.BookingStatus]int64), args.Error(1)
}

type mockAvailabilityRepo struct {
	mock.Mock
}

func (m *mockAvailabilityRepo) EnsureIndexes(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *mockAvailabilityRepo) ListByTherapist(ctx context.Context, therapistID string) ([]models.AvailabilityEntry, error) {
	args := m.Called(ctx, therapistID)
	return args.Get(0).([]models.AvailabilityEntry), args.Error(1)
}

func (m *mockAvailabilityRepo) GetByDay(ctx context.Context, therapistID string, day models.Weekday) (*models.AvailabilityEntry, error) {
	args := m.Called(ctx, therapistID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AvailabilityEntry), args.Error(1)
}

func (m *mockAvailabilityRepo) FindByTimeID(ctx context.Context, therapistID, timeID string) (*models.AvailabilityEntry, error) {
	args := m.Called(ctx, therapistID, timeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AvailabilityEntry), args.Error(1)
}

func (m *mockAvailabilityRepo) Upsert(ctx context.Context, e *models.AvailabilityEntry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockAvailabilityRepo) DeleteDaysExcept(ctx context.Context, therapistID string, keep []models.Weekday) error {
	return m.Called(ctx, therapistID, keep).Error(0)
}

func (m *mockAvailabilityRepo) DeleteByTherapist(ctx context.Context, therapistID string) error {
	return m.Called(ctx, therapistID).Error(0)
}

type mockTransactionRepo struct {
	mock.Mock
}

func (m *mockTransactionRepo) EnsureIndexes(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *mockTransactionRepo) Create(ctx context.Context, tx *models.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *mockTransactionRepo) GetByPaymentIntent(ctx context.Context, id string) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) ListByPayer(ctx context.Context, payer string) ([]models.Transaction, error) {
	args := m.Called(ctx, payer)
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) ListByReceiver(ctx context.Context, receiver string) ([]models.Transaction, error) {
	args := m.Called(ctx, receiver)
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) SumByReceiver(ctx context.Context, receiver string) (float64, int64, error) {
	args := m.Called(ctx, receiver)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

func (m *mockTransactionRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) EnsureIndexes(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *mockReviewRepo) Create(ctx context.Context, r *models.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockReviewRepo) ListBySubject(ctx context.Context, subjectID string) ([]models.Review, error) {
	args := m.Called(ctx, subjectID)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *mockReviewRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockKidRepo struct {
	mock.Mock
}

func (m *mockKidRepo) EnsureIndexes(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *mockKidRepo) Create(ctx context.Context, k *models.Kid) error {
	return m.Called(ctx, k).Error(0)
}

func (m *mockKidRepo) GetByID(ctx context.Context, id string) (*models.Kid, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Kid), args.Error(1)
}

func (m *mockKidRepo) ListByUser(ctx context.Context, userID string) ([]models.Kid, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Kid), args.Error(1)
}

func (m *mockKidRepo) Delete(ctx context.Context, id, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *mockKidRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockDeviceRepo struct {
	mock.Mock
}

func (m *mockDeviceRepo) EnsureIndexes(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *mockDeviceRepo) Register(ctx context.Context, d *models.Device) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockDeviceRepo) Remove(ctx context.Context, userID, deviceToken string) error {
	return m.Called(ctx, userID, deviceToken).Error(0)
}

func (m *mockDeviceRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockCertificationRepo struct {
	mock.Mock
}

func (m *mockCertificationRepo) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockCertificationRepo) Create(ctx context.Context, c *models.Certification) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCertificationRepo) ListByUser(ctx context.Context, userID string) ([]models.Certification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Certification), args.Error(1)
}

func (m *mockCertificationRepo) Delete(ctx context.Context, id, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *mockCertificationRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// outbox keeps the last code sent to each address.
type outbox struct {
	codes map[string]string
	err   error
}

func (o *outbox) SendOTP(ctx context.Context, email, code string) error {
	if o.err != nil {
		return o.err
	}
	o.codes[email] = code
	return nil
}
