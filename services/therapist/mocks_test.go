package therapist

import (
	"context"

	"doctospeech/models"

	"github.com/stretchr/testify/mock"
)

type mockAvailabilityRepo struct {
	mock.Mock
}

func (m *mockAvailabilityRepo) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockAvailabilityRepo) ListByTherapist(ctx context.Context, therapistID string) ([]models.AvailabilityEntry, error) {
	args := m.Called(ctx, therapistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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

func (m *mockAvailabilityRepo) Upsert(ctx context.Context, entry *models.AvailabilityEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockAvailabilityRepo) DeleteDaysExcept(ctx context.Context, therapistID string, keep []models.Weekday) error {
	return m.Called(ctx, therapistID, keep).Error(0)
}

func (m *mockAvailabilityRepo) DeleteByTherapist(ctx context.Context, therapistID string) error {
	return m.Called(ctx, therapistID).Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

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

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockReviewRepo) Create(ctx context.Context, r *models.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockReviewRepo) ListBySubject(ctx context.Context, subjectID string) ([]models.Review, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *mockReviewRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
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
