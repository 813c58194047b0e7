package subscription

import (
	"context"
	"fmt"
	"testing"

	"doctospeech/models"
	"doctospeech/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hookKey = "rc-secret"

type memUsers map[string]*models.User

func (m memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, utils.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (m memUsers) SetEntitlement(_ context.Context, id string, e models.Entitlement) error {
	m[id].Type = e
	return nil
}

func payload(eventType, userID string) []byte {
	return []byte(fmt.Sprintf(`{"api_version":"1.0","event":{"id":"e1","type":%q,"app_user_id":%q,"product_id":"monthly"}}`, eventType, userID))
}

func TestRevenueCatTransitions(t *testing.T) {
	cases := []struct {
		event   string
		from    models.Entitlement
		want    models.Entitlement
		changed bool
	}{
		{EventInitialPurchase, models.EntitlementFreemium, models.EntitlementPremium, true},
		{EventRenewal, models.EntitlementFreemium, models.EntitlementPremium, true},
		{EventUncancellation, models.EntitlementFreemium, models.EntitlementPremium, true},
		{EventProductChange, models.EntitlementFreemium, models.EntitlementPremium, true},
		{EventRenewal, models.EntitlementPremium, models.EntitlementPremium, false},
		{EventExpiration, models.EntitlementPremium, models.EntitlementFreemium, true},
		{EventCancellation, models.EntitlementPremium, models.EntitlementPremium, false},
		{EventBillingIssue, models.EntitlementPremium, models.EntitlementPremium, false},
		{"TEST", models.EntitlementFreemium, models.EntitlementFreemium, false},
	}
	for _, tc := range cases {
		t.Run(tc.event+"/"+string(tc.from), func(t *testing.T) {
			users := memUsers{"u1": {ID: "u1", Type: tc.from}}
			svc := NewSubscriptionService(users, hookKey)

			res, err := svc.HandleRevenueCat(context.Background(), hookKey, payload(tc.event, "u1"))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Entitlement)
			assert.Equal(t, tc.changed, res.Changed)
			assert.Equal(t, tc.want, users["u1"].Type)
		})
	}
}

func TestRevenueCatAuthorization(t *testing.T) {
	users := memUsers{"u1": {ID: "u1", Type: models.EntitlementFreemium}}

	_, err := NewSubscriptionService(users, hookKey).HandleRevenueCat(context.Background(), "wrong", payload(EventRenewal, "u1"))
	assert.ErrorIs(t, err, utils.ErrUnauthorized)

	// an unconfigured key rejects everything
	_, err = NewSubscriptionService(users, "").HandleRevenueCat(context.Background(), "", payload(EventRenewal, "u1"))
	assert.ErrorIs(t, err, utils.ErrUnauthorized)
	assert.Equal(t, models.EntitlementFreemium, users["u1"].Type)
}

func TestRevenueCatUnknownUser(t *testing.T) {
	svc := NewSubscriptionService(memUsers{}, hookKey)
	_, err := svc.HandleRevenueCat(context.Background(), hookKey, payload(EventRenewal, "ghost"))
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestRevenueCatMalformed(t *testing.T) {
	svc := NewSubscriptionService(memUsers{}, hookKey)

	_, err := svc.HandleRevenueCat(context.Background(), hookKey, []byte("{"))
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.HandleRevenueCat(context.Background(), hookKey, payload("", "u1"))
	assert.ErrorIs(t, err, utils.ErrValidation)
}
