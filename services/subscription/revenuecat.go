package subscription

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"

	"doctospeech/models"
	"doctospeech/utils"

	"go.uber.org/zap"
)

// RevenueCat event types that change or keep the entitlement.
const (
	EventInitialPurchase = "INITIAL_PURCHASE"
	EventRenewal         = "RENEWAL"
	EventUncancellation  = "UNCANCELLATION"
	EventProductChange   = "PRODUCT_CHANGE"
	EventExpiration      = "EXPIRATION"
	EventCancellation    = "CANCELLATION"
	EventBillingIssue    = "BILLING_ISSUE"
)

// Webhook is the RevenueCat delivery envelope.
type Webhook struct {
	APIVersion string `json:"api_version"`
	Event      Event  `json:"event"`
}

type Event struct {
	ID                string `json:"id"`
	Type              string `json:"type"`
	AppUserID         string `json:"app_user_id"`
	OriginalAppUserID string `json:"original_app_user_id"`
	ProductID         string `json:"product_id"`
	ExpirationAtMs    int64  `json:"expiration_at_ms"`
}

// Result is returned to the webhook caller.
type Result struct {
	UserID      string             `json:"userId"`
	EventType   string             `json:"eventType"`
	Entitlement models.Entitlement `json:"entitlement"`
	Changed     bool               `json:"changed"`
}

// EntitlementStore reads users and writes their entitlement.
type EntitlementStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	SetEntitlement(ctx context.Context, id string, e models.Entitlement) error
}

type SubscriptionService interface {
	HandleRevenueCat(ctx context.Context, authorization string, payload []byte) (*Result, error)
}

type DefaultSubscriptionService struct {
	Users      EntitlementStore
	WebhookKey string
}

func NewSubscriptionService(users EntitlementStore, webhookKey string) *DefaultSubscriptionService {
	return &DefaultSubscriptionService{Users: users, WebhookKey: webhookKey}
}

// entitlementFor maps an event to the entitlement it grants. ok is false for
// events that leave the current entitlement in place.
func entitlementFor(eventType string) (e models.Entitlement, ok bool) {
	switch eventType {
	case EventInitialPurchase, EventRenewal, EventUncancellation, EventProductChange:
		return models.EntitlementPremium, true
	case EventExpiration:
		return models.EntitlementFreemium, true
	}
	// CANCELLATION and BILLING_ISSUE keep access until EXPIRATION arrives.
	return "", false
}

// HandleRevenueCat applies a subscription lifecycle event to the user's
// entitlement.
func (s *DefaultSubscriptionService) HandleRevenueCat(ctx context.Context, authorization string, payload []byte) (*Result, error) {
	if s.WebhookKey == "" || subtle.ConstantTimeCompare([]byte(authorization), []byte(s.WebhookKey)) != 1 {
		return nil, fmt.Errorf("revenuecat webhook: %w", utils.ErrUnauthorized)
	}

	var hook Webhook
	if err := json.Unmarshal(payload, &hook); err != nil {
		return nil, utils.Validationf("invalid webhook payload")
	}
	ev := hook.Event
	userID := ev.AppUserID
	if userID == "" {
		userID = ev.OriginalAppUserID
	}
	if ev.Type == "" || userID == "" {
		return nil, utils.Validationf("event type and app_user_id are required")
	}

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := &Result{UserID: u.ID, EventType: ev.Type, Entitlement: u.Type}

	next, ok := entitlementFor(ev.Type)
	logger := utils.GetLogger().With(zap.String("userId", u.ID), zap.String("eventType", ev.Type))
	if !ok || next == u.Type {
		logger.Debug("Entitlement unchanged", zap.String("entitlement", string(u.Type)))
		return res, nil
	}
	if err := s.Users.SetEntitlement(ctx, u.ID, next); err != nil {
		return nil, err
	}
	logger.Info("Entitlement updated", zap.String("from", string(u.Type)), zap.String("to", string(next)))
	res.Entitlement = next
	res.Changed = true
	return res, nil
}
