package user

import (
	"context"
	"strings"

	"doctospeech/models"
	"doctospeech/utils"

	"github.com/google/uuid"
)

// deviceFromInput returns nil when no device token was sent.
func deviceFromInput(in models.DeviceInput) (*models.Device, error) {
	token := strings.TrimSpace(in.DeviceToken)
	if token == "" {
		return nil, nil
	}
	deviceType := in.DeviceType
	if deviceType == "" {
		deviceType = models.DevicePostman
	}
	if !deviceType.Valid() {
		return nil, utils.Validationf("deviceType must be %s, %s or %s", models.DeviceAndroid, models.DeviceIOS, models.DevicePostman)
	}
	return &models.Device{DeviceToken: token, DeviceType: deviceType}, nil
}

func (s *DefaultUserService) registerDevice(ctx context.Context, userID string, device *models.Device) error {
	if device == nil {
		return nil
	}
	device.ID = uuid.New().String()
	device.UserID = userID
	return s.Devices.Register(ctx, device)
}
