package booking

import (
	"fmt"
	"strings"

	"doctospeech/models"
	"doctospeech/utils"
)

// outcomeLabel turns an operation result into a metrics label.
func outcomeLabel(err error, success string) string {
	if err == nil {
		return success
	}
	_, code := utils.Classify(err)
	return strings.ToLower(code)
}

func errNotParty(bookingID string) error {
	return fmt.Errorf("booking %s: %w", bookingID, utils.ErrNotFound)
}

func errIllegalTransition(from, to models.BookingStatus) error {
	return fmt.Errorf("cannot move booking from %s to %s: %w", from, to, utils.ErrInvalidTransition)
}
