package handlers

import (
	"doctospeech/models"
	"doctospeech/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes availability, admission, lifecycle and dashboards.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(s booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: s}
}

// ResolveAvailability lists the free time ranges of a therapist on ?date=.
func (h *BookingHandler) ResolveAvailability(c *gin.Context) {
	slots, err := h.Service.ResolveAvailability(c.Request.Context(), c.Param("therapistId"), c.Query("date"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Availability retrieved", slots)
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	var req models.BookingRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.Service.CreateBooking(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err)
		return
	}
	getLogger(c).Info("Booking created", zap.String("bookingId", b.ID), zap.String("therapistId", b.TherapistID))
	created(c, "Booking requested", b)
}

type respondRequest struct {
	Action models.BookingStatus `json:"action" binding:"required"`
	Reason string               `json:"reason"`
}

func (h *BookingHandler) RespondToBooking(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	var req respondRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.Service.RespondToBooking(c.Request.Context(), actor, bookingIDParam(c), req.Action, req.Reason)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Booking "+string(b.Status), b)
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

func (h *BookingHandler) TherapistCancelBooking(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	var req reasonRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.Service.TherapistCancelBooking(c.Request.Context(), actor, bookingIDParam(c), req.Reason)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Booking cancelled", b)
}

func (h *BookingHandler) MarkCompleted(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	b, err := h.Service.MarkCompleted(c.Request.Context(), actor, bookingIDParam(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Booking completed", b)
}

// CancelBooking withdraws the caller's own active booking.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	if err := h.Service.CancelBooking(c.Request.Context(), actor, bookingIDParam(c)); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Booking cancelled", nil)
}

// ListMyBookings accepts optional status, from and to query filters.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	filter := models.BookingFilter{
		Status: models.BookingStatus(c.Query("status")),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}
	views, err := h.Service.ListMyBookings(c.Request.Context(), actor, filter)
	if err != nil {
		fail(c, err)
		return
	}
	if views == nil {
		views = []models.BookingView{}
	}
	ok(c, "Bookings retrieved", views)
}

func (h *BookingHandler) GetBookingDetail(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	view, err := h.Service.GetBookingDetail(c.Request.Context(), actor, bookingIDParam(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Booking retrieved", view)
}

func (h *BookingHandler) ListTransactions(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	txs, err := h.Service.ListTransactions(c.Request.Context(), actor)
	if err != nil {
		fail(c, err)
		return
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	ok(c, "Transactions retrieved", txs)
}

func (h *BookingHandler) TherapistEarnings(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	earnings, err := h.Service.TherapistEarnings(c.Request.Context(), actor)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Earnings retrieved", earnings)
}

func (h *BookingHandler) TherapistHome(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	home, err := h.Service.TherapistHome(c.Request.Context(), actor)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Home retrieved", home)
}

func (h *BookingHandler) ClientHome(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	home, err := h.Service.ClientHome(c.Request.Context(), actor)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Home retrieved", home)
}
