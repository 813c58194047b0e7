package handlers

import (
	"strconv"

	"doctospeech/models"
	"doctospeech/services/therapist"
	"doctospeech/utils"

	"github.com/gin-gonic/gin"
)

// TherapistHandler serves schedules and the therapist directory.
type TherapistHandler struct {
	Service therapist.TherapistService
}

func NewTherapistHandler(s therapist.TherapistService) *TherapistHandler {
	return &TherapistHandler{Service: s}
}

type weeklyScheduleRequest struct {
	Days []models.DayScheduleInput `json:"days"`
}

// ReplaceWeeklySchedule replaces the caller's whole week.
func (h *TherapistHandler) ReplaceWeeklySchedule(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	var req weeklyScheduleRequest
	if !bindJSON(c, &req) {
		return
	}
	entries, err := h.Service.ReplaceWeeklySchedule(c.Request.Context(), actor, req.Days)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Availability updated", entries)
}

// GetWeeklySchedule returns the schedule of ?therapistId=, or the caller's own.
func (h *TherapistHandler) GetWeeklySchedule(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	id := c.Query("therapistId")
	if id == "" {
		id = actor.ID
	}
	entries, err := h.Service.GetWeeklySchedule(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if entries == nil {
		entries = []models.AvailabilityEntry{}
	}
	ok(c, "Availability retrieved", entries)
}

func (h *TherapistHandler) GetTherapistDetails(c *gin.Context) {
	details, err := h.Service.GetTherapistDetails(c.Request.Context(), c.Param("therapistId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Therapist retrieved", details)
}

// FilterTherapists reads name, lat, lng and maxDistance (km) from the query.
func (h *TherapistHandler) FilterTherapists(c *gin.Context) {
	q := models.TherapistQuery{Name: c.Query("name")}
	var err error
	if q.Lat, err = optionalFloat(c, "lat"); err != nil {
		fail(c, err)
		return
	}
	if q.Lng, err = optionalFloat(c, "lng"); err != nil {
		fail(c, err)
		return
	}
	if d, err := optionalFloat(c, "maxDistance"); err != nil {
		fail(c, err)
		return
	} else if d != nil {
		q.MaxDistanceKm = *d
	}

	therapists, err := h.Service.FilterTherapists(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	if therapists == nil {
		therapists = []models.PublicProfile{}
	}
	ok(c, "Therapists retrieved", therapists)
}

func optionalFloat(c *gin.Context, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, utils.Validationf("%s must be a number", key)
	}
	return &v, nil
}

// ListCertifications returns the certifications of ?therapistId=, or the
// caller's own.
func (h *TherapistHandler) ListCertifications(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	id := c.Query("therapistId")
	if id == "" {
		id = actor.ID
	}
	certs, err := h.Service.ListCertifications(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if certs == nil {
		certs = []models.Certification{}
	}
	ok(c, "Certifications retrieved", certs)
}

func (h *TherapistHandler) AddCertification(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	var in models.CertificationInput
	if !bindJSON(c, &in) {
		return
	}
	cert, err := h.Service.AddCertification(c.Request.Context(), actor, in)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "Certification added", cert)
}

func (h *TherapistHandler) DeleteCertification(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	if err := h.Service.DeleteCertification(c.Request.Context(), actor, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Certification deleted", nil)
}
