package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctospeech/models"
	"doctospeech/services/therapist"
	"doctospeech/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTherapists struct {
	therapist.TherapistService
	query models.TherapistQuery
}

func (s *stubTherapists) FilterTherapists(_ context.Context, q models.TherapistQuery) ([]models.PublicProfile, error) {
	s.query = q
	return nil, nil
}

func serve(h gin.HandlerFunc, path, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET(path, h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestFilterTherapistsQueryParsing(t *testing.T) {
	stub := &stubTherapists{}
	h := NewTherapistHandler(stub)

	w := serve(h.FilterTherapists, "/filter", "/filter?name=ann&lat=51.5&lng=-0.12&maxDistance=10")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ann", stub.query.Name)
	require.NotNil(t, stub.query.Lat)
	require.NotNil(t, stub.query.Lng)
	assert.Equal(t, 51.5, *stub.query.Lat)
	assert.Equal(t, -0.12, *stub.query.Lng)
	assert.Equal(t, 10.0, stub.query.MaxDistanceKm)

	// empty results render as an empty list, not null
	var env utils.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, []interface{}{}, env.Data)

	w = serve(h.FilterTherapists, "/filter", "/filter?lat=north")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestBookingIDParam(t *testing.T) {
	for path, target := range map[string]string{
		"/a/:bookingId": "/a/b1",
		"/b/:id":        "/b/b1",
	} {
		w := serve(func(c *gin.Context) { c.String(http.StatusOK, bookingIDParam(c)) }, path, target)
		assert.Equal(t, "b1", w.Body.String())
	}
}

func TestCurrentActorRequiresAuth(t *testing.T) {
	h := NewBookingHandler(nil)
	w := serve(h.ListMyBookings, "/session", "/session")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
