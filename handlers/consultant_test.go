package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gencare/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubConsultantRepo struct {
	consultants []models.Consultant
}

func (r *stubConsultantRepo) GetByID(id string) (*models.Consultant, error) {
	for i := range r.consultants {
		if r.consultants[i].ID == id {
			return &r.consultants[i], nil
		}
	}
	return nil, errors.New("consultant not found")
}

func (r *stubConsultantRepo) GetAll() ([]models.Consultant, error) {
	return r.consultants, nil
}

func (r *stubConsultantRepo) GetBySpecialty(specialty string) ([]models.Consultant, error) {
	var out []models.Consultant
	for _, c := range r.consultants {
		if c.Specialty == specialty {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubConsultantRepo) AddBookedShift(id, dateKey string, slotID int) error {
	return nil
}

func consultantRouter(repo *stubConsultantRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	// A nil cache client falls back to repository reads.
	h := NewConsultantHandler(repo, nil, zap.NewNop())
	r := gin.New()
	r.GET("/consultants", h.ListConsultants)
	r.GET("/consultants/:id", h.GetConsultantByID)
	return r
}

func catalogFixture() *stubConsultantRepo {
	return &stubConsultantRepo{consultants: []models.Consultant{
		{ID: "c-1", Name: "Dr. Rivera", Specialty: "gynecology", Status: "active",
			BookedShifts: map[string][]int{"6/6/2025": {1}}},
		{ID: "c-2", Name: "Dr. Okoye", Specialty: "mental-health", Status: "active"},
	}}
}

func TestListConsultants(t *testing.T) {
	r := consultantRouter(catalogFixture())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/consultants", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Consultants []models.ConsultantDTO `json:"consultants"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Consultants, 2)
	assert.Equal(t, "c-1", body.Consultants[0].ID)

	// The DTO projection must not leak the schedule table.
	assert.NotContains(t, w.Body.String(), "bookedShifts")
}

func TestListConsultantsBySpecialty(t *testing.T) {
	r := consultantRouter(catalogFixture())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/consultants?specialty=mental-health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Consultants []models.ConsultantDTO `json:"consultants"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Consultants, 1)
	assert.Equal(t, "c-2", body.Consultants[0].ID)
}

func TestGetConsultantByIDNotFound(t *testing.T) {
	r := consultantRouter(catalogFixture())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/consultants/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
