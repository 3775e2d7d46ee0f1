package catalog

import (
	"testing"

	"lumiere/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryServiceRepo struct {
	services map[string]*models.Service
}

func newMemoryServiceRepo() *memoryServiceRepo {
	return &memoryServiceRepo{services: make(map[string]*models.Service)}
}

func (r *memoryServiceRepo) Create(svc *models.Service) error { r.services[svc.ID] = svc; return nil }
func (r *memoryServiceRepo) Update(svc *models.Service) error { r.services[svc.ID] = svc; return nil }
func (r *memoryServiceRepo) Delete(id string) error { delete(r.services, id); return nil }

func (r *memoryServiceRepo) GetByID(id string) (*models.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	return svc, nil
}

func (r *memoryServiceRepo) GetAll() ([]models.Service, error) {
	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, *s)
	}
	return out, nil
}

func TestCreateServiceValidation(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newMemoryServiceRepo()}

	tests := []struct {
		name string
		req  ServiceRequest
		ok   bool
	}{
		{"flat price", ServiceRequest{Name: "Haircut", Price: 45, DurationMinutes: 60}, true},
		{"tiered prices", ServiceRequest{
			Name:            "Balayage",
			TierPrices:      map[string]float64{models.HairShort: 120, models.HairMedium: 150, models.HairLong: 190},
			DurationMinutes: 150,
		}, true},
		{"zero duration", ServiceRequest{Name: "Haircut", Price: 45}, false},
		{"negative price", ServiceRequest{Name: "Haircut", Price: -1, DurationMinutes: 60}, false},
		{"negative tier price", ServiceRequest{
			Name:            "Balayage",
			TierPrices:      map[string]float64{models.HairShort: -5},
			DurationMinutes: 150,
		}, false},
		{"unknown tier", ServiceRequest{
			Name:            "Balayage",
			TierPrices:      map[string]float64{"bald": 10},
			DurationMinutes: 150,
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := svc.Create(tt.req)
			if tt.ok {
				require.NoError(t, err)
				assert.NotEmpty(t, created.ID)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUpdateServiceKeepsID(t *testing.T) {
	repo := newMemoryServiceRepo()
	svc := &DefaultCatalogService{Repo: repo}

	created, err := svc.Create(ServiceRequest{Name: "Haircut", Price: 45, DurationMinutes: 60})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, ServiceRequest{Name: "Haircut deluxe", Price: 55, DurationMinutes: 75})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Haircut deluxe", repo.services[created.ID].Name)
	assert.Equal(t, 75, repo.services[created.ID].DurationMinutes)
}

func TestPriceForHairLength(t *testing.T) {
	tiered := models.Service{
		Price:      100,
		TierPrices: map[string]float64{models.HairLong: 190},
	}
	assert.Equal(t, 190.0, tiered.PriceFor(models.HairLong))
	// Unpriced tier falls back to the base price.
	assert.Equal(t, 100.0, tiered.PriceFor(models.HairShort))

	flat := models.Service{Price: 45}
	assert.Equal(t, 45.0, flat.PriceFor(models.HairMedium))
}
