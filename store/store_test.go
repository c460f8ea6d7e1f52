package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garagehub-backend/models"
)

func TestCollectionAddPreservesInsertionOrder(t *testing.T) {
	s := New()
	first := models.Client{ID: uuid.New(), Nom: "Dubois"}
	second := models.Client{ID: uuid.New(), Nom: "Lambert"}

	require.NoError(t, s.Clients.Add(first))
	require.NoError(t, s.Clients.Add(second))

	clients := s.Clients.List()
	require.Len(t, clients, 2)
	assert.Equal(t, "Dubois", clients[0].Nom)
	assert.Equal(t, "Lambert", clients[1].Nom)
}

func TestCollectionListReturnsCopy(t *testing.T) {
	s := New()
	require.NoError(t, s.Clients.Add(models.Client{ID: uuid.New(), Nom: "Dubois"}))

	clients := s.Clients.List()
	clients[0].Nom = "Modifié"

	assert.Equal(t, "Dubois", s.Clients.List()[0].Nom)
}

func TestCollectionGet(t *testing.T) {
	s := New()
	client := models.Client{ID: uuid.New(), Nom: "Dubois"}
	require.NoError(t, s.Clients.Add(client))

	got, ok := s.Clients.Get(client.ID)
	require.True(t, ok)
	assert.Equal(t, "Dubois", got.Nom)

	_, ok = s.Clients.Get(uuid.New())
	assert.False(t, ok)
}

func TestCollectionPersistFailureLeavesMemoryUnchanged(t *testing.T) {
	s := New()
	s.Clients.SetPersist(func(models.Client) error {
		return fmt.Errorf("connexion perdue")
	})

	err := s.Clients.Add(models.Client{ID: uuid.New(), Nom: "Dubois"})
	require.Error(t, err)
	assert.Equal(t, 0, s.Clients.Len())
}

func TestNextNumberIsSequentialPerPrefix(t *testing.T) {
	s := New()
	year := time.Now().Year()

	assert.Equal(t, fmt.Sprintf("FAC-%d-001", year), s.NextNumber("FAC"))
	assert.Equal(t, fmt.Sprintf("FAC-%d-002", year), s.NextNumber("FAC"))
	// Prefixes keep independent counters.
	assert.Equal(t, fmt.Sprintf("DEV-%d-001", year), s.NextNumber("DEV"))
}

func TestRegisterNumeroBumpsCounter(t *testing.T) {
	s := New()
	year := time.Now().Year()

	s.RegisterNumero(fmt.Sprintf("ODR-%d-012", year))
	assert.Equal(t, fmt.Sprintf("ODR-%d-013", year), s.NextNumber("ODR"))

	// A lower existing number never rewinds the counter.
	s.RegisterNumero(fmt.Sprintf("ODR-%d-004", year))
	assert.Equal(t, fmt.Sprintf("ODR-%d-014", year), s.NextNumber("ODR"))
}

func TestSeedPopulatesEveryCatalog(t *testing.T) {
	s := New()
	require.NoError(t, s.Seed())

	assert.Equal(t, 3, s.Clients.Len())
	assert.Equal(t, 3, s.Vehicules.Len())
	assert.Equal(t, 4, s.Prestations.Len())
	assert.Equal(t, 1, s.Forfaits.Len())
	assert.Equal(t, 2, s.Devis.Len())
	assert.Equal(t, 2, s.Ordres.Len())
	assert.Equal(t, 3, s.Factures.Len())
	assert.Equal(t, 3, s.Messages.Len())
}

func TestSeedRegistersExistingNumbers(t *testing.T) {
	s := New()
	require.NoError(t, s.Seed())

	// Seeded 2024 numbers must never be reissued.
	assert.NotEqual(t, "FAC-2024-001", s.NextNumber("FAC"))
	assert.NotEqual(t, "CLI-2024-001", s.NextNumber("CLI"))
}

func TestUpdateSettings(t *testing.T) {
	s := New()
	assert.Equal(t, "Mon Garage", s.Settings().NomGarage)
	assert.True(t, s.Settings().RelancesAuto)

	updated := s.UpdateSettings(func(gs *models.GarageSettings) {
		gs.NomGarage = "Garage Bellecour"
		gs.RelancesAuto = false
	})
	assert.Equal(t, "Garage Bellecour", updated.NomGarage)
	assert.False(t, s.Settings().RelancesAuto)
}
