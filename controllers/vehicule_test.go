package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garagehub-backend/models"
)

func TestCreateVehiculeNormalizesPlate(t *testing.T) {
	r, s := newTestRouter(t, 0)
	client := models.Client{ID: uuid.New(), NumeroClient: "CLI-2024-001", Prenom: "Martin", Nom: "Dubois"}
	require.NoError(t, s.Clients.Add(client))

	w := doJSON(r, http.MethodPost, "/api/vehicules", map[string]interface{}{
		"immatriculation": "ab123cd",
		"marque":          "Peugeot",
		"modele":          "308",
		"annee":           2020,
		"numeroSerie":     "vf3lcyhzpls012345",
		"clientId":        client.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "AB-123-CD", created["immatriculation"])
	assert.Equal(t, "VF3LCYHZPLS012345", created["numeroSerie"])
}

func TestCreateVehiculeUnknownOwner(t *testing.T) {
	r, _ := newTestRouter(t, 0)

	w := doJSON(r, http.MethodPost, "/api/vehicules", map[string]interface{}{
		"immatriculation": "AB-123-CD",
		"marque":          "Peugeot",
		"modele":          "308",
		"annee":           2020,
		"clientId":        uuid.New(),
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Client introuvable", resp.Errors["clientId"])
}

func TestListVehiculesByOwner(t *testing.T) {
	r, s := newTestRouter(t, 0)
	require.NoError(t, s.Seed())

	clients := s.Clients.List()
	w := doJSON(r, http.MethodGet, fmt.Sprintf("/api/vehicules?clientId=%s", clients[0].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []map[string]interface{} `json:"items"`
		Stats map[string]interface{}   `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "AB-123-CD", resp.Items[0]["immatriculation"])
	// Stats cover the whole fleet regardless of the owner filter.
	assert.EqualValues(t, 3, resp.Stats["totalVehicules"])
}
