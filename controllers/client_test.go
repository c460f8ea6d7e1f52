package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garagehub-backend/config"
	"garagehub-backend/routes"
	"garagehub-backend/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, latency time.Duration) (*gin.Engine, *store.Store) {
	t.Helper()
	s := store.New()
	cfg := config.Config{
		SubmitLatency:  latency,
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	return routes.SetupRouter(s, cfg), s
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validClientPayload() map[string]interface{} {
	return map[string]interface{}{
		"prenom":     "Martin",
		"nom":        "Dubois",
		"telephone":  "0612345678",
		"email":      "martin.dubois@email.com",
		"adresse":    "15 rue de la République",
		"ville":      "Lyon",
		"codePostal": "69001",
	}
}

func TestCreateClient(t *testing.T) {
	r, s := newTestRouter(t, 0)

	w := doJSON(r, http.MethodPost, "/api/clients", validClientPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Martin", created["prenom"])
	assert.Equal(t, "NORMAL", created["typeClient"])
	assert.Contains(t, created["numeroClient"], "CLI-")

	require.Equal(t, 1, s.Clients.Len())
}

func TestCreateClientEmptyDraftReportsAllFields(t *testing.T) {
	r, s := newTestRouter(t, 0)

	w := doJSON(r, http.MethodPost, "/api/clients", map[string]interface{}{})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, field := range []string{"prenom", "nom", "telephone", "email", "adresse", "ville", "codePostal"} {
		assert.Contains(t, resp.Errors, field)
	}
	assert.Equal(t, 0, s.Clients.Len())
}

func TestCreateClientInvalidPostalCode(t *testing.T) {
	r, _ := newTestRouter(t, 0)

	payload := validClientPayload()
	payload["codePostal"] = "69"
	w := doJSON(r, http.MethodPost, "/api/clients", payload)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Code postal invalide (5 chiffres)", resp.Errors["codePostal"])
}

func TestCreateClientDuplicateSubmitRejected(t *testing.T) {
	r, s := newTestRouter(t, 100*time.Millisecond)

	codes := make([]int, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i == 1 {
				// Fire the duplicate while the first is in flight.
				time.Sleep(20 * time.Millisecond)
			}
			codes[i] = doJSON(r, http.MethodPost, "/api/clients", validClientPayload()).Code
		}(i)
	}
	wg.Wait()

	assert.Equal(t, http.StatusCreated, codes[0])
	assert.Equal(t, http.StatusConflict, codes[1])
	assert.Equal(t, 1, s.Clients.Len())
}

func TestListClientsWithSearch(t *testing.T) {
	r, s := newTestRouter(t, 0)
	require.NoError(t, s.Seed())

	w := doJSON(r, http.MethodGet, "/api/clients?q=lambert", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []map[string]interface{} `json:"items"`
		Stats map[string]interface{}   `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Sophie", resp.Items[0]["prenom"])
	// Stats always describe the whole catalog, not the filtered view.
	assert.EqualValues(t, 3, resp.Stats["totalClients"])
}

func TestGetClientNotFound(t *testing.T) {
	r, _ := newTestRouter(t, 0)

	w := doJSON(r, http.MethodGet, "/api/clients/00000000-0000-0000-0000-000000000001", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/api/clients/pas-un-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
