package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"garagehub-backend/models"
	"garagehub-backend/services"
	"garagehub-backend/store"
	"garagehub-backend/utils"
)

// CreateVehiculeInput defines the expected JSON structure for creating a
// vehicle. The plate is normalized to AA-123-AA before validation.
type CreateVehiculeInput struct {
	Immatriculation string    `json:"immatriculation" validate:"notblank,frplate"`
	Marque          string    `json:"marque" validate:"notblank"`
	Modele          string    `json:"modele" validate:"notblank"`
	Annee           int       `json:"annee" validate:"required,anneevehicule"`
	NumeroSerie     string    `json:"numeroSerie" validate:"omitempty,max=17"`
	Kilometrage     *int      `json:"kilometrage" validate:"omitempty,min=0"`
	ClientID        uuid.UUID `json:"clientId" validate:"required"`
}

type VehiculeController struct {
	Store  *store.Store
	Submit *services.Submitter
}

// List returns vehicles matching ?q=, optionally restricted to one owner
// via ?clientId=.
func (ctl *VehiculeController) List(c *gin.Context) {
	vehicules := ctl.Store.Vehicules.List()

	if raw := c.Query("clientId"); raw != "" {
		clientID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Identifiant client invalide")
			return
		}
		owned := make([]models.Vehicule, 0, len(vehicules))
		for _, v := range vehicules {
			if v.ClientID == clientID {
				owned = append(owned, v)
			}
		}
		vehicules = owned
	}

	c.JSON(http.StatusOK, gin.H{
		"items": services.Filter(vehicules, c.Query("q")),
		"stats": services.ComputeVehiculeStats(ctl.Store.Vehicules.List()),
	})
}

func (ctl *VehiculeController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identifiant véhicule invalide")
		return
	}
	vehicule, ok := ctl.Store.Vehicules.Get(id)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Véhicule introuvable")
		return
	}
	c.JSON(http.StatusOK, vehicule)
}

func (ctl *VehiculeController) Create(c *gin.Context) {
	var input CreateVehiculeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Requête invalide: "+err.Error())
		return
	}

	input.Immatriculation = utils.NormalizeImmatriculation(input.Immatriculation)
	input.NumeroSerie = strings.ToUpper(strings.TrimSpace(input.NumeroSerie))

	errs := utils.ValidateStruct(input)
	if input.ClientID != uuid.Nil {
		if _, ok := ctl.Store.Clients.Get(input.ClientID); !ok {
			errs["clientId"] = "Client introuvable"
		}
	}
	if len(errs) > 0 {
		utils.RespondWithFieldErrors(c, errs)
		return
	}

	var vehicule models.Vehicule
	err := ctl.Submit.Submit(c.Request.Context(), "vehicule", func() error {
		vehicule = models.Vehicule{
			ID:              uuid.New(),
			Immatriculation: input.Immatriculation,
			Marque:          input.Marque,
			Modele:          input.Modele,
			Annee:           input.Annee,
			NumeroSerie:     input.NumeroSerie,
			Kilometrage:     input.Kilometrage,
			ClientID:        input.ClientID,
			CreatedAt:       time.Now(),
		}
		return ctl.Store.Vehicules.Add(vehicule)
	})
	if errors.Is(err, services.ErrSoumissionEnCours) {
		utils.RespondWithError(c, http.StatusConflict, "Une création de véhicule est déjà en cours")
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Échec de la création du véhicule")
		return
	}

	c.JSON(http.StatusCreated, vehicule)
}
