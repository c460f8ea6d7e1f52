package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"garagehub-backend/models"
	"garagehub-backend/services"
	"garagehub-backend/store"
	"garagehub-backend/utils"
)

type CreateDevisInput struct {
	ClientID     uuid.UUID `json:"clientId" validate:"required"`
	VehiculeID   uuid.UUID `json:"vehiculeId" validate:"required"`
	TypeService  string    `json:"typeService" validate:"required,oneof=CARROSSERIE MECANIQUE"`
	DateValidite time.Time `json:"dateValidite" validate:"required"`
	MontantHT    float64   `json:"montantHT" validate:"gt=0"`
	MontantTVA   float64   `json:"montantTVA" validate:"min=0"`
}

type DevisController struct {
	Store  *store.Store
	Submit *services.Submitter
}

func (ctl *DevisController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": services.Filter(ctl.Store.Devis.List(), c.Query("q")),
		"stats": services.ComputeDevisStats(ctl.Store.Devis.List()),
	})
}

func (ctl *DevisController) Create(c *gin.Context) {
	var input CreateDevisInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Requête invalide: "+err.Error())
		return
	}

	errs := utils.ValidateStruct(input)
	client, clientOK := ctl.Store.Clients.Get(input.ClientID)
	if input.ClientID != uuid.Nil && !clientOK {
		errs["clientId"] = "Client introuvable"
	}
	vehicule, vehiculeOK := ctl.Store.Vehicules.Get(input.VehiculeID)
	if input.VehiculeID != uuid.Nil {
		if !vehiculeOK {
			errs["vehiculeId"] = "Véhicule introuvable"
		} else if clientOK && vehicule.ClientID != client.ID {
			errs["vehiculeId"] = "Le véhicule n'appartient pas à ce client"
		}
	}
	if len(errs) > 0 {
		utils.RespondWithFieldErrors(c, errs)
		return
	}

	montantHT := decimal.NewFromFloat(input.MontantHT)
	montantTVA := decimal.NewFromFloat(input.MontantTVA)

	var devis models.Devis
	err := ctl.Submit.Submit(c.Request.Context(), "devis", func() error {
		now := time.Now()
		devis = models.Devis{
			ID:           uuid.New(),
			NumeroDevis:  ctl.Store.NextNumber("DEV"),
			DateCreation: now,
			DateValidite: input.DateValidite,
			ClientID:     client.ID,
			ClientNom:    client.NomComplet(),
			Vehicule:     vehicule.Reference(),
			Statut:       models.DevisStatutEnAttente,
			TypeService:  input.TypeService,
			MontantHT:    montantHT,
			MontantTVA:   montantTVA,
			TotalTTC:     montantHT.Add(montantTVA),
			CreatedAt:    now,
		}
		return ctl.Store.Devis.Add(devis)
	})
	if errors.Is(err, services.ErrSoumissionEnCours) {
		utils.RespondWithError(c, http.StatusConflict, "Une création de devis est déjà en cours")
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Échec de la création du devis")
		return
	}

	c.JSON(http.StatusCreated, devis)
}
