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

type CreateFactureInput struct {
	ClientID     uuid.UUID `json:"clientId" validate:"required"`
	MontantTTC   float64   `json:"montantTTC" validate:"gt=0"`
	DateEcheance time.Time `json:"dateEcheance" validate:"required"`
	NumeroODR    string    `json:"numeroODR"`
	ModePaiement string    `json:"modePaiement" validate:"omitempty,oneof=ESPECES CHEQUE VIREMENT TPE_VIVAWALLET CREDIT_INTERNE MIXTE"`
}

type FactureController struct {
	Store  *store.Store
	Submit *services.Submitter
}

func (ctl *FactureController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": services.Filter(ctl.Store.Factures.List(), c.Query("q")),
		"stats": services.ComputeFactureStats(ctl.Store.Factures.List(), time.Now()),
	})
}

func (ctl *FactureController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identifiant facture invalide")
		return
	}
	facture, ok := ctl.Store.Factures.Get(id)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Facture introuvable")
		return
	}
	c.JSON(http.StatusOK, facture)
}

func (ctl *FactureController) Create(c *gin.Context) {
	var input CreateFactureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Requête invalide: "+err.Error())
		return
	}

	errs := utils.ValidateStruct(input)
	client, clientOK := ctl.Store.Clients.Get(input.ClientID)
	if input.ClientID != uuid.Nil && !clientOK {
		errs["clientId"] = "Client introuvable"
	}
	if len(errs) > 0 {
		utils.RespondWithFieldErrors(c, errs)
		return
	}

	var facture models.Facture
	err := ctl.Submit.Submit(c.Request.Context(), "facture", func() error {
		now := time.Now()
		facture = models.Facture{
			ID:            uuid.New(),
			NumeroFacture: ctl.Store.NextNumber("FAC"),
			DateEmission:  now,
			DateEcheance:  input.DateEcheance,
			ClientID:      client.ID,
			ClientNom:     client.NomComplet(),
			MontantTTC:    decimal.NewFromFloat(input.MontantTTC),
			Statut:        models.FactureStatutEnAttente,
			ModePaiement:  input.ModePaiement,
			NumeroODR:     input.NumeroODR,
			CreatedAt:     now,
		}
		return ctl.Store.Factures.Add(facture)
	})
	if errors.Is(err, services.ErrSoumissionEnCours) {
		utils.RespondWithError(c, http.StatusConflict, "Une création de facture est déjà en cours")
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Échec de la création de la facture")
		return
	}

	c.JSON(http.StatusCreated, facture)
}
