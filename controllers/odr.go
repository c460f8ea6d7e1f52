// controllers/odr.go
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

// ArticleODRInput defines one billed line of a repair order. Lines are
// validated independently: a bad article never hides errors on the others.
type ArticleODRInput struct {
	Designation     string     `json:"designation" validate:"notblank"`
	PrixUnitaireTTC float64    `json:"prixUnitaireTTC" validate:"gt=0"`
	Quantite        int        `json:"quantite" validate:"gt=0"`
	PrestationID    *uuid.UUID `json:"prestationId"`
}

type CreateODRInput struct {
	ClientID     uuid.UUID         `json:"clientId" validate:"required"`
	VehiculeID   uuid.UUID         `json:"vehiculeId" validate:"required"`
	TypeService  string            `json:"typeService" validate:"required,oneof=CARROSSERIE MECANIQUE"`
	DateValidite *time.Time        `json:"dateValidite"`
	Observations string            `json:"observations"`
	Articles     []ArticleODRInput `json:"articles" validate:"required,min=1,dive"`
}

type ODRController struct {
	Store  *store.Store
	Submit *services.Submitter
}

func (ctl *ODRController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": services.Filter(ctl.Store.Ordres.List(), c.Query("q")),
		"stats": services.ComputeOrdreStats(ctl.Store.Ordres.List()),
	})
}

func (ctl *ODRController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identifiant ODR invalide")
		return
	}
	ordre, ok := ctl.Store.Ordres.Get(id)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "ODR introuvable")
		return
	}
	c.JSON(http.StatusOK, ordre)
}

func (ctl *ODRController) Create(c *gin.Context) {
	var input CreateODRInput
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

	ordreID := uuid.New()
	articles := make([]models.ArticleODR, 0, len(input.Articles))
	for _, a := range input.Articles {
		articles = append(articles, models.ArticleODR{
			ID:              uuid.New(),
			OrdreID:         ordreID,
			Designation:     a.Designation,
			PrixUnitaireTTC: decimal.NewFromFloat(a.PrixUnitaireTTC),
			Quantite:        a.Quantite,
			PrestationID:    a.PrestationID,
		})
	}

	var ordre models.OrdreReparation
	err := ctl.Submit.Submit(c.Request.Context(), "odr", func() error {
		now := time.Now()
		ordre = models.OrdreReparation{
			ID:           ordreID,
			NumeroODR:    ctl.Store.NextNumber("ODR"),
			DateCreation: now,
			DateValidite: input.DateValidite,
			ClientID:     client.ID,
			ClientNom:    client.NomComplet(),
			VehiculeID:   vehicule.ID,
			VehiculeRef:  vehicule.Reference(),
			Statut:       models.ODRStatutEnCours,
			TypeService:  input.TypeService,
			Observations: input.Observations,
			Articles:     articles,
			MontantTotal: models.TotalArticles(articles),
			CreatedAt:    now,
		}
		return ctl.Store.Ordres.Add(ordre)
	})
	if errors.Is(err, services.ErrSoumissionEnCours) {
		utils.RespondWithError(c, http.StatusConflict, "Une création d'ODR est déjà en cours")
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Échec de la création de l'ODR")
		return
	}

	c.JSON(http.StatusCreated, ordre)
}
