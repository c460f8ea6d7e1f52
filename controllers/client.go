package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"garagehub-backend/models"
	"garagehub-backend/services"
	"garagehub-backend/store"
	"garagehub-backend/utils"
)

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Prenom     string `json:"prenom" validate:"notblank"`
	Nom        string `json:"nom" validate:"notblank"`
	Entreprise string `json:"entreprise"`
	Telephone  string `json:"telephone" validate:"notblank"`
	Email      string `json:"email" validate:"notblank,email"`
	Adresse    string `json:"adresse" validate:"notblank"`
	Ville      string `json:"ville" validate:"notblank"`
	CodePostal string `json:"codePostal" validate:"notblank,frpostal"`
	TypeClient string `json:"typeClient" validate:"omitempty,oneof=NORMAL GRAND_COMPTE"`
}

type ClientController struct {
	Store  *store.Store
	Submit *services.Submitter
}

// List returns the clients matching the optional ?q= filter, with their
// derived stats.
func (ctl *ClientController) List(c *gin.Context) {
	clients := services.Filter(ctl.Store.Clients.List(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"items": clients,
		"stats": services.ComputeClientStats(ctl.Store.Clients.List(), time.Now()),
	})
}

func (ctl *ClientController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identifiant client invalide")
		return
	}
	client, ok := ctl.Store.Clients.Get(id)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Client introuvable")
		return
	}
	c.JSON(http.StatusOK, client)
}

func (ctl *ClientController) Create(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Requête invalide: "+err.Error())
		return
	}

	if errs := utils.ValidateStruct(input); len(errs) > 0 {
		utils.RespondWithFieldErrors(c, errs)
		return
	}

	typeClient := input.TypeClient
	if typeClient == "" {
		typeClient = models.TypeClientNormal
	}

	var client models.Client
	err := ctl.Submit.Submit(c.Request.Context(), "client", func() error {
		client = models.Client{
			ID:           uuid.New(),
			NumeroClient: ctl.Store.NextNumber("CLI"),
			Prenom:       input.Prenom,
			Nom:          input.Nom,
			Entreprise:   input.Entreprise,
			Email:        input.Email,
			Telephone:    input.Telephone,
			Adresse:      input.Adresse,
			Ville:        input.Ville,
			CodePostal:   input.CodePostal,
			TypeClient:   typeClient,
			CreatedAt:    time.Now(),
		}
		return ctl.Store.Clients.Add(client)
	})
	if errors.Is(err, services.ErrSoumissionEnCours) {
		utils.RespondWithError(c, http.StatusConflict, "Une création de client est déjà en cours")
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Échec de la création du client")
		return
	}

	c.JSON(http.StatusCreated, client)
}
