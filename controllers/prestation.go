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

type CreatePrestationInput struct {
	Nom         string  `json:"nom" validate:"notblank"`
	Description string  `json:"description"`
	TypeService string  `json:"typeService" validate:"required,oneof=CARROSSERIE MECANIQUE"`
	PrixDeBase  float64 `json:"prixDeBase" validate:"gt=0"`
}

type CreateForfaitInput struct {
	Nom          string    `json:"nom" validate:"notblank"`
	Marque       string    `json:"marque" validate:"notblank"`
	Modele       string    `json:"modele" validate:"notblank"`
	Prix         float64   `json:"prix" validate:"gt=0"`
	Description  string    `json:"description"`
	PrestationID uuid.UUID `json:"prestationId" validate:"required"`
}

type PrestationController struct {
	Store  *store.Store
	Submit *services.Submitter
}

// List returns the catalog grouped by service type, plus the package
// offers, all filtered by the optional ?q=.
func (ctl *PrestationController) List(c *gin.Context) {
	prestations := services.Filter(ctl.Store.Prestations.List(), c.Query("q"))

	carrosserie := make([]models.Prestation, 0, len(prestations))
	mecanique := make([]models.Prestation, 0, len(prestations))
	for _, p := range prestations {
		switch p.TypeService {
		case models.TypeServiceCarrosserie:
			carrosserie = append(carrosserie, p)
		case models.TypeServiceMecanique:
			mecanique = append(mecanique, p)
		}
	}

	forfaits := services.Filter(ctl.Store.Forfaits.List(), c.Query("q"))

	c.JSON(http.StatusOK, gin.H{
		"carrosserie": carrosserie,
		"mecanique":   mecanique,
		"forfaits":    forfaits,
		"stats": gin.H{
			"totalPrestations": ctl.Store.Prestations.Len(),
			"totalForfaits":    ctl.Store.Forfaits.Len(),
		},
	})
}

func (ctl *PrestationController) Create(c *gin.Context) {
	var input CreatePrestationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Requête invalide: "+err.Error())
		return
	}

	if errs := utils.ValidateStruct(input); len(errs) > 0 {
		utils.RespondWithFieldErrors(c, errs)
		return
	}

	var prestation models.Prestation
	err := ctl.Submit.Submit(c.Request.Context(), "prestation", func() error {
		prestation = models.Prestation{
			ID:          uuid.New(),
			Nom:         input.Nom,
			Description: input.Description,
			TypeService: input.TypeService,
			PrixDeBase:  decimal.NewFromFloat(input.PrixDeBase),
			CreatedAt:   time.Now(),
		}
		return ctl.Store.Prestations.Add(prestation)
	})
	if errors.Is(err, services.ErrSoumissionEnCours) {
		utils.RespondWithError(c, http.StatusConflict, "Une création de prestation est déjà en cours")
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Échec de la création de la prestation")
		return
	}

	c.JSON(http.StatusCreated, prestation)
}

func (ctl *PrestationController) ListForfaits(c *gin.Context) {
	forfaits := ctl.Store.Forfaits.List()

	if raw := c.Query("prestationId"); raw != "" {
		prestationID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Identifiant prestation invalide")
			return
		}
		linked := make([]models.Forfait, 0, len(forfaits))
		for _, f := range forfaits {
			if f.PrestationID == prestationID {
				linked = append(linked, f)
			}
		}
		forfaits = linked
	}

	c.JSON(http.StatusOK, gin.H{"items": services.Filter(forfaits, c.Query("q"))})
}

func (ctl *PrestationController) CreateForfait(c *gin.Context) {
	var input CreateForfaitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Requête invalide: "+err.Error())
		return
	}

	errs := utils.ValidateStruct(input)
	if input.PrestationID != uuid.Nil {
		if _, ok := ctl.Store.Prestations.Get(input.PrestationID); !ok {
			errs["prestationId"] = "Prestation introuvable"
		}
	}
	if len(errs) > 0 {
		utils.RespondWithFieldErrors(c, errs)
		return
	}

	var forfait models.Forfait
	err := ctl.Submit.Submit(c.Request.Context(), "forfait", func() error {
		forfait = models.Forfait{
			ID:           uuid.New(),
			Nom:          input.Nom,
			Marque:       input.Marque,
			Modele:       input.Modele,
			Prix:         decimal.NewFromFloat(input.Prix),
			Description:  input.Description,
			PrestationID: input.PrestationID,
			CreatedAt:    time.Now(),
		}
		return ctl.Store.Forfaits.Add(forfait)
	})
	if errors.Is(err, services.ErrSoumissionEnCours) {
		utils.RespondWithError(c, http.StatusConflict, "Une création de forfait est déjà en cours")
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Échec de la création du forfait")
		return
	}

	c.JSON(http.StatusCreated, forfait)
}
