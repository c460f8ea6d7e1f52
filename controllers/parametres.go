package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"garagehub-backend/models"
	"garagehub-backend/store"
	"garagehub-backend/utils"
)

// UpdateSettingsInput uses pointers so a PUT only touches the fields it
// carries.
type UpdateSettingsInput struct {
	NomGarage          *string `json:"nomGarage"`
	EmailContact       *string `json:"emailContact"`
	NotificationsEmail *bool   `json:"notificationsEmail"`
	RelancesAuto       *bool   `json:"relancesAuto"`
	SMSRelances        *bool   `json:"smsRelances"`
	APIPennylaneKey    *string `json:"apiPennylaneKey"`
	APIVivawalletKey   *string `json:"apiVivawalletKey"`
	ModePaiementDefaut *string `json:"modePaiementDefaut"`
	DelaiPaiementJours *int    `json:"delaiPaiementJours"`
}

type ParametresController struct {
	Store *store.Store
}

func (ctl *ParametresController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Store.Settings())
}

func (ctl *ParametresController) Update(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Requête invalide: "+err.Error())
		return
	}

	updated := ctl.Store.UpdateSettings(func(s *models.GarageSettings) {
		if input.NomGarage != nil {
			s.NomGarage = *input.NomGarage
		}
		if input.EmailContact != nil {
			s.EmailContact = *input.EmailContact
		}
		if input.NotificationsEmail != nil {
			s.NotificationsEmail = *input.NotificationsEmail
		}
		if input.RelancesAuto != nil {
			s.RelancesAuto = *input.RelancesAuto
		}
		if input.SMSRelances != nil {
			s.SMSRelances = *input.SMSRelances
		}
		if input.APIPennylaneKey != nil {
			s.APIPennylaneKey = *input.APIPennylaneKey
		}
		if input.APIVivawalletKey != nil {
			s.APIVivawalletKey = *input.APIVivawalletKey
		}
		if input.ModePaiementDefaut != nil {
			s.ModePaiementDefaut = *input.ModePaiementDefaut
		}
		if input.DelaiPaiementJours != nil {
			s.DelaiPaiementJours = *input.DelaiPaiementJours
		}
	})

	c.JSON(http.StatusOK, updated)
}
