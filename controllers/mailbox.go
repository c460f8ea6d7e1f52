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

type ComposeMessageInput struct {
	To        string `json:"to" validate:"notblank,email"`
	Subject   string `json:"subject" validate:"notblank"`
	Body      string `json:"body" validate:"notblank"`
	Categorie string `json:"categorie" validate:"omitempty,oneof=DEVIS FACTURE RELANCE GENERAL"`
}

type MailboxController struct {
	Store  *store.Store
	Submit *services.Submitter
}

// List returns mailbox messages matching ?q= and the optional
// ?categorie= filter (ALL or empty keeps every category).
func (ctl *MailboxController) List(c *gin.Context) {
	messages := services.Filter(ctl.Store.Messages.List(), c.Query("q"))

	if categorie := c.Query("categorie"); categorie != "" && categorie != "ALL" {
		kept := make([]models.Message, 0, len(messages))
		for _, m := range messages {
			if m.Categorie == categorie {
				kept = append(kept, m)
			}
		}
		messages = kept
	}

	nonLus := 0
	for _, m := range ctl.Store.Messages.List() {
		if !m.IsRead {
			nonLus++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"items": messages,
		"stats": gin.H{"total": ctl.Store.Messages.Len(), "nonLus": nonLus},
	})
}

// Compose records an outgoing message in the mailbox. Nothing is actually
// sent: real email delivery is an external integration that does not exist
// yet.
func (ctl *MailboxController) Compose(c *gin.Context) {
	var input ComposeMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Requête invalide: "+err.Error())
		return
	}

	if errs := utils.ValidateStruct(input); len(errs) > 0 {
		utils.RespondWithFieldErrors(c, errs)
		return
	}

	categorie := input.Categorie
	if categorie == "" {
		categorie = models.MessageCategorieGeneral
	}
	settings := ctl.Store.Settings()

	var message models.Message
	err := ctl.Submit.Submit(c.Request.Context(), "message", func() error {
		now := time.Now()
		message = models.Message{
			ID:        uuid.New(),
			From:      settings.EmailContact,
			FromName:  settings.NomGarage,
			To:        input.To,
			Subject:   input.Subject,
			Body:      input.Body,
			Date:      now,
			IsRead:    true,
			Categorie: categorie,
			CreatedAt: now,
		}
		return ctl.Store.Messages.Add(message)
	})
	if errors.Is(err, services.ErrSoumissionEnCours) {
		utils.RespondWithError(c, http.StatusConflict, "Un envoi de message est déjà en cours")
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Échec de l'enregistrement du message")
		return
	}

	c.JSON(http.StatusCreated, message)
}
