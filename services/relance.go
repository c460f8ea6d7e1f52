// services/relance.go
package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"garagehub-backend/models"
	"garagehub-backend/store"
	"garagehub-backend/utils"
)

// RelanceService sweeps the facture store for overdue invoices and drops a
// relance message into the mailbox for each one. SMS delivery through
// Twilio only happens when the settings toggle is on and credentials are
// configured; otherwise the integration stays inert.
type RelanceService struct {
	store      *store.Store
	client     *twilio.RestClient
	twilioFrom string
	log        *logrus.Entry
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string
}

func NewRelanceService(s *store.Store, cfg TwilioConfig) *RelanceService {
	svc := &RelanceService{
		store:      s,
		twilioFrom: cfg.From,
		log:        logrus.WithField("component", "relance"),
	}
	if cfg.AccountSID != "" && cfg.AuthToken != "" {
		svc.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		})
	}
	return svc
}

// StartScheduler runs the sweep on the given cron schedule (daily at 9 AM
// by default).
func (s *RelanceService) StartScheduler(spec string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, s.ProcessRelances); err != nil {
		return nil, err
	}
	c.Start()
	s.log.WithField("schedule", spec).Info("planificateur de relances démarré")
	return c, nil
}

// ProcessRelances is one sweep: every overdue invoice that has not been
// relancée yet gets a mailbox message, and optionally an SMS.
func (s *RelanceService) ProcessRelances() {
	settings := s.store.Settings()
	if !settings.RelancesAuto {
		s.log.Debug("relances automatiques désactivées")
		return
	}

	now := time.Now()
	sent := 0
	for _, f := range s.store.Factures.List() {
		if !f.EnRetard(now) {
			continue
		}
		if s.dejaRelancee(f.NumeroFacture) {
			continue
		}
		if err := s.relancer(f, settings, now); err != nil {
			s.log.WithError(err).WithField("facture", f.NumeroFacture).Error("relance en échec")
			continue
		}
		sent++
	}
	s.log.WithField("relances", sent).Info("balayage des factures en retard terminé")
}

func (s *RelanceService) dejaRelancee(numero string) bool {
	for _, m := range s.store.Messages.List() {
		if m.Categorie == models.MessageCategorieRelance && strings.Contains(m.Subject, numero) {
			return true
		}
	}
	return false
}

func (s *RelanceService) relancer(f models.Facture, settings models.GarageSettings, now time.Time) error {
	jours := -utils.DaysBetween(now, f.DateEcheance)
	body := fmt.Sprintf(
		"Bonjour %s,\n\nLa facture %s d'un montant de %s€ est arrivée à échéance il y a %d jour(s). Merci de procéder à son règlement.\n\n%s",
		f.ClientNom, f.NumeroFacture, f.MontantTTC.StringFixed(2), jours, settings.NomGarage,
	)

	var destinataire string
	if client, ok := s.store.Clients.Get(f.ClientID); ok {
		destinataire = client.Email
		if settings.SMSRelances {
			s.envoyerSMS(client.Telephone, body)
		}
	}

	msg := models.Message{
		ID:        uuid.New(),
		From:      settings.EmailContact,
		FromName:  settings.NomGarage,
		To:        destinataire,
		Subject:   fmt.Sprintf("Relance facture %s", f.NumeroFacture),
		Body:      body,
		Date:      now,
		Categorie: models.MessageCategorieRelance,
		CreatedAt: now,
	}
	return s.store.Messages.Add(msg)
}

func (s *RelanceService) envoyerSMS(telephone, body string) {
	if s.client == nil || !utils.ValidatePhone(telephone) {
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(telephone)
	params.SetFrom(s.twilioFrom)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.log.WithError(err).WithField("to", telephone).Error("envoi SMS en échec")
		return
	}
	if resp.Sid != nil {
		s.log.WithField("sid", *resp.Sid).Info("SMS de relance envoyé")
	}
}
