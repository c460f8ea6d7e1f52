package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	FactureStatutEnAttente          = "EN_ATTENTE"
	FactureStatutImpayee            = "IMPAYEE"
	FactureStatutPayee              = "PAYEE"
	FactureStatutPartiellementPayee = "PARTIELLEMENT_PAYEE"
	FactureStatutAnnulee            = "ANNULEE"
)

const (
	PaiementEspeces       = "ESPECES"
	PaiementCheque        = "CHEQUE"
	PaiementVirement      = "VIREMENT"
	PaiementTPEVivawallet = "TPE_VIVAWALLET"
	PaiementCreditInterne = "CREDIT_INTERNE"
	PaiementMixte         = "MIXTE"
)

type Facture struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	NumeroFacture string    `gorm:"uniqueIndex;not null" json:"numeroFacture"`
	DateEmission  time.Time `json:"dateEmission"`
	DateEcheance  time.Time `json:"dateEcheance"`

	ClientID  uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`
	ClientNom string    `json:"clientNom"`

	MontantTTC    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"montantTTC"`
	Statut        string          `gorm:"type:varchar(25);default:'EN_ATTENTE'" json:"statut"`
	ModePaiement  string          `gorm:"type:varchar(20)" json:"modePaiement,omitempty"`
	DateReglement *time.Time      `json:"dateReglement,omitempty"`
	NumeroODR     string          `json:"numeroODR,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (f Facture) GetID() uuid.UUID { return f.ID }

func (f Facture) SearchFields() []string {
	return []string{f.NumeroFacture, f.ClientNom, f.NumeroODR}
}

// EnRetard reports whether the invoice is past due and still owed. "now" is
// passed in so callers evaluate overdue state at read time.
func (f Facture) EnRetard(now time.Time) bool {
	if f.Statut == FactureStatutPayee || f.Statut == FactureStatutAnnulee {
		return false
	}
	return f.DateEcheance.Before(now)
}
