package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DevisStatutEnAttente = "EN_ATTENTE"
	DevisStatutAccepte   = "ACCEPTE"
	DevisStatutRefuse    = "REFUSE"
	DevisStatutExpire    = "EXPIRE"
)

type Devis struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	NumeroDevis  string    `gorm:"uniqueIndex;not null" json:"numeroDevis"`
	DateCreation time.Time `json:"dateCreation"`
	DateValidite time.Time `json:"dateValidite"`

	ClientID uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`
	// Snapshots taken at creation so the document stays readable even if the
	// referenced records change.
	ClientNom string `json:"clientNom"`
	Vehicule  string `json:"vehicule"`

	Statut      string `gorm:"type:varchar(20);default:'EN_ATTENTE'" json:"statut"`
	TypeService string `gorm:"type:varchar(20);not null" json:"typeService"`

	MontantHT  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"montantHT"`
	MontantTVA decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"montantTVA"`
	TotalTTC   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalTTC"`

	CreatedAt time.Time `json:"createdAt"`
}

func (d Devis) GetID() uuid.UUID { return d.ID }

func (d Devis) SearchFields() []string {
	return []string{d.NumeroDevis, d.ClientNom, d.Vehicule}
}
