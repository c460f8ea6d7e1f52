package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ODRStatutEnCours = "EN_COURS"
	ODRStatutTermine = "TERMINE"
	ODRStatutAnnule  = "ANNULE"
)

// OrdreReparation (ODR) is a work authorization for service performed on a
// vehicle, with free-form billed articles.
type OrdreReparation struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	NumeroODR    string     `gorm:"uniqueIndex;not null" json:"numeroODR"`
	DateCreation time.Time  `json:"dateCreation"`
	DateValidite *time.Time `json:"dateValidite"`

	ClientID    uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`
	ClientNom   string    `json:"clientNom"`
	VehiculeID  uuid.UUID `gorm:"type:uuid;index;not null" json:"vehiculeId"`
	VehiculeRef string    `json:"vehicule"`

	Statut       string       `gorm:"type:varchar(20);default:'EN_COURS'" json:"statut"`
	TypeService  string       `gorm:"type:varchar(20);not null" json:"typeService"`
	Observations string       `gorm:"type:text" json:"observations"`
	Articles     []ArticleODR `gorm:"foreignKey:OrdreID" json:"articles"`

	MontantTotal decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"montantTotal"`

	CreatedAt time.Time `json:"createdAt"`
}

type ArticleODR struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrdreID         uuid.UUID       `gorm:"type:uuid;index;not null" json:"-"`
	Designation     string          `gorm:"type:text;not null" json:"designation"`
	PrixUnitaireTTC decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"prixUnitaireTTC"`
	Quantite        int             `gorm:"default:1" json:"quantite"`
	PrestationID    *uuid.UUID      `gorm:"type:uuid" json:"prestationId,omitempty"`
}

func (o OrdreReparation) GetID() uuid.UUID { return o.ID }

func (o OrdreReparation) SearchFields() []string {
	return []string{o.NumeroODR, o.ClientNom, o.VehiculeRef}
}

// TotalArticles sums unit price times quantity over all articles.
func TotalArticles(articles []ArticleODR) decimal.Decimal {
	total := decimal.Zero
	for _, a := range articles {
		total = total.Add(a.PrixUnitaireTTC.Mul(decimal.NewFromInt(int64(a.Quantite))))
	}
	return total
}
