package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeServiceCarrosserie = "CARROSSERIE"
	TypeServiceMecanique   = "MECANIQUE"
)

// Prestation is a billable catalog service with a base price.
type Prestation struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Nom         string          `gorm:"not null" json:"nom"`
	Description string          `json:"description"`
	TypeService string          `gorm:"type:varchar(20);not null" json:"typeService"`
	PrixDeBase  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"prixDeBase"`

	CreatedAt time.Time `json:"createdAt"`
}

func (p Prestation) GetID() uuid.UUID { return p.ID }

func (p Prestation) SearchFields() []string {
	return []string{p.Nom, p.Description}
}

// Forfait is a fixed-price bundle tied to a vehicle make/model, backed by a
// catalog prestation.
type Forfait struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Nom          string          `gorm:"not null" json:"nom"`
	Marque       string          `json:"marque"`
	Modele       string          `json:"modele"`
	Prix         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"prix"`
	Description  string          `json:"description"`
	PrestationID uuid.UUID       `gorm:"type:uuid;index;not null" json:"prestationId"`

	CreatedAt time.Time `json:"createdAt"`
}

func (f Forfait) GetID() uuid.UUID { return f.ID }

func (f Forfait) SearchFields() []string {
	return []string{f.Nom, f.Marque, f.Modele}
}
