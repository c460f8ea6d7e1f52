package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Vehicule struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Immatriculation string    `gorm:"uniqueIndex;size:9;not null" json:"immatriculation"`
	Marque          string    `gorm:"not null" json:"marque"`
	Modele          string    `gorm:"not null" json:"modele"`
	Annee           int       `gorm:"not null" json:"annee"`
	NumeroSerie     string    `gorm:"size:17" json:"numeroSerie,omitempty"`
	Kilometrage     *int      `json:"kilometrage"`
	ClientID        uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`

	CreatedAt time.Time `json:"createdAt"`
}

func (v Vehicule) GetID() uuid.UUID { return v.ID }

// Reference is the display descriptor used on documents, e.g.
// "Peugeot 308 (AB-123-CD)".
func (v Vehicule) Reference() string {
	return fmt.Sprintf("%s %s (%s)", v.Marque, v.Modele, v.Immatriculation)
}

func (v Vehicule) SearchFields() []string {
	return []string{v.Immatriculation, v.Marque, v.Modele, v.NumeroSerie}
}
