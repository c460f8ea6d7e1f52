package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeClientNormal      = "NORMAL"
	TypeClientGrandCompte = "GRAND_COMPTE"
)

type Client struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	NumeroClient string    `gorm:"uniqueIndex;not null" json:"numeroClient"`

	Prenom     string `gorm:"not null" json:"prenom"`
	Nom        string `gorm:"not null" json:"nom"`
	Entreprise string `json:"entreprise,omitempty"`
	Email      string `gorm:"not null" json:"email"`
	Telephone  string `gorm:"not null" json:"telephone"`
	Adresse    string `gorm:"not null" json:"adresse"`
	Ville      string `gorm:"not null" json:"ville"`
	CodePostal string `gorm:"type:varchar(5);not null" json:"codePostal"`
	TypeClient string `gorm:"type:varchar(20);default:'NORMAL'" json:"typeClient"`

	CreatedAt time.Time `json:"createdAt"`
}

func (c Client) GetID() uuid.UUID { return c.ID }

func (c Client) NomComplet() string { return c.Prenom + " " + c.Nom }

// SearchFields lists the values the free-text filter matches against.
func (c Client) SearchFields() []string {
	return []string{c.Nom, c.Prenom, c.Email, c.NumeroClient}
}
