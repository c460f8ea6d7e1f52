package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessageCategorieDevis   = "DEVIS"
	MessageCategorieFacture = "FACTURE"
	MessageCategorieRelance = "RELANCE"
	MessageCategorieGeneral = "GENERAL"
)

// Message is an entry of the internal garage mailbox.
type Message struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	From          string    `gorm:"column:from_addr;not null" json:"from"`
	FromName      string    `json:"fromName"`
	To            string    `gorm:"column:to_addr;not null" json:"to"`
	Subject       string    `gorm:"not null" json:"subject"`
	Body          string    `gorm:"type:text" json:"body"`
	Date          time.Time `json:"date"`
	IsRead        bool      `gorm:"default:false" json:"isRead"`
	IsStarred     bool      `gorm:"default:false" json:"isStarred"`
	HasAttachment bool      `gorm:"default:false" json:"hasAttachment"`
	Categorie     string    `gorm:"type:varchar(20);default:'GENERAL'" json:"categorie"`

	CreatedAt time.Time `json:"createdAt"`
}

func (m Message) GetID() uuid.UUID { return m.ID }

func (m Message) SearchFields() []string {
	return []string{m.Subject, m.FromName, m.Body}
}
