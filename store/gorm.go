package store

import (
	"gorm.io/gorm"

	"garagehub-backend/models"
)

// AttachDB wires a GORM database behind the store: existing rows are loaded
// into the in-memory collections at startup and every subsequent create is
// written through. Reads keep serving from memory, so the filter, metrics
// and validation contracts are untouched by persistence.
func (s *Store) AttachDB(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Client{},
		&models.Vehicule{},
		&models.Prestation{},
		&models.Forfait{},
		&models.Devis{},
		&models.OrdreReparation{},
		&models.ArticleODR{},
		&models.Facture{},
		&models.Message{},
	); err != nil {
		return err
	}

	if err := loadInto(db, s.Clients); err != nil {
		return err
	}
	if err := loadInto(db, s.Vehicules); err != nil {
		return err
	}
	if err := loadInto(db, s.Prestations); err != nil {
		return err
	}
	if err := loadInto(db, s.Forfaits); err != nil {
		return err
	}
	if err := loadInto(db, s.Devis); err != nil {
		return err
	}
	if err := loadOrdres(db, s.Ordres); err != nil {
		return err
	}
	if err := loadInto(db, s.Factures); err != nil {
		return err
	}
	if err := loadInto(db, s.Messages); err != nil {
		return err
	}

	for _, c := range s.Clients.List() {
		s.RegisterNumero(c.NumeroClient)
	}
	for _, d := range s.Devis.List() {
		s.RegisterNumero(d.NumeroDevis)
	}
	for _, o := range s.Ordres.List() {
		s.RegisterNumero(o.NumeroODR)
	}
	for _, f := range s.Factures.List() {
		s.RegisterNumero(f.NumeroFacture)
	}
	return nil
}

func loadInto[T Record](db *gorm.DB, c *Collection[T]) error {
	var items []T
	if err := db.Order("created_at").Find(&items).Error; err != nil {
		return err
	}
	c.replace(items)
	c.SetPersist(func(item T) error {
		return db.Create(&item).Error
	})
	return nil
}

// Repair orders carry their articles, which need an explicit preload.
func loadOrdres(db *gorm.DB, c *Collection[models.OrdreReparation]) error {
	var items []models.OrdreReparation
	if err := db.Preload("Articles").Order("created_at").Find(&items).Error; err != nil {
		return err
	}
	c.replace(items)
	c.SetPersist(func(o models.OrdreReparation) error {
		return db.Create(&o).Error
	})
	return nil
}
