package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"garagehub-backend/models"
)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func date(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func intPtr(v int) *int { return &v }

// Seed loads the demo dataset the dashboard ships with. When a persistence
// hook is attached the records are written through like any other create.
func (s *Store) Seed() error {
	clients := []models.Client{
		{
			ID: uuid.New(), NumeroClient: "CLI-2024-001",
			Prenom: "Martin", Nom: "Dubois",
			Email: "martin.dubois@email.com", Telephone: "06.12.34.56.78",
			Adresse: "12 Rue de la République", Ville: "Lyon", CodePostal: "69001",
			TypeClient: models.TypeClientNormal,
			CreatedAt:  date("2024-01-05T09:00:00Z"),
		},
		{
			ID: uuid.New(), NumeroClient: "CLI-2024-002",
			Prenom: "Sophie", Nom: "Lambert", Entreprise: "Transport Lambert",
			Email: "sophie.lambert@transport-lambert.fr", Telephone: "+33478901234",
			Adresse: "45 Avenue des Frères Lumière", Ville: "Lyon", CodePostal: "69008",
			TypeClient: models.TypeClientGrandCompte,
			CreatedAt:  date("2024-01-08T14:30:00Z"),
		},
		{
			ID: uuid.New(), NumeroClient: "CLI-2024-003",
			Prenom: "Pierre", Nom: "Martin",
			Email: "pierre.martin@email.com", Telephone: "06.98.76.54.32",
			Adresse: "3 Place Bellecour", Ville: "Lyon", CodePostal: "69002",
			TypeClient: models.TypeClientNormal,
			CreatedAt:  date("2024-01-12T10:15:00Z"),
		},
	}

	vehicules := []models.Vehicule{
		{
			ID: uuid.New(), Immatriculation: "AB-123-CD",
			Marque: "Peugeot", Modele: "308", Annee: 2020,
			NumeroSerie: "VF3LCYHZPLS012345", Kilometrage: intPtr(45000),
			ClientID: clients[0].ID, CreatedAt: date("2024-01-05T09:10:00Z"),
		},
		{
			ID: uuid.New(), Immatriculation: "GH-789-IJ",
			Marque: "Renault", Modele: "Master", Annee: 2021,
			Kilometrage: intPtr(125000),
			ClientID:    clients[1].ID, CreatedAt: date("2024-01-08T14:40:00Z"),
		},
		{
			ID: uuid.New(), Immatriculation: "CD-456-EF",
			Marque: "Renault", Modele: "Clio", Annee: 2019,
			ClientID: clients[2].ID, CreatedAt: date("2024-01-12T10:20:00Z"),
		},
	}

	prestations := []models.Prestation{
		{
			ID: uuid.New(), Nom: "Réparation pare-chocs",
			Description: "Redressage et mise en peinture d'un pare-chocs",
			TypeService: models.TypeServiceCarrosserie, PrixDeBase: dec("450.00"),
			CreatedAt: date("2024-01-02T08:00:00Z"),
		},
		{
			ID: uuid.New(), Nom: "Vidange + filtres",
			Description: "Vidange huile moteur et remplacement des filtres",
			TypeService: models.TypeServiceMecanique, PrixDeBase: dec("85.00"),
			CreatedAt: date("2024-01-02T08:05:00Z"),
		},
		{
			ID: uuid.New(), Nom: "Peinture aile complète",
			Description: "Préparation et peinture d'une aile",
			TypeService: models.TypeServiceCarrosserie, PrixDeBase: dec("320.00"),
			CreatedAt: date("2024-01-02T08:10:00Z"),
		},
		{
			ID: uuid.New(), Nom: "Remplacement plaquettes de frein",
			Description: "Plaquettes avant, main d'œuvre comprise",
			TypeService: models.TypeServiceMecanique, PrixDeBase: dec("120.00"),
			CreatedAt: date("2024-01-02T08:15:00Z"),
		},
	}

	forfaits := []models.Forfait{
		{
			ID: uuid.New(), Nom: "Forfait carrosserie 308",
			Marque: "Peugeot", Modele: "308", Prix: dec("399.00"),
			Description:  "Pare-chocs avant, peinture comprise",
			PrestationID: prestations[0].ID,
			CreatedAt:    date("2024-01-03T08:00:00Z"),
		},
	}

	devis := []models.Devis{
		{
			ID: uuid.New(), NumeroDevis: "DEV-2024-001",
			DateCreation: date("2024-01-15T09:00:00Z"), DateValidite: date("2024-02-15T09:00:00Z"),
			ClientID: clients[0].ID, ClientNom: clients[0].NomComplet(), Vehicule: vehicules[0].Reference(),
			Statut: models.DevisStatutEnAttente, TypeService: models.TypeServiceCarrosserie,
			MontantHT: dec("850.00"), MontantTVA: dec("170.00"), TotalTTC: dec("1020.00"),
			CreatedAt: date("2024-01-15T09:00:00Z"),
		},
		{
			ID: uuid.New(), NumeroDevis: "DEV-2024-002",
			DateCreation: date("2024-01-16T11:00:00Z"), DateValidite: date("2024-02-16T11:00:00Z"),
			ClientID: clients[2].ID, ClientNom: clients[2].NomComplet(), Vehicule: vehicules[2].Reference(),
			Statut: models.DevisStatutAccepte, TypeService: models.TypeServiceMecanique,
			MontantHT: dec("450.00"), MontantTVA: dec("90.00"), TotalTTC: dec("540.00"),
			CreatedAt: date("2024-01-16T11:00:00Z"),
		},
	}

	ordres := []models.OrdreReparation{
		{
			ID: uuid.New(), NumeroODR: "ODR-2024-008",
			DateCreation: date("2024-01-10T09:00:00Z"),
			ClientID:     clients[1].ID, ClientNom: clients[1].NomComplet(),
			VehiculeID: vehicules[1].ID, VehiculeRef: vehicules[1].Reference(),
			Statut: models.ODRStatutTermine, TypeService: models.TypeServiceMecanique,
			Articles: []models.ArticleODR{
				{ID: uuid.New(), Designation: "Révision complète", PrixUnitaireTTC: dec("450.00"), Quantite: 1},
			},
			MontantTotal: dec("450.00"),
			CreatedAt:    date("2024-01-10T09:00:00Z"),
		},
		{
			ID: uuid.New(), NumeroODR: "ODR-2024-012",
			DateCreation: date("2024-01-20T16:00:00Z"),
			ClientID:     clients[0].ID, ClientNom: clients[0].NomComplet(),
			VehiculeID: vehicules[0].ID, VehiculeRef: vehicules[0].Reference(),
			Statut: models.ODRStatutEnCours, TypeService: models.TypeServiceCarrosserie,
			Observations: "Rayures profondes sur l'aile avant droite",
			Articles: []models.ArticleODR{
				{ID: uuid.New(), Designation: "Réparation pare-chocs", PrixUnitaireTTC: dec("450.00"), Quantite: 1, PrestationID: &prestations[0].ID},
				{ID: uuid.New(), Designation: "Peinture aile complète", PrixUnitaireTTC: dec("320.00"), Quantite: 1, PrestationID: &prestations[2].ID},
				{ID: uuid.New(), Designation: "Fournitures atelier", PrixUnitaireTTC: dec("480.80"), Quantite: 1},
			},
			MontantTotal: dec("1250.80"),
			CreatedAt:    date("2024-01-20T16:00:00Z"),
		},
	}

	factures := []models.Facture{
		{
			ID: uuid.New(), NumeroFacture: "FAC-2024-001",
			DateEmission: date("2024-01-08T00:00:00Z"), DateEcheance: date("2024-01-22T00:00:00Z"),
			ClientID: clients[0].ID, ClientNom: clients[0].NomComplet(),
			MontantTTC: dec("850.50"), Statut: models.FactureStatutEnAttente,
			NumeroODR: "ODR-2024-012",
			CreatedAt: date("2024-01-08T00:00:00Z"),
		},
		{
			ID: uuid.New(), NumeroFacture: "FAC-2024-002",
			DateEmission: date("2024-01-01T00:00:00Z"), DateEcheance: date("2024-01-15T00:00:00Z"),
			ClientID: clients[1].ID, ClientNom: clients[1].NomComplet(),
			MontantTTC: dec("1250.00"), Statut: models.FactureStatutImpayee,
			NumeroODR: "ODR-2024-008",
			CreatedAt: date("2024-01-01T00:00:00Z"),
		},
		{
			ID: uuid.New(), NumeroFacture: "FAC-2024-003",
			DateEmission: date("2024-01-07T00:00:00Z"), DateEcheance: date("2024-01-21T00:00:00Z"),
			ClientID: clients[2].ID, ClientNom: clients[2].NomComplet(),
			MontantTTC: dec("450.75"), Statut: models.FactureStatutPayee,
			ModePaiement: models.PaiementVirement, DateReglement: timePtr(date("2024-01-18T00:00:00Z")),
			CreatedAt: date("2024-01-07T00:00:00Z"),
		},
	}

	messages := []models.Message{
		{
			ID:   uuid.New(),
			From: "martin.dubois@email.com", FromName: "Martin Dubois",
			To:      "contact@mongarage.fr",
			Subject: "Demande de devis pour réparation carrosserie",
			Body:    "Bonjour,\n\nJe souhaiterais obtenir un devis pour la réparation de mon pare-chocs avant suite à un petit accrochage. Mon véhicule est une Peugeot 308 de 2020, immatriculation AB-123-CD.\n\nCordialement,\nMartin Dubois",
			Date:    date("2024-01-20T14:30:00Z"), IsStarred: true,
			Categorie: models.MessageCategorieDevis,
			CreatedAt: date("2024-01-20T14:30:00Z"),
		},
		{
			ID:   uuid.New(),
			From: "sophie.lambert@transport-lambert.fr", FromName: "Sophie Lambert",
			To:      "contact@mongarage.fr",
			Subject: "Facture FAC-2024-002 - Demande de délai de paiement",
			Body:    "Bonjour,\n\nSuite à quelques difficultés de trésorerie temporaires, je vous demande s'il serait possible d'obtenir un délai de paiement pour la facture FAC-2024-002 d'un montant de 1250€.\n\nCordialement,\nSophie Lambert",
			Date:    date("2024-01-19T16:45:00Z"), IsRead: true, HasAttachment: true,
			Categorie: models.MessageCategorieFacture,
			CreatedAt: date("2024-01-19T16:45:00Z"),
		},
		{
			ID:   uuid.New(),
			From: "pierre.martin@email.com", FromName: "Pierre Martin",
			To:      "contact@mongarage.fr",
			Subject: "Remerciements pour la réparation",
			Body:    "Bonjour,\n\nJe tenais à vous remercier pour l'excellent travail effectué sur ma Renault Clio. La réparation a été parfaite et dans les délais annoncés.\n\nCordialement,\nPierre Martin",
			Date:    date("2024-01-18T10:15:00Z"), IsRead: true,
			Categorie: models.MessageCategorieGeneral,
			CreatedAt: date("2024-01-18T10:15:00Z"),
		},
	}

	for _, c := range clients {
		s.RegisterNumero(c.NumeroClient)
		if err := s.Clients.Add(c); err != nil {
			return err
		}
	}
	for _, v := range vehicules {
		if err := s.Vehicules.Add(v); err != nil {
			return err
		}
	}
	for _, p := range prestations {
		if err := s.Prestations.Add(p); err != nil {
			return err
		}
	}
	for _, f := range forfaits {
		if err := s.Forfaits.Add(f); err != nil {
			return err
		}
	}
	for _, d := range devis {
		s.RegisterNumero(d.NumeroDevis)
		if err := s.Devis.Add(d); err != nil {
			return err
		}
	}
	for _, o := range ordres {
		s.RegisterNumero(o.NumeroODR)
		if err := s.Ordres.Add(o); err != nil {
			return err
		}
	}
	for _, f := range factures {
		s.RegisterNumero(f.NumeroFacture)
		if err := s.Factures.Add(f); err != nil {
			return err
		}
	}
	for _, m := range messages {
		if err := s.Messages.Add(m); err != nil {
			return err
		}
	}
	return nil
}

func timePtr(t time.Time) *time.Time { return &t }
