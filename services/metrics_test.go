package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"garagehub-backend/models"
)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestComputeVehiculeStatsEmptyCollection(t *testing.T) {
	stats := ComputeVehiculeStats(nil)

	// Means over an empty collection are 0, never NaN or a panic.
	assert.Equal(t, 0, stats.TotalVehicules)
	assert.Equal(t, 0, stats.AnneeMoyenne)
	assert.Equal(t, 0, stats.KilometrageMoyen)
}

func TestComputeVehiculeStatsMeanYear(t *testing.T) {
	stats := ComputeVehiculeStats([]models.Vehicule{
		{Annee: 2020},
		{Annee: 2022},
	})
	assert.Equal(t, 2021, stats.AnneeMoyenne)
}

func TestComputeVehiculeStatsIgnoresMissingOdometer(t *testing.T) {
	km := 100
	stats := ComputeVehiculeStats([]models.Vehicule{
		{Annee: 2020, Kilometrage: nil},
		{Annee: 2022, Kilometrage: &km},
	})

	// The vehicle without an odometer reading is excluded from both the
	// numerator and the denominator.
	assert.Equal(t, 100, stats.KilometrageMoyen)
}

func TestComputeVehiculeStatsNoOdometerAtAll(t *testing.T) {
	stats := ComputeVehiculeStats([]models.Vehicule{{Annee: 2020}})
	assert.Equal(t, 0, stats.KilometrageMoyen)
}

func TestComputeClientStats(t *testing.T) {
	now := time.Date(2024, 1, 25, 12, 0, 0, 0, time.UTC)
	stats := ComputeClientStats([]models.Client{
		{TypeClient: models.TypeClientNormal, CreatedAt: now.AddDate(0, -2, 0)},
		{TypeClient: models.TypeClientGrandCompte, CreatedAt: now.AddDate(0, 0, -3)},
		{TypeClient: models.TypeClientNormal, CreatedAt: now},
	}, now)

	assert.Equal(t, 3, stats.TotalClients)
	assert.Equal(t, 1, stats.GrandsComptes)
	assert.Equal(t, 2, stats.NouveauxClientsMois)
}

func TestComputeFactureStats(t *testing.T) {
	now := time.Date(2024, 1, 25, 12, 0, 0, 0, time.UTC)
	factures := []models.Facture{
		{Statut: models.FactureStatutPayee, MontantTTC: dec("450.75"), DateEcheance: now.AddDate(0, 0, -5)},
		{Statut: models.FactureStatutImpayee, MontantTTC: dec("1250.00"), DateEcheance: now.AddDate(0, 0, -10)},
		{Statut: models.FactureStatutEnAttente, MontantTTC: dec("850.50"), DateEcheance: now.AddDate(0, 0, 14)},
	}

	stats := ComputeFactureStats(factures, now)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Payees)
	assert.True(t, stats.MontantPaye.Equal(dec("450.75")))
	assert.Equal(t, 1, stats.Impayees)
	assert.True(t, stats.MontantImpaye.Equal(dec("1250.00")))
	assert.Equal(t, 1, stats.EnRetard)
	assert.True(t, stats.MontantTotal.Equal(dec("2551.25")))
}

func TestFactureOverdueEvaluatedAtCallTime(t *testing.T) {
	echeance := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	f := models.Facture{Statut: models.FactureStatutEnAttente, MontantTTC: dec("100.00"), DateEcheance: echeance}

	before := ComputeFactureStats([]models.Facture{f}, echeance.AddDate(0, 0, -1))
	after := ComputeFactureStats([]models.Facture{f}, echeance.AddDate(0, 0, 1))

	assert.Equal(t, 0, before.EnRetard)
	assert.Equal(t, 1, after.EnRetard)
}

func TestPaidInvoiceIsNeverOverdue(t *testing.T) {
	f := models.Facture{
		Statut:       models.FactureStatutPayee,
		DateEcheance: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.False(t, f.EnRetard(time.Now()))
}

func TestComputeOrdreStats(t *testing.T) {
	stats := ComputeOrdreStats([]models.OrdreReparation{
		{Statut: models.ODRStatutEnCours, MontantTotal: dec("1250.80")},
		{Statut: models.ODRStatutEnCours, MontantTotal: dec("850.50")},
		{Statut: models.ODRStatutTermine, MontantTotal: dec("450.00")},
	})

	assert.Equal(t, 2, stats.EnCours)
	assert.Equal(t, 1, stats.Termines)
	assert.Equal(t, 0, stats.Annules)
	assert.True(t, stats.MontantTotal.Equal(dec("2551.30")))
}

func TestComputeAlertes(t *testing.T) {
	now := time.Date(2024, 1, 25, 12, 0, 0, 0, time.UTC)
	factures := []models.Facture{
		{NumeroFacture: "FAC-2024-001", Statut: models.FactureStatutEnAttente, MontantTTC: dec("850.50"), DateEcheance: now.AddDate(0, 0, -2)},
		{NumeroFacture: "FAC-2024-002", Statut: models.FactureStatutEnAttente, MontantTTC: dec("450.00"), DateEcheance: now.AddDate(0, 0, 2)},
		{NumeroFacture: "FAC-2024-003", Statut: models.FactureStatutPayee, MontantTTC: dec("100.00"), DateEcheance: now.AddDate(0, 0, -30)},
		{NumeroFacture: "FAC-2024-004", Statut: models.FactureStatutEnAttente, MontantTTC: dec("100.00"), DateEcheance: now.AddDate(0, 0, 30)},
	}

	alertes := ComputeAlertes(factures, now)
	assert.Len(t, alertes, 2)
	// Most urgent first.
	assert.Equal(t, "FAC-2024-001", alertes[0].NumeroFacture)
	assert.Equal(t, AlerteOverdue, alertes[0].Type)
	assert.Equal(t, -2, alertes[0].JoursRestants)
	assert.Equal(t, "FAC-2024-002", alertes[1].NumeroFacture)
	assert.Equal(t, AlerteWarning, alertes[1].Type)
}

func TestTotalArticles(t *testing.T) {
	articles := []models.ArticleODR{
		{PrixUnitaireTTC: dec("450.00"), Quantite: 1},
		{PrixUnitaireTTC: dec("25.50"), Quantite: 4},
	}
	assert.True(t, models.TotalArticles(articles).Equal(dec("552.00")))

	// Removing a line recomputes correctly.
	assert.True(t, models.TotalArticles(articles[:1]).Equal(dec("450.00")))
	assert.True(t, models.TotalArticles(nil).Equal(decimal.Zero))
}
