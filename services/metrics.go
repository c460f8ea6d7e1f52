package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"garagehub-backend/models"
	"garagehub-backend/store"
	"garagehub-backend/utils"
)

// Derived metrics are always recomputed in full from the current collection
// state; nothing here is cached or incremental.

type ClientStats struct {
	TotalClients        int `json:"totalClients"`
	GrandsComptes       int `json:"grandsComptes"`
	NouveauxClientsMois int `json:"nouveauxClientsMois"`
}

func ComputeClientStats(clients []models.Client, now time.Time) ClientStats {
	stats := ClientStats{TotalClients: len(clients)}
	for _, c := range clients {
		if c.TypeClient == models.TypeClientGrandCompte {
			stats.GrandsComptes++
		}
		if c.CreatedAt.Year() == now.Year() && c.CreatedAt.Month() == now.Month() {
			stats.NouveauxClientsMois++
		}
	}
	return stats
}

type VehiculeStats struct {
	TotalVehicules   int `json:"totalVehicules"`
	AnneeMoyenne     int `json:"anneesMoyenne"`
	KilometrageMoyen int `json:"kilometrageMoyen"`
}

func ComputeVehiculeStats(vehicules []models.Vehicule) VehiculeStats {
	stats := VehiculeStats{TotalVehicules: len(vehicules)}
	if len(vehicules) == 0 {
		return stats
	}

	sumAnnees := 0
	sumKm, nbKm := 0, 0
	for _, v := range vehicules {
		sumAnnees += v.Annee
		// Vehicles without a recorded odometer are excluded from both the
		// numerator and the denominator.
		if v.Kilometrage != nil {
			sumKm += *v.Kilometrage
			nbKm++
		}
	}
	stats.AnneeMoyenne = int(math.Round(float64(sumAnnees) / float64(len(vehicules))))
	if nbKm > 0 {
		stats.KilometrageMoyen = int(math.Round(float64(sumKm) / float64(nbKm)))
	}
	return stats
}

type DevisStats struct {
	Total        int             `json:"total"`
	EnAttente    int             `json:"enAttente"`
	Acceptes     int             `json:"acceptes"`
	MontantTotal decimal.Decimal `json:"montantTotal"`
}

func ComputeDevisStats(devis []models.Devis) DevisStats {
	stats := DevisStats{Total: len(devis), MontantTotal: decimal.Zero}
	for _, d := range devis {
		switch d.Statut {
		case models.DevisStatutEnAttente:
			stats.EnAttente++
		case models.DevisStatutAccepte:
			stats.Acceptes++
		}
		stats.MontantTotal = stats.MontantTotal.Add(d.TotalTTC)
	}
	return stats
}

type OrdreStats struct {
	Total        int             `json:"total"`
	EnCours      int             `json:"enCours"`
	Termines     int             `json:"termines"`
	Annules      int             `json:"annules"`
	MontantTotal decimal.Decimal `json:"montantTotal"`
}

func ComputeOrdreStats(ordres []models.OrdreReparation) OrdreStats {
	stats := OrdreStats{Total: len(ordres), MontantTotal: decimal.Zero}
	for _, o := range ordres {
		switch o.Statut {
		case models.ODRStatutEnCours:
			stats.EnCours++
		case models.ODRStatutTermine:
			stats.Termines++
		case models.ODRStatutAnnule:
			stats.Annules++
		}
		stats.MontantTotal = stats.MontantTotal.Add(o.MontantTotal)
	}
	return stats
}

type FactureStats struct {
	Total         int             `json:"total"`
	Payees        int             `json:"payees"`
	MontantPaye   decimal.Decimal `json:"montantPaye"`
	Impayees      int             `json:"impayees"`
	MontantImpaye decimal.Decimal `json:"montantImpaye"`
	EnRetard      int             `json:"enRetard"`
	MontantTotal  decimal.Decimal `json:"montantTotal"`
}

func ComputeFactureStats(factures []models.Facture, now time.Time) FactureStats {
	stats := FactureStats{
		Total:         len(factures),
		MontantPaye:   decimal.Zero,
		MontantImpaye: decimal.Zero,
		MontantTotal:  decimal.Zero,
	}
	for _, f := range factures {
		switch f.Statut {
		case models.FactureStatutPayee:
			stats.Payees++
			stats.MontantPaye = stats.MontantPaye.Add(f.MontantTTC)
		case models.FactureStatutImpayee:
			stats.Impayees++
			stats.MontantImpaye = stats.MontantImpaye.Add(f.MontantTTC)
		}
		if f.EnRetard(now) {
			stats.EnRetard++
		}
		stats.MontantTotal = stats.MontantTotal.Add(f.MontantTTC)
	}
	return stats
}

type DashboardMetrics struct {
	TotalClients     int             `json:"totalClients"`
	GrandsComptes    int             `json:"grandsComptes"`
	OdrJour          int             `json:"odrJour"`
	OdrMois          int             `json:"odrMois"`
	OdrAnnee         int             `json:"odrAnnee"`
	MontantJour      decimal.Decimal `json:"montantJour"`
	MontantMois      decimal.Decimal `json:"montantMois"`
	MontantAnnee     decimal.Decimal `json:"montantAnnee"`
	FacturesEnCours  int             `json:"facturesEnCours"`
	FacturesImpayees int             `json:"facturesImpayees"`
}

// ComputeDashboardMetrics aggregates the main dashboard counters.
// activite restricts the repair-order buckets to one service type
// ("CARROSSERIE" or "MECANIQUE"); "ALL" or "" keeps everything.
func ComputeDashboardMetrics(s *store.Store, activite string, now time.Time) DashboardMetrics {
	clientStats := ComputeClientStats(s.Clients.List(), now)
	m := DashboardMetrics{
		TotalClients:  clientStats.TotalClients,
		GrandsComptes: clientStats.GrandsComptes,
		MontantJour:   decimal.Zero,
		MontantMois:   decimal.Zero,
		MontantAnnee:  decimal.Zero,
	}

	today := utils.BeginningOfDay(now)
	for _, o := range s.Ordres.List() {
		if activite != "" && activite != "ALL" && o.TypeService != activite {
			continue
		}
		if o.DateCreation.Year() == now.Year() {
			m.OdrAnnee++
			m.MontantAnnee = m.MontantAnnee.Add(o.MontantTotal)
			if o.DateCreation.Month() == now.Month() {
				m.OdrMois++
				m.MontantMois = m.MontantMois.Add(o.MontantTotal)
			}
			if utils.BeginningOfDay(o.DateCreation).Equal(today) {
				m.OdrJour++
				m.MontantJour = m.MontantJour.Add(o.MontantTotal)
			}
		}
	}

	for _, f := range s.Factures.List() {
		switch f.Statut {
		case models.FactureStatutEnAttente, models.FactureStatutPartiellementPayee:
			m.FacturesEnCours++
		case models.FactureStatutImpayee:
			m.FacturesImpayees++
		}
	}
	return m
}

const (
	AlerteOverdue = "OVERDUE"
	AlerteWarning = "WARNING"
)

type AlerteFacture struct {
	ID            string          `json:"id"`
	NumeroFacture string          `json:"numeroFacture"`
	ClientNom     string          `json:"clientNom"`
	Montant       decimal.Decimal `json:"montant"`
	DateEcheance  time.Time       `json:"dateEcheance"`
	JoursRestants int             `json:"joursRestants"`
	Type          string          `json:"type"`
}

// ComputeAlertes lists invoices past due (OVERDUE) or due within three days
// (WARNING), most urgent first.
func ComputeAlertes(factures []models.Facture, now time.Time) []AlerteFacture {
	alertes := []AlerteFacture{}
	for _, f := range factures {
		if f.Statut == models.FactureStatutPayee || f.Statut == models.FactureStatutAnnulee {
			continue
		}
		jours := utils.DaysBetween(now, f.DateEcheance)
		kind := ""
		switch {
		case jours < 0:
			kind = AlerteOverdue
		case jours <= 3:
			kind = AlerteWarning
		default:
			continue
		}
		alertes = append(alertes, AlerteFacture{
			ID:            f.ID.String(),
			NumeroFacture: f.NumeroFacture,
			ClientNom:     f.ClientNom,
			Montant:       f.MontantTTC,
			DateEcheance:  f.DateEcheance,
			JoursRestants: jours,
			Type:          kind,
		})
	}
	sort.SliceStable(alertes, func(i, j int) bool {
		return alertes[i].JoursRestants < alertes[j].JoursRestants
	})
	return alertes
}

type Activite struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Timestamp   time.Time        `json:"timestamp"`
	ServiceType string           `json:"serviceType,omitempty"`
}

// ComputeActivites builds the recent-activity feed across all catalogs,
// newest first, limited to n entries.
func ComputeActivites(s *store.Store, n int) []Activite {
	var activites []Activite

	for _, o := range s.Ordres.List() {
		amount := o.MontantTotal
		activites = append(activites, Activite{
			ID:          o.ID.String(),
			Type:        "ODR",
			Title:       "Nouvel ODR créé",
			Description: fmt.Sprintf("%s - %s pour %s", o.NumeroODR, o.VehiculeRef, o.ClientNom),
			Amount:      &amount,
			Timestamp:   o.CreatedAt,
			ServiceType: o.TypeService,
		})
	}
	for _, f := range s.Factures.List() {
		amount := f.MontantTTC
		title := "Nouvelle facture"
		if f.Statut == models.FactureStatutPayee {
			title = "Facture payée"
		}
		activites = append(activites, Activite{
			ID:          f.ID.String(),
			Type:        "FACTURE",
			Title:       title,
			Description: fmt.Sprintf("%s - %s", f.NumeroFacture, f.ClientNom),
			Amount:      &amount,
			Timestamp:   f.CreatedAt,
		})
	}
	for _, d := range s.Devis.List() {
		amount := d.TotalTTC
		title := "Nouveau devis"
		if d.Statut == models.DevisStatutAccepte {
			title = "Devis accepté"
		}
		activites = append(activites, Activite{
			ID:          d.ID.String(),
			Type:        "DEVIS",
			Title:       title,
			Description: fmt.Sprintf("%s - %s", d.NumeroDevis, d.ClientNom),
			Amount:      &amount,
			Timestamp:   d.CreatedAt,
			ServiceType: d.TypeService,
		})
	}
	for _, c := range s.Clients.List() {
		desc := "Inscription de " + c.NomComplet()
		if c.TypeClient == models.TypeClientGrandCompte {
			desc += " - Grand compte"
		}
		activites = append(activites, Activite{
			ID:          c.ID.String(),
			Type:        "CLIENT",
			Title:       "Nouveau client",
			Description: desc,
			Timestamp:   c.CreatedAt,
		})
	}

	sort.SliceStable(activites, func(i, j int) bool {
		return activites[i].Timestamp.After(activites[j].Timestamp)
	})
	if n > 0 && len(activites) > n {
		activites = activites[:n]
	}
	return activites
}
