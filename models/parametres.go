package models

// GarageSettings holds the garage configuration toggles. The external API
// keys (Pennylane, Vivawallet) are stored but never called: the
// integrations stay inert until the corresponding sync services exist.
type GarageSettings struct {
	NomGarage    string `json:"nomGarage"`
	EmailContact string `json:"emailContact"`

	NotificationsEmail bool `json:"notificationsEmail"`
	RelancesAuto       bool `json:"relancesAuto"`
	SMSRelances        bool `json:"smsRelances"`

	APIPennylaneKey  string `json:"apiPennylaneKey"`
	APIVivawalletKey string `json:"apiVivawalletKey"`

	ModePaiementDefaut string `json:"modePaiementDefaut"`
	DelaiPaiementJours int    `json:"delaiPaiementJours"`
}

// DefaultSettings mirrors the configuration the dashboard ships with.
func DefaultSettings() GarageSettings {
	return GarageSettings{
		NomGarage:          "Mon Garage",
		EmailContact:       "contact@mongarage.fr",
		NotificationsEmail: true,
		RelancesAuto:       true,
		SMSRelances:        false,
		ModePaiementDefaut: PaiementVirement,
		DelaiPaiementJours: 30,
	}
}
