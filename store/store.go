package store

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"garagehub-backend/models"
)

// Store owns one collection per catalog plus the garage settings. A Store
// is passed explicitly to controllers and services; there is no package
// singleton.
type Store struct {
	Clients     *Collection[models.Client]
	Vehicules   *Collection[models.Vehicule]
	Prestations *Collection[models.Prestation]
	Forfaits    *Collection[models.Forfait]
	Devis       *Collection[models.Devis]
	Ordres      *Collection[models.OrdreReparation]
	Factures    *Collection[models.Facture]
	Messages    *Collection[models.Message]

	settingsMu sync.RWMutex
	settings   models.GarageSettings

	countersMu sync.Mutex
	counters   map[string]int
}

func New() *Store {
	return &Store{
		Clients:     &Collection[models.Client]{},
		Vehicules:   &Collection[models.Vehicule]{},
		Prestations: &Collection[models.Prestation]{},
		Forfaits:    &Collection[models.Forfait]{},
		Devis:       &Collection[models.Devis]{},
		Ordres:      &Collection[models.OrdreReparation]{},
		Factures:    &Collection[models.Facture]{},
		Messages:    &Collection[models.Message]{},
		settings:    models.DefaultSettings(),
		counters:    map[string]int{},
	}
}

// NextNumber generates the next document number for a prefix, e.g.
// "ODR-2026-013". Counters are per prefix and year.
func (s *Store) NextNumber(prefix string) string {
	year := time.Now().Year()
	key := fmt.Sprintf("%s-%d", prefix, year)

	s.countersMu.Lock()
	defer s.countersMu.Unlock()
	s.counters[key]++
	return fmt.Sprintf("%s-%03d", key, s.counters[key])
}

// RegisterNumero bumps the counter past an existing document number so
// seeded or loaded records never collide with generated ones.
func (s *Store) RegisterNumero(numero string) {
	parts := strings.Split(numero, "-")
	if len(parts) != 3 {
		return
	}
	seq, err := strconv.Atoi(parts[2])
	if err != nil {
		return
	}
	key := parts[0] + "-" + parts[1]

	s.countersMu.Lock()
	defer s.countersMu.Unlock()
	if seq > s.counters[key] {
		s.counters[key] = seq
	}
}

func (s *Store) Settings() models.GarageSettings {
	s.settingsMu.RLock()
	defer s.settingsMu.RUnlock()
	return s.settings
}

func (s *Store) UpdateSettings(fn func(*models.GarageSettings)) models.GarageSettings {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()
	fn(&s.settings)
	return s.settings
}
