package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type clientDraft struct {
	Prenom     string `json:"prenom" validate:"notblank"`
	Nom        string `json:"nom" validate:"notblank"`
	Telephone  string `json:"telephone" validate:"notblank"`
	Email      string `json:"email" validate:"notblank,email"`
	Adresse    string `json:"adresse" validate:"notblank"`
	Ville      string `json:"ville" validate:"notblank"`
	CodePostal string `json:"codePostal" validate:"notblank,frpostal"`
}

func TestValidateStructReportsEveryViolationAtOnce(t *testing.T) {
	errs := ValidateStruct(clientDraft{})

	for _, field := range []string{"prenom", "nom", "telephone", "email", "adresse", "ville", "codePostal"} {
		assert.Contains(t, errs, field)
	}
	assert.Equal(t, "Le prénom est requis", errs["prenom"])
	assert.Equal(t, "Le code postal est requis", errs["codePostal"])
}

func TestValidateStructAcceptsCompleteDraft(t *testing.T) {
	errs := ValidateStruct(clientDraft{
		Prenom:     "Martin",
		Nom:        "Dubois",
		Telephone:  "0612345678",
		Email:      "martin.dubois@email.com",
		Adresse:    "15 rue de la République",
		Ville:      "Lyon",
		CodePostal: "69001",
	})
	assert.Empty(t, errs)
}

func TestValidateStructPostalCode(t *testing.T) {
	draft := clientDraft{
		Prenom:     "Martin",
		Nom:        "Dubois",
		Telephone:  "0612345678",
		Email:      "martin.dubois@email.com",
		Adresse:    "15 rue de la République",
		Ville:      "Lyon",
		CodePostal: "690",
	}
	errs := ValidateStruct(draft)
	assert.Equal(t, "Code postal invalide (5 chiffres)", errs["codePostal"])
}

type plateDraft struct {
	Immatriculation string `json:"immatriculation" validate:"notblank,frplate"`
	Annee           int    `json:"annee" validate:"required,anneevehicule"`
}

func TestValidateStructPlateFormat(t *testing.T) {
	errs := ValidateStruct(plateDraft{Immatriculation: "AB-123-CD", Annee: 2020})
	assert.Empty(t, errs)

	errs = ValidateStruct(plateDraft{Immatriculation: "AB-123-C", Annee: 2020})
	assert.Equal(t, "Format invalide (ex: AB-123-CD)", errs["immatriculation"])
}

func TestValidateStructVehicleYearBounds(t *testing.T) {
	errs := ValidateStruct(plateDraft{Immatriculation: "AB-123-CD", Annee: 1899})
	assert.Equal(t, "Année invalide", errs["annee"])

	errs = ValidateStruct(plateDraft{Immatriculation: "AB-123-CD", Annee: CurrentYear() + 2})
	assert.Equal(t, "Année invalide", errs["annee"])

	errs = ValidateStruct(plateDraft{Immatriculation: "AB-123-CD", Annee: CurrentYear() + 1})
	assert.Empty(t, errs)
}

type articleDraft struct {
	Designation     string  `json:"designation" validate:"notblank"`
	PrixUnitaireTTC float64 `json:"prixUnitaireTTC" validate:"gt=0"`
	Quantite        int     `json:"quantite" validate:"gt=0"`
}

type ordreDraft struct {
	Articles []articleDraft `json:"articles" validate:"min=1,dive"`
}

func TestValidateStructFlattensArticleKeys(t *testing.T) {
	errs := ValidateStruct(ordreDraft{Articles: []articleDraft{
		{Designation: "Peinture aile avant", PrixUnitaireTTC: 450, Quantite: 1},
		{Designation: "", PrixUnitaireTTC: 0, Quantite: 2},
	}})

	// Errors carry the index of the offending line, first line untouched.
	assert.Equal(t, "La désignation est requise", errs["article_1_designation"])
	assert.Equal(t, "Le prix doit être supérieur à 0", errs["article_1_prix"])
	assert.NotContains(t, errs, "article_0_designation")
	assert.NotContains(t, errs, "article_0_prix")
}

func TestValidateStructRequiresAtLeastOneArticle(t *testing.T) {
	errs := ValidateStruct(ordreDraft{})
	assert.Equal(t, "Au moins un article est requis", errs["articles"])
}

func TestNormalizeImmatriculation(t *testing.T) {
	assert.Equal(t, "AB-123-CD", NormalizeImmatriculation("ab123cd"))
	assert.Equal(t, "AB-123-CD", NormalizeImmatriculation("AB-123-CD"))
	assert.Equal(t, "AB-123-CD", NormalizeImmatriculation(" ab 123 cd "))
	assert.Equal(t, "AB", NormalizeImmatriculation("ab"))
	assert.Equal(t, "AB-123", NormalizeImmatriculation("ab123"))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+33478901234"))
	assert.True(t, ValidatePhone("+33 4 78 90 12 34"))
	assert.False(t, ValidatePhone("0600000000"))
	assert.False(t, ValidatePhone(""))
	assert.False(t, ValidatePhone("+0012345"))
}
