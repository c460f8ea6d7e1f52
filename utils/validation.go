// utils/validation.go
package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	nonstd "github.com/go-playground/validator/v10/non-standard/validators"
)

var validate *validator.Validate

var (
	plateRegex  = regexp.MustCompile(`^[A-Z]{2}-[0-9]{3}-[A-Z]{2}$`)
	postalRegex = regexp.MustCompile(`^\d{5}$`)
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Error keys use the json field names so the front end can map them
	// straight onto inputs.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("notblank", nonstd.NotBlank)
	validate.RegisterValidation("frplate", func(fl validator.FieldLevel) bool {
		return plateRegex.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("frpostal", func(fl validator.FieldLevel) bool {
		return postalRegex.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("anneevehicule", func(fl validator.FieldLevel) bool {
		annee := int(fl.Field().Int())
		return annee >= 1900 && annee <= CurrentYear()+1
	})
}

// Field-specific messages, keyed "field.tag". Anything not listed falls back
// to a per-tag default.
var fieldMessages = map[string]string{
	"prenom.notblank":          "Le prénom est requis",
	"nom.notblank":             "Le nom est requis",
	"telephone.notblank":       "Le téléphone est requis",
	"email.notblank":           "L'email est requis",
	"adresse.notblank":         "L'adresse est requise",
	"ville.notblank":           "La ville est requise",
	"codePostal.notblank":      "Le code postal est requis",
	"immatriculation.notblank": "L'immatriculation est requise",
	"marque.notblank":          "La marque est requise",
	"modele.notblank":          "Le modèle est requis",
	"clientId.required":        "Le client est requis",
	"vehiculeId.required":      "Le véhicule est requis",
	"prestationId.required":    "La prestation est requise",
	"designation.notblank":     "La désignation est requise",
	"prixUnitaireTTC.gt":       "Le prix doit être supérieur à 0",
	"quantite.gt":              "La quantité doit être supérieure à 0",
	"montantTTC.gt":            "Le montant doit être supérieur à 0",
	"montantHT.gt":             "Le montant doit être supérieur à 0",
	"prixDeBase.gt":            "Le prix doit être supérieur à 0",
	"prix.gt":                  "Le prix doit être supérieur à 0",
	"dateEcheance.required":    "La date d'échéance est requise",
	"dateValidite.required":    "La date de validité est requise",
	"articles.min":             "Au moins un article est requis",
	"to.notblank":              "Le destinataire est requis",
	"subject.notblank":         "Le sujet est requis",
	"body.notblank":            "Le message est requis",
}

var tagMessages = map[string]string{
	"required":      "Ce champ est requis",
	"notblank":      "Ce champ est requis",
	"email":         "Email invalide",
	"frpostal":      "Code postal invalide (5 chiffres)",
	"frplate":       "Format invalide (ex: AB-123-CD)",
	"anneevehicule": "Année invalide",
	"gt":            "Valeur invalide",
	"min":           "Valeur invalide",
	"max":           "Valeur trop longue",
	"oneof":         "Valeur non autorisée",
}

// Repeated-item fields keep the historical error keys of the dashboard
// (article_2_prix rather than articles[2].prixUnitaireTTC).
var articleFieldAliases = map[string]string{
	"prixUnitaireTTC": "prix",
}

var articleKeyRegex = regexp.MustCompile(`^articles\[(\d+)\]\.(\w+)$`)

// ValidateStruct runs the declarative rules of a draft and returns every
// violation at once as a field-keyed message map. An empty map means the
// draft is acceptable.
func ValidateStruct(draft interface{}) map[string]string {
	errs := map[string]string{}
	err := validate.Struct(draft)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["_"] = err.Error()
		return errs
	}
	for _, fe := range verrs {
		errs[fieldKey(fe)] = messageFor(fe)
	}
	return errs
}

func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	// Drop the struct name prefix.
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if m := articleKeyRegex.FindStringSubmatch(ns); m != nil {
		field := m[2]
		if alias, ok := articleFieldAliases[field]; ok {
			field = alias
		}
		return "article_" + m[1] + "_" + field
	}
	return ns
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}
	return "Champ invalide"
}

// NormalizeImmatriculation uppercases a raw plate entry, strips everything
// but letters and digits and re-inserts the AA-123-AA dashes.
func NormalizeImmatriculation(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	switch {
	case len(cleaned) <= 2:
		return cleaned
	case len(cleaned) <= 5:
		return cleaned[:2] + "-" + cleaned[2:]
	default:
		if len(cleaned) > 7 {
			cleaned = cleaned[:7]
		}
		return cleaned[:2] + "-" + cleaned[2:5] + "-" + cleaned[5:]
	}
}

// ValidatePhone checks if a phone number is in a valid international E.164
// format. Local-format numbers ("06.12.34.56.78") fail the check, so clients
// recorded that way are reachable by mail only, never by SMS.
func ValidatePhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "").Replace(phone)
	match, _ := regexp.MatchString(`^\+[1-9]\d{1,14}$`, cleaned)
	return match
}
