// Package i18n translates user-facing API messages.
// Supported locales are en, pt and nl.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is used when the client asks for nothing we speak.
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator looks up messages by key and locale.
type Translator struct {
	catalog map[string]map[string]string
}

// NewTranslator creates a translator loaded with the built-in catalog.
func NewTranslator() *Translator {
	return &Translator{catalog: messages}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, then in DefaultLocale,
// and finally the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.catalog[locale][key]; ok {
		return msg
	}
	if msg, ok := t.catalog[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale picks the first supported language listed in Accept-Language.
// Region subtags and quality values are ignored; entries are taken in header order.
func GetLocale(c *gin.Context) string {
	for _, entry := range strings.Split(c.GetHeader(AcceptLanguageHeader), ",") {
		if locale := baseLanguage(entry); Supported(locale) {
			return locale
		}
	}
	return DefaultLocale
}

// Supported reports whether locale has a message catalog.
func Supported(locale string) bool {
	_, ok := messages[locale]
	return ok
}

// baseLanguage turns " pt-BR;q=0.8" into "pt".
func baseLanguage(entry string) string {
	tag, _, _ := strings.Cut(entry, ";")
	lang, _, _ := strings.Cut(strings.TrimSpace(tag), "-")
	return strings.ToLower(lang)
}

var messages = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:       "Invalid request",
		ErrKeyInvalidRequestBody:   "Invalid request body",
		ErrKeyInternalError:        "An unexpected error occurred",
		ErrKeyNotFound:             "Not found",
		ErrKeyRateLimitExceeded:    "Too many requests, please try again later",
		ErrKeyTimeout:              "The request took too long to complete",
		ErrKeyServiceUnavailable:   "Quote history is temporarily unavailable",
		ErrKeyInvalidTier:          "Unknown service tier, expected platinum, gold or bronze",
		ErrKeyInvalidRateType:      "Unknown rate type, expected hourly, halfDay or fullDay",
		ErrKeyInvalidDeliverySpeed: "Unknown delivery speed, expected standard, expedited or superExpedited",
		ErrKeyInvalidQuantity:      "Quantity out of range",
		ErrKeyInvalidLimit:         "limit must be a positive integer",
		ErrKeyQuoteNotFound:        "Quote not found",
	},
	"pt": {
		ErrKeyInvalidRequest:       "Requisição inválida",
		ErrKeyInvalidRequestBody:   "Corpo da requisição inválido",
		ErrKeyInternalError:        "Ocorreu um erro inesperado",
		ErrKeyNotFound:             "Não encontrado",
		ErrKeyRateLimitExceeded:    "Muitas requisições, tente novamente mais tarde",
		ErrKeyTimeout:              "A requisição demorou demais para concluir",
		ErrKeyServiceUnavailable:   "Histórico de orçamentos temporariamente indisponível",
		ErrKeyInvalidTier:          "Nível de serviço desconhecido, esperado platinum, gold ou bronze",
		ErrKeyInvalidRateType:      "Tipo de tarifa desconhecido, esperado hourly, halfDay ou fullDay",
		ErrKeyInvalidDeliverySpeed: "Prazo de entrega desconhecido, esperado standard, expedited ou superExpedited",
		ErrKeyInvalidQuantity:      "Quantidade fora do intervalo permitido",
		ErrKeyInvalidLimit:         "limit deve ser um inteiro positivo",
		ErrKeyQuoteNotFound:        "Orçamento não encontrado",
	},
	"nl": {
		ErrKeyInvalidRequest:       "Ongeldig verzoek",
		ErrKeyInvalidRequestBody:   "Ongeldige aanvraag body",
		ErrKeyInternalError:        "Er is een onverwachte fout opgetreden",
		ErrKeyNotFound:             "Niet gevonden",
		ErrKeyRateLimitExceeded:    "Te veel verzoeken, probeer het later opnieuw",
		ErrKeyTimeout:              "Het verzoek duurde te lang",
		ErrKeyServiceUnavailable:   "Offertegeschiedenis is tijdelijk niet beschikbaar",
		ErrKeyInvalidTier:          "Onbekend serviceniveau, verwacht platinum, gold of bronze",
		ErrKeyInvalidRateType:      "Onbekend tarieftype, verwacht hourly, halfDay of fullDay",
		ErrKeyInvalidDeliverySpeed: "Onbekende leversnelheid, verwacht standard, expedited of superExpedited",
		ErrKeyInvalidQuantity:      "Hoeveelheid buiten bereik",
		ErrKeyInvalidLimit:         "limit moet een positief geheel getal zijn",
		ErrKeyQuoteNotFound:        "Offerte niet gevonden",
	},
}
