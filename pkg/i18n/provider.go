package i18n

// Provider supplies locale-specific message templates and number separators.
//
// Gettext and Pgettext return the translated message, or the message itself
// when no translation exists. Ngettext selects the plural form appropriate
// for n. Returned templates keep their "%d"/"%s" placeholders; substitution
// is the caller's job.
type Provider interface {
	// Gettext returns the translation for message.
	Gettext(message string) string

	// Pgettext returns the translation for message qualified by a
	// disambiguating context.
	Pgettext(context, message string) string

	// Ngettext returns the plural form of the message for quantity n.
	Ngettext(singular, plural string, n int64) string

	// ThousandsSeparator returns the digit-grouping separator.
	ThousandsSeparator() string

	// DecimalSeparator returns the decimal point symbol.
	DecimalSeparator() string
}

// English is the default provider. It performs identity lookups with the
// germanic plural rule and "1,234.5" style separators.
var English Provider = english{}

type english struct{}

func (english) Gettext(message string) string { return message }

func (english) Pgettext(_, message string) string { return message }

func (english) Ngettext(singular, plural string, n int64) string {
	if n == 1 {
		return singular
	}
	return plural
}

func (english) ThousandsSeparator() string { return "," }

func (english) DecimalSeparator() string { return "." }
