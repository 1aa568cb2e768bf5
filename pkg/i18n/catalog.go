package i18n

// pgettext context and message are joined with EOT, following the gettext
// msgctxt convention.
const contextSeparator = "\x04"

// PluralFunc maps a quantity to an index into a message's plural forms.
type PluralFunc func(n int64) int

// Stock plural rules covering the catalog languages this library ships
// support for.
var (
	// PluralOneForm is for languages with a single form (e.g. Japanese).
	PluralOneForm PluralFunc = func(int64) int { return 0 }

	// PluralGermanic is the two-form n != 1 rule (English, German, ...).
	PluralGermanic PluralFunc = func(n int64) int {
		if n == 1 {
			return 0
		}
		return 1
	}

	// PluralSlavic is the three-form rule used by Russian, Ukrainian,
	// Polish, and friends.
	PluralSlavic PluralFunc = func(n int64) int {
		if n < 0 {
			n = -n
		}
		switch {
		case n%10 == 1 && n%100 != 11:
			return 0
		case n%10 >= 2 && n%10 <= 4 && (n%100 < 10 || n%100 >= 20):
			return 1
		default:
			return 2
		}
	}
)

// CatalogConfig holds the tables a Catalog is built from.
type CatalogConfig struct {
	// Messages maps msgid (or context+"\x04"+msgid) to its translation.
	Messages map[string]string

	// Plurals maps a singular msgid to its ordered plural forms.
	Plurals map[string][]string

	// PluralRule selects the plural form index. Defaults to PluralGermanic.
	PluralRule PluralFunc

	// ThousandsSeparator and DecimalSeparator override the English
	// defaults when non-empty.
	ThousandsSeparator string
	DecimalSeparator   string
}

// Catalog is an immutable in-memory translation table. It satisfies
// Provider and falls back to the untranslated message on any miss.
type Catalog struct {
	messages     map[string]string
	plurals      map[string][]string
	pluralRule   PluralFunc
	thousandsSep string
	decimalSep   string
}

// NewCatalog builds a Catalog from cfg. The config maps are copied, so the
// catalog is safe for concurrent use even if the caller keeps mutating its
// own maps.
func NewCatalog(cfg CatalogConfig) *Catalog {
	c := &Catalog{
		messages:     make(map[string]string, len(cfg.Messages)),
		plurals:      make(map[string][]string, len(cfg.Plurals)),
		pluralRule:   cfg.PluralRule,
		thousandsSep: cfg.ThousandsSeparator,
		decimalSep:   cfg.DecimalSeparator,
	}
	for k, v := range cfg.Messages {
		c.messages[k] = v
	}
	for k, forms := range cfg.Plurals {
		c.plurals[k] = append([]string(nil), forms...)
	}
	if c.pluralRule == nil {
		c.pluralRule = PluralGermanic
	}
	if c.thousandsSep == "" {
		c.thousandsSep = ","
	}
	if c.decimalSep == "" {
		c.decimalSep = "."
	}
	return c
}

// Gettext returns the translation for message, or message itself.
func (c *Catalog) Gettext(message string) string {
	if t, ok := c.messages[message]; ok {
		return t
	}
	return message
}

// Pgettext returns the translation for message under the given context.
func (c *Catalog) Pgettext(context, message string) string {
	if t, ok := c.messages[context+contextSeparator+message]; ok {
		return t
	}
	return message
}

// Ngettext returns the plural form of the message for quantity n.
func (c *Catalog) Ngettext(singular, plural string, n int64) string {
	if forms, ok := c.plurals[singular]; ok {
		if idx := c.pluralRule(n); idx < len(forms) {
			return forms[idx]
		}
	}
	if n == 1 {
		return c.Gettext(singular)
	}
	return c.Gettext(plural)
}

// ThousandsSeparator returns the digit-grouping separator.
func (c *Catalog) ThousandsSeparator() string { return c.thousandsSep }

// DecimalSeparator returns the decimal point symbol.
func (c *Catalog) DecimalSeparator() string { return c.decimalSep }
