// Package i18n provides the translation capability consumed by the
// formatting packages.
//
// A Provider supplies message lookups (Gettext), context-qualified lookups
// (Pgettext), plural-form selection (Ngettext), and the numeric separators
// for the active locale. Formatting code substitutes the "%d" or "%s"
// placeholder in the returned template itself; providers never interpolate.
//
// # Providers
//
// English is the null provider: lookups return the message unchanged and the
// plural rule is the germanic n != 1. Additional locales are represented by
// Catalog values built programmatically from in-memory tables. Parsing of
// on-disk catalog formats (.mo files and the like) is out of scope.
//
// # Locale Registry
//
// Applications that switch locales at runtime can Register catalogs under a
// BCP 47 tag and resolve them with Lookup. Matching uses the x/text language
// matcher, so "de_DE", "de-DE", and "de" resolve to the same catalog.
//
// # Concurrency
//
// Providers are immutable after construction. A formatter bound to one
// Provider observes a single locale for an entire call, so concurrent
// formatting with different locales cannot interleave plural rules.
package i18n
