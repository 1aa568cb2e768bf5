// Package number implements human-friendly number formatting.
//
// It covers digit grouping (Intcomma), ordinals ("1st", "2nd"), large-number
// words ("1.2 billion"), Associated Press style small numbers ("five"),
// vulgar fractions ("1 1/2"), scientific notation with superscript exponents,
// and SI metric prefixes ("1.50 kV").
//
// Locale-sensitive functions are methods on a Formatter, which holds the
// i18n.Provider that supplies separators and translated words. The
// package-level functions are shorthands bound to i18n.English.
//
// FormatFloat is the minimal printf-style precision directive ("%0.2f",
// "%.1f", "%d") shared with the humantime and filesize packages.
package number
