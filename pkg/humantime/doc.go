// Package humantime converts machine-precision durations into natural
// language phrases.
//
// Durations are carried as a TimeDelta, a sign-normalized
// (days, seconds, microseconds) triple that survives arbitrary signed
// construction paths. Three renderers consume it:
//
//   - NaturalDelta picks exactly one coarse phrase ("a moment", "2 hours",
//     "1 year, 3 months") from fixed thresholds.
//   - PreciseDelta decomposes across all eight units with caller-chosen
//     minimum unit, unit suppression, and fractional precision, producing
//     phrases like "2 days, 1 hour and 33.12 seconds".
//   - NaturalTime wraps NaturalDelta with tense ("3 minutes ago",
//     "3 minutes from now").
//
// NaturalDay and NaturalDate do the same for calendar dates near today.
//
// # Locales
//
// Every pluralizable fragment goes through an i18n.Provider. The
// package-level functions use English; bind a Formatter to another provider
// for translated output. A Formatter reads exactly one provider, so
// concurrent formatting in different locales never mixes plural rules.
//
// # Errors
//
// These functions are designed to degrade rather than fail: an unrecognized
// unit name or an unsatisfiable suppression request returns its diagnostic
// text in place of a result, and unknown suppression tokens are ignored.
package humantime
