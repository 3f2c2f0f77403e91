package ldapcore

/*
options.go implements bootstrap configuration for a [SchemaManager],
generalizing the teacher's receiver-type-as-namespace idiom (e.g.
[X680], which carries a BMPLittleEndian config field) into the standard
Go functional-options pattern.
*/

import "log/slog"

// SchemaManagerOption configures a [SchemaManager] at construction time.
// Options are applied in order; later options win over earlier ones.
type SchemaManagerOption func(*SchemaManager)

/*
Relaxed puts the manager in relaxed mode: consistency rules 1-8 (§ 4.7)
are advisory. Violations are appended to [SchemaManager.Errors] instead
of aborting the load.
*/
func Relaxed() SchemaManagerOption {
	return func(m *SchemaManager) { m.relaxed = true }
}

/*
Disabled marks every schema loaded via subsequent [SchemaManager.Load]
calls as disabled until explicitly enabled; disabled schemas contribute
no symbols to lookups.
*/
func Disabled() SchemaManagerOption {
	return func(m *SchemaManager) { m.loadDisabled = true }
}

/*
Quirks enables non-numeric OID acceptance and objectIdentifier macro
expansion in the schema-description parser (C11), as OpenLDAP's own
schema files require.
*/
func Quirks() SchemaManagerOption {
	return func(m *SchemaManager) { m.quirks = true }
}

// WithLogger attaches a structured logger to the manager. A nil logger
// (the default) makes every log call a silent no-op.
func WithLogger(l *slog.Logger) SchemaManagerOption {
	return func(m *SchemaManager) { m.logger = l }
}
