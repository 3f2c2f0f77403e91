package ldapcore

/*
registry.go implements [SchemaManager], component C7 of the
specification. The teacher's [SubschemaSubentry] (schema.go) is a passive
container -- it can hold definitions and print them, but it has no
notion of an OID table, of strict-vs-relaxed consistency, or of
enable/disable with dependency closure. SchemaManager wraps a
SubschemaSubentry and adds exactly that, per Design Note 9.2: OID-indexed
tables rather than direct object references, so that unload does not
have to chase pointers through a definition graph.
*/

import (
	"log/slog"
	"sync"
)

// schemaKind identifies which of the eight SubschemaSubentry collections
// a registry entry belongs to.
type schemaKind uint8

const (
	kindSyntax schemaKind = iota
	kindMatchingRule
	kindAttributeType
	kindMatchingRuleUse
	kindObjectClass
	kindDITContentRule
	kindNameForm
	kindDITStructureRule
)

func (k schemaKind) String() string {
	switch k {
	case kindSyntax:
		return "ldapSyntax"
	case kindMatchingRule:
		return "matchingRule"
	case kindAttributeType:
		return "attributeType"
	case kindMatchingRuleUse:
		return "matchingRuleUse"
	case kindObjectClass:
		return "objectClass"
	case kindDITContentRule:
		return "dITContentRule"
	case kindNameForm:
		return "nameForm"
	case kindDITStructureRule:
		return "dITStructureRule"
	}
	return "unknown"
}

// registryEntry is the locked, schema-owned wrapper around one
// definition. It carries the base SchemaObject fields (§ 3) that the
// teacher's bare Description structs do not: schemaName and a locked
// flag (mutation after lock always fails, Design Note 9.3).
type registryEntry struct {
	kind       schemaKind
	oid        string
	names      []string
	def        any // one of the *Description types in schema.go
	schemaName string
	locked     bool
	disabled   bool
}

/*
SchemaManager is the concrete [Registry] of the specification: an
OID-indexed catalog of schema objects with dependency resolution and a
consistency check (§ 4.7). The zero value is not usable; construct one
with [NewSchemaManager].
*/
type SchemaManager struct {
	mu sync.RWMutex

	sub SubschemaSubentry // teacher container, kept as the canonical storage

	byOID  map[string]*registryEntry            // global OID table, rule 8 (cross-kind uniqueness)
	byName map[schemaKind]map[string]*registryEntry // per-kind, case-insensitive descriptor lookup

	schemas map[string]bool // schemaName -> enabled

	macros macroTable // objectIdentifier macro bindings, quirks mode only

	relaxed      bool
	loadDisabled bool
	quirks       bool
	logger       *slog.Logger

	// Errors accumulates SchemaViolation values recorded while in
	// relaxed mode. Strict-mode violations are returned directly and
	// never appended here.
	Errors []error
}

// NewSchemaManager returns a ready-to-use, unlocked SchemaManager.
func NewSchemaManager(opts ...SchemaManagerOption) *SchemaManager {
	m := &SchemaManager{
		byOID:   make(map[string]*registryEntry),
		byName:  make(map[schemaKind]map[string]*registryEntry),
		schemas: make(map[string]bool),
	}
	for k := kindSyntax; k <= kindDITStructureRule; k++ {
		m.byName[k] = make(map[string]*registryEntry)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Relaxed reports whether the manager currently enforces consistency
// rules advisorily rather than strictly.
func (r *SchemaManager) Relaxed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.relaxed
}

/*
Load parses and registers one or more schema-description strings (or
already-built *Description values) under schemaName, per § 4.7. In
strict mode (the default), a consistency failure rolls back the entire
batch and returns the first [SchemaViolation] encountered. In relaxed
mode, failures are appended to Errors and the offending definition is
still inserted.
*/
func (r *SchemaManager) Load(schemaName string, defs ...any) error {
	return r.load(schemaName, r.relaxed, r.loadDisabled, defs...)
}

// LoadWithDeps behaves like Load, then pulls in the transitive closure
// of schemas already registered that satisfy any still-unresolved SUP,
// SYNTAX, EQUALITY, ORDERING, SUBSTR, OC, MUST or MAY reference by
// re-running Verify until it stops finding newly-resolvable references
// or nothing changes.
func (r *SchemaManager) LoadWithDeps(schemaName string, defs ...any) error {
	if err := r.load(schemaName, r.relaxed, r.loadDisabled, defs...); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, enabled := range r.schemas {
		if !enabled {
			if r.dependencyClosureSatisfiedLocked(name) {
				r.schemas[name] = true
			}
		}
	}
	return nil
}

// LoadRelaxed loads defs under schemaName, forcing relaxed consistency
// enforcement for this call regardless of the manager's configured mode.
func (r *SchemaManager) LoadRelaxed(schemaName string, defs ...any) error {
	return r.load(schemaName, true, r.loadDisabled, defs...)
}

// LoadDisabled loads defs under schemaName but marks the schema disabled
// immediately; disabled schemas contribute no symbols to lookups until
// [SchemaManager.Enable] is called.
func (r *SchemaManager) LoadDisabled(schemaName string, defs ...any) error {
	return r.load(schemaName, r.relaxed, true, defs...)
}

func (r *SchemaManager) load(schemaName string, relaxed, disabled bool, defs ...any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// snapshot for strict-mode rollback
	var snapshot []*registryEntry
	if !relaxed {
		snapshot = r.snapshotLocked()
	}

	for _, d := range defs {
		entry, err := r.toEntryLocked(d, schemaName, disabled)
		if err != nil {
			if relaxed {
				r.Errors = append(r.Errors, err)
				continue
			}
			r.restoreLocked(snapshot)
			return err
		}
		if entry == nil {
			continue // e.g. an objectIdentifier macro definition, not a registry entry
		}
		if err := r.insertLocked(entry); err != nil {
			if relaxed {
				r.Errors = append(r.Errors, err)
				continue
			}
			r.restoreLocked(snapshot)
			return err
		}
	}

	if !disabled {
		r.schemas[schemaName] = true
	} else if _, seen := r.schemas[schemaName]; !seen {
		r.schemas[schemaName] = false
	}

	if !relaxed {
		if err := r.verifyLocked(); err != nil {
			r.restoreLocked(snapshot)
			return err
		}
	}

	r.logf(slog.LevelInfo, "schema loaded", "schema", schemaName, "relaxed", relaxed, "disabled", disabled, "count", len(defs))
	return nil
}

// toEntryLocked normalizes one input (string text or *Description value)
// into a registryEntry. String inputs are run through the C11 parsers
// already present in schema.go.
func (r *SchemaManager) toEntryLocked(d any, schemaName string, disabled bool) (*registryEntry, error) {
	var (
		kind  schemaKind
		oid   string
		names []string
		def   any
	)

	switch tv := d.(type) {
	case LDAPSyntaxDescription:
		kind, def, oid = kindSyntax, tv, tv.OID
	case MatchingRuleDescription:
		kind, def, oid, names = kindMatchingRule, tv, tv.OID, tv.Name
	case AttributeTypeDescription:
		kind, def, oid, names = kindAttributeType, tv, tv.OID, tv.Name
	case MatchingRuleUseDescription:
		kind, def, oid, names = kindMatchingRuleUse, tv, tv.OID, tv.Name
	case ObjectClassDescription:
		kind, def, oid, names = kindObjectClass, tv, tv.OID, tv.Name
	case DITContentRuleDescription:
		kind, def, oid, names = kindDITContentRule, tv, tv.OID, tv.Name
	case NameFormDescription:
		kind, def, oid, names = kindNameForm, tv, tv.OID, tv.Name
	case DITStructureRuleDescription:
		kind, def, oid, names = kindDITStructureRule, tv, tv.RuleID, tv.Name
	case string:
		if r.quirks {
			if name, value, ok := parseObjectIdentifierMacro(tv); ok {
				r.macrosLocked()[name] = value
				return nil, nil
			}
			tv = expandMacrosLocked(tv, r.macrosLocked())
		}
		parsed, pkind, perr := parseSchemaTextLocked(tv, r.quirks)
		if perr != nil {
			return nil, newSchemaViolation("parse", perr.Error())
		}
		e, err := r.toEntryLocked(parsed, schemaName, disabled)
		if err != nil {
			return nil, err
		}
		_ = pkind
		return e, nil
	default:
		return nil, newSchemaViolation("type", "unsupported schema definition type")
	}

	if !r.quirks && !looksLikeNumericOID(oid) {
		return nil, newSchemaViolation("oid", "numeric OID required (quirks mode disabled): "+oid)
	}

	return &registryEntry{
		kind:       kind,
		oid:        oid,
		names:      names,
		def:        def,
		schemaName: schemaName,
		locked:     true,
		disabled:   disabled,
	}, nil
}

func looksLikeNumericOID(oid string) bool {
	if oid == "" {
		return false
	}
	seenDigit := false
	for _, c := range oid {
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case c == '.':
			seenDigit = false
		default:
			return false
		}
	}
	return seenDigit
}

// insertLocked adds an entry to the OID table, per-kind name table, and
// the underlying SubschemaSubentry collection, enforcing rule 8 (unique
// descriptor names per kind) and global OID uniqueness.
func (r *SchemaManager) insertLocked(e *registryEntry) error {
	if existing, ok := r.byOID[e.oid]; ok && existing.kind != e.kind {
		return newSchemaViolation("1", "OID "+e.oid+" already registered as a "+existing.kind.String())
	}

	nameTable := r.byName[e.kind]
	for _, n := range e.names {
		key := lc(n)
		if _, dup := nameTable[key]; dup {
			return newSchemaViolation("8", "duplicate "+e.kind.String()+" name: "+n)
		}
	}

	r.byOID[e.oid] = e
	for _, n := range e.names {
		nameTable[lc(n)] = e
	}

	switch tv := e.def.(type) {
	case LDAPSyntaxDescription:
		r.sub.LDAPSyntaxes = append(r.sub.LDAPSyntaxes, tv)
	case MatchingRuleDescription:
		r.sub.MatchingRules = append(r.sub.MatchingRules, tv)
	case AttributeTypeDescription:
		r.sub.AttributeTypes = append(r.sub.AttributeTypes, tv)
	case MatchingRuleUseDescription:
		r.sub.MatchingRuleUse = append(r.sub.MatchingRuleUse, tv)
	case ObjectClassDescription:
		r.sub.ObjectClasses = append(r.sub.ObjectClasses, tv)
	case DITContentRuleDescription:
		r.sub.DITContentRules = append(r.sub.DITContentRules, tv)
	case NameFormDescription:
		r.sub.NameForms = append(r.sub.NameForms, tv)
	case DITStructureRuleDescription:
		r.sub.DITStructureRules = append(r.sub.DITStructureRules, tv)
	}

	return nil
}

func (r *SchemaManager) snapshotLocked() []*registryEntry {
	out := make([]*registryEntry, 0, len(r.byOID))
	for _, e := range r.byOID {
		cp := *e
		out = append(out, &cp)
	}
	return out
}

func (r *SchemaManager) restoreLocked(snapshot []*registryEntry) {
	r.byOID = make(map[string]*registryEntry)
	for k := kindSyntax; k <= kindDITStructureRule; k++ {
		r.byName[k] = make(map[string]*registryEntry)
	}
	r.sub = SubschemaSubentry{}
	for _, e := range snapshot {
		r.byOID[e.oid] = e
		for _, n := range e.names {
			r.byName[e.kind][lc(n)] = e
		}
		switch tv := e.def.(type) {
		case LDAPSyntaxDescription:
			r.sub.LDAPSyntaxes = append(r.sub.LDAPSyntaxes, tv)
		case MatchingRuleDescription:
			r.sub.MatchingRules = append(r.sub.MatchingRules, tv)
		case AttributeTypeDescription:
			r.sub.AttributeTypes = append(r.sub.AttributeTypes, tv)
		case MatchingRuleUseDescription:
			r.sub.MatchingRuleUse = append(r.sub.MatchingRuleUse, tv)
		case ObjectClassDescription:
			r.sub.ObjectClasses = append(r.sub.ObjectClasses, tv)
		case DITContentRuleDescription:
			r.sub.DITContentRules = append(r.sub.DITContentRules, tv)
		case NameFormDescription:
			r.sub.NameForms = append(r.sub.NameForms, tv)
		case DITStructureRuleDescription:
			r.sub.DITStructureRules = append(r.sub.DITStructureRules, tv)
		}
	}
}

/*
Verify runs consistency rules 1-8 (§ 4.7) against the current registry
state and returns the first violation found, or nil.
*/
func (r *SchemaManager) Verify() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.verifyLocked()
}

func (r *SchemaManager) verifyLocked() error {
	for _, at := range r.sub.AttributeTypes {
		if err := r.verifyAttributeTypeLocked(at); err != nil {
			return err
		}
	}
	for _, oc := range r.sub.ObjectClasses {
		if err := r.verifyObjectClassLocked(oc); err != nil {
			return err
		}
	}
	for _, nf := range r.sub.NameForms {
		if err := r.verifyNameFormLocked(nf); err != nil {
			return err
		}
	}
	for _, mr := range r.sub.MatchingRules {
		if mr.Syntax != "" {
			if _, ok := r.byOID[mr.Syntax]; !ok {
				return newSchemaViolation("7", "matchingRule "+mr.OID+" SYNTAX "+mr.Syntax+" not found")
			}
		}
	}
	for _, mru := range r.sub.MatchingRuleUse {
		for _, a := range mru.Applies {
			if !r.resolvesLocked(a, kindAttributeType) {
				return newSchemaViolation("7", "matchingRuleUse "+mru.OID+" APPLIES "+a+" not found")
			}
		}
	}
	return nil
}

// rule 2: at least one of SUP/SYNTAX present, else inherit from supertype.
// rule 3: NO-USER-MODIFICATION implies USAGE != userApplications.
// rule 4: COLLECTIVE implies USAGE == userApplications.
// rule 1: every referenced OID resolves.
func (r *SchemaManager) verifyAttributeTypeLocked(at AttributeTypeDescription) error {
	if at.SuperType == "" && at.Syntax == "" {
		return newSchemaViolation("2", "attributeType "+at.OID+" has neither SUP nor SYNTAX")
	}
	if at.SuperType != "" && !r.resolvesLocked(at.SuperType, kindAttributeType) {
		return newSchemaViolation("1", "attributeType "+at.OID+" SUP "+at.SuperType+" not found")
	}
	if at.Syntax != "" {
		if _, ok := r.byOID[at.Syntax]; !ok {
			return newSchemaViolation("1", "attributeType "+at.OID+" SYNTAX "+at.Syntax+" not found")
		}
	}
	for _, mrOID := range []string{at.Equality, at.Ordering, at.Substring} {
		if mrOID != "" && !r.resolvesLocked(mrOID, kindMatchingRule) {
			return newSchemaViolation("1", "attributeType "+at.OID+" references unknown matching rule "+mrOID)
		}
	}
	usage := at.Usage
	if usage == "" {
		usage = "userApplications"
	}
	if at.NoUserModification && usage == "userApplications" {
		return newSchemaViolation("3", "attributeType "+at.OID+" is NO-USER-MODIFICATION but USAGE is userApplications")
	}
	if at.Collective && usage != "userApplications" {
		return newSchemaViolation("4", "attributeType "+at.OID+" is COLLECTIVE but USAGE is not userApplications")
	}
	return nil
}

// rule 5: SUP closure acyclic; STRUCTURAL closure only STRUCTURAL/ABSTRACT,
// AUXILIARY closure only AUXILIARY/ABSTRACT.
func (r *SchemaManager) verifyObjectClassLocked(oc ObjectClassDescription) error {
	const (
		kindStructural = 0
		kindAuxiliary  = 1
		kindAbstract   = 2
	)

	seen := map[string]bool{oc.OID: true}
	stack := append([]string{}, oc.SuperClasses...)
	depth := 0
	for len(stack) > 0 {
		depth++
		if depth > 100000 {
			return newSchemaViolation("5", "objectClass "+oc.OID+" SUP closure exceeds bound")
		}
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if name == "" || eqf(name, "top") {
			continue
		}
		parentEntry, ok := r.byName[kindObjectClass][lc(name)]
		if !ok {
			parentEntry, ok = r.byOID[name]
		}
		if !ok || parentEntry.kind != kindObjectClass {
			return newSchemaViolation("1", "objectClass "+oc.OID+" SUP "+name+" not found")
		}
		if seen[parentEntry.oid] {
			return newSchemaViolation("5", "objectClass "+oc.OID+" has a cyclic SUP closure")
		}
		seen[parentEntry.oid] = true

		parent := parentEntry.def.(ObjectClassDescription)
		if oc.Kind == kindStructural && !(parent.Kind == kindStructural || parent.Kind == kindAbstract) {
			return newSchemaViolation("5", "STRUCTURAL objectClass "+oc.OID+" has non-STRUCTURAL/ABSTRACT ancestor "+parent.OID)
		}
		if oc.Kind == kindAuxiliary && !(parent.Kind == kindAuxiliary || parent.Kind == kindAbstract) {
			return newSchemaViolation("5", "AUXILIARY objectClass "+oc.OID+" has non-AUXILIARY/ABSTRACT ancestor "+parent.OID)
		}
		stack = append(stack, parent.SuperClasses...)
	}

	for _, a := range append(append([]string{}, oc.Must...), oc.May...) {
		if !r.resolvesLocked(a, kindAttributeType) {
			return newSchemaViolation("1", "objectClass "+oc.OID+" references unknown attribute "+a)
		}
	}
	return nil
}

// rule 6: NameForm.MUST and MAY disjoint; every required attribute exists.
func (r *SchemaManager) verifyNameFormLocked(nf NameFormDescription) error {
	mustSet := make(map[string]bool, len(nf.Must))
	for _, m := range nf.Must {
		mustSet[lc(m)] = true
		if !r.resolvesLocked(m, kindAttributeType) {
			return newSchemaViolation("6", "nameForm "+nf.OID+" MUST "+m+" not found")
		}
	}
	for _, m := range nf.May {
		if mustSet[lc(m)] {
			return newSchemaViolation("6", "nameForm "+nf.OID+" has "+m+" in both MUST and MAY")
		}
		if !r.resolvesLocked(m, kindAttributeType) {
			return newSchemaViolation("6", "nameForm "+nf.OID+" MAY "+m+" not found")
		}
	}
	if nf.OC != "" && !r.resolvesLocked(nf.OC, kindObjectClass) {
		return newSchemaViolation("1", "nameForm "+nf.OID+" OC "+nf.OC+" not found")
	}
	return nil
}

// resolvesLocked reports whether id (an OID or a descriptor name) refers
// to a registered entry of the given kind.
func (r *SchemaManager) resolvesLocked(id string, kind schemaKind) bool {
	if e, ok := r.byOID[id]; ok {
		return e.kind == kind
	}
	_, ok := r.byName[kind][lc(id)]
	return ok
}

func (r *SchemaManager) dependencyClosureSatisfiedLocked(schemaName string) bool {
	for _, e := range r.byOID {
		if e.schemaName != schemaName {
			continue
		}
		switch tv := e.def.(type) {
		case AttributeTypeDescription:
			if tv.SuperType != "" && !r.resolvesLocked(tv.SuperType, kindAttributeType) {
				return false
			}
		case ObjectClassDescription:
			for _, s := range tv.SuperClasses {
				if !eqf(s, "top") && !r.resolvesLocked(s, kindObjectClass) {
					return false
				}
			}
		}
	}
	return true
}

/*
Unload removes every entry that belongs to schemaName from the registry.
Locked objects outside that schema are left untouched.
*/
func (r *SchemaManager) Unload(schemaName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var kept []*registryEntry
	for _, e := range r.byOID {
		if e.schemaName != schemaName {
			kept = append(kept, e)
		}
	}
	r.restoreLocked(kept)
	delete(r.schemas, schemaName)
	r.logf(slog.LevelInfo, "schema unloaded", "schema", schemaName)
}

/*
Enable re-checks consistency rules 1-8 across the registry and, on
success, marks schemaName (and its transitive dependency closure)
enabled. On failure the schema remains disabled and an error is
returned; in relaxed mode the schema is enabled regardless and the
violation is appended to Errors.
*/
func (r *SchemaManager) Enable(schemaName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for oid, e := range r.byOID {
		if e.schemaName == schemaName {
			e.disabled = false
			r.byOID[oid] = e
		}
	}

	if err := r.verifyLocked(); err != nil {
		if r.relaxed {
			r.Errors = append(r.Errors, err)
			r.schemas[schemaName] = true
			return nil
		}
		for oid, e := range r.byOID {
			if e.schemaName == schemaName {
				e.disabled = true
				r.byOID[oid] = e
			}
		}
		return err
	}

	r.schemas[schemaName] = true
	return nil
}

// Disable marks schemaName and every entry it owns disabled; disabled
// entries contribute no symbols to LookupByOID/GetOrNil.
func (r *SchemaManager) Disable(schemaName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for oid, e := range r.byOID {
		if e.schemaName == schemaName {
			e.disabled = true
			r.byOID[oid] = e
		}
	}
	r.schemas[schemaName] = false
}

// LookupByOID returns the definition registered under oid, if any and if
// its owning schema is enabled.
func (r *SchemaManager) LookupByOID(oid string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byOID[oid]
	if !ok || e.disabled {
		return nil, false
	}
	return e.def, true
}

// GetOrNil returns the definition registered under oid or name (of the
// given kind), or nil if none is found or it is disabled.
func (r *SchemaManager) GetOrNil(idOrName string, kind schemaKind) any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.byOID[idOrName]; ok && !e.disabled {
		return e.def
	}
	if e, ok := r.byName[kind][lc(idOrName)]; ok && !e.disabled {
		return e.def
	}
	return nil
}

// Register adds one already-built definition under the "other" schema
// name, the default spec.md §4.11 assigns when X-SCHEMA is absent.
func (r *SchemaManager) Register(def any) error {
	return r.Load("other", def)
}

// Unregister removes the single entry identified by oid.
func (r *SchemaManager) Unregister(oid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byOID[oid]; !ok {
		return newUnsupportedOperation("unregister: no such OID " + oid)
	}
	var kept []*registryEntry
	for o, ent := range r.byOID {
		if o != oid {
			kept = append(kept, ent)
		}
	}
	r.restoreLocked(kept)
	return nil
}

// GlobalOIDRegistry returns a snapshot map of every registered OID to
// its schema-object kind, satisfying the
// Registry::getGlobalOIDRegistry collaborator surface of § 6.
func (r *SchemaManager) GlobalOIDRegistry() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.byOID))
	for oid, e := range r.byOID {
		out[oid] = e.kind.String()
	}
	return out
}

// AttributeType returns the registered AttributeTypeDescription for
// idOrName, used by the DN (C5) and Value (C4) normalization paths.
func (r *SchemaManager) AttributeType(idOrName string) (AttributeTypeDescription, bool) {
	v := r.GetOrNil(idOrName, kindAttributeType)
	if v == nil {
		return AttributeTypeDescription{}, false
	}
	at, ok := v.(AttributeTypeDescription)
	return at, ok
}
