package ldapcore

/*
schematext.go implements the string-form half of component C11: parsing
an RFC 4512 schema description (the textual form the *Description.String
methods in schema.go produce) back into the corresponding *Description
value. schema.go only ever went in the struct-to-string direction; this
file is the new inverse, grounded on the same production grammar those
String methods render and on guide.go's newCriteriaParser for the
general shape of a small hand-rolled scanner over a rune slice.

Quirks mode (§ 4.11) relaxes two things here: OIDs need not be
dotted-decimal (a bare descriptor is accepted as a "fake OID", the way
OpenLDAP's own distributed schema files do it), and a prior
"objectIdentifier NAME value" macro definition is expanded wherever NAME
is later used in place of a numeric OID.
*/

import "strings"

// macroTable holds objectIdentifier macro bindings accumulated across
// Load calls in quirks mode. It is intentionally package-level and
// keyed per-SchemaManager via the closure in parseSchemaTextLocked.
type macroTable map[string]string

func (r *SchemaManager) macrosLocked() macroTable {
	if r.macros == nil {
		r.macros = make(macroTable)
	}
	return r.macros
}

/*
parseObjectIdentifierMacro recognizes OpenLDAP-style macro definitions
of the form:

	objectIdentifier myOrg 1.3.6.1.4.1.99999
	objectIdentifier myOrgAttrs myOrg:1

and returns the bound name and its (possibly macro-relative) value.
*/
func parseObjectIdentifierMacro(text string) (name, value string, ok bool) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) != 3 || !eqf(fields[0], "objectIdentifier") {
		return "", "", false
	}
	return fields[1], fields[2], true
}

// expandMacrosLocked rewrites every "macroName:suffix" or bare
// "macroName" token in text that matches a bound macro, recursively,
// up to a small fixed depth to guard against a self-referential macro.
func expandMacrosLocked(text string, macros macroTable) string {
	if len(macros) == 0 {
		return text
	}
	toks, err := tokenizeSchemaText(text)
	if err != nil {
		return text
	}
	for i, t := range toks {
		toks[i] = expandOneMacro(t, macros, 0)
	}
	return strings.Join(toks, " ")
}

func expandOneMacro(tok string, macros macroTable, depth int) string {
	if depth > 8 {
		return tok
	}
	name, suffix, hasSuffix := strings.Cut(tok, ":")
	if base, ok := macros[name]; ok {
		expandedBase := expandOneMacro(base, macros, depth+1)
		if hasSuffix {
			return expandedBase + "." + suffix
		}
		return expandedBase
	}
	return tok
}

// parseSchemaTextLocked tokenizes one RFC 4512 description string and
// returns the typed *Description value it names, detected from its
// keyword content the way an LDAP server's schema loader would: by
// trying each grammar in turn against the token stream.
func parseSchemaTextLocked(text string, quirks bool) (any, schemaKind, error) {
	toks, err := tokenizeSchemaText(text)
	if err != nil {
		return nil, 0, err
	}
	if len(toks) < 2 || toks[0] != "(" {
		return nil, 0, errorTxt("schema description must begin with '('")
	}

	fields := parseFieldMap(toks[1:])

	switch {
	case fields.has("APPLIES"):
		return buildMatchingRuleUse(fields), kindMatchingRuleUse, nil
	case fields.has("FORM"):
		return buildDITStructureRule(fields), kindDITStructureRule, nil
	case fields.has("OC") && fields.has("MUST") || fields.has("OC") && fields.has("MAY"):
		return buildNameForm(fields), kindNameForm, nil
	case fields.has("AUX") || fields.has("NOT"):
		return buildDITContentRule(fields), kindDITContentRule, nil
	case fields.has("SUP") && (fields.has("MUST") || fields.has("MAY") || fields.has("ABSTRACT") || fields.has("STRUCTURAL") || fields.has("AUXILIARY")):
		return buildObjectClass(fields), kindObjectClass, nil
	case fields.has("STRUCTURAL") || fields.has("AUXILIARY") || fields.has("ABSTRACT"):
		return buildObjectClass(fields), kindObjectClass, nil
	case fields.has("SYNTAX") && !fields.has("APPLIES"):
		return buildAttributeType(fields), kindAttributeType, nil
	case fields.has("EQUALITY") || fields.has("ORDERING") || fields.has("SUBSTR"):
		return buildMatchingRuleDescription(fields), kindMatchingRule, nil
	case fields.has("DESC") && !fields.hasAny("NAME", "SUP", "MUST", "MAY"):
		return buildLDAPSyntax(fields), kindSyntax, nil
	default:
		return buildAttributeType(fields), kindAttributeType, nil
	}
}

// fieldMap is the parsed key/value (or key/value-list) contents of one
// parenthesized description, keyed by its upper-cased RFC 4512 keyword.
type fieldMap struct {
	oid    string
	single map[string]string
	multi  map[string][]string
	flags  map[string]bool
}

func (f fieldMap) has(key string) bool {
	if f.flags[key] {
		return true
	}
	if _, ok := f.single[key]; ok {
		return true
	}
	if _, ok := f.multi[key]; ok {
		return true
	}
	return false
}

func (f fieldMap) hasAny(keys ...string) bool {
	for _, k := range keys {
		if f.has(k) {
			return true
		}
	}
	return false
}

// parseFieldMap walks a flat token stream (already stripped of the
// leading '(') and groups RFC 4512 keyword/value pairs. The trailing
// ')' is consumed silently.
func parseFieldMap(toks []string) fieldMap {
	fm := fieldMap{
		single: make(map[string]string),
		multi:  make(map[string][]string),
		flags:  make(map[string]bool),
	}
	i := 0
	if i < len(toks) && toks[i] != ")" {
		fm.oid = toks[i]
		i++
	}
	for i < len(toks) {
		tok := toks[i]
		switch tok {
		case ")":
			i++
			continue
		case "OBSOLETE", "SINGLE-VALUE", "COLLECTIVE", "NO-USER-MODIFICATION",
			"ABSTRACT", "STRUCTURAL", "AUXILIARY":
			fm.flags[tok] = true
			i++
		case "NAME":
			i++
			vals, n := readDescrList(toks[i:])
			fm.multi["NAME"] = vals
			i += n
		case "MUST", "MAY", "SUP", "AUX", "NOT":
			i++
			vals, n := readOIDList(toks[i:])
			fm.multi[tok] = vals
			i += n
		case "DESC":
			i++
			if i < len(toks) {
				fm.single["DESC"] = unquote(toks[i])
				i++
			}
		case "SYNTAX", "EQUALITY", "ORDERING", "SUBSTR", "USAGE", "APPLIES", "OC", "FORM":
			i++
			if i < len(toks) {
				fm.single[tok] = unquote(toks[i])
				i++
			}
		default:
			i++
		}
	}
	return fm
}

func readDescrList(toks []string) ([]string, int) {
	if len(toks) == 0 {
		return nil, 0
	}
	if toks[0] == "(" {
		var out []string
		i := 1
		for i < len(toks) && toks[i] != ")" {
			if toks[i] != "$" {
				out = append(out, unquote(toks[i]))
			}
			i++
		}
		return out, i + 1
	}
	return []string{unquote(toks[0])}, 1
}

func readOIDList(toks []string) ([]string, int) {
	return readDescrList(toks)
}

func unquote(s string) string {
	return strings.Trim(s, "'")
}

// tokenizeSchemaText splits text into '(', ')', '$', and quoted/bare
// words, collapsing whitespace the way RFC 4512's ABNF allows it
// anywhere between tokens.
func tokenizeSchemaText(text string) ([]string, error) {
	var toks []string
	runes := []rune(strings.TrimSpace(text))
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(' || c == ')' || c == '$':
			toks = append(toks, string(c))
			i++
		case c == '\'':
			j := i + 1
			for j < len(runes) && runes[j] != '\'' {
				j++
			}
			if j >= len(runes) {
				return nil, errorTxt("unterminated quoted string in schema description")
			}
			toks = append(toks, string(runes[i:j+1]))
			i = j + 1
		default:
			j := i
			for j < len(runes) && runes[j] != ' ' && runes[j] != '\t' &&
				runes[j] != '\n' && runes[j] != '\r' && runes[j] != '(' &&
				runes[j] != ')' && runes[j] != '$' {
				j++
			}
			toks = append(toks, string(runes[i:j]))
			i = j
		}
	}
	return toks, nil
}

func buildLDAPSyntax(f fieldMap) LDAPSyntaxDescription {
	return LDAPSyntaxDescription{OID: f.oid, Description: f.single["DESC"]}
}

func buildMatchingRuleDescription(f fieldMap) MatchingRuleDescription {
	return MatchingRuleDescription{
		OID:         f.oid,
		Name:        f.multi["NAME"],
		Description: f.single["DESC"],
		Obsolete:    f.flags["OBSOLETE"],
		Syntax:      f.single["SYNTAX"],
	}
}

func buildAttributeType(f fieldMap) AttributeTypeDescription {
	sup := ""
	if len(f.multi["SUP"]) > 0 {
		sup = f.multi["SUP"][0]
	}
	return AttributeTypeDescription{
		OID:                f.oid,
		Name:               f.multi["NAME"],
		Description:        f.single["DESC"],
		SuperType:          sup,
		Obsolete:           f.flags["OBSOLETE"],
		Single:             f.flags["SINGLE-VALUE"],
		Collective:         f.flags["COLLECTIVE"],
		NoUserModification: f.flags["NO-USER-MODIFICATION"],
		Syntax:             f.single["SYNTAX"],
		Equality:           f.single["EQUALITY"],
		Ordering:           f.single["ORDERING"],
		Substring:          f.single["SUBSTR"],
		Usage:              f.single["USAGE"],
	}
}

func buildMatchingRuleUse(f fieldMap) MatchingRuleUseDescription {
	return MatchingRuleUseDescription{
		OID:         f.oid,
		Name:        f.multi["NAME"],
		Description: f.single["DESC"],
		Obsolete:    f.flags["OBSOLETE"],
		Applies:     f.multi["APPLIES"],
	}
}

func buildObjectClass(f fieldMap) ObjectClassDescription {
	kind := uint8(0)
	if f.flags["AUXILIARY"] {
		kind = 1
	} else if f.flags["ABSTRACT"] {
		kind = 2
	}
	return ObjectClassDescription{
		OID:          f.oid,
		Name:         f.multi["NAME"],
		Description:  f.single["DESC"],
		Obsolete:     f.flags["OBSOLETE"],
		Kind:         kind,
		SuperClasses: f.multi["SUP"],
		Must:         f.multi["MUST"],
		May:          f.multi["MAY"],
	}
}

func buildDITContentRule(f fieldMap) DITContentRuleDescription {
	return DITContentRuleDescription{
		OID:         f.oid,
		Name:        f.multi["NAME"],
		Description: f.single["DESC"],
		Obsolete:    f.flags["OBSOLETE"],
		Aux:         f.multi["AUX"],
		Must:        f.multi["MUST"],
		May:         f.multi["MAY"],
		Not:         f.multi["NOT"],
	}
}

func buildNameForm(f fieldMap) NameFormDescription {
	return NameFormDescription{
		OID:         f.oid,
		Name:        f.multi["NAME"],
		Description: f.single["DESC"],
		Obsolete:    f.flags["OBSOLETE"],
		OC:          f.single["OC"],
		Must:        f.multi["MUST"],
		May:         f.multi["MAY"],
	}
}

func buildDITStructureRule(f fieldMap) DITStructureRuleDescription {
	return DITStructureRuleDescription{
		RuleID:      f.oid,
		Name:        f.multi["NAME"],
		Description: f.single["DESC"],
		Obsolete:    f.flags["OBSOLETE"],
		Form:        f.single["FORM"],
		SuperRules:  f.multi["SUP"],
	}
}
