package ldapcore

/*
message.go implements component C2: the LDAPMessage envelope and the
full PDU grammar of § 4.2 of RFC 4511.

	LDAPMessage ::= SEQUENCE {
	     messageID       MessageID,
	     protocolOp      CHOICE { ... },
	     controls        [0] Controls OPTIONAL }

Decode walks a *ber.Packet tree produced by [github.com/go-asn1-ber] --
the same library filterber.go already uses for the embedded Filter
CHOICE -- rather than DERPacket (C1), since DERPacket has no notion of
an open-ended CHOICE discriminant and no constructed-SEQUENCE-OF-unknown-
children reader. Encode instead writes through [Asn1Buffer], prepending
each PDU's already-encoded children onto the tail-growing buffer so the
outer SEQUENCE only needs its own header computed once every child has
written itself -- see Design Note 9.4 and filterber.go's own BER()
methods, which this file calls directly for the SearchRequest filter.
*/

import (
	ber "github.com/go-asn1-ber/asn1-ber"
)

// protocolOp APPLICATION tags, per § 4.2 of RFC 4511.
const (
	tagBindRequest           = 0
	tagBindResponse          = 1
	tagUnbindRequest         = 2
	tagSearchRequest         = 3
	tagSearchResultEntry     = 4
	tagSearchResultDone      = 5
	tagModifyRequest         = 6
	tagModifyResponse        = 7
	tagAddRequest            = 8
	tagAddResponse           = 9
	tagDelRequest            = 10
	tagDelResponse           = 11
	tagModifyDNRequest       = 12
	tagModifyDNResponse      = 13
	tagCompareRequest        = 14
	tagCompareResponse       = 15
	tagAbandonRequest        = 16
	tagSearchResultReference = 19
	tagExtendedRequest       = 23
	tagExtendedResponse      = 24
	tagIntermediateResponse  = 25

	// tagMessageControls is the [0] IMPLICIT SEQUENCE OF Control tag
	// trailing every LDAPMessage.
	tagMessageControls = 0
)

/*
MessageID implements the LDAPMessage messageId component: an integer in
[0, 2^31 - 1], unique per client connection (0 is reserved for
UnsolicitedNotification, an [ExtendedResponse] with no matching
request).
*/
type MessageID int

/*
ProtocolOp is implemented by every request/response/Unbind/Intermediate
PDU body. protocolOpTag identifies which APPLICATION-tagged CHOICE
alternative the concrete type encodes as.
*/
type ProtocolOp interface {
	protocolOpTag() int
}

/*
Message implements one LDAPMessage: a messageId, exactly one
[ProtocolOp], and zero or more [Control]s.
*/
type Message struct {
	MessageID MessageID
	Op        ProtocolOp
	Controls  []Control
}

/*
Control implements § 4.1.11 of RFC 4511: an OID-identified, optionally
critical, opaque extension point attached to any [Message]. Unknown
controls are round-tripped verbatim by [Decode]/[Encode]. Every control,
known or not, is kept in this opaque form: the package has no registry
of per-OID control codecs, so Value is never decoded into a typed
control.
*/
type Control struct {
	OID         string
	Criticality bool
	Value       []byte
	HasValue    bool
}

func encodeControl(c Control) []byte {
	body := NewAsn1Buffer(32 + len(c.Value))
	if c.HasValue {
		body.WriteTLVBytes(classUniversal, false, tagOctetString, c.Value)
	}
	if c.Criticality {
		body.WriteTLVBytes(classUniversal, false, tagBoolean, boolContent(true))
	}
	body.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(c.OID))
	body.WriteTLV(classUniversal, true, tagSequence, body.Len())
	return body.Bytes()
}

func decodeControl(p *ber.Packet) (c Control, err error) {
	if p == nil || len(p.Children) == 0 {
		err = newDecodeError("control requires at least an OID", nil)
		return
	}
	c.OID = berStr(p.Children[0])
	idx := 1
	if idx < len(p.Children) && p.Children[idx].Tag == ber.TagBoolean {
		c.Criticality = berBool(p.Children[idx])
		idx++
	}
	if idx < len(p.Children) {
		c.Value = p.Children[idx].Data.Bytes()
		c.HasValue = true
	}
	return
}

func encodeControls(controls []Control) []byte {
	body := NewAsn1Buffer(64)
	for i := len(controls) - 1; i >= 0; i-- {
		body.WritePayload(encodeControl(controls[i]))
	}
	return body.Bytes()
}

func decodeControls(p *ber.Packet) (out []Control, err error) {
	out = make([]Control, 0, len(p.Children))
	for _, c := range p.Children {
		var ctl Control
		if ctl, err = decodeControl(c); err != nil {
			return
		}
		out = append(out, ctl)
	}
	return
}

/*
ResultCode implements the LDAPResult enumeration of § 4.1.9 of RFC 4511.
*/
type ResultCode int

const (
	ResultSuccess                      ResultCode = 0
	ResultOperationsError              ResultCode = 1
	ResultProtocolError                ResultCode = 2
	ResultTimeLimitExceeded            ResultCode = 3
	ResultSizeLimitExceeded            ResultCode = 4
	ResultCompareFalse                 ResultCode = 5
	ResultCompareTrue                  ResultCode = 6
	ResultAuthMethodNotSupported       ResultCode = 7
	ResultStrongerAuthRequired         ResultCode = 8
	ResultReferral                     ResultCode = 10
	ResultAdminLimitExceeded           ResultCode = 11
	ResultUnavailableCriticalExtension ResultCode = 12
	ResultConfidentialityRequired      ResultCode = 13
	ResultSaslBindInProgress           ResultCode = 14
	ResultNoSuchAttribute              ResultCode = 16
	ResultUndefinedAttributeType       ResultCode = 17
	ResultInappropriateMatching        ResultCode = 18
	ResultConstraintViolation          ResultCode = 19
	ResultAttributeOrValueExists       ResultCode = 20
	ResultInvalidAttributeSyntax       ResultCode = 21
	ResultNoSuchObject                 ResultCode = 32
	ResultAliasProblem                 ResultCode = 33
	ResultInvalidDNSyntax              ResultCode = 34
	ResultAliasDereferencingProblem    ResultCode = 36
	ResultInappropriateAuthentication  ResultCode = 48
	ResultInvalidCredentials           ResultCode = 49
	ResultInsufficientAccessRights     ResultCode = 50
	ResultBusy                         ResultCode = 51
	ResultUnavailable                  ResultCode = 52
	ResultUnwillingToPerform           ResultCode = 53
	ResultLoopDetect                   ResultCode = 54
	ResultNamingViolation              ResultCode = 64
	ResultObjectClassViolation         ResultCode = 65
	ResultNotAllowedOnNonLeaf          ResultCode = 66
	ResultNotAllowedOnRDN              ResultCode = 67
	ResultEntryAlreadyExists           ResultCode = 68
	ResultObjectClassModsProhibited    ResultCode = 69
	ResultAffectsMultipleDSAs          ResultCode = 71
	ResultOther                        ResultCode = 80
)

var resultCodeNames = map[ResultCode]string{
	ResultSuccess:                      "success",
	ResultOperationsError:              "operationsError",
	ResultProtocolError:                "protocolError",
	ResultTimeLimitExceeded:            "timeLimitExceeded",
	ResultSizeLimitExceeded:            "sizeLimitExceeded",
	ResultCompareFalse:                 "compareFalse",
	ResultCompareTrue:                  "compareTrue",
	ResultAuthMethodNotSupported:       "authMethodNotSupported",
	ResultStrongerAuthRequired:         "strongerAuthRequired",
	ResultReferral:                     "referral",
	ResultAdminLimitExceeded:           "adminLimitExceeded",
	ResultUnavailableCriticalExtension: "unavailableCriticalExtension",
	ResultConfidentialityRequired:      "confidentialityRequired",
	ResultSaslBindInProgress:           "saslBindInProgress",
	ResultNoSuchAttribute:              "noSuchAttribute",
	ResultUndefinedAttributeType:       "undefinedAttributeType",
	ResultInappropriateMatching:        "inappropriateMatching",
	ResultConstraintViolation:          "constraintViolation",
	ResultAttributeOrValueExists:       "attributeOrValueExists",
	ResultInvalidAttributeSyntax:       "invalidAttributeSyntax",
	ResultNoSuchObject:                 "noSuchObject",
	ResultAliasProblem:                 "aliasProblem",
	ResultInvalidDNSyntax:              "invalidDNSyntax",
	ResultAliasDereferencingProblem:    "aliasDereferencingProblem",
	ResultInappropriateAuthentication:  "inappropriateAuthentication",
	ResultInvalidCredentials:           "invalidCredentials",
	ResultInsufficientAccessRights:     "insufficientAccessRights",
	ResultBusy:                         "busy",
	ResultUnavailable:                  "unavailable",
	ResultUnwillingToPerform:           "unwillingToPerform",
	ResultLoopDetect:                   "loopDetect",
	ResultNamingViolation:              "namingViolation",
	ResultObjectClassViolation:         "objectClassViolation",
	ResultNotAllowedOnNonLeaf:          "notAllowedOnNonLeaf",
	ResultNotAllowedOnRDN:              "notAllowedOnRDN",
	ResultEntryAlreadyExists:           "entryAlreadyExists",
	ResultObjectClassModsProhibited:    "objectClassModsProhibited",
	ResultAffectsMultipleDSAs:          "affectsMultipleDSAs",
	ResultOther:                        "other",
}

func (r ResultCode) String() string {
	if name, ok := resultCodeNames[r]; ok {
		return name
	}
	return "unknown(" + itoa(int(r)) + ")"
}

/*
LDAPResult implements § 4.1.9 of RFC 4511, carried by every response
PDU.
*/
type LDAPResult struct {
	ResultCode        ResultCode
	MatchedDN         LDAPDN
	DiagnosticMessage string
	Referral          []string
}

// ldapResultReferralTag is the [3] SEQUENCE OF URI OPTIONAL component
// trailing an LDAPResult.
const ldapResultReferralTag = 3

func encodeLDAPResultBody(buf *Asn1Buffer, res LDAPResult) {
	if len(res.Referral) > 0 {
		refBody := NewAsn1Buffer(64)
		for i := len(res.Referral) - 1; i >= 0; i-- {
			refBody.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(res.Referral[i]))
		}
		buf.WriteTLVBytes(classContextSpecific, true, ldapResultReferralTag, refBody.Bytes())
	}
	buf.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(res.DiagnosticMessage))
	buf.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(res.MatchedDN))
	buf.WriteTLVBytes(classUniversal, false, tagEnum, asn1IntegerContent(int64(res.ResultCode)))
}

// decodeLDAPResult reads the fixed resultCode/matchedDN/diagnosticMessage
// trio plus an optional referral from the front of children, returning
// how many elements it consumed so callers can find any fields that
// follow (e.g. BindResponse.ServerSaslCreds).
func decodeLDAPResult(children []*ber.Packet) (res LDAPResult, consumed int, err error) {
	if len(children) < 3 {
		err = newDecodeError("LDAPResult requires resultCode, matchedDN, diagnosticMessage", nil)
		return
	}
	res.ResultCode = ResultCode(berInt(children[0]))
	res.MatchedDN = LDAPDN(children[1].Data.Bytes())
	res.DiagnosticMessage = berStr(children[2])
	consumed = 3
	if len(children) > 3 && children[3].ClassType == ber.ClassContext && children[3].Tag == ldapResultReferralTag {
		for _, u := range children[3].Children {
			res.Referral = append(res.Referral, berStr(u))
		}
		consumed = 4
	}
	return
}

// asn1IntegerContent returns the minimal two's-complement DER content
// octets for n, reusing [Integer]'s own encoding rather than
// reimplementing the shortest-form rule.
func asn1IntegerContent(n int64) []byte {
	i := Integer(*newBigInt(n))
	return i.Bytes()
}

// boolContent returns the single-byte DER content octet for a BOOLEAN,
// matching [Boolean.Bytes]'s own 0xFF/0x00 convention.
func boolContent(b bool) []byte {
	if b {
		return []byte{0xFF}
	}
	return []byte{0x00}
}

func berBool(p *ber.Packet) bool {
	if b, ok := p.Value.(bool); ok {
		return b
	}
	data := p.Data.Bytes()
	return len(data) == 1 && data[0] != 0x00
}

func berInt(p *ber.Packet) int64 {
	switch v := p.Value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case uint64:
		return int64(v)
	}
	return berBytesToInt(p.Data.Bytes())
}

func berBytesToInt(b []byte) (n int64) {
	if len(b) == 0 {
		return 0
	}
	if b[0]&0x80 != 0 {
		n = -1
	}
	for _, by := range b {
		n = (n << 8) | int64(by)
	}
	return
}

func berStr(p *ber.Packet) string {
	if s, ok := p.Value.(string); ok {
		return s
	}
	return p.Data.String()
}

/*
AuthenticationChoice is implemented by [SimpleAuthentication] and
[SaslCredentials], the two BindRequest.authentication alternatives.
*/
type AuthenticationChoice interface {
	authenticationTag() int
}

/*
SimpleAuthentication implements the simple [0] OCTET STRING
authentication choice.
*/
type SimpleAuthentication []byte

func (SimpleAuthentication) authenticationTag() int { return 0 }

/*
SaslCredentials implements the sasl [3] SaslCredentials authentication
choice.

	SaslCredentials ::= SEQUENCE {
	     mechanism   LDAPString,
	     credentials OCTET STRING OPTIONAL }
*/
type SaslCredentials struct {
	Mechanism      string
	Credentials    []byte
	HasCredentials bool
}

func (SaslCredentials) authenticationTag() int { return 3 }

func encodeAuthentication(a AuthenticationChoice) []byte {
	switch tv := a.(type) {
	case SimpleAuthentication:
		buf := NewAsn1Buffer(16 + len(tv))
		buf.WriteTLVBytes(classContextSpecific, false, 0, []byte(tv))
		return buf.Bytes()
	case SaslCredentials:
		body := NewAsn1Buffer(32)
		if tv.HasCredentials {
			body.WriteTLVBytes(classUniversal, false, tagOctetString, tv.Credentials)
		}
		body.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(tv.Mechanism))
		body.WriteTLV(classContextSpecific, true, 3, body.Len())
		return body.Bytes()
	}
	return nil
}

func decodeAuthentication(p *ber.Packet) (AuthenticationChoice, error) {
	switch p.Tag {
	case 0:
		return SimpleAuthentication(p.Data.Bytes()), nil
	case 3:
		if len(p.Children) == 0 {
			return nil, newDecodeError("SaslCredentials requires a mechanism", nil)
		}
		sc := SaslCredentials{Mechanism: berStr(p.Children[0])}
		if len(p.Children) > 1 {
			sc.Credentials = p.Children[1].Data.Bytes()
			sc.HasCredentials = true
		}
		return sc, nil
	}
	return nil, newDecodeError("unrecognized authentication CHOICE tag "+itoa(int(p.Tag)), nil)
}

/*
BindRequest implements § 4.2 of RFC 4511.
*/
type BindRequest struct {
	Version        int
	Name           LDAPDN
	Authentication AuthenticationChoice
}

func (BindRequest) protocolOpTag() int { return tagBindRequest }

func encodeBindRequest(r BindRequest) []byte {
	body := NewAsn1Buffer(64)
	body.WritePayload(encodeAuthentication(r.Authentication))
	body.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(r.Name))
	body.WriteTLVBytes(classUniversal, false, tagInteger, asn1IntegerContent(int64(r.Version)))
	return body.Bytes()
}

func decodeBindRequest(p *ber.Packet) (r BindRequest, err error) {
	if len(p.Children) < 3 {
		err = newDecodeError("BindRequest requires version, name, authentication", nil)
		return
	}
	r.Version = int(berInt(p.Children[0]))
	r.Name = LDAPDN(p.Children[1].Data.Bytes())
	r.Authentication, err = decodeAuthentication(p.Children[2])
	return
}

/*
BindResponse implements § 4.2.2 of RFC 4511.
*/
type BindResponse struct {
	LDAPResult
	ServerSaslCreds    []byte
	HasServerSaslCreds bool
}

func (BindResponse) protocolOpTag() int { return tagBindResponse }

const bindResponseServerSaslCredsTag = 7

func encodeBindResponse(r BindResponse) []byte {
	body := NewAsn1Buffer(64)
	if r.HasServerSaslCreds {
		body.WriteTLVBytes(classContextSpecific, false, bindResponseServerSaslCredsTag, r.ServerSaslCreds)
	}
	encodeLDAPResultBody(body, r.LDAPResult)
	return body.Bytes()
}

func decodeBindResponse(p *ber.Packet) (r BindResponse, err error) {
	var consumed int
	if r.LDAPResult, consumed, err = decodeLDAPResult(p.Children); err != nil {
		return
	}
	if consumed < len(p.Children) {
		last := p.Children[consumed]
		if last.ClassType == ber.ClassContext && last.Tag == bindResponseServerSaslCredsTag {
			r.ServerSaslCreds = last.Data.Bytes()
			r.HasServerSaslCreds = true
		}
	}
	return
}

/*
UnbindRequest implements § 4.3 of RFC 4511: an empty PDU (UnbindRequest
::= [APPLICATION 2] NULL). There is no response.
*/
type UnbindRequest struct{}

func (UnbindRequest) protocolOpTag() int { return tagUnbindRequest }

/*
DerefAliasesPolicy implements the SearchRequest derefAliases ENUMERATED.
*/
type DerefAliasesPolicy int

const (
	NeverDerefAliases   DerefAliasesPolicy = 0
	DerefInSearching    DerefAliasesPolicy = 1
	DerefFindingBaseObj DerefAliasesPolicy = 2
	DerefAlways         DerefAliasesPolicy = 3
)

// scopeToWire/wireToScope translate between [SearchScope]'s 1-based
// constants (shared with the ACIv3 syntax, where 0 means "unspecified")
// and the 0-based wire values of § 4.5.1 of RFC 4511.
func scopeToWire(s SearchScope) int {
	if s == noScope {
		return 0
	}
	return int(s) - 1
}

func wireToScope(v int) SearchScope {
	return SearchScope(v + 1)
}

/*
SearchRequest implements § 4.5.1 of RFC 4511.
*/
type SearchRequest struct {
	BaseObject   LDAPDN
	Scope        SearchScope
	DerefAliases DerefAliasesPolicy
	SizeLimit    int
	TimeLimit    int
	TypesOnly    bool
	Filter       Filter
	Attributes   []AttributeDescription
}

func (SearchRequest) protocolOpTag() int { return tagSearchRequest }

func encodeSearchRequest(r SearchRequest) (body []byte, err error) {
	buf := NewAsn1Buffer(128)

	attrs := NewAsn1Buffer(64)
	for i := len(r.Attributes) - 1; i >= 0; i-- {
		attrs.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(r.Attributes[i]))
	}
	buf.WriteTLVBytes(classUniversal, true, tagSequence, attrs.Bytes())

	var filterPacket *ber.Packet
	if filterPacket, err = encodeFilterBER(r.Filter, 0); err != nil {
		return
	}
	buf.WritePayload(filterPacket.Bytes())

	buf.WriteTLVBytes(classUniversal, false, tagBoolean, boolContent(r.TypesOnly))
	buf.WriteTLVBytes(classUniversal, false, tagInteger, asn1IntegerContent(int64(r.TimeLimit)))
	buf.WriteTLVBytes(classUniversal, false, tagInteger, asn1IntegerContent(int64(r.SizeLimit)))
	buf.WriteTLVBytes(classUniversal, false, tagEnum, asn1IntegerContent(int64(r.DerefAliases)))
	buf.WriteTLVBytes(classUniversal, false, tagEnum, asn1IntegerContent(int64(scopeToWire(r.Scope))))
	buf.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(r.BaseObject))

	body = buf.Bytes()
	return
}

func decodeSearchRequest(p *ber.Packet) (r SearchRequest, err error) {
	if len(p.Children) < 8 {
		err = newDecodeError("SearchRequest requires 8 components", nil)
		return
	}
	c := p.Children
	r.BaseObject = LDAPDN(c[0].Data.Bytes())
	r.Scope = wireToScope(int(berInt(c[1])))
	r.DerefAliases = DerefAliasesPolicy(berInt(c[2]))
	r.SizeLimit = int(berInt(c[3]))
	r.TimeLimit = int(berInt(c[4]))
	r.TypesOnly = berBool(c[5])

	var rfc4515 RFC4515
	if r.Filter, err = rfc4515.Filter(c[6]); err != nil {
		return
	}

	for _, a := range c[7].Children {
		r.Attributes = append(r.Attributes, AttributeDescription(berStr(a)))
	}
	return
}

/*
SearchResultEntry implements § 4.5.2 of RFC 4511.
*/
type SearchResultEntry struct {
	ObjectName LDAPDN
	Attributes []PartialAttribute
}

func (SearchResultEntry) protocolOpTag() int { return tagSearchResultEntry }

func encodeSearchResultEntry(r SearchResultEntry) []byte {
	buf := NewAsn1Buffer(128)
	attrs := NewAsn1Buffer(64)
	for i := len(r.Attributes) - 1; i >= 0; i-- {
		attrs.WritePayload(encodePartialAttribute(r.Attributes[i]))
	}
	buf.WriteTLVBytes(classUniversal, true, tagSequence, attrs.Bytes())
	buf.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(r.ObjectName))
	return buf.Bytes()
}

func decodeSearchResultEntry(p *ber.Packet) (r SearchResultEntry, err error) {
	if len(p.Children) < 2 {
		err = newDecodeError("SearchResultEntry requires objectName and attributes", nil)
		return
	}
	r.ObjectName = LDAPDN(p.Children[0].Data.Bytes())
	for _, a := range p.Children[1].Children {
		var at PartialAttribute
		if at, err = decodePartialAttribute(a); err != nil {
			return
		}
		r.Attributes = append(r.Attributes, at)
	}
	return
}

/*
SearchResultDone implements § 4.5.2 of RFC 4511.
*/
type SearchResultDone struct{ LDAPResult }

func (SearchResultDone) protocolOpTag() int { return tagSearchResultDone }

/*
SearchResultReference implements § 4.5.3 of RFC 4511.
*/
type SearchResultReference struct {
	URIs []string
}

func (SearchResultReference) protocolOpTag() int { return tagSearchResultReference }

func encodeSearchResultReference(r SearchResultReference) []byte {
	buf := NewAsn1Buffer(64)
	for i := len(r.URIs) - 1; i >= 0; i-- {
		buf.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(r.URIs[i]))
	}
	return buf.Bytes()
}

func decodeSearchResultReference(p *ber.Packet) (r SearchResultReference, err error) {
	for _, u := range p.Children {
		r.URIs = append(r.URIs, berStr(u))
	}
	return
}

/*
PartialAttribute implements § 4.1.7 of RFC 4511: an attribute descriptor
plus a (possibly empty) set of values, as carried by SearchResultEntry
and ModifyRequest. [Attribute] is the same wire shape, restricted (not
enforced here) to at least one value, as used by AddRequest.
*/
type PartialAttribute struct {
	Type   AttributeDescription
	Values []AssertionValue
}

// Attribute implements § 4.1.8 of RFC 4511.
type Attribute PartialAttribute

func encodePartialAttribute(at PartialAttribute) []byte {
	body := NewAsn1Buffer(64)
	vals := NewAsn1Buffer(64)
	for i := len(at.Values) - 1; i >= 0; i-- {
		vals.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(at.Values[i]))
	}
	body.WriteTLVBytes(classUniversal, true, tagSet, vals.Bytes())
	body.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(at.Type))
	body.WriteTLV(classUniversal, true, tagSequence, body.Len())
	return body.Bytes()
}

func decodePartialAttribute(p *ber.Packet) (at PartialAttribute, err error) {
	if len(p.Children) < 2 {
		err = newDecodeError("Attribute requires type and values", nil)
		return
	}
	at.Type = AttributeDescription(berStr(p.Children[0]))
	for _, v := range p.Children[1].Children {
		at.Values = append(at.Values, AssertionValue(v.Data.Bytes()))
	}
	return
}

func encodeAttribute(at Attribute) []byte { return encodePartialAttribute(PartialAttribute(at)) }

func decodeAttribute(p *ber.Packet) (at Attribute, err error) {
	var pa PartialAttribute
	pa, err = decodePartialAttribute(p)
	return Attribute(pa), err
}

/*
ModificationOperation implements § 4.6 of RFC 4511's operation
ENUMERATED, plus the increment extension of RFC 4525.
*/
type ModificationOperation int

const (
	ModAdd       ModificationOperation = 0
	ModDelete    ModificationOperation = 1
	ModReplace   ModificationOperation = 2
	ModIncrement ModificationOperation = 3
)

/*
Modification implements § 4.6 of RFC 4511's "change" SEQUENCE.
*/
type Modification struct {
	Operation ModificationOperation
	Attribute PartialAttribute
}

func encodeModification(m Modification) []byte {
	body := NewAsn1Buffer(64)
	body.WritePayload(encodePartialAttribute(m.Attribute))
	body.WriteTLVBytes(classUniversal, false, tagEnum, asn1IntegerContent(int64(m.Operation)))
	body.WriteTLV(classUniversal, true, tagSequence, body.Len())
	return body.Bytes()
}

func decodeModification(p *ber.Packet) (m Modification, err error) {
	if len(p.Children) < 2 {
		err = newDecodeError("change requires operation and modification", nil)
		return
	}
	m.Operation = ModificationOperation(berInt(p.Children[0]))
	m.Attribute, err = decodePartialAttribute(p.Children[1])
	return
}

/*
incrementEligible reports whether attrType's syntax permits the
increment ModificationOperation of RFC 4525: INTEGER or NUMERIC STRING.
Absent a [SchemaManager] (sm == nil), increment is allowed unconditionally
(the relaxed rule of Design Note 9.6) since there is no syntax to check
against.
*/
func incrementEligible(sm *SchemaManager, attrType string) bool {
	if sm == nil {
		return true
	}
	at, ok := sm.AttributeType(attrType)
	if !ok {
		return true
	}
	switch at.Syntax {
	case "1.3.6.1.4.1.1466.115.121.1.27", "1.3.6.1.4.1.1466.115.121.1.36":
		return true
	case "":
		return true
	}
	return false
}

/*
ModifyRequest implements § 4.6 of RFC 4511.
*/
type ModifyRequest struct {
	Object  LDAPDN
	Changes []Modification
}

func (ModifyRequest) protocolOpTag() int { return tagModifyRequest }

func encodeModifyRequest(r ModifyRequest) []byte {
	buf := NewAsn1Buffer(128)
	changes := NewAsn1Buffer(64)
	for i := len(r.Changes) - 1; i >= 0; i-- {
		changes.WritePayload(encodeModification(r.Changes[i]))
	}
	buf.WriteTLVBytes(classUniversal, true, tagSequence, changes.Bytes())
	buf.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(r.Object))
	return buf.Bytes()
}

func decodeModifyRequest(p *ber.Packet) (r ModifyRequest, err error) {
	if len(p.Children) < 2 {
		err = newDecodeError("ModifyRequest requires object and changes", nil)
		return
	}
	r.Object = LDAPDN(p.Children[0].Data.Bytes())
	for _, c := range p.Children[1].Children {
		var m Modification
		if m, err = decodeModification(c); err != nil {
			return
		}
		r.Changes = append(r.Changes, m)
	}
	return
}

/*
ModifyResponse implements § 4.6 of RFC 4511.
*/
type ModifyResponse struct{ LDAPResult }

func (ModifyResponse) protocolOpTag() int { return tagModifyResponse }

/*
AddRequest implements § 4.7 of RFC 4511.
*/
type AddRequest struct {
	Entry      LDAPDN
	Attributes []Attribute
}

func (AddRequest) protocolOpTag() int { return tagAddRequest }

func encodeAddRequest(r AddRequest) []byte {
	buf := NewAsn1Buffer(128)
	attrs := NewAsn1Buffer(64)
	for i := len(r.Attributes) - 1; i >= 0; i-- {
		attrs.WritePayload(encodeAttribute(r.Attributes[i]))
	}
	buf.WriteTLVBytes(classUniversal, true, tagSequence, attrs.Bytes())
	buf.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(r.Entry))
	return buf.Bytes()
}

func decodeAddRequest(p *ber.Packet) (r AddRequest, err error) {
	if len(p.Children) < 2 {
		err = newDecodeError("AddRequest requires entry and attributes", nil)
		return
	}
	r.Entry = LDAPDN(p.Children[0].Data.Bytes())
	for _, a := range p.Children[1].Children {
		var at Attribute
		if at, err = decodeAttribute(a); err != nil {
			return
		}
		r.Attributes = append(r.Attributes, at)
	}
	return
}

/*
AddResponse implements § 4.7 of RFC 4511.
*/
type AddResponse struct{ LDAPResult }

func (AddResponse) protocolOpTag() int { return tagAddResponse }

/*
DelRequest implements § 4.8 of RFC 4511: DelRequest ::= [APPLICATION 10]
LDAPDN (a primitive body, not a SEQUENCE).
*/
type DelRequest struct{ DN LDAPDN }

func (DelRequest) protocolOpTag() int { return tagDelRequest }

/*
DelResponse implements § 4.8 of RFC 4511.
*/
type DelResponse struct{ LDAPResult }

func (DelResponse) protocolOpTag() int { return tagDelResponse }

/*
ModifyDNRequest implements § 4.9 of RFC 4511.
*/
type ModifyDNRequest struct {
	Entry          LDAPDN
	NewRDN         string
	DeleteOldRDN   bool
	NewSuperior    string
	HasNewSuperior bool
}

func (ModifyDNRequest) protocolOpTag() int { return tagModifyDNRequest }

const modifyDNNewSuperiorTag = 0

func encodeModifyDNRequest(r ModifyDNRequest) []byte {
	buf := NewAsn1Buffer(128)
	if r.HasNewSuperior {
		buf.WriteTLVBytes(classContextSpecific, false, modifyDNNewSuperiorTag, []byte(r.NewSuperior))
	}
	buf.WriteTLVBytes(classUniversal, false, tagBoolean, boolContent(r.DeleteOldRDN))
	buf.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(r.NewRDN))
	buf.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(r.Entry))
	return buf.Bytes()
}

func decodeModifyDNRequest(p *ber.Packet) (r ModifyDNRequest, err error) {
	if len(p.Children) < 3 {
		err = newDecodeError("ModifyDNRequest requires entry, newrdn, deleteoldrdn", nil)
		return
	}
	r.Entry = LDAPDN(p.Children[0].Data.Bytes())
	r.NewRDN = berStr(p.Children[1])
	r.DeleteOldRDN = berBool(p.Children[2])
	if len(p.Children) > 3 {
		r.NewSuperior = berStr(p.Children[3])
		r.HasNewSuperior = true
	}
	return
}

/*
ModifyDNResponse implements § 4.9 of RFC 4511.
*/
type ModifyDNResponse struct{ LDAPResult }

func (ModifyDNResponse) protocolOpTag() int { return tagModifyDNResponse }

/*
CompareRequest implements § 4.10 of RFC 4511.
*/
type CompareRequest struct {
	Entry LDAPDN
	Ava   AttributeValueAssertion
}

func (CompareRequest) protocolOpTag() int { return tagCompareRequest }

func encodeCompareRequest(r CompareRequest) []byte {
	buf := NewAsn1Buffer(128)
	ava := NewAsn1Buffer(64)
	ava.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(r.Ava.Value))
	ava.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(r.Ava.Desc))
	ava.WriteTLV(classUniversal, true, tagSequence, ava.Len())
	buf.WritePayload(ava.Bytes())
	buf.WriteTLVBytes(classUniversal, false, tagOctetString, []byte(r.Entry))
	return buf.Bytes()
}

func decodeCompareRequest(p *ber.Packet) (r CompareRequest, err error) {
	if len(p.Children) < 2 || len(p.Children[1].Children) < 2 {
		err = newDecodeError("CompareRequest requires entry and ava", nil)
		return
	}
	r.Entry = LDAPDN(p.Children[0].Data.Bytes())
	ava := p.Children[1]
	r.Ava = AttributeValueAssertion{
		Desc:  AttributeDescription(berStr(ava.Children[0])),
		Value: AssertionValue(ava.Children[1].Data.Bytes()),
	}
	return
}

/*
CompareResponse implements § 4.10 of RFC 4511.
*/
type CompareResponse struct{ LDAPResult }

func (CompareResponse) protocolOpTag() int { return tagCompareResponse }

/*
AbandonRequest implements § 4.11 of RFC 4511: AbandonRequest ::=
[APPLICATION 16] MessageID (a primitive INTEGER body). There is no
response.
*/
type AbandonRequest struct{ MessageID MessageID }

func (AbandonRequest) protocolOpTag() int { return tagAbandonRequest }

/*
ExtendedRequest implements § 4.12 of RFC 4511.
*/
type ExtendedRequest struct {
	Name     string
	Value    []byte
	HasValue bool
}

func (ExtendedRequest) protocolOpTag() int { return tagExtendedRequest }

const (
	extendedRequestNameTag  = 0
	extendedRequestValueTag = 1
)

func encodeExtendedRequest(r ExtendedRequest) []byte {
	buf := NewAsn1Buffer(64)
	if r.HasValue {
		buf.WriteTLVBytes(classContextSpecific, false, extendedRequestValueTag, r.Value)
	}
	buf.WriteTLVBytes(classContextSpecific, false, extendedRequestNameTag, []byte(r.Name))
	return buf.Bytes()
}

func decodeExtendedRequest(p *ber.Packet) (r ExtendedRequest, err error) {
	if len(p.Children) == 0 {
		err = newDecodeError("ExtendedRequest requires requestName", nil)
		return
	}
	r.Name = berStr(p.Children[0])
	if len(p.Children) > 1 {
		r.Value = p.Children[1].Data.Bytes()
		r.HasValue = true
	}
	return
}

/*
ExtendedResponse implements § 4.12 of RFC 4511. A zero [Message.MessageID]
and zero ResponseName/Response identify an UnsolicitedNotification.
*/
type ExtendedResponse struct {
	LDAPResult
	Name     string
	HasName  bool
	Value    []byte
	HasValue bool
}

func (ExtendedResponse) protocolOpTag() int { return tagExtendedResponse }

const (
	extendedResponseNameTag  = 10
	extendedResponseValueTag = 11
)

func encodeExtendedResponse(r ExtendedResponse) []byte {
	buf := NewAsn1Buffer(64)
	if r.HasValue {
		buf.WriteTLVBytes(classContextSpecific, false, extendedResponseValueTag, r.Value)
	}
	if r.HasName {
		buf.WriteTLVBytes(classContextSpecific, false, extendedResponseNameTag, []byte(r.Name))
	}
	encodeLDAPResultBody(buf, r.LDAPResult)
	return buf.Bytes()
}

func decodeExtendedResponse(p *ber.Packet) (r ExtendedResponse, err error) {
	var consumed int
	if r.LDAPResult, consumed, err = decodeLDAPResult(p.Children); err != nil {
		return
	}
	for _, c := range p.Children[consumed:] {
		if c.ClassType != ber.ClassContext {
			continue
		}
		switch c.Tag {
		case extendedResponseNameTag:
			r.Name = berStr(c)
			r.HasName = true
		case extendedResponseValueTag:
			r.Value = c.Data.Bytes()
			r.HasValue = true
		}
	}
	return
}

/*
IntermediateResponse implements § 4.13 of RFC 4511.
*/
type IntermediateResponse struct {
	Name     string
	HasName  bool
	Value    []byte
	HasValue bool
}

func (IntermediateResponse) protocolOpTag() int { return tagIntermediateResponse }

const (
	intermediateResponseNameTag  = 0
	intermediateResponseValueTag = 1
)

func encodeIntermediateResponse(r IntermediateResponse) []byte {
	buf := NewAsn1Buffer(64)
	if r.HasValue {
		buf.WriteTLVBytes(classContextSpecific, false, intermediateResponseValueTag, r.Value)
	}
	if r.HasName {
		buf.WriteTLVBytes(classContextSpecific, false, intermediateResponseNameTag, []byte(r.Name))
	}
	return buf.Bytes()
}

func decodeIntermediateResponse(p *ber.Packet) (r IntermediateResponse, err error) {
	for _, c := range p.Children {
		if c.ClassType != ber.ClassContext {
			continue
		}
		switch c.Tag {
		case intermediateResponseNameTag:
			r.Name = berStr(c)
			r.HasName = true
		case intermediateResponseValueTag:
			r.Value = c.Data.Bytes()
			r.HasValue = true
		}
	}
	return
}

/*
Encode returns the BER encoding of msg, per the Encoder contract of § 4.2:
re-decoding the result with [Decode] yields a structurally equal
[Message].
*/
func Encode(msg *Message) ([]byte, error) {
	if msg == nil || msg.Op == nil {
		return nil, newEncodeError("cannot encode a nil Message or ProtocolOp")
	}

	opBody, opCompound, err := encodeProtocolOpBody(msg.Op)
	if err != nil {
		return nil, &EncodeError{Msg: "encoding protocolOp", cause: err}
	}

	buf := NewAsn1Buffer(64 + len(opBody))

	if len(msg.Controls) > 0 {
		buf.WriteTLVBytes(classContextSpecific, true, tagMessageControls, encodeControls(msg.Controls))
	}

	buf.WriteTLVBytes(classApplication, opCompound, msg.Op.protocolOpTag(), opBody)
	buf.WriteTLVBytes(classUniversal, false, tagInteger, asn1IntegerContent(int64(msg.MessageID)))
	buf.WriteTLV(classUniversal, true, tagSequence, buf.Len())

	return buf.Bytes(), nil
}

// encodeProtocolOpBody dispatches op to its per-type encoder, returning
// the APPLICATION TLV's body bytes and whether the TLV is constructed.
func encodeProtocolOpBody(op ProtocolOp) (body []byte, compound bool, err error) {
	compound = true
	switch tv := op.(type) {
	case BindRequest:
		body = encodeBindRequest(tv)
	case BindResponse:
		body = encodeBindResponse(tv)
	case UnbindRequest:
		compound = false
	case SearchRequest:
		body, err = encodeSearchRequest(tv)
	case SearchResultEntry:
		body = encodeSearchResultEntry(tv)
	case SearchResultDone:
		buf := NewAsn1Buffer(64)
		encodeLDAPResultBody(buf, tv.LDAPResult)
		body = buf.Bytes()
	case SearchResultReference:
		body = encodeSearchResultReference(tv)
	case ModifyRequest:
		body = encodeModifyRequest(tv)
	case ModifyResponse:
		buf := NewAsn1Buffer(64)
		encodeLDAPResultBody(buf, tv.LDAPResult)
		body = buf.Bytes()
	case AddRequest:
		body = encodeAddRequest(tv)
	case AddResponse:
		buf := NewAsn1Buffer(64)
		encodeLDAPResultBody(buf, tv.LDAPResult)
		body = buf.Bytes()
	case DelRequest:
		compound = false
		body = []byte(tv.DN)
	case DelResponse:
		buf := NewAsn1Buffer(64)
		encodeLDAPResultBody(buf, tv.LDAPResult)
		body = buf.Bytes()
	case ModifyDNRequest:
		body = encodeModifyDNRequest(tv)
	case ModifyDNResponse:
		buf := NewAsn1Buffer(64)
		encodeLDAPResultBody(buf, tv.LDAPResult)
		body = buf.Bytes()
	case CompareRequest:
		body = encodeCompareRequest(tv)
	case CompareResponse:
		buf := NewAsn1Buffer(64)
		encodeLDAPResultBody(buf, tv.LDAPResult)
		body = buf.Bytes()
	case AbandonRequest:
		compound = false
		body = asn1IntegerContent(int64(tv.MessageID))
	case ExtendedRequest:
		body = encodeExtendedRequest(tv)
	case ExtendedResponse:
		body = encodeExtendedResponse(tv)
	case IntermediateResponse:
		body = encodeIntermediateResponse(tv)
	default:
		err = newEncodeError("unrecognized ProtocolOp type")
	}
	return
}

/*
Decode parses one LDAPMessage out of data, per the Decoder contract of
§ 4.2. On a response-carrying operation (Add, Modify, Delete, ModDN,
Compare, Search, Bind) whose request body decoded far enough to identify
the targeted DN before a grammar/syntax fault was found, the returned
error is a [ResponseCarryingDecodeError] whose Response field holds a
pre-built response PDU the caller may send back directly. All other
decode faults are fatal to the connection.
*/
func Decode(data []byte) (*Message, error) {
	p, err := ber.DecodePacketErr(data)
	if err != nil {
		return nil, newDecodeError("malformed BER envelope", err)
	}
	return decodeMessage(p)
}

func decodeMessage(p *ber.Packet) (msg *Message, err error) {
	if p == nil || len(p.Children) < 2 {
		err = newDecodeError("LDAPMessage requires messageId and protocolOp", nil)
		return
	}

	msg = &Message{MessageID: MessageID(berInt(p.Children[0]))}

	opPacket := p.Children[1]
	if msg.Op, err = decodeProtocolOp(opPacket, msg.MessageID); err != nil {
		return
	}

	if len(p.Children) > 2 {
		ctlPacket := p.Children[2]
		if ctlPacket.ClassType == ber.ClassContext && ctlPacket.Tag == tagMessageControls {
			if msg.Controls, err = decodeControls(ctlPacket); err != nil {
				return
			}
		}
	}

	return
}

// decodeProtocolOp dispatches on opPacket.Tag to the matching per-type
// decoder. mid is accepted but not read: the responses synthesized for a
// [ResponseCarryingDecodeError] carry only an LDAPResult, with no
// message ID.
func decodeProtocolOp(p *ber.Packet, mid MessageID) (op ProtocolOp, err error) {
	switch p.Tag {
	case tagBindRequest:
		var r BindRequest
		if r, err = decodeBindRequest(p); err != nil {
			if len(r.Name) > 0 {
				err = newResponseCarryingError(err.Error(), BindResponse{LDAPResult: LDAPResult{
					ResultCode:        ResultInvalidDnSyntaxOr(ResultProtocolError, err),
					MatchedDN:         r.Name,
					DiagnosticMessage: err.Error(),
				}})
			}
			return
		}
		op = r
	case tagBindResponse:
		var r BindResponse
		r, err = decodeBindResponse(p)
		op = r
	case tagUnbindRequest:
		op = UnbindRequest{}
	case tagSearchRequest:
		var r SearchRequest
		if r, err = decodeSearchRequest(p); err != nil {
			err = wrapSearchDecodeError(err, r)
			return
		}
		op = r
	case tagSearchResultEntry:
		op, err = decodeSearchResultEntry(p)
	case tagSearchResultDone:
		var res LDAPResult
		res, _, err = decodeLDAPResult(p.Children)
		op = SearchResultDone{LDAPResult: res}
	case tagSearchResultReference:
		op, err = decodeSearchResultReference(p)
	case tagModifyRequest:
		var r ModifyRequest
		if r, err = decodeModifyRequest(p); err != nil {
			err = wrapModifyDecodeError(err, r)
			return
		}
		op = r
	case tagModifyResponse:
		var res LDAPResult
		res, _, err = decodeLDAPResult(p.Children)
		op = ModifyResponse{LDAPResult: res}
	case tagAddRequest:
		var r AddRequest
		if r, err = decodeAddRequest(p); err != nil {
			err = wrapAddDecodeError(err, r)
			return
		}
		op = r
	case tagAddResponse:
		var res LDAPResult
		res, _, err = decodeLDAPResult(p.Children)
		op = AddResponse{LDAPResult: res}
	case tagDelRequest:
		op = DelRequest{DN: LDAPDN(p.Data.Bytes())}
	case tagDelResponse:
		var res LDAPResult
		res, _, err = decodeLDAPResult(p.Children)
		op = DelResponse{LDAPResult: res}
	case tagModifyDNRequest:
		var r ModifyDNRequest
		if r, err = decodeModifyDNRequest(p); err != nil {
			err = wrapModifyDNDecodeError(err, r)
			return
		}
		op = r
	case tagModifyDNResponse:
		var res LDAPResult
		res, _, err = decodeLDAPResult(p.Children)
		op = ModifyDNResponse{LDAPResult: res}
	case tagCompareRequest:
		var r CompareRequest
		if r, err = decodeCompareRequest(p); err != nil {
			err = wrapCompareDecodeError(err, r)
			return
		}
		op = r
	case tagCompareResponse:
		var res LDAPResult
		res, _, err = decodeLDAPResult(p.Children)
		op = CompareResponse{LDAPResult: res}
	case tagAbandonRequest:
		op = AbandonRequest{MessageID: MessageID(berInt(p))}
	case tagExtendedRequest:
		op, err = decodeExtendedRequest(p)
	case tagExtendedResponse:
		op, err = decodeExtendedResponse(p)
	case tagIntermediateResponse:
		op, err = decodeIntermediateResponse(p)
	default:
		err = newDecodeError("unrecognized protocolOp CHOICE tag "+itoa(int(p.Tag)), nil)
	}
	return
}

// wrap*DecodeError build a [ResponseCarryingDecodeError] once a request's
// target DN has already been captured, per § 4.2's error policy: the
// caller may lift Response and send it back instead of tearing the
// connection down. entry is whatever partial struct the failed decode
// call populated before erroring; an empty DN means the fault happened
// before the DN itself was readable, so the error stays connection-fatal.

func wrapAddDecodeError(cause error, partial AddRequest) error {
	if len(partial.Entry) == 0 {
		return cause
	}
	return newResponseCarryingError(cause.Error(), AddResponse{LDAPResult{
		ResultCode:        ResultInvalidDnSyntaxOr(ResultProtocolError, cause),
		MatchedDN:         partial.Entry,
		DiagnosticMessage: cause.Error(),
	}})
}

func wrapModifyDecodeError(cause error, partial ModifyRequest) error {
	if len(partial.Object) == 0 {
		return cause
	}
	return newResponseCarryingError(cause.Error(), ModifyResponse{LDAPResult{
		ResultCode:        ResultInvalidDnSyntaxOr(ResultProtocolError, cause),
		MatchedDN:         partial.Object,
		DiagnosticMessage: cause.Error(),
	}})
}

func wrapModifyDNDecodeError(cause error, partial ModifyDNRequest) error {
	if len(partial.Entry) == 0 {
		return cause
	}
	return newResponseCarryingError(cause.Error(), ModifyDNResponse{LDAPResult{
		ResultCode:        ResultInvalidDnSyntaxOr(ResultProtocolError, cause),
		MatchedDN:         partial.Entry,
		DiagnosticMessage: cause.Error(),
	}})
}

func wrapCompareDecodeError(cause error, partial CompareRequest) error {
	if len(partial.Entry) == 0 {
		return cause
	}
	return newResponseCarryingError(cause.Error(), CompareResponse{LDAPResult{
		ResultCode:        ResultInvalidDnSyntaxOr(ResultProtocolError, cause),
		MatchedDN:         partial.Entry,
		DiagnosticMessage: cause.Error(),
	}})
}

func wrapSearchDecodeError(cause error, partial SearchRequest) error {
	if len(partial.BaseObject) == 0 {
		return cause
	}
	return newResponseCarryingError(cause.Error(), SearchResultDone{LDAPResult{
		ResultCode:        ResultInvalidDnSyntaxOr(ResultProtocolError, cause),
		MatchedDN:         partial.BaseObject,
		DiagnosticMessage: cause.Error(),
	}})
}

// ResultInvalidDnSyntaxOr classifies cause as invalidDnSyntax when it
// wraps a [DnSyntaxError], invalidAttributeSyntax when it wraps an
// [InvalidAttributeSyntax], and otherwise falls back to dflt.
func ResultInvalidDnSyntaxOr(dflt ResultCode, cause error) ResultCode {
	var dnErr *DnSyntaxError
	if errAs(cause, &dnErr) {
		return ResultInvalidDNSyntax
	}
	var synErr *InvalidAttributeSyntax
	if errAs(cause, &synErr) {
		return ResultInvalidAttributeSyntax
	}
	return dflt
}
