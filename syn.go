package ldapcore

/*
SyntaxVerification implements a closure function signature meant to be
honored by functions or methods intended to verify the syntax of a value.
*/
type SyntaxVerification func(any) Boolean

var syntaxVerifiers map[string]SyntaxVerification = map[string]SyntaxVerification{
	`1.3.6.1.4.1.1466.115.121.1.3`:  attributeTypeDescription,
	`1.3.6.1.4.1.1466.115.121.1.6`:  bitString,
	`1.3.6.1.4.1.1466.115.121.1.7`:  boolean,
	`1.3.6.1.4.1.1466.115.121.1.11`: countryString,
	`1.3.6.1.4.1.1466.115.121.1.14`: deliveryMethod,
	`1.3.6.1.4.1.1466.115.121.1.15`: directoryString,
	`1.3.6.1.4.1.1466.115.121.1.16`: dITContentRuleDescription,
	`1.3.6.1.4.1.1466.115.121.1.17`: dITStructureRuleDescription,
	`1.3.6.1.4.1.1466.115.121.1.12`: dN,
	`1.3.6.1.4.1.1466.115.121.1.21`: enhancedGuide,
	`1.3.6.1.4.1.1466.115.121.1.22`: facsimileTelephoneNumber,
	`1.3.6.1.4.1.1466.115.121.1.23`: fax,
	`1.3.6.1.4.1.1466.115.121.1.24`: generalizedTime,
	`1.3.6.1.4.1.1466.115.121.1.25`: guide,
	`1.3.6.1.4.1.1466.115.121.1.26`: iA5String,
	`1.3.6.1.4.1.1466.115.121.1.27`: integer,
	`1.3.6.1.4.1.1466.115.121.1.28`: jPEG,
	`1.3.6.1.4.1.1466.115.121.1.54`: lDAPSyntaxDescription,
	`1.3.6.1.4.1.1466.115.121.1.30`: matchingRuleDescription,
	`1.3.6.1.4.1.1466.115.121.1.31`: matchingRuleUseDescription,
	`1.3.6.1.4.1.1466.115.121.1.34`: nameAndOptionalUID,
	`1.3.6.1.4.1.1466.115.121.1.35`: nameFormDescription,
	`1.3.6.1.4.1.1466.115.121.1.36`: numericString,
	`1.3.6.1.4.1.1466.115.121.1.37`: objectClassDescription,
	`1.3.6.1.4.1.1466.115.121.1.40`: octetString,
	`1.3.6.1.4.1.1466.115.121.1.38`: oID,
	`1.3.6.1.4.1.1466.115.121.1.39`: otherMailbox,
	`1.3.6.1.4.1.1466.115.121.1.41`: postalAddress,
	`1.3.6.1.4.1.1466.115.121.1.44`: printableString,
	`1.3.6.1.4.1.1466.115.121.1.58`: substringAssertion,
	`1.3.6.1.4.1.1466.115.121.1.50`: telephoneNumber,
	`1.3.6.1.4.1.1466.115.121.1.51`: teletexTerminalIdentifier,
	`1.3.6.1.4.1.1466.115.121.1.52`: telexNumber,
	`1.3.6.1.4.1.1466.115.121.1.53`: uTCTime,
	`1.3.6.1.1.16.1`:                uUID,
}

/*
The funcs below adapt each syntax's typed RFC4512/RFC4517 constructor (or,
for the schema description syntaxes, its schema.go parser) into the bare
[SyntaxVerification] signature the map above requires.
*/

func attributeTypeDescription(x any) (result Boolean) {
	raw, err := assertString(x, 1, "AttributeTypeDescription")
	if err == nil {
		_, err = parseAttributeTypeDescription(raw)
	}
	result.Set(err == nil)
	return
}

func deliveryMethod(x any) (result Boolean) {
	var r RFC4517
	_, err := r.DeliveryMethod(x)
	result.Set(err == nil)
	return
}

func dITContentRuleDescription(x any) (result Boolean) {
	raw, err := assertString(x, 1, "DITContentRuleDescription")
	if err == nil {
		_, err = parseDITContentRuleDescription(raw)
	}
	result.Set(err == nil)
	return
}

func dITStructureRuleDescription(x any) (result Boolean) {
	raw, err := assertString(x, 1, "DITStructureRuleDescription")
	if err == nil {
		_, err = parseDITStructureRuleDescription(raw)
	}
	result.Set(err == nil)
	return
}

func dN(x any) (result Boolean) {
	raw, err := assertString(x, 0, "DN")
	if err == nil {
		_, err = parseDN(raw)
	}
	result.Set(err == nil)
	return
}

func enhancedGuide(x any) (result Boolean) {
	var r RFC4517
	err := r.EnhancedGuide(x)
	result.Set(err == nil)
	return
}

func facsimileTelephoneNumber(x any) (result Boolean) {
	var r RFC4517
	_, err := r.FacsimileTelephoneNumber(x)
	result.Set(err == nil)
	return
}

func fax(x any) (result Boolean) {
	var r RFC4517
	_, err := r.Fax(x)
	result.Set(err == nil)
	return
}

func generalizedTime(x any) (result Boolean) {
	var r RFC4517
	_, err := r.GeneralizedTime(x)
	result.Set(err == nil)
	return
}

func guide(x any) (result Boolean) {
	var r RFC4517
	err := r.Guide(x)
	result.Set(err == nil)
	return
}

func integer(x any) (result Boolean) {
	var r RFC4517
	_, err := r.Integer(x)
	result.Set(err == nil)
	return
}

func jPEG(x any) (result Boolean) {
	var r RFC4517
	err := r.JPEG(x)
	result.Set(err == nil)
	return
}

func lDAPSyntaxDescription(x any) (result Boolean) {
	raw, err := assertString(x, 1, "LDAPSyntaxDescription")
	if err == nil {
		_, err = parseLDAPSyntaxDescription(raw)
	}
	result.Set(err == nil)
	return
}

func matchingRuleDescription(x any) (result Boolean) {
	raw, err := assertString(x, 1, "MatchingRuleDescription")
	if err == nil {
		_, err = parseMatchingRuleDescription(raw)
	}
	result.Set(err == nil)
	return
}

func matchingRuleUseDescription(x any) (result Boolean) {
	raw, err := assertString(x, 1, "MatchingRuleUseDescription")
	if err == nil {
		_, err = parseMatchingRuleUseDescription(raw)
	}
	result.Set(err == nil)
	return
}

func nameAndOptionalUID(x any) (result Boolean) {
	var r RFC4517
	_, err := r.NameAndOptionalUID(x)
	result.Set(err == nil)
	return
}

func nameFormDescription(x any) (result Boolean) {
	raw, err := assertString(x, 1, "NameFormDescription")
	if err == nil {
		_, err = parseNameFormDescription(raw)
	}
	result.Set(err == nil)
	return
}

func objectClassDescription(x any) (result Boolean) {
	raw, err := assertString(x, 1, "ObjectClassDescription")
	if err == nil {
		_, err = parseObjectClassDescription(raw)
	}
	result.Set(err == nil)
	return
}

func oID(x any) (result Boolean) {
	var r RFC4517
	err := r.OID(x)
	result.Set(err == nil)
	return
}

func otherMailbox(x any) (result Boolean) {
	var r RFC4517
	_, err := r.OtherMailbox(x)
	result.Set(err == nil)
	return
}

func postalAddress(x any) (result Boolean) {
	var r RFC4517
	_, err := r.PostalAddress(x)
	result.Set(err == nil)
	return
}

func telephoneNumber(x any) (result Boolean) {
	var r RFC4517
	_, err := r.TelephoneNumber(x)
	result.Set(err == nil)
	return
}

func teletexTerminalIdentifier(x any) (result Boolean) {
	var r RFC4517
	_, err := r.TeletexTerminalIdentifier(x)
	result.Set(err == nil)
	return
}

func telexNumber(x any) (result Boolean) {
	var r RFC4517
	_, err := r.TelexNumber(x)
	result.Set(err == nil)
	return
}

func uTCTime(x any) (result Boolean) {
	var r RFC4517
	_, err := r.UTCTime(x)
	result.Set(err == nil)
	return
}
