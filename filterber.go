package ldapcore

/*
filterber.go implements the BER encode/decode half of component C10: a
[Filter] value needs a wire form to travel inside a SearchRequest PDU
(C2), something filter.go never provided -- it only ever went from a
[Filter] to its RFC 4515 string form and back. Both directions build on
the same go-asn1-ber [ber.Packet] tree dn.go already decodes binary RDN
values with, rather than a second hand-rolled byte encoder.

	Filter ::= CHOICE {
	    and             [0] SET OF filter Filter,
	    or              [1] SET OF filter Filter,
	    not             [2] Filter,
	    equalityMatch   [3] AttributeValueAssertion,
	    substrings      [4] SubstringFilter,
	    greaterOrEqual  [5] AttributeValueAssertion,
	    lessOrEqual     [6] AttributeValueAssertion,
	    present         [7] AttributeDescription,
	    approxMatch     [8] AttributeValueAssertion,
	    extensibleMatch [9] MatchingRuleAssertion }
*/

import (
	ber "github.com/go-asn1-ber/asn1-ber"
)

const (
	filterTagAnd             = 0
	filterTagOr              = 1
	filterTagNot             = 2
	filterTagEqualityMatch   = 3
	filterTagSubstrings      = 4
	filterTagGreaterOrEqual  = 5
	filterTagLessOrEqual     = 6
	filterTagPresent         = 7
	filterTagApproxMatch     = 8
	filterTagExtensibleMatch = 9

	substringTagInitial = 0
	substringTagAny     = 1
	substringTagFinal   = 2

	matchingRuleAssertionTagMatchingRule = 1
	matchingRuleAssertionTagType         = 2
	matchingRuleAssertionTagMatchValue   = 3
	matchingRuleAssertionTagDNAttributes = 4

	// maxFilterNestingDepth bounds the and/or/not recursion both ways
	// (BER encode and BER decode), per spec.md §8's 1,000-deep
	// nesting boundary test. The RFC 4515 string parser in filter.go
	// does not consult it and has no depth limit.
	maxFilterNestingDepth = 1000
)

var filterChoiceNames = map[string]ber.Tag{
	"and": filterTagAnd, "or": filterTagOr, "not": filterTagNot,
	"equalityMatch": filterTagEqualityMatch, "substrings": filterTagSubstrings,
	"greaterOrEqual": filterTagGreaterOrEqual, "lessOrEqual": filterTagLessOrEqual,
	"present": filterTagPresent, "approxMatch": filterTagApproxMatch,
	"extensibleMatch": filterTagExtensibleMatch,
}

func (r AndFilter) BER() (*ber.Packet, error)             { return encodeFilterBER(r, 0) }
func (r OrFilter) BER() (*ber.Packet, error)              { return encodeFilterBER(r, 0) }
func (r NotFilter) BER() (*ber.Packet, error)             { return encodeFilterBER(r, 0) }
func (r EqualityMatchFilter) BER() (*ber.Packet, error)   { return encodeFilterBER(r, 0) }
func (r GreaterOrEqualFilter) BER() (*ber.Packet, error)  { return encodeFilterBER(r, 0) }
func (r LessOrEqualFilter) BER() (*ber.Packet, error)     { return encodeFilterBER(r, 0) }
func (r ApproximateMatchFilter) BER() (*ber.Packet, error) { return encodeFilterBER(r, 0) }
func (r PresentFilter) BER() (*ber.Packet, error)         { return encodeFilterBER(r, 0) }
func (r SubstringsFilter) BER() (*ber.Packet, error)      { return encodeFilterBER(r, 0) }
func (r ExtensibleMatchFilter) BER() (*ber.Packet, error) { return encodeFilterBER(r, 0) }

/*
encodeFilterBER recurses directly rather than through an explicit stack;
depth is still bounded so a pathologically deep AndFilter/OrFilter/
NotFilter cannot exhaust the goroutine stack before
[maxFilterNestingDepth] is hit.
*/
func encodeFilterBER(f Filter, depth int) (*ber.Packet, error) {
	if depth > maxFilterNestingDepth {
		return nil, newEncodeError("filter nesting exceeds " + itoa(maxFilterNestingDepth) + " levels")
	}

	switch tv := f.(type) {
	case AndFilter:
		return encodeFilterSetBER("and", []Filter(tv), depth)
	case OrFilter:
		return encodeFilterSetBER("or", []Filter(tv), depth)
	case NotFilter:
		inner, err := encodeFilterBER(tv.Filter, depth+1)
		if err != nil {
			return nil, err
		}
		p := ber.Encode(ber.ClassContext, ber.TypeConstructed, filterChoiceNames["not"], nil, "not")
		p.AppendChild(inner)
		return p, nil
	case EqualityMatchFilter:
		return encodeAVAFilterBER("equalityMatch", AttributeValueAssertion(tv))
	case GreaterOrEqualFilter:
		return encodeAVAFilterBER("greaterOrEqual", AttributeValueAssertion(tv))
	case LessOrEqualFilter:
		return encodeAVAFilterBER("lessOrEqual", AttributeValueAssertion(tv))
	case ApproximateMatchFilter:
		return encodeAVAFilterBER("approxMatch", AttributeValueAssertion(tv))
	case PresentFilter:
		p := ber.NewString(ber.ClassContext, ber.TypePrimitive, filterChoiceNames["present"], string(tv.Desc), "present")
		return p, nil
	case SubstringsFilter:
		return encodeSubstringsFilterBER(tv)
	case ExtensibleMatchFilter:
		return encodeExtensibleMatchBER(MatchingRuleAssertionFilter(tv))
	default:
		return nil, newEncodeError("unsupported filter choice for BER encoding")
	}
}

func encodeFilterSetBER(choice string, members []Filter, depth int) (*ber.Packet, error) {
	if len(members) == 0 {
		return nil, emptyFilterSetErr
	}
	p := ber.Encode(ber.ClassContext, ber.TypeConstructed, filterChoiceNames[choice], nil, choice)
	for _, m := range members {
		child, err := encodeFilterBER(m, depth+1)
		if err != nil {
			return nil, err
		}
		p.AppendChild(child)
	}
	return p, nil
}

func encodeAVAFilterBER(choice string, ava AttributeValueAssertion) (*ber.Packet, error) {
	p := ber.Encode(ber.ClassContext, ber.TypeConstructed, filterChoiceNames[choice], nil, choice)
	p.AppendChild(ber.NewString(ber.ClassUniversal, ber.TypePrimitive, ber.TagOctetString, string(ava.Desc), "attributeDesc"))

	valuePacket := ber.NewString(ber.ClassUniversal, ber.TypePrimitive, ber.TagOctetString, string(ava.Value), "assertionValue")
	valuePacket.Value = ava.Value // AssertionValue.String() renders the escaped form under %s
	p.AppendChild(valuePacket)

	return p, nil
}

func encodeSubstringsFilterBER(r SubstringsFilter) (*ber.Packet, error) {
	p := ber.Encode(ber.ClassContext, ber.TypeConstructed, filterChoiceNames["substrings"], nil, "substrings")
	p.AppendChild(ber.NewString(ber.ClassUniversal, ber.TypePrimitive, ber.TagOctetString, string(r.Type), "type"))

	seq := ber.Encode(ber.ClassUniversal, ber.TypeConstructed, ber.TagSequence, nil, "substrings")
	any := 0
	if len(r.Substrings.Initial) > 0 {
		seq.AppendChild(ber.NewString(ber.ClassContext, ber.TypePrimitive, substringTagInitial, string(r.Substrings.Initial), "initial"))
		any++
	}
	if len(r.Substrings.Any) > 0 {
		seq.AppendChild(ber.NewString(ber.ClassContext, ber.TypePrimitive, substringTagAny, string(r.Substrings.Any), "any"))
		any++
	}
	if len(r.Substrings.Final) > 0 {
		seq.AppendChild(ber.NewString(ber.ClassContext, ber.TypePrimitive, substringTagFinal, string(r.Substrings.Final), "final"))
		any++
	}
	if any == 0 {
		return nil, newEncodeError("substrings filter has no initial/any/final component")
	}
	p.AppendChild(seq)
	return p, nil
}

func encodeExtensibleMatchBER(r MatchingRuleAssertionFilter) (*ber.Packet, error) {
	p := ber.Encode(ber.ClassContext, ber.TypeConstructed, filterChoiceNames["extensibleMatch"], nil, "extensibleMatch")
	if r.MatchingRule != "" {
		p.AppendChild(ber.NewString(ber.ClassContext, ber.TypePrimitive, matchingRuleAssertionTagMatchingRule, r.MatchingRule, "matchingRule"))
	}
	if r.Type != "" {
		p.AppendChild(ber.NewString(ber.ClassContext, ber.TypePrimitive, matchingRuleAssertionTagType, string(r.Type), "type"))
	}
	p.AppendChild(ber.NewString(ber.ClassContext, ber.TypePrimitive, matchingRuleAssertionTagMatchValue, string(r.MatchValue), "matchValue"))
	if r.DNAttributes {
		p.AppendChild(ber.NewBoolean(ber.ClassContext, ber.TypePrimitive, matchingRuleAssertionTagDNAttributes, true, "dnAttributes"))
	}
	return p, nil
}

/*
decodeFilterBER parses one Filter CHOICE out of an already-decoded BER
packet, as produced by [ber.DecodePacketErr]. It is the entry point C2's
SearchRequest decoder calls for the filter component.
*/
func decodeFilterBER(p *ber.Packet) (Filter, error) {
	return decodeFilterBERDepth(p, 0)
}

func decodeFilterBERDepth(p *ber.Packet, depth int) (Filter, error) {
	if p == nil {
		return nil, newDecodeError("nil filter packet", nil)
	}
	if depth > maxFilterNestingDepth {
		return nil, newDecodeError("filter nesting exceeds "+itoa(maxFilterNestingDepth)+" levels", nil)
	}

	switch p.Tag {
	case filterTagAnd:
		return decodeFilterSetBER[AndFilter](p, depth)
	case filterTagOr:
		return decodeFilterSetBER[OrFilter](p, depth)
	case filterTagNot:
		if len(p.Children) != 1 {
			return nil, newDecodeError("not filter must wrap exactly one filter", nil)
		}
		inner, err := decodeFilterBERDepth(p.Children[0], depth+1)
		if err != nil {
			return nil, err
		}
		return NotFilter{Filter: inner}, nil
	case filterTagEqualityMatch:
		ava, err := decodeAVABER(p)
		return EqualityMatchFilter(ava), err
	case filterTagGreaterOrEqual:
		ava, err := decodeAVABER(p)
		return GreaterOrEqualFilter(ava), err
	case filterTagLessOrEqual:
		ava, err := decodeAVABER(p)
		return LessOrEqualFilter(ava), err
	case filterTagApproxMatch:
		ava, err := decodeAVABER(p)
		return ApproximateMatchFilter(ava), err
	case filterTagPresent:
		return PresentFilter{Desc: AttributeDescription(p.Data.String())}, nil
	case filterTagSubstrings:
		return decodeSubstringsFilterBER(p)
	case filterTagExtensibleMatch:
		return decodeExtensibleMatchBER(p)
	default:
		return nil, newDecodeError("unrecognized filter CHOICE tag "+itoa(int(p.Tag)), nil)
	}
}

func decodeFilterSetBER[T ~[]Filter](p *ber.Packet, depth int) (T, error) {
	if len(p.Children) == 0 {
		return nil, emptyFilterSetErr
	}
	out := make(T, 0, len(p.Children))
	for _, c := range p.Children {
		f, err := decodeFilterBERDepth(c, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func decodeAVABER(p *ber.Packet) (AttributeValueAssertion, error) {
	if len(p.Children) != 2 {
		return AttributeValueAssertion{}, newDecodeError("attributeValueAssertion requires exactly 2 elements", nil)
	}
	return AttributeValueAssertion{
		Desc:  AttributeDescription(p.Children[0].Data.String()),
		Value: AssertionValue(p.Children[1].Data.Bytes()),
	}, nil
}

func decodeSubstringsFilterBER(p *ber.Packet) (SubstringsFilter, error) {
	if len(p.Children) != 2 {
		return SubstringsFilter{}, newDecodeError("substrings filter requires type and substrings SEQUENCE", nil)
	}
	out := SubstringsFilter{Type: AttributeDescription(p.Children[0].Data.String())}
	for _, c := range p.Children[1].Children {
		switch c.Tag {
		case substringTagInitial:
			out.Substrings.Initial = AssertionValue(c.Data.Bytes())
		case substringTagAny:
			out.Substrings.Any = AssertionValue(c.Data.Bytes())
		case substringTagFinal:
			out.Substrings.Final = AssertionValue(c.Data.Bytes())
		}
	}
	return out, nil
}

func decodeExtensibleMatchBER(p *ber.Packet) (ExtensibleMatchFilter, error) {
	var out MatchingRuleAssertionFilter
	for _, c := range p.Children {
		switch c.Tag {
		case matchingRuleAssertionTagMatchingRule:
			out.MatchingRule = c.Data.String()
		case matchingRuleAssertionTagType:
			out.Type = AttributeDescription(c.Data.String())
		case matchingRuleAssertionTagMatchValue:
			out.MatchValue = AssertionValue(c.Data.Bytes())
		case matchingRuleAssertionTagDNAttributes:
			out.DNAttributes = len(c.Data.Bytes()) == 1 && c.Data.Bytes()[0] != 0
		}
	}
	return ExtensibleMatchFilter(out), nil
}
