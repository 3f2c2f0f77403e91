package ldapcore

/*
sources.go implements Sources, a zero-value aggregator over every
standards-document receiver type in this package (X680, X690, RFC4511,
...). Call sites that need more than one document's methods in the
same expression -- a filter parser reaching for both RFC4515 and
RFC4511, say -- construct a Sources{} instead of naming each receiver
type individually.
*/

/*
Sources aggregates every document receiver type defined in this
package behind a single zero-value struct, so a caller juggling several
standards in one expression does not need to name each receiver type.
*/
type Sources struct{}

func (Sources) X501() X501       { return X501{} }
func (Sources) X520() X520       { return X520{} }
func (Sources) X680() X680       { return X680{} }
func (Sources) X690() X690       { return X690{} }
func (Sources) RFC2307() RFC2307 { return RFC2307{} }
func (Sources) RFC3672() RFC3672 { return RFC3672{} }
func (Sources) RFC4511() RFC4511 { return RFC4511{} }
func (Sources) RFC4512() RFC4512 { return RFC4512{} }
func (Sources) RFC4514() RFC4514 { return RFC4514{} }
func (Sources) RFC4515() RFC4515 { return RFC4515{} }
func (Sources) RFC4516() RFC4516 { return RFC4516{} }
func (Sources) RFC4517() RFC4517 { return RFC4517{} }
func (Sources) RFC4523() RFC4523 { return RFC4523{} }
func (Sources) RFC4530() RFC4530 { return RFC4530{} }
