package ldapcore

/*
asn1buffer.go implements [Asn1Buffer], the tail-growing BER encoder used
by the LDAP message codec (C2). [DERPacket.WriteTagAndLength] above
grows a buffer from the front (length/tag is known before the payload is
appended); [Asn1Buffer] grows from the tail instead, so that a SEQUENCE
enclosing many already-encoded children can prepend its own header once
every child has finished writing, without a second pass to measure the
total length up front. See Design Note 9.1/9.4 of SPEC_FULL.md.

The two encoders must agree byte-for-byte (the Round-trip invariant of §8
requires it); [encodeTLV] below is the forward form of
[Asn1Buffer.WriteTLVBytes], built from the same identifier and length
helpers.
*/

/*
Asn1Buffer accumulates an LDAP PDU encoding back-to-front. Bytes already
written occupy buf[off:]; WriteTLV prepends the new header and payload by
moving off backwards.
*/
type Asn1Buffer struct {
	buf []byte
	off int
}

/*
NewAsn1Buffer returns an [Asn1Buffer] pre-sized to hold at least capHint
bytes, avoiding repeated reallocation for large PDUs (the 100,000
modification / 100,000 value scenario of § 8 in particular).
*/
func NewAsn1Buffer(capHint int) *Asn1Buffer {
	if capHint < 64 {
		capHint = 64
	}
	b := make([]byte, capHint)
	return &Asn1Buffer{buf: b, off: capHint}
}

// Bytes returns the finished encoding. The receiver must not be reused
// for further writes afterward.
func (r *Asn1Buffer) Bytes() []byte {
	return r.buf[r.off:]
}

// Len returns the number of bytes written so far.
func (r *Asn1Buffer) Len() int { return len(r.buf) - r.off }

// grow ensures there are at least n more bytes of headroom before off,
// reallocating and copying the already-written suffix if necessary.
func (r *Asn1Buffer) grow(n int) {
	if r.off >= n {
		return
	}
	used := len(r.buf) - r.off
	newCap := (len(r.buf) + n) * 2
	nb := make([]byte, newCap)
	copy(nb[newCap-used:], r.buf[r.off:])
	r.buf = nb
	r.off = newCap - used
}

// prepend writes p immediately before the current front of the buffer.
func (r *Asn1Buffer) prepend(p []byte) {
	r.grow(len(p))
	r.off -= len(p)
	copy(r.buf[r.off:], p)
}

/*
WritePayload prepends raw, already-encoded child bytes (e.g. the result
of a nested WriteTLV call) without adding a tag/length of its own. Used
to assemble a SEQUENCE's body out of children that wrote themselves
first, innermost first.
*/
func (r *Asn1Buffer) WritePayload(raw []byte) {
	r.prepend(raw)
}

/*
WriteTLV closes one TLV by prepending its length octets and its
identifier octet(s) in front of a body that has already been written
(typically via one or more prior WritePayload/WriteTLV calls on the same
buffer). bodyLen is the number of bytes, counted from the current front
of the buffer, that belong to this TLV's body. It is written into the
length octets exactly as given, so for the common case of "the body is
exactly what I just wrote" pass the byte count of that WritePayload
call, as [Asn1Buffer.WriteTLVBytes] does.
*/
func (r *Asn1Buffer) WriteTLV(class int, compound bool, tag int, bodyLen int) {
	r.prepend(encodeLengthOctets(bodyLen))
	r.prepend(encodeIdentifierOctets(class, compound, tag))
}

/*
WriteTLVBytes is a convenience wrapper: it prepends payload as the body,
then closes the TLV around it in one call.
*/
func (r *Asn1Buffer) WriteTLVBytes(class int, compound bool, tag int, payload []byte) {
	r.WritePayload(payload)
	r.WriteTLV(class, compound, tag, len(payload))
}

func encodeIdentifierOctets(class int, compound bool, tag int) []byte {
	b := uint8(class << 6)
	if compound {
		b |= 0x20
	}
	if tag < 31 {
		b |= uint8(tag)
		return []byte{b}
	}
	b |= 0x1f
	return append([]byte{b}, encodeBase128Int(tag)...)
}

func encodeLengthOctets(length int) []byte {
	if length < 128 {
		return []byte{uint8(length)}
	}
	var lenBytes []byte
	l := length
	for l > 0 {
		lenBytes = append([]byte{uint8(l & 0xff)}, lenBytes...)
		l >>= 8
	}
	return append([]byte{uint8(0x80 | len(lenBytes))}, lenBytes...)
}

/*
encodeTLV is the forward (length-first, single-pass) equivalent of
[Asn1Buffer.WriteTLVBytes]. Nothing in the package or its tests calls
it.
*/
func encodeTLV(class int, compound bool, tag int, payload []byte) []byte {
	out := encodeIdentifierOctets(class, compound, tag)
	out = append(out, encodeLengthOctets(len(payload))...)
	out = append(out, payload...)
	return out
}

/*
minLengthOctets returns the number of octets X.690 requires to encode a
given length value in definite form -- the pre-computation named in
component C1 of the specification.
*/
func minLengthOctets(length int) int {
	if length < 128 {
		return 1
	}
	n := 0
	for l := length; l > 0; l >>= 8 {
		n++
	}
	return 1 + n
}
