package crc8

// Poly is a generator polynomial without its implicit x^8 term, most
// significant bit first.
type Poly = byte

const (
	PolySMBus    Poly = 0x07
	PolyAUTOSAR  Poly = 0x2f
	PolyMaxim    Poly = 0x31
	PolyCDMA2000 Poly = 0x9b
	PolyDVBS2    Poly = 0xd5
)
