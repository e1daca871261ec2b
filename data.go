// Package rds decodes the RDS/RBDS baseband data stream emitted by FM
// broadcast tuners into a stable, observable view of a station's metadata:
// program identification, program type, station name, scrolling radiotext,
// clock, alternative frequencies, other-network cross references, and the
// handful of lesser-used group types.
//
// The decoder is synchronous, single-threaded, and pure-accumulative: it
// never retries, never surfaces an error to the caller, and never holds
// global state. See Decoder for the entry points.
package rds

import "rds/freq"

// BLER is the coarse bit-error-rate class a tuner assigns to a received
// block. It is a monotone quality gate, not an error count.
type BLER uint8

const (
	BLERNone    BLER = iota // No block errors.
	BLER1to2                // 1-2 block errors.
	BLER3to5                // 3-5 block errors.
	BLER6Plus               // 6+ block errors.
)

// Maximum acceptable BLER per block (RBDS demands tighter tolerance on
// block B since it determines how the rest of the group is interpreted).
const (
	BLERAMax = BLER3to5
	BLERBMax = BLER1to2
	BLERCMax = BLER3to5
	BLERDMax = BLER3to5
)

// Block is one of the four 16-bit RDS blocks (A..D) plus its BLER class.
type Block struct {
	Val    uint16
	Errors BLER
}

// Blocks are the four blocks (A,B,C,D) that make up one RDS group.
type Blocks struct {
	A, B, C, D Block
}

// GroupType identifies an RDS group's code (0..15) and version (A or B),
// derived from the top five bits of block B.
type GroupType struct {
	Code    uint8
	Version byte // 'A' or 'B'
}

// ValidMask is a bitmask of which Data fields have ever been populated.
type ValidMask uint32

const (
	ValidAF ValidMask = 1 << iota
	ValidClock
	ValidEWS
	ValidFastBasicTuning
	ValidMusic
	ValidPIC
	ValidPICode
	ValidPS
	ValidPTY
	ValidPTYN
	ValidRT
	ValidSLC
	ValidTDC
	ValidTACode
	ValidTPCode
	ValidEON
)

// PIC is a Program Item Number code (RBDS section 3.1.5.2).
type PIC struct {
	Day    uint8
	Hour   uint8
	Minute uint8
}

// PS is the accumulated Program Service (8-character station name) state.
//
// Display is the host-observable text; none of its bytes are null
// terminated, and space (0x20) is the padding character. The hiProb/loProb/
// hiProbCnt fields are decode scratch used only by the confidence-voted
// (advanced) reconstruction algorithm; see ps.go.
type PS struct {
	Display [8]byte

	hiProb    [8]byte
	loProb    [8]byte
	hiProbCnt [8]uint8
}

// rtBuffer is one of the two (A/B) Radiotext double-buffers.
type rtBuffer struct {
	Display [64]byte

	hiProb    [64]byte
	loProb    [64]byte
	hiProbCnt [64]uint8
}

// RT is the accumulated Radiotext state. The source material for this
// decoder tracks two independent buffers (A and B) selected by the A/B flag
// carried in block B bit 4. The buffer not currently selected keeps its
// Display text; a flip back to it wipes its confidence-vote state (see
// bumpRTValidation).
type RT struct {
	Flag           bool // Current Radiotext A/B flag.
	FlagValid      bool
	SavedFlag      bool // Value of Flag before the most recent transition.
	SavedFlagValid bool

	a, b rtBuffer
}

// Current returns the buffer (A or B) selected by the current flag value.
func (rt *RT) Current() *rtBuffer {
	if rt.Flag {
		return &rt.a
	}
	return &rt.b
}

// bufferFor returns the buffer matching the given flag state without
// consulting rt.Flag; used when deciding whether a message is transitioning
// between buffers.
func (rt *RT) bufferFor(flag bool) *rtBuffer {
	if flag {
		return &rt.a
	}
	return &rt.b
}

// Clock is the broadcast current-time record (RBDS section 3.1.5.6).
type Clock struct {
	DayHigh   bool   // High bit of the 17-bit Modified Julian Day.
	DayLow    uint16 // Low 16 bits of the Modified Julian Day.
	Hour      uint8  // UTC hour.
	Minute    uint8  // UTC minute.
	UTCOffset int8   // Local time offset from UTC, in multiples of 1/2 hour.
}

// VariantCode selects how SLC.Data is interpreted (RBDS section 3.1.5.2).
type VariantCode uint8

const (
	SLCVariantPaging        VariantCode = 0
	SLCVariantTMCID         VariantCode = 1
	SLCVariantPagingID      VariantCode = 2
	SLCVariantLanguage      VariantCode = 3
	SLCVariantNotAssigned1  VariantCode = 4
	SLCVariantNotAssigned5  VariantCode = 5
	SLCVariantBroadcasters  VariantCode = 6
	SLCVariantEWSChannelID  VariantCode = 7
)

// SLCData is the tagged-union payload of a slow-labelling-codes group,
// discriminated by the enclosing SLC's VariantCode.
type SLCData struct {
	Paging          uint8  // SLCVariantPaging
	CountryCode     uint8  // SLCVariantPaging
	TMCID           uint16 // SLCVariantTMCID
	PagingID        uint16 // SLCVariantPagingID
	LanguageCodes   uint16 // SLCVariantLanguage
	Broadcasters    uint16 // SLCVariantBroadcasters
	EWSChannelID    uint16 // SLCVariantEWSChannelID
}

// SLC is the slow-labelling-codes state (RBDS section 3.1.5.2, 3.2.1.8.3).
type SLC struct {
	LA          bool // Linkage actuator.
	VariantCode VariantCode
	Data        SLCData
}

// PTYN is the accumulated Program Type Name (RBDS section 3.1.5.?).
type PTYN struct {
	Display [8]byte
	lastAB  bool
}

// EONOther describes the network cross-referenced by an EON group.
type EONOther struct {
	PS     [8]byte
	PTY    uint8
	TPCode bool
	TACode bool
	AF     freq.Table
	PICode uint16
	PIC    PIC
}

// EONFreqMap maps this network's tuned frequency to an other network's
// frequency (RBDS section 3.2.1.8, variants EON_VC_FREQ1..5 — reserved for
// future use by this decoder; see eon.go).
type EONFreqMap struct {
	TunedFreq freq.Freq
	OtherFreq freq.Freq
}

// EON is the Enhanced Other Networks cross-reference state.
type EON struct {
	On   EONOther
	Maps [5]EONFreqMap
}

// ODAEntry is one active Open Data Application binding.
type ODAEntry struct {
	ID        uint16
	GT        GroupType
	PktCount  uint16
}

// MaxODA is the largest number of simultaneously active ODA bindings
// tracked.
const MaxODA = 10

// NumTDC is the number of transparent data channels tracked.
const NumTDC = 32

// TDCLen is the number of bytes of history kept per transparent data
// channel.
const TDCLen = 32

// TDC is the Transparent Data Channel state: opaque 32-byte FIFO rings, one
// per channel.
type TDC struct {
	Data         [NumTDC][TDCLen]byte
	CurrChannel  uint8
}

// EWS is the raw Emergency Warning System block capture. Interpretation of
// the bits is assigned unilaterally by each country; this decoder only
// captures them.
type EWS struct {
	B, C, D Block
}

// PacketCounts is an optional set of development/diagnostic counters,
// mirroring the per-field packet counters the reference implementation
// keeps behind a development flag.
type PacketCounts struct {
	AF, Clock, EON, EWS, FastBasicTuning, InHouse, Paging, PIC, PICode,
	PS, PTY, PTYN, RT, SLC, TDC, TMC, TACode, TPCode, Music int
}

// GroupCounts tracks how many A- and B-version groups of each code (0..15)
// have been received.
type GroupCounts struct {
	A, B uint16
}

// Stats holds the optional development statistics counters described in
// spec.md section 3 ("optional development stats counters").
type Stats struct {
	Counts       PacketCounts
	Groups       [16]GroupCounts
	DataCnt      uint16
	BlckBErrors  uint16
}

// Data is the RDS state record: the host-owned, decoder-mutated view of
// everything decoded from a station's RDS stream so far. The decoder holds
// only a non-owning reference to it (see Decoder).
//
// Some fields (PTY, PIC, TPCode, TACode, Music) represent only the most
// recently received value; others (PS, RT, AF) represent values
// accumulated, and error-corrected, across many groups.
type Data struct {
	PICode uint16
	PIC    PIC
	PTY    uint8
	TPCode bool
	TACode bool
	Music  bool

	PS    PS
	RT    RT
	Clock Clock
	SLC   SLC
	PTYN  PTYN
	AF    freq.Group
	EON   EON

	ODACnt uint8
	ODA    [MaxODA]ODAEntry

	TDC TDC
	EWS EWS

	Stats Stats

	// ValidValues records which fields have ever been populated.
	ValidValues ValidMask
}

// NewData returns a freshly zeroed RDS state record, ready to hand to
// NewDecoder. Using the zero value of Data directly also works as long as
// Reset is called once before the first Decode.
func NewData() *Data {
	d := &Data{}
	d.Reset()
	return d
}

// Reset zeroes every field of d, re-establishing the AF group's "no table
// in progress" sentinel.
func (d *Data) Reset() {
	*d = Data{}
	d.AF = *freq.NewGroup()
}
