package freq

// MaxTables is the largest number of distinct AF tables a Group will track
// at once (one per "other" tuned frequency a station has announced).
const MaxTables = 20

// Group maintains every AF table currently known for a station, allocating
// and reusing them as group-0A data arrives.
type Group struct {
	Tables []Table

	currentTableIdx int // Index into Tables being filled, -1 if none.
}

// NewGroup returns an empty AF table group, ready for decoding.
func NewGroup() *Group {
	return &Group{currentTableIdx: -1}
}

// Reset clears the group back to its zero state.
func (g *Group) Reset() {
	g.Tables = nil
	g.currentTableIdx = -1
}

// CurrentTableIndex reports the index of the table currently being filled,
// or -1 if none.
func (g *Group) CurrentTableIndex() int { return g.currentTableIdx }

func (g *Group) findByTunedFreq(f Freq) int {
	for i := range g.Tables {
		if Equal(g.Tables[i].TunedFreq, f) {
			return i
		}
	}
	return -1
}

// DecodeBlock decodes one AF data block (the 16-bit value carried in block
// C of a group-0A message). EON AF data does not come through here; it is
// decoded into a single Table.
func (g *Group) DecodeBlock(block uint16) {
	first := byte(block >> 8)
	second := byte(block & 0xFF)

	if IsCountCode(first) {
		g.decodeStartBlock(CountFromCode(first), second)
	} else {
		g.decodeNthBlock(first, second)
	}
}

func (g *Group) decodeStartBlock(count uint8, second byte) {
	method := EncodingUnknown
	g.currentTableIdx = -1

	if len(g.Tables) == 1 && g.Tables[0].method == EncodingA {
		// There is only ever one "A" table; reuse it.
		g.currentTableIdx = 0
		method = EncodingA
	}

	if count == 1 {
		// Only method A has a single-entry table, so we know the method
		// without looking anything up.
		method = EncodingA
		if len(g.Tables) > 0 {
			g.currentTableIdx = 0
		}
	}

	if g.currentTableIdx == -1 {
		// The second byte, provisionally decoded as a UHF frequency, is our
		// best guess at a tuned anchor until method A/B is disambiguated.
		provisional := Freq{Band: BandUHF, Attrib: AttribSameProgram, Value: CodeToFreq(second, BandUHF)}
		g.currentTableIdx = g.findByTunedFreq(provisional)

		if g.currentTableIdx == -1 {
			if len(g.Tables) == MaxTables {
				// All table slots in use; refuse silently.
				return
			}
			g.Tables = append(g.Tables, Table{method: method})
			g.currentTableIdx = len(g.Tables) - 1
			if g.Tables[g.currentTableIdx].method == EncodingUnknown {
				g.Tables[g.currentTableIdx].TunedFreq = provisional
			}
		}
	}

	g.Tables[g.currentTableIdx].StartBlock(count, second)
}

func (g *Group) decodeNthBlock(first, second byte) {
	if g.currentTableIdx < 0 {
		return
	}
	g.Tables[g.currentTableIdx].NthBlock(first, second)
}
