package freq

// MaxEntries is the largest number of alternative frequencies a single
// table may hold (RBDS limits a station to 25 AFs).
const MaxEntries = 25

// Encoding is the alternative-frequency encoding method used for a table,
// inferred from the data stream itself (RBDS does not signal it directly).
type Encoding uint8

const (
	EncodingUnknown Encoding = iota
	EncodingA
	EncodingB
)

// Table holds one station's alternative-frequency list plus the decode
// scratch state needed to keep assembling it across groups.
type Table struct {
	// TunedFreq is the frequency tuned when this table's method-B anchor was
	// provisionally captured, or the zero value until then. Tables are
	// identified across receipts by this value (see Group.findByTunedFreq).
	TunedFreq Freq
	Entries   []Freq // Up to MaxEntries, no duplicates.

	method Encoding // Chosen encoding method for this table, once known.

	// pvt holds scratch state for the decode in progress; none of it is
	// meaningful to a host reading the table between groups.
	pvt struct {
		band         Band     // Band for frequencies in the current sequence.
		prevMethod   Encoding // Encoding method adopted by a prior sequence.
		expectedLeft uint8    // Frequencies still expected before a new start block.
	}
}

// Method reports the table's currently inferred encoding method.
func (t *Table) Method() Encoding { return t.method }

func (t *Table) decExpected() {
	if t.pvt.expectedLeft == 0 {
		return
	}
	t.pvt.expectedLeft--
}

// contains reports whether f is already present in the table.
func (t *Table) contains(f Freq) bool {
	for _, e := range t.Entries {
		if Equal(e, f) {
			return true
		}
	}
	return false
}

// insert appends f to the table, refusing duplicates and refusing once the
// table is full.
func (t *Table) insert(f Freq) bool {
	if len(t.Entries) >= MaxEntries {
		return false
	}
	if t.contains(f) {
		return false
	}
	t.Entries = append(t.Entries, f)
	return true
}

// add decrements the expected-remaining counter and inserts f.
func (t *Table) add(f Freq) bool {
	t.decExpected()
	return t.insert(f)
}

// handleSpecial consumes code if it is a filler, LF/MF marker, or any other
// non-frequency code, decrementing the expected count. It returns true if
// the code was handled as a special (i.e. is not a frequency to decode).
func (t *Table) handleSpecial(code uint8) bool {
	switch {
	case code == fillerCode:
		t.decExpected()
		return true
	case code == lfMFFollowsCd:
		t.pvt.band = BandLFMF
		t.decExpected()
		return true
	case !isFreqCode(code):
		t.decExpected()
		return true
	default:
		return false
	}
}

// StartBlock begins (or resumes) decoding a table, given the declared
// frequency count N and the one frequency-or-special byte that accompanies
// it.
func (t *Table) StartBlock(count uint8, second byte) {
	t.pvt.expectedLeft = count
	t.pvt.band = BandUHF // Always start with UHF, then LF/MF.

	if t.pvt.prevMethod != EncodingUnknown {
		t.method = t.pvt.prevMethod
	}

	if t.handleSpecial(second) {
		return
	}

	t.add(Freq{
		Band:   t.pvt.band,
		Attrib: AttribSameProgram,
		Value:  CodeToFreq(second, t.pvt.band),
	})
}

// NthBlock decodes the second and later blocks of a table (two frequency
// codes per block).
func (t *Table) NthBlock(first, second byte) {
	if t.pvt.expectedLeft == 0 {
		// More codes than declared; probably a missed start block.
		return
	}

	handledFirst := t.handleSpecial(first)
	firstFreq := Freq{Band: t.pvt.band, Attrib: AttribSameProgram, Value: CodeToFreq(first, t.pvt.band)}
	handledSecond := t.handleSpecial(second)
	secondFreq := Freq{Band: t.pvt.band, Attrib: AttribSameProgram, Value: CodeToFreq(second, t.pvt.band)}

	if t.method == EncodingUnknown {
		switch {
		case handledFirst && handledSecond:
			// Still don't know; wait for the next pair.
			return
		case handledFirst || handledSecond:
			// Method B pairs never mix a special with a real frequency.
			t.method = EncodingA
		case Equal(firstFreq, t.TunedFreq) || Equal(secondFreq, t.TunedFreq):
			t.method = EncodingB
		default:
			t.method = EncodingA
			if t.TunedFreq.Value != 0 {
				// Move the provisionally-saved tuned freq into the table now
				// that we know it was never going to be a method-B anchor.
				t.add(t.TunedFreq)
				t.TunedFreq = Freq{}
			}
		}
	}
	t.pvt.prevMethod = t.method

	if t.method == EncodingA {
		if !handledFirst {
			t.add(firstFreq)
		}
		if !handledSecond {
			t.add(secondFreq)
		}
		return
	}

	// Method B: both bytes must be real frequencies.
	if handledFirst || handledSecond {
		return
	}
	switch {
	case Equal(t.TunedFreq, firstFreq):
		if less(firstFreq, secondFreq) {
			secondFreq.Attrib = AttribRegionalVariant
		}
		t.add(secondFreq)
	case Equal(t.TunedFreq, secondFreq):
		if less(firstFreq, secondFreq) {
			firstFreq.Attrib = AttribRegionalVariant
		}
		t.add(firstFreq)
	default:
		// Method B claimed but neither byte matches the tuned anchor: drop.
	}
}
