package rds

// updatePTYNChar writes one decoded byte into the PTYN display buffer.
func updatePTYNChar(d *Data, charIdx uint8, ch byte) {
	if int(charIdx) >= len(d.PTYN.Display) {
		return
	}
	d.PTYN.Display[charIdx] = ch
}

// decodePTYN decodes group 10A, the Program Type Name. Block B bit 4 is the
// A/B flag (a transition zeroes the display before the next write); bit 0
// selects whether this message carries the first or second half of the
// name.
func decodePTYN(d *Data, blocks *Blocks) {
	const (
		bPTYNABFlag     = 0b10000
		bPTYNSegmentAddr = 0b00001
	)

	d.ValidValues |= ValidPTYN
	d.Stats.Counts.PTYN++

	ab := blocks.B.Val&bPTYNABFlag != 0
	if d.PTYN.lastAB != ab {
		d.PTYN.Display = [8]byte{}
		d.PTYN.lastAB = ab
	}

	base := uint8(0)
	if blocks.B.Val&bPTYNSegmentAddr != 0 {
		base = 4
	}
	if blocks.C.Errors <= BLERCMax {
		updatePTYNChar(d, base+0, byte(blocks.C.Val>>8))
		updatePTYNChar(d, base+1, byte(blocks.C.Val&0xFF))
	}
	if blocks.D.Errors <= BLERDMax {
		updatePTYNChar(d, base+2, byte(blocks.D.Val>>8))
		updatePTYNChar(d, base+3, byte(blocks.D.Val&0xFF))
	}
}
