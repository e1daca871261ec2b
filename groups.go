package rds

const (
	bGroupCode    = 0b1111000000000000 // Bits 15..12.
	bGroupVersion = 0b0000100000000000 // Bit 11: 0 = A, 1 = B.
	bTPCode       = 0b0000010000000000 // Bit 10.
	bPTY          = 0b0000001111100000 // Bits 9..5.
	bTACode       = 0b0000000000010000 // Bit 4 (groups 0 and 15).
	bMusic        = 0b0000000000001000 // Bit 3 (group 0 only).
)

// decodeGroupType derives the group code and version from block B's top
// five bits.
func decodeGroupType(b uint16) GroupType {
	gt := GroupType{Code: uint8((b & bGroupCode) >> 12), Version: 'A'}
	if b&bGroupVersion != 0 {
		gt.Version = 'B'
	}
	return gt
}

// decodeTP extracts the Traffic Program flag, present in block B of every
// group type.
func decodeTP(d *Data, block *Block) {
	d.TPCode = block.Val&bTPCode != 0
	d.ValidValues |= ValidTPCode
}

// decodePTY extracts the Program Type code, present in block B of every
// group type.
func decodePTY(d *Data, block *Block) {
	d.PTY = uint8((block.Val & bPTY) >> 5)
	d.ValidValues |= ValidPTY
	d.Stats.Counts.PTY++
}

// decodeTA extracts the Traffic Announcement flag (groups 0 and 15).
func decodeTA(d *Data, block *Block) {
	d.TACode = block.Val&bTACode != 0
	d.ValidValues |= ValidTACode
}

// decodeMS extracts the Music/Speech flag (group 0 only).
func decodeMS(d *Data, block *Block) {
	d.Music = block.Val&bMusic != 0
	d.ValidValues |= ValidMusic
}

// decodeGroupType0 decodes group 0: Alternative Frequencies and Program
// Service name, plus the TA flag and the Music/Speech flag that only this
// group carries.
func decodeGroupType0(dec *Decoder, gt GroupType, blocks *Blocks) {
	d := dec.rds
	decodeTA(d, &blocks.B)
	decodeMS(d, &blocks.B)

	if gt.Version == 'A' && blocks.C.Errors <= BLERCMax {
		d.AF.DecodeBlock(blocks.C.Val)
		d.ValidValues |= ValidAF
		d.Stats.Counts.AF++
	}

	if blocks.D.Errors > BLERDMax {
		return
	}
	addr := uint8(blocks.B.Val&0x3) * 2
	hi, lo := byte(blocks.D.Val>>8), byte(blocks.D.Val&0xFF)

	if dec.advancedPSDecoding {
		updatePSAdvanced(d, addr, hi)
		updatePSAdvanced(d, addr+1, lo)
	} else {
		updatePSSimple(d, addr, hi)
		updatePSSimple(d, addr+1, lo)
	}
	d.Stats.Counts.PS++
}

// decodeGroupType1 decodes group 1: Slow Labelling Codes (1A only) and the
// Program Item Number, carried in block D of both versions.
func decodeGroupType1(d *Data, gt GroupType, blocks *Blocks) {
	if gt.Version == 'A' {
		decodeSLC(d, blocks)
	}
	if blocks.D.Errors <= BLERDMax {
		decodePIC(blocks.D.Val, &d.PIC)
		d.ValidValues |= ValidPIC
		d.Stats.Counts.PIC++
	}
}

// decodeGroupType6 decodes group 6, In-House Applications: a pure counter
// unless a 6A/6B ODA claims it.
func decodeGroupType6(dec *Decoder, gt GroupType, blocks *Blocks) {
	if isGroupTypeUsedByODA(dec.rds, gt) {
		dec.decodeODA(gt, blocks)
		return
	}
	dec.rds.Stats.Counts.InHouse++
}

// decodeGroupType7 decodes group 7, Radio Paging (7A) unless claimed by an
// ODA.
func decodeGroupType7(dec *Decoder, gt GroupType, blocks *Blocks) {
	if isGroupTypeUsedByODA(dec.rds, gt) {
		dec.decodeODA(gt, blocks)
		return
	}
	if gt.Version == 'A' {
		dec.rds.Stats.Counts.Paging++
	}
}

// decodeGroupType8 decodes group 8, Traffic Message Channel (8A) unless
// claimed by an ODA.
func decodeGroupType8(dec *Decoder, gt GroupType, blocks *Blocks) {
	if isGroupTypeUsedByODA(dec.rds, gt) {
		dec.decodeODA(gt, blocks)
		return
	}
	if gt.Version == 'A' {
		dec.rds.Stats.Counts.TMC++
	}
}

// decodeGroupType15 decodes group 15: 15A is deprecated (RBDS reassigned
// it); 15B is Fast Basic Tuning and Switching Information. Both still carry
// the ordinary TA flag in block B.
func decodeGroupType15(d *Data, gt GroupType, blocks *Blocks) {
	decodeTA(d, &blocks.B)
	if gt.Version == 'B' {
		d.ValidValues |= ValidFastBasicTuning
		d.Stats.Counts.FastBasicTuning++
	}
}

// decodeGroup is the top-level RDS group dispatcher: it latches the Program
// Identification code, gates on block B's error rate, derives the group
// type, and dispatches to the per-group-code decoder.
func decodeGroup(dec *Decoder, blocks *Blocks) {
	d := dec.rds
	d.Stats.DataCnt++

	if blocks.A.Errors <= BLERAMax {
		d.PICode = blocks.A.Val
		d.ValidValues |= ValidPICode
		d.Stats.Counts.PICode++
	}

	if blocks.B.Errors > BLERBMax {
		d.Stats.BlckBErrors++
		return
	}

	gt := decodeGroupType(blocks.B.Val)

	if gt.Version == 'B' && blocks.C.Errors <= BLERCMax && blocks.C.Errors < blocks.B.Errors {
		// B-version groups repeat the PI code in block C; trust it over
		// block A's copy when it arrived with strictly fewer errors.
		d.PICode = blocks.C.Val
		d.ValidValues |= ValidPICode
		d.Stats.Counts.PICode++
	}

	decodeTP(d, &blocks.B)
	decodePTY(d, &blocks.B)

	if gt.Version == 'A' {
		d.Stats.Groups[gt.Code].A++
	} else {
		d.Stats.Groups[gt.Code].B++
	}

	switch gt.Code {
	case 0:
		decodeGroupType0(dec, gt, blocks)
	case 1:
		decodeGroupType1(d, gt, blocks)
	case 2:
		decodeGroupType2(d, gt, blocks)
	case 3:
		dec.decodeGroupType3(gt, blocks)
	case 4:
		if gt.Version == 'A' {
			updateClock(d, blocks)
		} else {
			dec.decodeODA(gt, blocks)
		}
	case 5:
		decodeGroupType5(dec, gt, blocks)
	case 6:
		decodeGroupType6(dec, gt, blocks)
	case 7:
		decodeGroupType7(dec, gt, blocks)
	case 8:
		decodeGroupType8(dec, gt, blocks)
	case 9:
		decodeGroupType9(dec, gt, blocks)
	case 10:
		if isGroupTypeUsedByODA(d, gt) {
			dec.decodeODA(gt, blocks)
		} else if gt.Version == 'A' {
			decodePTYN(d, blocks)
		}
	case 11, 12, 13:
		dec.decodeODA(gt, blocks)
	case 14:
		decodeGroupType14(d, gt, blocks)
	case 15:
		decodeGroupType15(d, gt, blocks)
	}
}
