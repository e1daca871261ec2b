package rds

// decodeGroupType9 decodes group 9, Emergency Warning System. Interpretation
// of the captured bits is assigned unilaterally by each country (RBDS
// section 3.1.5.?); this decoder only captures blocks B, C and D verbatim,
// except block B which only carries 5 meaningful bits.
func decodeGroupType9(dec *Decoder, gt GroupType, blocks *Blocks) {
	d := dec.rds
	if isGroupTypeUsedByODA(d, gt) {
		dec.decodeODA(gt, blocks)
		return
	}
	if gt.Version != 'A' {
		return
	}

	d.ValidValues |= ValidEWS
	d.Stats.Counts.EWS++

	d.EWS.B = blocks.B
	d.EWS.B.Val &= 0b11111
	d.EWS.C = blocks.C
	d.EWS.D = blocks.D
}
