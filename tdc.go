package rds

// decodeTDCBlock appends the two bytes of a block into the given channel's
// history ring, shifting out the oldest two bytes (FIFO by byte-pair).
func decodeTDCBlock(tdc *TDC, channel uint8, block uint16) {
	if int(channel) >= len(tdc.Data) {
		return
	}
	ring := &tdc.Data[channel]
	copy(ring[:TDCLen-2], ring[2:])
	ring[TDCLen-2] = byte(block >> 8)
	ring[TDCLen-1] = byte(block & 0xFF)
}

// decodeGroupType5 decodes group 5, the Transparent Data Channel. 5A carries
// two blocks (C and D) of one channel's data per group; 5B carries only D,
// repeating the channel most recently selected by a 5A message.
func decodeGroupType5(dec *Decoder, gt GroupType, blocks *Blocks) {
	d := dec.rds
	if isGroupTypeUsedByODA(d, gt) {
		dec.decodeODA(gt, blocks)
		return
	}

	d.ValidValues |= ValidTDC
	d.Stats.Counts.TDC++

	if gt.Version == 'A' {
		// Corrected channel mask: the reference source applies the decimal
		// literal 0x11111 (a typo for a 5-bit mask) instead of 0x1F.
		d.TDC.CurrChannel = uint8(blocks.B.Val & 0x1F)

		if blocks.C.Errors <= BLERCMax {
			decodeTDCBlock(&d.TDC, d.TDC.CurrChannel, blocks.C.Val)
		}
		if blocks.D.Errors <= BLERDMax {
			decodeTDCBlock(&d.TDC, d.TDC.CurrChannel, blocks.D.Val)
		}
		return
	}

	if blocks.D.Errors <= BLERDMax {
		decodeTDCBlock(&d.TDC, d.TDC.CurrChannel, blocks.D.Val)
	}
}
