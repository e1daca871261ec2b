package rds

// updateClock decodes group 4A, the broadcast clock (RBDS section 3.1.5.6).
// The 17-bit Modified Julian Day is split across blocks B and C; hour,
// minute, and UTC offset come from block D.
func updateClock(d *Data, blocks *Blocks) {
	if blocks.B.Errors > BLERBMax || blocks.C.Errors > BLERCMax || blocks.D.Errors > BLERDMax {
		return
	}
	if blocks.B.Errors+blocks.C.Errors+blocks.D.Errors > BLERBMax {
		return
	}

	b, c, dd := blocks.B.Val, blocks.C.Val, blocks.D.Val

	const (
		bJDate          = 0b0000000000000011 // bottom two bits of B.
		cJDate          = 0b1111111111111110 // top 15 bits of C.
		dHour           = 0b1111000000000000 // top nibble of D.
		dMinute         = 0b0000111111000000 // middle 6 bits of D.
		dUTCOffset      = 0b0000000000011111 // bottom 5 bits of D.
		dUTCOffsetSign  = 0b0000000000100000 // sign of offset.
	)

	d.ValidValues |= ValidClock
	d.Stats.Counts.Clock++

	d.Clock.DayHigh = (b&bJDate)>>1 != 0
	d.Clock.DayLow = ((b & 0x1) << 15) | ((c & cJDate) >> 1)
	d.Clock.Hour = uint8(((c & 0x1) << 4) | ((dd & dHour) >> 12))
	d.Clock.Minute = uint8((dd & dMinute) >> 6)
	d.Clock.UTCOffset = int8(dd & dUTCOffset)
	if dd&dUTCOffsetSign != 0 {
		d.Clock.UTCOffset = -d.Clock.UTCOffset
	}
}
