package rds

// decodeSLC decodes the slow-labelling codes carried in block C of group
// 1A (RBDS section 3.1.5.2). Section 3.2.1.8.3 notes the linkage-actuator
// rule this data feeds: with LA=1, a service carrying TP=1 or TP=0/TA=1
// must not be linked to a service carrying TP=0/TA=0. Enforcing that rule
// is left to the host; this decoder only captures the bits.
func decodeSLC(d *Data, blocks *Blocks) {
	const (
		cSLCLA          = 0b1000000000000000
		cSLCVC          = 0b0111000000000000
		cSLCData        = 0b0000111111111111
		cSLCPagingMask  = 0b0000111100000000
		cSLCCountryMask = 0b0000000011111111
	)

	if blocks.C.Errors > BLERCMax {
		return
	}

	d.ValidValues |= ValidSLC
	d.Stats.Counts.SLC++

	c := blocks.C.Val
	d.SLC.LA = c&cSLCLA != 0
	d.SLC.VariantCode = VariantCode((c & cSLCVC) >> 12)

	switch d.SLC.VariantCode {
	case SLCVariantPaging:
		d.SLC.Data.Paging = uint8((c & cSLCPagingMask) >> 8)
		d.SLC.Data.CountryCode = uint8(c & cSLCCountryMask)
	case SLCVariantTMCID:
		d.SLC.Data.TMCID = c & cSLCData
	case SLCVariantPagingID:
		d.SLC.Data.PagingID = c & cSLCData
	case SLCVariantLanguage:
		d.SLC.Data.LanguageCodes = c & cSLCData
	case SLCVariantNotAssigned1, SLCVariantNotAssigned5:
		d.SLC.Data.TMCID = 0
	case SLCVariantBroadcasters:
		d.SLC.Data.Broadcasters = c & cSLCData
	case SLCVariantEWSChannelID:
		d.SLC.Data.EWSChannelID = c & cSLCData
	}
}

// decodePIC decodes the Program Item Number code carried in block D of
// group 1A/1B (RBDS section 3.1.5.2).
func decodePIC(raw uint16, pic *PIC) {
	const (
		piDay    = 0b1111100000000000
		piHour   = 0b0000011111000000
		piMinute = 0b0000000000111111
	)

	*pic = PIC{}
	pic.Day = uint8(raw >> 11)
	if pic.Day != 0 {
		// Spec: if the top five bits are zero, the rest are undefined.
		pic.Hour = uint8((raw & piHour) >> 6)
		pic.Minute = uint8(raw & piMinute)
	}
}
