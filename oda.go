package rds

// groupTypesEqual reports whether a and b name the same group code+version.
func groupTypesEqual(a, b GroupType) bool {
	return a.Code == b.Code && a.Version == b.Version
}

// isGroupTypeUsedByODA reports whether gt has been claimed by a registered
// Open Data Application.
func isGroupTypeUsedByODA(d *Data, gt GroupType) bool {
	for i := uint8(0); i < d.ODACnt; i++ {
		if groupTypesEqual(d.ODA[i].GT, gt) {
			return true
		}
	}
	return false
}

func isValidODAAppID(appID uint16) bool {
	return appID != 0
}

// decodeODA routes a group claimed by an ODA to the host-supplied decode
// callback, bumping that application's packet counter first.
func (dec *Decoder) decodeODA(gt GroupType, blocks *Blocks) {
	rds := dec.rds
	idx := uint8(0)
	for ; idx < rds.ODACnt; idx++ {
		if groupTypesEqual(rds.ODA[idx].GT, gt) {
			break
		}
	}
	if idx == rds.ODACnt {
		return
	}

	rds.ODA[idx].PktCount++
	if dec.oda.decodeCB != nil {
		dec.oda.decodeCB(rds.ODA[idx].ID, rds, blocks, gt, dec.oda.cbData)
	}
}

// decodeGroupType3 decodes group 3: 3A announces (or updates) an ODA's
// application ID and bound group-type slot; 3B is itself routed through the
// ODA dispatch (see spec.md section 4.7, RBDS section 3.1.5.4).
func (dec *Decoder) decodeGroupType3(gt GroupType, blocks *Blocks) {
	if gt.Version != 'A' {
		dec.decodeODA(gt, blocks)
		return
	}

	if blocks.D.Errors != BLERNone {
		return
	}
	appID := blocks.D.Val
	if !isValidODAAppID(appID) {
		return
	}

	rds := dec.rds
	// RBDS section 3.1.5.4 specifies the announcement's target group code
	// as bits 4..1 of block B, distinct from the dispatcher's own top-nibble
	// decoding of block B. Retained exactly as specified even though it
	// looks like it should match the dispatcher's bGroupCode.
	newGT := GroupType{
		Code:    uint8(blocks.B.Val&0b11110) >> 1,
		Version: 'A',
	}
	if blocks.B.Val&0x1 != 0 {
		newGT.Version = 'B'
	}

	idx := uint8(0)
	for idx < rds.ODACnt {
		if rds.ODA[idx].ID == appID {
			rds.ODA[idx].GT = newGT
			return
		}
		idx++
	}
	if idx == rds.ODACnt && int(idx) < len(rds.ODA) {
		rds.ODA[idx].ID = appID
		rds.ODA[idx].GT = newGT
		rds.ODACnt++
	}
}
