package rds

import "rds/freq"

// eonDecodeAFBlock feeds one AF data block into a single table, mirroring
// freq.Group.DecodeBlock but for the lone table an EON cross-reference
// tracks (an other network only ever gets one AF list, never several).
func eonDecodeAFBlock(t *freq.Table, block uint16) {
	first := byte(block >> 8)
	second := byte(block & 0xFF)
	if freq.IsCountCode(first) {
		t.StartBlock(freq.CountFromCode(first), second)
	} else {
		t.NthBlock(first, second)
	}
}

// eonVariantCode identifies the payload carried in block B bits 0..3 of an
// EON group (RBDS section 3.1.5.19).
type eonVariantCode uint8

const (
	eonVCPS1 eonVariantCode = iota
	eonVCPS2
	eonVCPS3
	eonVCPS4
	eonVCAF
	eonVCMappedFMFreq1
	eonVCMappedFMFreq2
	eonVCMappedFMFreq3
	eonVCMappedFMFreq4
	eonVCMappedFMFreq5
	eonVCUnallocated1
	eonVCUnallocated2
	eonVCLinkageInfo
	eonVCPIN
	eonVCBroadcasterRes1
	eonVCBroadcasterRes2
)

// decodeEONBlockA decodes the variant-coded payload of an EON group carried
// in blocks B (selector), C and D.
func decodeEONBlockA(d *Data, blocks *Blocks) {
	vc := eonVariantCode(blocks.B.Val & 0xF)

	switch vc {
	case eonVCPS1, eonVCPS2, eonVCPS3, eonVCPS4:
		if blocks.C.Errors > BLERCMax {
			return
		}
		idx := uint8(vc) * 2
		d.EON.On.PS[idx] = byte(blocks.C.Val >> 8)
		d.EON.On.PS[idx+1] = byte(blocks.C.Val & 0xFF)
	case eonVCAF:
		if blocks.C.Errors > BLERCMax {
			return
		}
		eonDecodeAFBlock(&d.EON.On.AF, blocks.C.Val)
	case eonVCMappedFMFreq1, eonVCMappedFMFreq2, eonVCMappedFMFreq3,
		eonVCMappedFMFreq4, eonVCMappedFMFreq5:
		// Mapped-frequency pairs are not yet exposed to callers; reserved for
		// a future EONFreqMap population pass.
	case eonVCUnallocated1, eonVCUnallocated2, eonVCLinkageInfo, eonVCPIN,
		eonVCBroadcasterRes1, eonVCBroadcasterRes2:
		// No-ops: not interpreted by this decoder.
	}
}

// decodeGroupType14 decodes group 14, Enhanced Other Networks. 14A carries
// another network's PS/AF/mapped-frequency data a piece at a time; 14B
// carries that network's PI code plus its TP/TA flags.
func decodeGroupType14(d *Data, gt GroupType, blocks *Blocks) {
	if blocks.B.Errors > BLERBMax {
		return
	}

	d.ValidValues |= ValidEON
	d.Stats.Counts.EON++

	if gt.Version == 'A' {
		decodeEONBlockA(d, blocks)
		return
	}

	const (
		bEONTP = 0b10000
		bEONTA = 0b01000
	)
	d.EON.On.TPCode = blocks.B.Val&bEONTP != 0
	d.EON.On.TACode = blocks.B.Val&bEONTA != 0

	if blocks.D.Errors <= BLERDMax {
		d.EON.On.PICode = blocks.D.Val
	}

	if blocks.C.Errors <= BLERCMax {
		// RBDS section 3.1.5.19 codes the other network's PTY in bits 15..11
		// of block C. The reference source mistakenly compares the raw block
		// value against 11 instead of shifting it; the corrected extraction
		// is used here.
		d.EON.On.PTY = uint8((blocks.C.Val >> 11) & 0x1F)
	}
}
