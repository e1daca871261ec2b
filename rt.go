package rds

// rtValidateLimit is the hit count a character position must reach in the
// confidence-voted RT decode before it's trusted.
const rtValidateLimit = 2

// updateRTSimple writes accepted bytes straight into the buffer's display
// array, blanking the remainder of the message on the 0x0D end-of-message
// marker, and turning any still-null byte before addr into a space (a
// station that starts mid-buffer leaves a run of nulls behind it).
func updateRTSimple(rt *rtBuffer, blocks *Blocks, count uint8, addr uint8, chars []byte) {
	for i := uint8(0); i < count; i++ {
		errCount, blerMax := rtBlockFor(blocks, count, i)
		if errCount > blerMax {
			continue
		}
		rt.Display[addr+i] = chars[i]
		if chars[i] == 0x0D {
			for j := addr + i + 1; int(j) < len(rt.Display); j++ {
				rt.Display[j] = 0
			}
			break
		}
	}

	for i := uint8(0); i < addr; i++ {
		if rt.Display[i] == 0 {
			rt.Display[i] = ' '
		}
	}
}

// rtBlockFor picks the BLER class that gates character index i: for the
// first two characters of a four-character (2A) payload that's block C,
// otherwise block D. The count>2 guard keeps 2B's two-character payload
// (which has no block C contribution) on block D throughout.
func rtBlockFor(blocks *Blocks, count, i uint8) (errCount BLER, blerMax BLER) {
	if i < 2 && count > 2 {
		return blocks.C.Errors, BLERCMax
	}
	return blocks.D.Errors, BLERDMax
}

// bumpRTValidation forces re-validation of every character ahead of an A/B
// flag transition: any still-empty high-probability slot gets a space and
// every count is bumped, then the whole confidence state is wiped, so the
// vote for the new message starts from nothing.
func bumpRTValidation(rt *rtBuffer) {
	for i := range rt.hiProbCnt {
		if rt.hiProb[i] == 0 {
			rt.hiProb[i] = ' '
			rt.hiProbCnt[i]++
		}
	}
	for i := range rt.hiProbCnt {
		rt.hiProbCnt[i]++
	}

	rt.hiProbCnt = [64]uint8{}
	rt.hiProb = [64]byte{}
	rt.loProb = [64]byte{}
}

// updateRTAdvanced runs the confidence-voted radiotext reconstruction:
// identical mechanics to the PS advanced path, except a null byte is first
// translated to a space before voting.
func updateRTAdvanced(rt *rtBuffer, blocks *Blocks, count uint8, addr uint8, bytes []byte) {
	textChanging := false

	for i := uint8(0); i < count; i++ {
		errCount, blerMax := rtBlockFor(blocks, count, i)
		if errCount > blerMax {
			continue
		}
		b := bytes[i]
		if b == 0 {
			b = ' '
		}
		idx := addr + i

		switch {
		case rt.hiProb[idx] == b:
			if rt.hiProbCnt[idx] < rtValidateLimit {
				rt.hiProbCnt[idx]++
			} else {
				rt.hiProbCnt[idx] = rtValidateLimit
				rt.loProb[idx] = b
			}
		case rt.loProb[idx] == b:
			if rt.hiProbCnt[idx] >= rtValidateLimit {
				textChanging = true
				rt.hiProbCnt[idx] = rtValidateLimit + 1
			} else {
				rt.hiProbCnt[idx] = rtValidateLimit
			}
			rt.loProb[idx] = rt.hiProb[idx]
			rt.hiProb[idx] = b
		case rt.hiProbCnt[idx] == 0:
			rt.hiProb[idx] = b
			rt.hiProbCnt[idx] = 1
		default:
			rt.loProb[idx] = b
		}
	}

	if textChanging {
		for i := range rt.hiProbCnt {
			if rt.hiProbCnt[i] > 1 {
				rt.hiProbCnt[i]--
			}
		}
	}

	for _, cnt := range rt.hiProbCnt {
		if cnt < rtValidateLimit {
			return
		}
	}
	rt.Display = rt.hiProb
}

// decodeGroupType2 decodes Radiotext, carried in group 2A (four characters
// from blocks C and D) or 2B (two characters from block D only).
func decodeGroupType2(d *Data, gt GroupType, blocks *Blocks) {
	flag := (blocks.B.Val & 0x0010) != 0
	rt := d.RT.bufferFor(flag)

	var rtChars [4]byte
	var addr uint8

	if gt.Version == 'A' {
		if blocks.C.Errors > BLERCMax || blocks.D.Errors > BLERDMax {
			return
		}
		rtChars[0] = byte(blocks.C.Val >> 8)
		rtChars[1] = byte(blocks.C.Val & 0xFF)
		rtChars[2] = byte(blocks.D.Val >> 8)
		rtChars[3] = byte(blocks.D.Val & 0xFF)
		addr = uint8(blocks.B.Val&0xF) * 4

		updateRTSimple(rt, blocks, 4, addr, rtChars[:])
		if d.RT.FlagValid && d.RT.Flag != flag {
			bumpRTValidation(rt)
		}
		updateRTAdvanced(rt, blocks, 4, addr, rtChars[:])
	} else {
		if blocks.D.Errors > BLERDMax {
			return
		}
		rtChars[0] = byte(blocks.D.Val >> 8)
		rtChars[1] = byte(blocks.D.Val & 0xFF)
		addr = uint8(blocks.B.Val&0xF) * 2

		// The last 32 bytes are unused in the 2B format; the first of them
		// (index 32) is tombstoned with the end-of-message marker.
		rt.Display[32] = 0x0D
		rt.hiProb[32] = 0x0D
		rt.loProb[32] = 0x0D
		rt.hiProbCnt[32] = rtValidateLimit

		updateRTSimple(rt, blocks, 2, addr, rtChars[:2])
		if d.RT.FlagValid && d.RT.Flag != flag {
			bumpRTValidation(rt)
		}
		updateRTAdvanced(rt, blocks, 2, addr, rtChars[:2])
	}

	d.RT.SavedFlag = d.RT.Flag
	d.RT.SavedFlagValid = d.RT.FlagValid
	d.RT.Flag = flag
	d.RT.FlagValid = true
	d.ValidValues |= ValidRT
	d.Stats.Counts.RT++
}
