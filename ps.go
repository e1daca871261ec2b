package rds

// psValidateLimit is the hit count a character position must reach in the
// confidence-voted PS decode before PS.Display is considered complete.
const psValidateLimit = 2

// updatePSSimple writes byte straight through to the display array with no
// error correction, per the basic RBDS decode path.
func updatePSSimple(d *Data, charIdx uint8, b byte) {
	if int(charIdx) >= len(d.PS.Display) {
		return
	}
	d.PS.Display[charIdx] = b
	d.ValidValues |= ValidPS
}

// updatePSAdvanced runs the confidence-voted (double-buffer) PS
// reconstruction described in spec.md section 4.4. It is adapted from the
// Silicon Labs reference application's PS decode, which the source this
// decoder is grounded on also credits.
func updatePSAdvanced(d *Data, charIdx uint8, b byte) {
	if int(charIdx) >= len(d.PS.Display) {
		return
	}

	ps := &d.PS
	inTransition := false

	switch {
	case ps.hiProb[charIdx] == b:
		if ps.hiProbCnt[charIdx] < psValidateLimit {
			ps.hiProbCnt[charIdx]++
		} else {
			ps.hiProbCnt[charIdx] = psValidateLimit
			ps.loProb[charIdx] = b
		}
	case ps.loProb[charIdx] == b:
		if ps.hiProbCnt[charIdx] >= psValidateLimit {
			inTransition = true
			ps.hiProbCnt[charIdx] = psValidateLimit + 1
		} else {
			ps.hiProbCnt[charIdx] = psValidateLimit
		}
		ps.loProb[charIdx] = ps.hiProb[charIdx]
		ps.hiProb[charIdx] = b
	case ps.hiProbCnt[charIdx] == 0:
		ps.hiProb[charIdx] = b
		ps.hiProbCnt[charIdx] = 1
	default:
		ps.loProb[charIdx] = b
	}

	if inTransition {
		// The text is changing; knock down every counter so a half-updated
		// message isn't displayed as complete.
		for i := range ps.hiProbCnt {
			if ps.hiProbCnt[i] > 1 {
				ps.hiProbCnt[i]--
			}
		}
	}

	complete := true
	for _, cnt := range ps.hiProbCnt {
		if cnt < psValidateLimit {
			complete = false
			break
		}
	}
	if complete {
		d.ValidValues |= ValidPS
		ps.Display = ps.hiProb
	}
}
