// Package logreplay reads RDS group captures from a plain-text log and
// replays them through a handler, the offline analogue of how the teacher's
// rtl_adsb package streams live messages from a subprocess.
//
// Log format: one group per line, four hex block values followed by four
// BLER digits (0-3), all whitespace-separated:
//
//	<A> <B> <C> <D> <errA> <errB> <errC> <errD>
//
// e.g.
//
//	1234 0408 4142 5720 0 0 0 1
//
// Blank lines and lines starting with '#' are ignored. This mirrors the
// plain-text capture format produced by common RDS monitoring tools, without
// tying this package to any one vendor's exact framing.
package logreplay

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rds"
)

// Handler is called once per successfully parsed group.
type Handler func(blocks *rds.Blocks)

// ErrorHandler is called once per line that failed to parse, with the
// 1-based line number and the offending text. If nil, malformed lines are
// silently skipped.
type ErrorHandler func(lineNum int, line string, err error)

// Options controls Replay's behavior.
type Options struct {
	OnError ErrorHandler
}

// Replay reads groups from r and calls handler for each one parsed. It
// returns the number of groups successfully parsed and the first I/O error
// encountered, if any (a parse error on a line is not an I/O error and does
// not stop the replay).
func Replay(r io.Reader, handler Handler, opts Options) (int, error) {
	scanner := bufio.NewScanner(r)
	count := 0
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		blocks, err := ParseLine(line)
		if err != nil {
			if opts.OnError != nil {
				opts.OnError(lineNum, line, err)
			}
			continue
		}

		handler(blocks)
		count++
	}

	return count, scanner.Err()
}

// ParseLine parses one log line into a group's four blocks.
func ParseLine(line string) (*rds.Blocks, error) {
	fields := strings.Fields(line)
	if len(fields) != 8 {
		return nil, fmt.Errorf("logreplay: expected 8 fields, got %d", len(fields))
	}

	vals := make([]uint64, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseUint(fields[i], 16, 16)
		if err != nil {
			return nil, fmt.Errorf("logreplay: block %d: %w", i, err)
		}
		vals[i] = v
	}

	errs := make([]rds.BLER, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseUint(fields[4+i], 10, 8)
		if err != nil || v > uint64(rds.BLER6Plus) {
			return nil, fmt.Errorf("logreplay: BLER %d: invalid value %q", i, fields[4+i])
		}
		errs[i] = rds.BLER(v)
	}

	return &rds.Blocks{
		A: rds.Block{Val: uint16(vals[0]), Errors: errs[0]},
		B: rds.Block{Val: uint16(vals[1]), Errors: errs[1]},
		C: rds.Block{Val: uint16(vals[2]), Errors: errs[2]},
		D: rds.Block{Val: uint16(vals[3]), Errors: errs[3]},
	}, nil
}
