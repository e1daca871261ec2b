// Package station tracks multiple RDS stations simultaneously, keyed by PI
// code, expiring any station whose signal has not been seen recently.
//
// This mirrors the single-station accumulation the rds package itself does
// (see rds.Data), scaled up to the case a host is scanning the FM dial and
// wants to keep more than one station's state warm at a time.
package station

import (
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"rds"
)

// DefaultTTL is how long a station is kept after its last decoded group
// before it's evicted.
const DefaultTTL = 60 * time.Second

// DefaultCleanupInterval is how often the tracker sweeps for expired
// stations.
const DefaultCleanupInterval = 10 * time.Second

// Station is one tracked station's decode state plus its own Decoder.
type Station struct {
	PICode  uint16
	Data    *rds.Data
	Decoder *rds.Decoder
	Seen    time.Time
}

// Tracker keeps one Station per PI code seen, evicting stations that have
// gone quiet for longer than its TTL.
type Tracker struct {
	advancedPSDecoding bool

	mu     sync.Mutex
	byPI   *cache.Cache
}

// NewTracker returns a Tracker that expires stations after ttl of silence,
// checking for expirations every cleanupInterval. advancedPSDecoding is
// passed through to every Station's Decoder.
func NewTracker(ttl, cleanupInterval time.Duration, advancedPSDecoding bool) *Tracker {
	return &Tracker{
		advancedPSDecoding: advancedPSDecoding,
		byPI:               cache.New(ttl, cleanupInterval),
	}
}

// NewDefaultTracker returns a Tracker using DefaultTTL and
// DefaultCleanupInterval.
func NewDefaultTracker(advancedPSDecoding bool) *Tracker {
	return NewTracker(DefaultTTL, DefaultCleanupInterval, advancedPSDecoding)
}

// stationFor returns the Station tracked for piCode, creating one (with a
// fresh rds.Data and rds.Decoder) if this is the first group seen from it.
func (t *Tracker) stationFor(piCode uint16) *Station {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := picKey(piCode)
	if v, ok := t.byPI.Get(key); ok {
		st := v.(*Station)
		t.byPI.SetDefault(key, st) // Refresh the TTL.
		return st
	}

	d := rds.NewData()
	st := &Station{
		PICode:  piCode,
		Data:    d,
		Decoder: rds.NewDecoder(rds.Config{RDSData: d, AdvancedPSDecoding: t.advancedPSDecoding}),
	}
	t.byPI.SetDefault(key, st)
	return st
}

// Decode decodes one RDS group, routing it to the Station matching its PI
// code (block A, or block C for B-version groups -- the same override the
// decoder itself applies). Stations not yet seen are created on demand.
func (t *Tracker) Decode(blocks *rds.Blocks) *Station {
	pi := blocks.A.Val
	isBVersion := blocks.B.Errors <= rds.BLERBMax && blocks.B.Val&0b0000100000000000 != 0
	if isBVersion && blocks.C.Errors <= rds.BLERCMax &&
		blocks.C.Errors < blocks.B.Errors {
		// B-version groups repeat the PI code in block C; fall back to it
		// the same way the core decoder's own PI latch does, so a noisy
		// block A doesn't fragment one station across two tracker entries.
		pi = blocks.C.Val
	}

	st := t.stationFor(pi)
	st.Seen = time.Now()
	st.Decoder.Decode(blocks)
	return st
}

// Stations returns every currently tracked station.
func (t *Tracker) Stations() []*Station {
	t.mu.Lock()
	defer t.mu.Unlock()

	items := t.byPI.Items()
	out := make([]*Station, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(*Station))
	}
	return out
}

// Count returns the number of stations currently tracked.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.byPI.ItemCount()
}

func picKey(pi uint16) string {
	const hexDigits = "0123456789ABCDEF"
	b := [4]byte{hexDigits[(pi>>12)&0xF], hexDigits[(pi>>8)&0xF], hexDigits[(pi>>4)&0xF], hexDigits[pi&0xF]}
	return string(b[:])
}
