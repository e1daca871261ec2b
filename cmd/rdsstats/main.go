// Command rdsstats decodes a log-replayed RDS capture and prints per-group
// and per-field counters, the Go analogue of the reference project's
// rdsstats utility.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/jroimartin/gocui"
	. "github.com/logrusorgru/aurora"
	flag "github.com/spf13/pflag"

	"rds"
	"rds/logreplay"
)

// Open Data Application IDs this exerciser recognizes (RDS Forum AID
// registry, http://www.rds.org.uk/2010/pdf/R17_032_1.pdf).
const (
	aidRTPlus = 0x4BD7
	aidTMC    = 0xCD46
	aidITunes = 0xC3B0
)

// odaStats tallies the ODA application types this exerciser knows about,
// the Go analogue of the reference utility's ODAStats struct.
type odaStats struct {
	rtPlusCount int
	tmcCount    int
	iTunesCount int
}

func decodeODA(appID uint16, _ *rds.Data, _ *rds.Blocks, _ rds.GroupType, cbData interface{}) {
	stats := cbData.(*odaStats)
	switch appID {
	case aidRTPlus:
		stats.rtPlusCount++
	case aidTMC:
		stats.tmcCount++
	case aidITunes:
		stats.iTunesCount++
	}
}

func clearODA(cbData interface{}) {
	*cbData.(*odaStats) = odaStats{}
}

func main() {
	var (
		live         = flag.Bool("live", false, "show a live gocui dashboard instead of printing a summary")
		advancedPS   = flag.BoolP("advanced-ps", "a", true, "use confidence-voted PS reconstruction")
		verbose      = flag.BoolP("verbose", "v", false, "log each decoded group")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rdsstats [flags] <path/to/rdsspy.log>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		logger.Error("can't read log file", "path", path, "err", err)
		os.Exit(2)
	}
	defer f.Close()

	var blocksList []*rds.Blocks
	_, err = logreplay.Replay(f, func(b *rds.Blocks) {
		blocksList = append(blocksList, b)
	}, logreplay.Options{
		OnError: func(lineNum int, line string, err error) {
			logger.Debug("skipping malformed line", "line", lineNum, "text", line, "err", err)
		},
	})
	if err != nil {
		logger.Error("error reading log file", "path", path, "err", err)
		os.Exit(2)
	}
	if len(blocksList) == 0 {
		fmt.Fprintf(os.Stderr, "%q is empty\n", path)
		os.Exit(3)
	}

	data := rds.NewData()
	stats := &odaStats{}
	decoder := rds.NewDecoder(rds.Config{RDSData: data, AdvancedPSDecoding: *advancedPS})
	decoder.SetODACallbacks(decodeODA, clearODA, stats)

	if *live {
		runLiveDashboard(decoder, data, blocksList)
		return
	}

	for i, b := range blocksList {
		decoder.Decode(b)
		logger.Debug("decoded group", "index", i, "pi", fmt.Sprintf("%04X", data.PICode))
	}

	printStats(data, stats)
}

func printStats(d *rds.Data, oda *odaStats) {
	fmt.Println("RDS:", d.Stats.DataCnt)
	fmt.Println("BERR:", d.Stats.BlckBErrors)
	for i := 0; i < 16; i++ {
		fmt.Printf("%dA: %d\n", i, d.Stats.Groups[i].A)
		fmt.Printf("%dB: %d\n", i, d.Stats.Groups[i].B)
	}

	c := d.Stats.Counts
	fmt.Println("AF:", c.AF)
	fmt.Println("CLOCK:", c.Clock)
	fmt.Println("EON:", c.EON)
	fmt.Println("EWS:", c.EWS)
	fmt.Println("FBT:", c.FastBasicTuning)
	fmt.Println("IH:", c.InHouse)
	fmt.Println("MS:", c.Music)
	fmt.Println("PAGING:", c.Paging)
	fmt.Println("PI_CODE:", c.PICode)
	fmt.Println("PS:", c.PS)
	fmt.Println("PTY:", c.PTY)
	fmt.Println("PTYN:", c.PTYN)
	fmt.Println("RT:", c.RT)
	fmt.Println("SLC:", c.SLC)
	fmt.Println("TA_CODE:", c.TACode)
	fmt.Println("TDC:", c.TDC)
	fmt.Println("TMC:", c.TMC)
	fmt.Println("TP_CODE:", c.TPCode)

	fmt.Println("RT+:", oda.rtPlusCount)
	fmt.Println("RDS-TMC:", oda.tmcCount)
	fmt.Println("iTunes:", oda.iTunesCount)
}

// dashboard is the gocui-driven live view, the RDS analogue of the teacher's
// aircraft list.
type dashboard struct {
	decoder *rds.Decoder
	data    *rds.Data
	blocks  []*rds.Blocks
	pos     int
}

func runLiveDashboard(decoder *rds.Decoder, data *rds.Data, blocksList []*rds.Blocks) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer g.Close()

	db := &dashboard{decoder: decoder, data: data, blocks: blocksList}
	g.SetManagerFunc(db.layout)

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	go func() {
		for db.pos < len(db.blocks) {
			db.decoder.Decode(db.blocks[db.pos])
			db.pos++
			g.Update(db.update)
		}
	}()

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func (db *dashboard) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView("status", 0, 0, maxX-1, 2); err == nil || err == gocui.ErrUnknownView {
		v.Title = " STATUS "
	}
	if v, err := g.SetView("fields", 0, 3, maxX-1, maxY-1); err == nil || err == gocui.ErrUnknownView {
		v.Title = " STATION "
	}
	return nil
}

func (db *dashboard) update(g *gocui.Gui) error {
	s, err := g.View("status")
	if err != nil {
		return nil
	}
	s.Clear()
	fmt.Fprintf(s, " group %d/%d\n", db.pos, len(db.blocks))

	v, err := g.View("fields")
	if err != nil {
		return nil
	}
	v.Clear()

	d := db.data
	fmt.Fprintln(v, Sprintf(Bold(Green("PI:   %04X")), d.PICode))
	fmt.Fprintln(v, Sprintf(Yellow("PS:   %s"), sanitize(d.PS.Display[:])))
	fmt.Fprintln(v, Sprintf(Cyan("RT:   %s"), sanitize(d.RT.Current().Display[:])))
	fmt.Fprintf(v, "PTY:  %d  TP: %v  TA: %v\n", d.PTY, d.TPCode, d.TACode)
	if d.ValidValues&rds.ValidClock != 0 {
		fmt.Fprintf(v, "CLOCK: day=%d %02d:%02d offset=%d\n",
			d.Clock.DayLow, d.Clock.Hour, d.Clock.Minute, d.Clock.UTCOffset)
	}

	afTables := make([]string, 0, len(d.AF.Tables))
	for _, t := range d.AF.Tables {
		afTables = append(afTables, fmt.Sprintf("%d freqs", len(t.Entries)))
	}
	sort.Strings(afTables)
	fmt.Fprintf(v, "AF:   %v\n", afTables)

	return nil
}

func sanitize(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c < 0x20 || c > 0x7E {
			out[i] = ' '
		} else {
			out[i] = c
		}
	}
	return string(out)
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
