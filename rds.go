package rds

// DecodeODAFunc is called whenever a group claimed by a registered Open Data
// Application arrives. appID is the application's AID (as announced in a
// group-3A message), rds is the state record the ODA application may choose
// to mutate, gt is the concrete group code+version received, and cbData is
// whatever opaque value was passed to SetODACallbacks.
type DecodeODAFunc func(appID uint16, rds *Data, blocks *Blocks, gt GroupType, cbData interface{})

// ClearODAFunc is called when the decoder is reset, so a host-registered ODA
// application can drop any state it was keeping alongside Data.
type ClearODAFunc func(cbData interface{})

// Config configures a new Decoder.
type Config struct {
	// RDSData is the state record the decoder will mutate. Must not be nil.
	RDSData *Data

	// AdvancedPSDecoding selects the confidence-voted PS reconstruction
	// (ps.go's updatePSAdvanced) over the direct-write path
	// (updatePSSimple).
	AdvancedPSDecoding bool
}

// Decoder decodes RDS groups into a Data record. A Decoder holds no state of
// its own beyond its configuration and ODA callback registration; all
// accumulated station data lives in the Data it was configured with.
type Decoder struct {
	rds                *Data
	advancedPSDecoding bool

	oda struct {
		decodeCB DecodeODAFunc
		clearCB  ClearODAFunc
		cbData   interface{}
	}
}

// NewDecoder returns a Decoder ready to decode groups into config.RDSData.
func NewDecoder(config Config) *Decoder {
	return &Decoder{
		rds:                config.RDSData,
		advancedPSDecoding: config.AdvancedPSDecoding,
	}
}

// SetODACallbacks registers the host's Open Data Application handlers.
// Passing nil for either callback clears it. cbData is passed back verbatim
// on every call.
func (dec *Decoder) SetODACallbacks(decodeCB DecodeODAFunc, clearCB ClearODAFunc, cbData interface{}) {
	dec.oda.decodeCB = decodeCB
	dec.oda.clearCB = clearCB
	dec.oda.cbData = cbData
}

// Reset zeroes the decoder's Data record and, if registered, notifies the
// ODA clear callback so host-side application state can be dropped too.
func (dec *Decoder) Reset() {
	dec.rds.Reset()
	if dec.oda.clearCB != nil {
		dec.oda.clearCB(dec.oda.cbData)
	}
}

// Decode decodes one RDS group, dispatching on its group code and version
// and updating the Decoder's Data record in place.
func (dec *Decoder) Decode(blocks *Blocks) {
	decodeGroup(dec, blocks)
}
