package constants

// DropReason explains why an inventory row produced no output image.
// Reasons are only logged and counted; they never reach the manifest.
type DropReason string

const (
	DropMalformed  DropReason = "MALFORMED"   // inventory line did not parse
	DropUnresolved DropReason = "UNRESOLVED"  // no anchor within lookback
	DropOffset     DropReason = "OFFSET"      // resolved, outside acceptance window
	DropArea       DropReason = "AREA"        // width*height below minimum
	DropThin       DropReason = "THIN"        // narrow and short strip (rules, logos)
	DropNoRawFile  DropReason = "NO_RAW_FILE" // no extracted raster matched
)

// AllDropReasons lists reasons in reporting order.
var AllDropReasons = []DropReason{
	DropMalformed,
	DropUnresolved,
	DropOffset,
	DropArea,
	DropThin,
	DropNoRawFile,
}
