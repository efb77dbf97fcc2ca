package walletform

// ImportState tracks whether a dropped file is being read
type ImportState int

const (
	ImportIdle ImportState = iota
	ImportReading
)

func (s ImportState) String() string {
	switch s {
	case ImportIdle:
		return "idle"
	case ImportReading:
		return "reading"
	default:
		return "unknown"
	}
}

// Ticket identifies one file read started by Importer.Begin
type Ticket struct {
	Seq  uint64
	Path string
}

// Importer follows the file reads started by drops.
// Only the most recent read may replace the rows; results of older reads are stale.
type Importer struct {
	state ImportState
	seq   uint64
	path  string
}

// State returns the current import state
func (im *Importer) State() ImportState {
	return im.state
}

// Path returns the file of the most recent read
func (im *Importer) Path() string {
	return im.path
}

// Begin marks a new read of path as in flight
func (im *Importer) Begin(path string) Ticket {
	im.seq++
	im.state = ImportReading
	im.path = path
	return Ticket{Seq: im.seq, Path: path}
}

// Complete records the end of the read for t and reports whether its result should be applied
func (im *Importer) Complete(t Ticket) bool {
	if t.Seq != im.seq {
		return false
	}
	im.state = ImportIdle
	return true
}
