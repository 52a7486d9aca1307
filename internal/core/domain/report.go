package domain

import (
	"fmt"
	"sort"
	"time"
)

// State is a stage of the diagnostic run.
type State string

const (
	StateIdle          State = "idle"
	StateConfiguring   State = "configuring"
	StateConnecting    State = "connecting"
	StateProbing       State = "probing"
	StateEnumerating   State = "enumerating"
	StateDisconnecting State = "disconnecting"
	StateSucceeded     State = "succeeded"
	StateFailed        State = "failed"
)

// IsTerminal returns true if the run cannot transition further.
func (s State) IsTerminal() bool {
	return s == StateSucceeded || s == StateFailed
}

// PingResult is the outcome of a liveness probe.
type PingResult struct {
	OK  bool
	Raw string // acknowledgement payload as returned by the server, JSON encoded
}

// DatabaseInfo describes one database visible to the connected credentials.
type DatabaseInfo struct {
	Name       string
	SizeOnDisk int64
	Empty      bool
}

// SizeMB renders SizeOnDisk in mebibytes.
func (d DatabaseInfo) SizeMB() string {
	return FormatSizeMB(d.SizeOnDisk)
}

// ConnectionReport is assembled during one run and discarded after printing.
type ConnectionReport struct {
	RunID     string
	Info      ConnectionInfo
	Ping      PingResult
	Databases []DatabaseInfo
	State     State
	Elapsed   time.Duration
}

// TotalSize sums SizeOnDisk across all databases, shown or not.
func (r *ConnectionReport) TotalSize() int64 {
	var total int64
	for _, db := range r.Databases {
		total += db.SizeOnDisk
	}
	return total
}

// FormatSizeMB converts bytes to mebibytes with two decimals: 2097152 -> "2.00 MB".
func FormatSizeMB(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return fmt.Sprintf("%.2f MB", float64(bytes)/1024/1024)
}

// TruncateDatabases returns at most limit entries in their original order and
// the number of entries left out.
func TruncateDatabases(dbs []DatabaseInfo, limit int) ([]DatabaseInfo, int) {
	if limit <= 0 {
		limit = DefaultDisplayLimit
	}
	if len(dbs) <= limit {
		return dbs, 0
	}
	return dbs[:limit], len(dbs) - limit
}

// SortDatabasesByName returns a name-ordered copy; the input is left untouched
// so the report keeps the server order.
func SortDatabasesByName(dbs []DatabaseInfo) []DatabaseInfo {
	sorted := make([]DatabaseInfo, len(dbs))
	copy(sorted, dbs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}
