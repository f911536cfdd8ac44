package domain

// LagSnapshotTable holds, for a fixed lag k, the point-in-time rows that
// became observable exactly k periods after the date they describe. Rows
// retain raw cell values including NaN markers for unreported targets;
// the assembler decides what to exclude.
type LagSnapshotTable struct {
	Lag     int
	Columns []string
	Rows    map[DateID]map[string]float64
}
