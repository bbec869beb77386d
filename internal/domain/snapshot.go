package domain

import "time"

// SnapshotVersion is the schema version written into JSON exports.
const SnapshotVersion = "1.0.0"

// Snapshot is the full export of one owner's data.
type Snapshot struct {
	Entries    []NutritionEntry
	Profile    *UserProfile
	ExportedAt time.Time
	Version    string
}
