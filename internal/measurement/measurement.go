// Package measurement holds the user weight-measurement record and its table
// definition. It is the one data owner registered with the bootstrap
// sequencer today; further owners follow the same shape.
package measurement

import (
	"time"

	"github.com/ybabel/BeurerScaleManager/internal/store"
)

const (
	// TableName is the managed table holding user measurements.
	TableName = "UserMeasurements"

	// SchemaVersion is stamped into the version registry when the table is
	// first created.
	SchemaVersion = 1
)

// UserMeasurement is one reading taken from the scale.
type UserMeasurement struct {
	ID             int64
	DateTime       time.Time
	Weight         float64
	BodyFatPercent float64
	WaterPercent   float64
	MusclePercent  float64
}

// TableOwner implements store.Owner for the UserMeasurements table.
type TableOwner struct{}

// Owner returns the data owner to register with the bootstrap sequencer.
func Owner() store.Owner {
	return TableOwner{}
}

func (TableOwner) TableName() string {
	return TableName
}

func (TableOwner) Columns() []store.Column {
	return []store.Column{
		{Name: "id", Type: "INTEGER PRIMARY KEY AUTOINCREMENT"},
		{Name: "dateTime", Type: "TEXT NOT NULL"},
		{Name: "weight", Type: "REAL NOT NULL"},
		{Name: "bodyFatPercent", Type: "REAL"},
		{Name: "waterPercent", Type: "REAL"},
		{Name: "musclePercent", Type: "REAL"},
	}
}

func (TableOwner) Version() int {
	return SchemaVersion
}
