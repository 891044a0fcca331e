package store

import (
	"time"

	log "github.com/sirupsen/logrus"

	"fittrack/internal/model"
)

// AddMeasurement appends a value to one of the fixed measurement series.
// A zero date means now. Unknown measurement types are ignored.
func (s *Store) AddMeasurement(typ string, value float64, date time.Time) {
	if !model.ValidMeasurementType(typ) {
		log.Debugf("add measurement: unknown type %q", typ)
		return
	}
	if date.IsZero() {
		date = time.Now()
	}
	s.measurements[typ] = append(s.measurements[typ], model.Measurement{
		ID:    s.nextID(),
		Value: value,
		Date:  date,
	})
	s.notify(KeyMeasurements)
}
