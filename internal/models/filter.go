package models

// RecordFilter holds one optional inclusive bound per filterable field.
// A nil bound imposes no constraint; present bounds combine with AND.
//
// Date is an exact-day prefix ("2025-01-15") matched against the start of
// Timestamp. Start/End bound Timestamp lexically, so callers must supply
// zero-padded ISO-8601 prefixes.
type RecordFilter struct {
	MinMood   *int
	MaxMood   *int
	MinStress *int
	MaxStress *int
	Date      *string
	Start     *string
	End       *string
	LatMin    *float64
	LatMax    *float64
	LngMin    *float64
	LngMax    *float64
}

// Applied reports which filter parameters were actually set, for echoing
// back to the client. Unset parameters serialize as null.
func (f RecordFilter) Applied() map[string]interface{} {
	return map[string]interface{}{
		"min_mood":   f.MinMood,
		"max_mood":   f.MaxMood,
		"min_stress": f.MinStress,
		"max_stress": f.MaxStress,
		"start":      f.Start,
		"end":        f.End,
		"lat_min":    f.LatMin,
		"lat_max":    f.LatMax,
		"lng_min":    f.LngMin,
		"lng_max":    f.LngMax,
	}
}
