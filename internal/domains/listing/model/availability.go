package model

import "strings"

// AvailabilitySummary buckets the room inventory into the three sharing
// levels the product reports on. Room types outside the three buckets only
// contribute to Total. Legacy rows without a rooms inventory aggregate to
// all zeroes with LegacyOnly set, never to an error.
type AvailabilitySummary struct {
	Single     int  `json:"single"`
	Double     int  `json:"double"`
	Triple     int  `json:"triple"`
	Total      int  `json:"total"`
	LegacyOnly bool `json:"legacy_only"`
}

// Availability sums room counts per bucket. Count is preferred per room;
// Available is only consulted when Count is zero.
func (l *Listing) Availability() AvailabilitySummary {
	if !l.HasRooms() {
		return AvailabilitySummary{LegacyOnly: len(l.LegacyTypes) > 0}
	}

	var summary AvailabilitySummary

	for _, room := range l.Rooms {
		count := room.Count
		if count == 0 {
			count = room.Available
		}

		switch bucket := strings.ToLower(room.Label); {
		case strings.Contains(bucket, "single"):
			summary.Single += count
		case strings.Contains(bucket, "double"):
			summary.Double += count
		case strings.Contains(bucket, "triple"):
			summary.Triple += count
		}

		summary.Total += count
	}

	return summary
}
