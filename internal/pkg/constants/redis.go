package constants

// Redis key formats
const (
	KeyTripLocation = "trip:location:%s" // Format: trip:location:{trip_id}
	KeyTruckGeo     = "trucks:geo"       // Geo set of last-known truck positions
)

// Redis hash fields for trip location records
const (
	FieldLatitude   = "lat"
	FieldLongitude  = "lng"
	FieldAccuracy   = "acc"
	FieldGeohash    = "geo"
	FieldDriverID   = "driver_id"
	FieldObservedAt = "ts"
)
