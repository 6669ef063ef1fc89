package usecase

import "time"

// cacheKey identifies one parse: the same transcript at the same instant and zone always parses the same.
type cacheKey struct {
	transcript string
	unixNano   int64
	location   string
	offset     int
}

func newCacheKey(transcript string, now time.Time) cacheKey {
	_, offset := now.Zone()
	return cacheKey{
		transcript: transcript,
		unixNano:   now.UnixNano(),
		location:   now.Location().String(),
		offset:     offset,
	}
}
