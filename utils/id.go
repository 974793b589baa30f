package utils

import (
	"math/rand"
	"strconv"
	"time"
)

// NewID returns an identifier unique within the process lifetime, derived from the
// current time plus randomness. Collisions are treated as negligible, not impossible.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + strconv.FormatUint(rand.Uint64(), 36)
}

// NowISO returns the current UTC wall-clock time in ISO-8601 with millisecond
// precision, the format used for all record and session timestamps.
func NowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// CalculateAge returns the number of full years elapsed since birthDate
// (YYYY-MM-DD). Unparseable input yields 0.
func CalculateAge(birthDate string) int {
	birth, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0
	}
	now := time.Now()
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
