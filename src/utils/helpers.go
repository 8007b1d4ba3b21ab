package utils

import (
	"crypto/rand"
	"fmt"
	"log"
	"os"
	"rbs/src/config"
	"rbs/src/types"
	"time"
)

const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewBookingReference builds a human-readable booking token: a date prefix
// plus a 6-character random suffix, unique enough for realistic load.
func NewBookingReference() string {
	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		log.Printf("Error generating booking reference: %s\n", err.Error())
	}
	for i, b := range suffix {
		suffix[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return fmt.Sprintf("BK-%s-%s", time.Now().UTC().Format("20060102"), string(suffix))
}

// ParseBookingTime parses an ISO 8601 instant from a request body, reporting
// a field-level validation error on bad input.
func ParseBookingTime(field, value string) (time.Time, error) {
	t, err := time.Parse(config.TIME_PARSE_FORMAT, value)
	if err != nil {
		return time.Time{}, types.NewValidationError(field, "must be an ISO 8601 timestamp")
	}
	return t, nil
}

func IsProd() bool {
	return os.Getenv("API_ENV") == string(types.Production)
}
