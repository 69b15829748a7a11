package service

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// nameSuffixes are generational tags that stay attached to the surname.
var nameSuffixes = map[string]bool{
	"JR.": true, "SR.": true, "II": true, "III": true, "IV": true,
}

// NameFormatter converts provider "First Last" player names to the
// "Last, First" form every report and fact row keys on. Formatted names are
// memoized; the same few hundred starters recur across an ingestion run.
type NameFormatter struct {
	cache *cache.Cache
}

// NewNameFormatter creates a formatter with the given cache TTL
func NewNameFormatter(ttl time.Duration) *NameFormatter {
	return &NameFormatter{
		cache: cache.New(ttl, 2*ttl),
	}
}

// LastFirst formats a full name as "Last, First". Suffixes ride with the
// surname ("Luis García Jr." becomes "García Jr., Luis"); single-token names
// pass through unchanged.
func (f *NameFormatter) LastFirst(full string) string {
	trimmed := strings.Join(strings.Fields(full), " ")
	if trimmed == "" {
		return ""
	}
	if v, ok := f.cache.Get(trimmed); ok {
		return v.(string)
	}

	parts := strings.Split(trimmed, " ")
	formatted := trimmed
	if len(parts) >= 2 {
		surnameStart := len(parts) - 1
		if len(parts) >= 3 && nameSuffixes[strings.ToUpper(parts[len(parts)-1])] {
			surnameStart--
		}
		surname := strings.Join(parts[surnameStart:], " ")
		given := strings.Join(parts[:surnameStart], " ")
		formatted = surname + ", " + given
	}

	f.cache.Set(trimmed, formatted, cache.DefaultExpiration)
	return formatted
}
