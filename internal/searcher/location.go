package searcher

import "strings"

// locationTriggers mark queries whose answer depends on where the user is
var locationTriggers = []string{
	"weather", "temperature", "rain", "storm",
	"nearby", "near me", "restaurants", "hotels",
	"news", "headline", "breaking", "time",
	"current", "today", "tonight",
}

// IsLocationSensitive reports whether query mentions a location trigger
func IsLocationSensitive(query string) bool {
	s := strings.ToLower(query)
	for _, t := range locationTriggers {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// BuildLocationQuery appends " near <location>" to location-sensitive
// queries. Other queries, or an empty location, pass through unchanged.
func BuildLocationQuery(query, location string) string {
	location = strings.TrimSpace(location)
	if location == "" || !IsLocationSensitive(query) {
		return query
	}
	return query + " near " + location
}
