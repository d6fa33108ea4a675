package mappers

import (
	"strings"

	"omdb-search/internal/domain"
)

// yearRangeSep is the en dash the provider puts between the years of a run ("2003–2012").
const yearRangeSep = "–"

// ClassifyCategory maps the provider's type string onto a Category.
// Anything unrecognized, including "", is a movie.
func ClassifyCategory(raw string) domain.Category {
	c, _ := lookupCategory(raw)
	return c
}

func lookupCategory(raw string) (domain.Category, bool) {
	switch raw {
	case "movie":
		return domain.CategoryMovie, true
	case "series":
		return domain.CategorySeries, true
	case "episode":
		return domain.CategoryEpisode, true
	default:
		return domain.CategoryMovie, false
	}
}

// SortYear derives the ordering year from the display year.
// "2003–2012" -> 2012, "2019–" -> 2019, "1999" -> 1999.
// Returns domain.UnknownSortYear when no leading integer is present.
func SortYear(raw string) int {
	if i := strings.Index(raw, yearRangeSep); i > -1 {
		tail := raw[i+len(yearRangeSep):]
		if tail == "" {
			return leadingInt(raw)
		}
		return leadingInt(tail)
	}
	return leadingInt(raw)
}

// leadingInt parses the integer prefix of s, ignoring leading whitespace
// and any non-numeric tail.
func leadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\r")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		// years never get close to overflow; stop accumulating past 9 digits
		if digits < 9 {
			n = n*10 + int(s[digits]-'0')
		}
		digits++
	}
	if digits == 0 {
		return domain.UnknownSortYear
	}
	if neg {
		return -n
	}
	return n
}
