package omdb

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

/* -------- Search (?s=) -------- */

type SearchResponse struct {
	Response     string      `json:"Response"` // "True" | "False"
	Search       []SearchRow `json:"Search"`
	TotalResults Count       `json:"totalResults"`
	Error        string      `json:"Error"`
}

// Valid reports whether the provider flagged the response as carrying results.
func (r SearchResponse) Valid() bool {
	return r.Response == "True"
}

type SearchRow struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

/* -------- Detail (?i=) -------- */

// DetailRecord is the extended record of a single title. Only Plot feeds
// the search results; the rest is kept for the detail CLI.
type DetailRecord struct {
	Response   string `json:"Response"`
	Error      string `json:"Error"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
	Type       string `json:"Type"`
}

// Count is a provider number sent as a numeric string ("394"). Plain JSON
// numbers are accepted too; anything unparsable decodes to 0.
type Count int

func (c *Count) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*c = 0
		return nil
	}

	var s string
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			*c = 0
			return nil
		}
	} else {
		s = string(b)
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		*c = 0
		return nil
	}
	*c = Count(n)
	return nil
}
