package config

import (
	"encoding/json"
	"fmt"

	"github.com/yourorg/transitcat/internal/company"
)

// StatRequest is one decoded stat_requests entry. Only the
// fields relevant to Type are populated; callers switch on Type before
// reading them.
type StatRequest struct {
	ID   int
	Type string

	// Stop, Bus
	Name string

	// Route, FindDepotRoute
	From string
	To   string

	// FindDepotRoute
	Datetime int

	// FindCompanies, FindDepotRoute
	Filter company.Filter
}

type rawPhoneFilter struct {
	Type        string `json:"type,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	LocalCode   string `json:"local_code,omitempty"`
	Number      string `json:"number"`
	Extension   string `json:"extension,omitempty"`
}

type rawStatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`

	Name string `json:"name"`

	From string `json:"from"`
	To   string `json:"to"`

	Datetime int `json:"datetime"`

	Names   []string         `json:"names"`
	URLs    []string         `json:"urls"`
	Rubrics []string         `json:"rubrics"`
	Phones  []rawPhoneFilter `json:"phones"`
}

// ParseStatRequests decodes every stat_requests entry. Unlike
// base_requests, an unrecognized Type here is not structural: the
// engine's dispatcher echoes back a not-found response for it and the
// request loop keeps going.
func ParseStatRequests(raw []json.RawMessage) ([]StatRequest, error) {
	out := make([]StatRequest, 0, len(raw))
	for i, msg := range raw {
		var rr rawStatRequest
		if err := json.Unmarshal(msg, &rr); err != nil {
			return nil, fmt.Errorf("config: stat_requests[%d]: %w", i, err)
		}

		sr := StatRequest{
			ID:       rr.ID,
			Type:     rr.Type,
			Name:     rr.Name,
			From:     rr.From,
			To:       rr.To,
			Datetime: rr.Datetime,
		}

		if rr.Type == "FindCompanies" || rr.Type == "FindDepotRoute" {
			sr.Filter = company.Filter{
				Names:   rr.Names,
				Rubrics: rr.Rubrics,
				URLs:    rr.URLs,
			}
			for _, pf := range rr.Phones {
				filter := company.PhoneFilter{
					CountryCode: pf.CountryCode,
					LocalCode:   pf.LocalCode,
					Number:      pf.Number,
					Extension:   pf.Extension,
				}
				if pf.Type != "" {
					t, err := parsePhoneType(pf.Type)
					if err != nil {
						return nil, fmt.Errorf("config: stat_requests[%d]: %w", i, err)
					}
					filter.HasType = true
					filter.Type = t
				}
				sr.Filter.Phones = append(sr.Filter.Phones, filter)
			}
		}

		out = append(out, sr)
	}
	return out, nil
}
