package config

import (
	"fmt"

	"github.com/yourorg/transitcat/internal/model"
)

// YellowPages is the raw yellow_pages JSON section: a
// rubric dictionary plus the company list.
type YellowPages struct {
	Rubrics   []rawRubric  `json:"rubrics"`
	Companies []rawCompany `json:"companies"`
}

type rawRubric struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type rawName struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type rawPhone struct {
	Type        string `json:"type,omitempty"`
	CountryCode string `json:"country_code"`
	LocalCode   string `json:"local_code"`
	Number      string `json:"number"`
	Extension   string `json:"extension,omitempty"`
}

type rawAddress struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type rawNearbyStop struct {
	Name   string  `json:"name"`
	Meters float64 `json:"meters"`
}

type rawWorkingInterval struct {
	Day         string `json:"day"`
	MinutesFrom int    `json:"minutes_from"`
	MinutesTo   int    `json:"minutes_to"`
}

type rawCompany struct {
	Names       []rawName            `json:"names"`
	Phones      []rawPhone           `json:"phones"`
	URLs        []string             `json:"urls"`
	RubricIDs   []int                `json:"rubrics"`
	Address     rawAddress           `json:"address"`
	Nearby      []rawNearbyStop      `json:"nearby_stops"`
	WorkingTime []rawWorkingInterval `json:"working_time"`
}

// Build converts the raw yellow-pages section into model.RubricDict and
// []model.Company, rejecting unknown name/phone-type/day strings as
// structural errors.
func (yp YellowPages) Build() (model.RubricDict, []model.Company, error) {
	rubrics := make(model.RubricDict, len(yp.Rubrics))
	for _, r := range yp.Rubrics {
		rubrics[r.ID] = r.Name
	}

	companies := make([]model.Company, 0, len(yp.Companies))
	for i, rc := range yp.Companies {
		co, err := rc.build()
		if err != nil {
			return nil, nil, fmt.Errorf("config: yellow_pages.companies[%d]: %w", i, err)
		}
		companies = append(companies, co)
	}
	return rubrics, companies, nil
}

func (rc rawCompany) build() (model.Company, error) {
	names := make([]model.Name, 0, len(rc.Names))
	hasMain := false
	for _, n := range rc.Names {
		t, err := parseNameType(n.Type)
		if err != nil {
			return model.Company{}, err
		}
		if t == model.NameTypeMain {
			hasMain = true
		}
		names = append(names, model.Name{Type: t, Value: n.Value})
	}
	if !hasMain {
		return model.Company{}, fmt.Errorf("no name with type MAIN")
	}

	phones := make([]model.Phone, 0, len(rc.Phones))
	for _, p := range rc.Phones {
		ph := model.Phone{
			CountryCode: p.CountryCode,
			LocalCode:   p.LocalCode,
			Number:      p.Number,
			Extension:   p.Extension,
		}
		if p.Type != "" {
			t, err := parsePhoneType(p.Type)
			if err != nil {
				return model.Company{}, err
			}
			ph.HasType = true
			ph.Type = t
		}
		phones = append(phones, ph)
	}

	nearby := make([]model.NearbyStop, 0, len(rc.Nearby))
	for _, nb := range rc.Nearby {
		nearby = append(nearby, model.NearbyStop{Name: nb.Name, Meters: nb.Meters})
	}

	working := make([]model.WorkingInterval, 0, len(rc.WorkingTime))
	for _, w := range rc.WorkingTime {
		day, err := parseDay(w.Day)
		if err != nil {
			return model.Company{}, err
		}
		working = append(working, model.WorkingInterval{Day: day, From: w.MinutesFrom, To: w.MinutesTo})
	}

	return model.Company{
		Names:       names,
		Phones:      phones,
		URLs:        append([]string(nil), rc.URLs...),
		RubricIDs:   append([]int(nil), rc.RubricIDs...),
		Address:     model.Point{Lat: rc.Address.Lat, Lon: rc.Address.Lon},
		Nearby:      nearby,
		WorkingTime: working,
	}, nil
}

func parseNameType(s string) (model.NameType, error) {
	switch s {
	case "", "MAIN":
		return model.NameTypeMain, nil
	case "SHORT":
		return model.NameTypeShort, nil
	case "SYNONYM":
		return model.NameTypeSynonym, nil
	default:
		return 0, fmt.Errorf("unknown name type %q", s)
	}
}

func parsePhoneType(s string) (model.PhoneType, error) {
	switch s {
	case "PHONE":
		return model.PhoneTypePhone, nil
	case "FAX":
		return model.PhoneTypeFax, nil
	default:
		return 0, fmt.Errorf("unknown phone type %q", s)
	}
}

func parseDay(s string) (model.Day, error) {
	switch s {
	case "MONDAY":
		return model.Monday, nil
	case "TUESDAY":
		return model.Tuesday, nil
	case "WEDNESDAY":
		return model.Wednesday, nil
	case "THURSDAY":
		return model.Thursday, nil
	case "FRIDAY":
		return model.Friday, nil
	case "SATURDAY":
		return model.Saturday, nil
	case "SUNDAY":
		return model.Sunday, nil
	case "EVERYDAY":
		return model.Everyday, nil
	default:
		return 0, fmt.Errorf("unknown day %q", s)
	}
}
