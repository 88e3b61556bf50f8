package config

import (
	"fmt"

	"github.com/yourorg/transitcat/internal/model"
)

// Bundle is the fully decoded and validated make_base input, ready to
// feed catalog.Build / company.Build / router.Build / layout.Build /
// render.BuildBaseMap.
type Bundle struct {
	SnapshotFile    string
	RoutingSettings model.RoutingSettings
	RenderSettings  model.RenderSettings
	Rubrics         model.RubricDict
	Companies       []model.Company
	Base            BaseInput
	StatRequests    []StatRequest
}

// Build validates and assembles a Bundle from a decoded Input,
// surfacing the settings faults that are fatal at construction time.
func (in *Input) Build() (*Bundle, error) {
	if in.SerializationSettings.File == "" {
		return nil, fmt.Errorf("config: serialization_settings.file is required")
	}

	routing, err := in.RoutingSettings.Build()
	if err != nil {
		return nil, err
	}

	render, err := in.RenderSettings.Build()
	if err != nil {
		return nil, err
	}

	rubrics, companies, err := in.YellowPages.Build()
	if err != nil {
		return nil, err
	}

	base, err := ParseBaseRequests(in.BaseRequests)
	if err != nil {
		return nil, err
	}

	stat, err := ParseStatRequests(in.StatRequests)
	if err != nil {
		return nil, err
	}

	return &Bundle{
		SnapshotFile:    in.SerializationSettings.File,
		RoutingSettings: routing,
		RenderSettings:  render,
		Rubrics:         rubrics,
		Companies:       companies,
		Base:            base,
		StatRequests:    stat,
	}, nil
}
