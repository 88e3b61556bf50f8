package config

import (
	"encoding/json"
	"fmt"

	"github.com/yourorg/transitcat/internal/catalog"
	"github.com/yourorg/transitcat/internal/model"
)

// rawStop is a base_requests entry with type "Stop".
type rawStop struct {
	Name          string             `json:"name"`
	Latitude      float64            `json:"latitude"`
	Longitude     float64            `json:"longitude"`
	RoadDistances map[string]float64 `json:"road_distances"`
}

// rawBus is a base_requests entry with type "Bus".
type rawBus struct {
	Name        string   `json:"name"`
	Stops       []string `json:"stops"`
	IsRoundtrip bool     `json:"is_roundtrip"`
}

// BaseInput is the partitioned, typed form of base_requests, ready for
// catalog.Build.
type BaseInput struct {
	Stops []model.Stop
	Buses []catalog.BusInput
}

// ParseBaseRequests partitions the raw base_requests envelope list into
// typed stop and bus descriptions. An unrecognized type is a structural
// error.
func ParseBaseRequests(raw []json.RawMessage) (BaseInput, error) {
	var out BaseInput
	for i, msg := range raw {
		var env baseRequestEnvelope
		if err := json.Unmarshal(msg, &env); err != nil {
			return BaseInput{}, fmt.Errorf("config: base_requests[%d]: %w", i, err)
		}
		switch env.Type {
		case "Stop":
			var rs rawStop
			if err := json.Unmarshal(msg, &rs); err != nil {
				return BaseInput{}, fmt.Errorf("config: base_requests[%d] (Stop): %w", i, err)
			}
			out.Stops = append(out.Stops, model.Stop{
				Name:      rs.Name,
				Position:  model.Point{Lat: rs.Latitude, Lon: rs.Longitude},
				Distances: rs.RoadDistances,
			})
		case "Bus":
			var rb rawBus
			if err := json.Unmarshal(msg, &rb); err != nil {
				return BaseInput{}, fmt.Errorf("config: base_requests[%d] (Bus): %w", i, err)
			}
			out.Buses = append(out.Buses, catalog.BusInput{
				Name:        rb.Name,
				Stops:       rb.Stops,
				IsRoundtrip: rb.IsRoundtrip,
			})
		default:
			return BaseInput{}, fmt.Errorf("config: base_requests[%d]: unknown type %q", i, env.Type)
		}
	}
	return out, nil
}
