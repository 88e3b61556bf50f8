package config

import (
	"fmt"

	"github.com/yourorg/transitcat/internal/model"
)

// Build converts the decoded JSON routing settings into
// model.RoutingSettings. A missing pedestrian_velocity is represented
// as 0 (model.RoutingSettings' documented "absent" sentinel); whether
// that is fatal depends on the request actually made, so
// it is not validated here.
func (r RoutingSettings) Build() (model.RoutingSettings, error) {
	if r.BusVelocity <= 0 {
		return model.RoutingSettings{}, fmt.Errorf("config: routing_settings.bus_velocity must be positive, got %g", r.BusVelocity)
	}
	if r.BusWaitTime < 0 {
		return model.RoutingSettings{}, fmt.Errorf("config: routing_settings.bus_wait_time must be non-negative, got %d", r.BusWaitTime)
	}

	out := model.RoutingSettings{
		BusWaitTime:    r.BusWaitTime,
		BusVelocityKmh: r.BusVelocity,
	}
	if r.PedestrianVelocity != nil {
		out.PedestrianVelocity = *r.PedestrianVelocity
	}
	return out, nil
}
