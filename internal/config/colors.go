package config

import (
	"encoding/json"
	"fmt"

	"github.com/yourorg/transitcat/internal/model"
)

// Color decodes the three JSON color shapes: a string name, an
// [r,g,b] triple, or an [r,g,b,a] quadruple.
type Color struct {
	model.Color
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		c.Color = model.Color{Name: name}
		return nil
	}

	var nums []float64
	if err := json.Unmarshal(data, &nums); err != nil {
		return fmt.Errorf("config: color must be a string or [r,g,b] / [r,g,b,a]: %w", err)
	}
	if len(nums) != 3 && len(nums) != 4 {
		return fmt.Errorf("config: color array must have 3 or 4 entries, got %d", len(nums))
	}

	out := model.Color{}
	out.RGB[0] = uint8(nums[0])
	out.RGB[1] = uint8(nums[1])
	out.RGB[2] = uint8(nums[2])
	if len(nums) == 4 {
		out.Alpha = nums[3]
		out.HasA = true
	}
	c.Color = out
	return nil
}
