package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Elapsed is how long a complaint has been open
type Elapsed time.Duration

// Hours returns e in fractional hours
func (e Elapsed) Hours() float64 { return time.Duration(e).Hours() }

// String formats e the way the dashboards show it: "3d 0h", "6h 30m", "45m"
func (e Elapsed) String() string {
	d := time.Duration(e)
	if d < 0 {
		d = 0
	}
	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// UnmarshalYAML reads a Go duration string such as "72h" or "6h30m"
func (e *Elapsed) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("open_for: %w", err)
	}
	*e = Elapsed(d)
	return nil
}

// MarshalJSON encodes e as fractional hours
func (e Elapsed) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Hours())
}

// UnmarshalJSON decodes fractional hours
func (e *Elapsed) UnmarshalJSON(b []byte) error {
	var hours float64
	if err := json.Unmarshal(b, &hours); err != nil {
		return err
	}
	*e = Elapsed(time.Duration(hours * float64(time.Hour)))
	return nil
}
