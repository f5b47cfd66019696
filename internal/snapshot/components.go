package snapshot

import (
	"context"
	"fmt"
	"math"

	"github.com/shirou/gopsutil/v3/host"
)

// collectComponents reads thermal sensors. gopsutil may return partial data
// alongside an error; partial data wins as long as anything was read.
func collectComponents(ctx context.Context) ([]ComponentInfo, error) {
	temps, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil && len(temps) == 0 {
		if IsUnsupported(err) {
			return nil, fmt.Errorf("thermal sensors not supported on this platform: %w", err)
		}
		return nil, fmt.Errorf("thermal sensors: %w", err)
	}

	components := make([]ComponentInfo, 0, len(temps))
	for _, t := range temps {
		c := ComponentInfo{Label: t.SensorKey}
		if v := t.Temperature; isReadableTemp(v) {
			c.Temperature = &v
		}
		if v := maxTemp(t.High, t.Critical); isReadableTemp(v) {
			c.Max = &v
		}
		components = append(components, c)
	}
	return components, nil
}

func maxTemp(high, critical float64) float64 {
	if high > 0 {
		return high
	}
	return critical
}

// Sensors report 0 or NaN for channels they cannot read.
func isReadableTemp(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
