// Package render turns snapshot values into table text or JSON.
package render

import (
	"encoding/json"

	"github.com/byezy/sysinfo-cli/internal/snapshot"
	"github.com/fatih/color"
)

// Renderer produces either bordered tables or pretty-printed JSON for one
// command's result. JSON output always carries raw numeric values (byte
// counts, float percentages) so downstream tooling can recompute; tables get
// the human-scaled strings.
type Renderer struct {
	json bool
	pal  palette
}

// New builds a renderer. colored only affects table mode; it is disabled for
// file output so saved tables stay clean.
func New(jsonMode, colored bool) *Renderer {
	return &Renderer{
		json: jsonMode,
		pal:  newPalette(colored && !jsonMode),
	}
}

// Summary is the abbreviated no-subcommand result. A section that failed to
// collect stays nil and is emitted as JSON null, never silently dropped.
type Summary struct {
	System        *snapshot.SystemInfo `json:"system"`
	Memory        *snapshot.MemoryInfo `json:"memory"`
	CPUTotalUsage *float64             `json:"cpu_total_usage"`
	NbCPUs        *int                 `json:"nb_cpus"`
}

func marshal(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// palette matches the original color scheme: yellow labels, cyan identifiers,
// green section markers, cyan summary banners.
type palette struct {
	label   *color.Color
	ident   *color.Color
	section *color.Color
	banner  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		label:   color.New(color.FgYellow),
		ident:   color.New(color.FgCyan),
		section: color.New(color.FgHiGreen, color.Bold),
		banner:  color.New(color.FgHiCyan, color.Bold),
	}
	if !enabled {
		for _, c := range []*color.Color{p.label, p.ident, p.section, p.banner} {
			c.DisableColor()
		}
	}
	return p
}
