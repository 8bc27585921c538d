package cmdapp

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/delta"
	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/match"
)

// candidateOutput is the serialized form of one match candidate.
type candidateOutput struct {
	Version     string `json:"version" yaml:"version"`
	Distance    int    `json:"distance" yaml:"distance"`
	IsRequested bool   `json:"is_requested" yaml:"is_requested"`
}

// matchOutput is the serialized form of a match result, consumed by the
// tooling that fetches the matched package's sources.
type matchOutput struct {
	Name         string            `json:"name" yaml:"name"`
	Version      string            `json:"version" yaml:"version"`
	PackageScore int               `json:"package_score" yaml:"package_score"`
	VersionScore float64           `json:"version_score" yaml:"version_score"`
	Candidates   []candidateOutput `json:"candidates" yaml:"candidates"`
}

func newMatchOutput(r *match.Result) *matchOutput {
	out := &matchOutput{
		Name:         r.Name,
		Version:      r.Version.Raw,
		PackageScore: r.PackageScore,
		VersionScore: r.VersionScore,
		Candidates:   make([]candidateOutput, 0, len(r.Candidates)),
	}
	for _, c := range r.Candidates {
		out.Candidates = append(out.Candidates, candidateOutput{
			Version:     c.Version.Raw,
			Distance:    c.Distance,
			IsRequested: c.IsRequested,
		})
	}
	return out
}

// deltaOutput is the serialized form of a scan comparison, consumed by the
// downstream SPDX-merge tooling.
type deltaOutput struct {
	Stats     map[string]int `json:"stats" yaml:"stats"`
	Body      *delta.Delta   `json:"body" yaml:"body"`
	Proximity float64        `json:"proximity" yaml:"proximity"`
}

func newDeltaOutput(d *delta.Delta) *deltaOutput {
	return &deltaOutput{
		Stats:     d.Stats(),
		Body:      d,
		Proximity: d.Proximity(),
	}
}

// render writes the value to the command's stdout in the configured
// format. JSON is the default.
func (a *App) render(cmd *cobra.Command, v any) error {
	switch a.config.Format {
	case "", "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		cmd.Print(string(data))
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (expected json or yaml)", a.config.Format)
	}
}
