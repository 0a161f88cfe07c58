package main

import (
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/NIRMALT04/bunker-locate/internal/registry"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Inspect the curated reference data",
}

var registryStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show reference-data table sizes",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := initRegistry(cfg)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(reg.Stats(), "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal stats")
		}
		cmd.Println(string(out))
		return nil
	},
}

// lookupOutput is the JSON shape of one registry lookup hit.
type lookupOutput struct {
	Table       string  `json:"table"`
	DisplayName string  `json:"display_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

var registryLookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Look a name up in the curated tables",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := initRegistry(cfg)
		if err != nil {
			return err
		}

		name := strings.Join(args, " ")
		hit, ok := lookupRegistry(reg, name)
		if !ok {
			return eris.Errorf("no registry entry for %q", name)
		}

		out, err := json.MarshalIndent(hit, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal lookup")
		}
		cmd.Println(string(out))
		return nil
	},
}

// lookupRegistry checks the POI tables first, then the gazetteer, the same
// precedence the resolver uses.
func lookupRegistry(reg *registry.Registry, name string) (lookupOutput, bool) {
	normalized := registry.Normalize(name)
	if poi, kind, ok := reg.MatchPOI(normalized); ok {
		return lookupOutput{
			Table:       string(kind),
			DisplayName: registry.POIName(poi),
			Latitude:    poi.Latitude,
			Longitude:   poi.Longitude,
		}, true
	}
	if place, _, ok := reg.LookupPlace(normalized); ok {
		return lookupOutput{
			Table:       "gazetteer",
			DisplayName: registry.PlaceName(place),
			Latitude:    place.Latitude,
			Longitude:   place.Longitude,
		}, true
	}
	return lookupOutput{}, false
}

func init() {
	registryCmd.AddCommand(registryStatsCmd, registryLookupCmd)
	rootCmd.AddCommand(registryCmd)
}
