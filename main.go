package main

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"golang.org/x/exp/slog"

	"github.com/ttpr0/go-accessroute/internal/logging"
	"github.com/ttpr0/go-accessroute/model"
	"github.com/ttpr0/go-accessroute/osmimport"
	"github.com/ttpr0/go-accessroute/request"
	"github.com/ttpr0/go-accessroute/search"
	"github.com/ttpr0/go-accessroute/turn"
)

func main() {
	configFile := flag.String("config", "config.yaml", "path to the config file")
	from := flag.Int64("from", 0, "source vertex id")
	to := flag.Int64("to", -1, "target vertex id; if set, writes the resolved path as a GeoJSON feature")
	exportFile := flag.String("export", "", "path to write the --to path's GeoJSON feature (defaults to stdout)")
	flag.Parse()

	slog.SetDefault(slog.New(logging.NewHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	config := ReadConfig(*configFile)

	network, err := osmimport.ImportOSM(config.Source.OSM, config.HomeZone)
	if err != nil {
		slog.Error("failed to import osm extract", "error", err)
		os.Exit(1)
	}

	turns := turn.NewEvaluator()

	proto := request.NewPrototypeRequest()
	proto.Accessibility = config.Accessibility.ToPrefs()

	result := search.Dijkstra(network, turns, proto, model.WALK, int32(*from), int(time.Now().Unix()), search.WithReturnPath())
	slog.Info("search complete", "reached", len(result.Best))

	if *to >= 0 {
		if err := exportPathFeature(result, int32(*to), *exportFile); err != nil {
			slog.Error("failed to export path feature", "error", err)
			os.Exit(1)
		}
	}
}

// exportPathFeature writes the resolved path from --from to --to as a
// GeoJSON feature, for diagnostic inspection of what the search found.
func exportPathFeature(result *search.Result, to int32, exportFile string) error {
	feature := result.PathFeature(to)
	raw, err := feature.MarshalJSON()
	if err != nil {
		return err
	}
	pretty, err := json.MarshalIndent(json.RawMessage(raw), "", "  ")
	if err != nil {
		pretty = raw
	}
	if exportFile == "" {
		slog.Info("path feature", "geojson", string(pretty))
		return nil
	}
	return os.WriteFile(exportFile, pretty, 0644)
}
