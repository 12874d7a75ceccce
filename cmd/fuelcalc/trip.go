package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/rubiojr/fuelcalc/internal/geo"
	"github.com/rubiojr/fuelcalc/internal/tools"
)

func tripCommand() *cli.Command {
	return &cli.Command{
		Name:  "trip",
		Usage: "Compare the cost of a trip with each fuel",
		Flags: append([]cli.Flag{
			&cli.Float64Flag{
				Name:    "distance",
				Aliases: []string{"d"},
				Usage:   "Trip distance in km",
			},
			&cli.StringFlag{
				Name:  "gpx",
				Usage: "Take the trip distance from the tracks of a GPX file (- reads stdin)",
			},
			&cli.StringFlag{
				Name:  "from",
				Usage: "Origin place name, geocoded together with --to",
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "Destination place name",
			},
			&cli.Float64Flag{
				Name:     "consumption",
				Usage:    "Vehicle consumption with gasoline (km/L)",
				Required: true,
			},
		}, priceFlags()...),
		Action: tripAction,
	}
}

func tripAction(c *cli.Context) error {
	distance, err := tripDistance(c)
	if err != nil {
		return err
	}

	args := priceArgs(c)
	args["distance"] = distance
	args["gasoline_consumption"] = c.Float64("consumption")
	return callTool(c, tools.CompareTripCost, args)
}

// tripDistance resolves the distance from exactly one of --distance, --gpx or
// --from/--to.
func tripDistance(c *cli.Context) (float64, error) {
	sources := 0
	for _, set := range []bool{c.IsSet("distance"), c.String("gpx") != "", c.String("from") != "" || c.String("to") != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return 0, errors.New("one of --distance, --gpx or --from/--to is required")
	}

	switch {
	case c.IsSet("distance"):
		return c.Float64("distance"), nil
	case c.String("gpx") != "":
		km, err := gpxLength(c)
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(c.App.ErrWriter, "Track length: %.1f km\n", km)
		return km, nil
	}

	from, to := c.String("from"), c.String("to")
	if from == "" || to == "" {
		return 0, errors.New("--from and --to must be used together")
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return 0, err
	}
	gc := geo.NewGeocoder(cfg.Geocoding.Server,
		time.Duration(cfg.Geocoding.CacheMinutes)*time.Minute,
		cliLogger(c))
	km, err := gc.Distance(from, to)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(c.App.ErrWriter, "Straight-line distance from %s to %s: %.1f km\n", from, to, km)
	return km, nil
}

func gpxLength(c *cli.Context) (float64, error) {
	path := c.String("gpx")
	if path != "-" {
		return geo.TrackLengthKm(path)
	}
	data, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return 0, fmt.Errorf("error reading GPX from stdin: %w", err)
	}
	return geo.TrackLengthKmBytes(data)
}
