// Package geo derives trip distances from GPX tracks or from place names.
package geo

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/gominatim"
	"github.com/patrickmn/go-cache"
	"github.com/tkrajina/gpxgo/gpx"
)

const metersPerKm = 1000.0

// ErrNoTrack is returned for GPX data without any track, route or waypoint distance.
var ErrNoTrack = errors.New("gpx data has no measurable track")

// Point is a WGS84 coordinate.
type Point struct {
	Lat  float64
	Lon  float64
	Name string
}

// DistanceKm is the great-circle distance between a and b.
func DistanceKm(a, b Point) float64 {
	return gpx.Distance2D(a.Lat, a.Lon, b.Lat, b.Lon, true) / metersPerKm
}

// TrackLengthKm returns the 2D length of every track in the GPX file at path.
func TrackLengthKm(path string) (float64, error) {
	g, err := gpx.ParseFile(path)
	if err != nil {
		return 0, fmt.Errorf("error parsing gpx file: %w", err)
	}
	return trackLength(g)
}

// TrackLengthKmBytes is TrackLengthKm for in-memory GPX data.
func TrackLengthKmBytes(data []byte) (float64, error) {
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return 0, fmt.Errorf("error parsing gpx data: %w", err)
	}
	return trackLength(g)
}

func trackLength(g *gpx.GPX) (float64, error) {
	meters := g.Length2D()
	if meters <= 0 {
		return 0, ErrNoTrack
	}
	return meters / metersPerKm, nil
}

// Geocoder resolves place names through a Nominatim server, caching results.
type Geocoder struct {
	server string
	cache  *cache.Cache
	log    *slog.Logger
}

// NewGeocoder creates a Geocoder for server that keeps results for ttl.
func NewGeocoder(server string, ttl time.Duration, logger *slog.Logger) *Geocoder {
	return &Geocoder{
		server: server,
		cache:  cache.New(ttl, 2*ttl),
		log:    logger,
	}
}

// Locate returns the first match for name.
func (g *Geocoder) Locate(name string) (Point, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if cached, ok := g.cache.Get(key); ok {
		g.log.Debug("geocoding cache hit", "location", name)
		return cached.(Point), nil
	}

	gominatim.SetServer(g.server)
	qry := gominatim.SearchQuery{
		Q: name,
	}
	results, err := qry.Get()
	if err != nil {
		return Point{}, fmt.Errorf("geocoding error: %w", err)
	}
	if len(results) == 0 {
		return Point{}, fmt.Errorf("no results found for location: %s", name)
	}

	p, err := toPoint(results[0])
	if err != nil {
		return Point{}, err
	}
	g.log.Debug("location found", "location", name, "display_name", p.Name)
	g.cache.Set(key, p, cache.DefaultExpiration)
	return p, nil
}

// Distance geocodes both places and returns the great-circle distance between them.
func (g *Geocoder) Distance(from, to string) (float64, error) {
	a, err := g.Locate(from)
	if err != nil {
		return 0, err
	}
	b, err := g.Locate(to)
	if err != nil {
		return 0, err
	}
	return DistanceKm(a, b), nil
}

func toPoint(result gominatim.SearchResult) (Point, error) {
	lat, err := strconv.ParseFloat(result.Lat, 64)
	if err != nil {
		return Point{}, fmt.Errorf("error parsing latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(result.Lon, 64)
	if err != nil {
		return Point{}, fmt.Errorf("error parsing longitude: %w", err)
	}
	return Point{Lat: lat, Lon: lon, Name: result.DisplayName}, nil
}
