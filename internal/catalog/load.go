package catalog

import (
	"time"

	"github.com/litescript/ls-starchart/internal/logging"
)

// Paths selects catalog files. Empty fields select built-in data.
type Paths struct {
	Stars          string
	Objects        string
	Constellations string
}

// Load reads all three datasets.
func Load(p Paths, log *logging.Logger) (Datasets, error) {
	if log == nil {
		log = logging.Discard()
	}
	start := time.Now()

	stars, err := LoadStars(p.Stars)
	if err != nil {
		return Datasets{}, err
	}
	log.Debug("stars loaded", "path", source(p.Stars), "count", len(stars))

	objects, err := LoadObjects(p.Objects)
	if err != nil {
		return Datasets{}, err
	}
	log.Debug("objects loaded", "path", source(p.Objects), "count", len(objects))

	constellations, err := LoadConstellations(p.Constellations)
	if err != nil {
		return Datasets{}, err
	}
	log.Debug("constellations loaded", "path", source(p.Constellations), "count", len(constellations))

	log.Info("catalogs ready",
		"stars", len(stars),
		"objects", len(objects),
		"constellations", len(constellations),
		"elapsed", time.Since(start).Round(time.Millisecond))

	return Datasets{Stars: stars, Objects: objects, Constellations: constellations}, nil
}

func source(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
