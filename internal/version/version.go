// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Terminal explorer, JSON report, YAML chart files
// 0.2.0 - OpenNGC and HYG loaders, constellation figures, label placement
// 0.1.0 - Initial release: projections, graticule, SVG output
