// Package kernel contains shared value objects used across all aggregates of
// the dispatch engine.
//
// The package includes:
//   - UUID: validated identifier wrapping github.com/google/uuid
//   - GeoPoint: geographic coordinate in decimal degrees with haversine
//     distance, the metric used by batch clustering and route estimation
//
// Value objects here are immutable, created only through constructors, and
// carry a ConstructorGuard so zero values are detectable at validation time.
package kernel
