// Package services contains stateless domain services that operate across
// aggregates: the batch planner that clusters and packs pending orders, and
// the route estimator behind the planned-distance figures.
package services
