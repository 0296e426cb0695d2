// Package sifplan contains the core vocabulary of the Sif planner, the planning layer which
// turns a logical flow description into an executable plan. This root package defines the types
// which are shared by the flow graph, the stage planner and the reducer estimators, and is an
// excellent overview of the planner's key concepts.
package sifplan
