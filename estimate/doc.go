// Package estimate decides how many reducers each Stage of a plan receives.
//
// A Registry maps estimator identifiers to factories. Building a Registry against a job
// configuration resolves the configured identifiers into a Chain, failing fast on any
// configuration problem. A Chain then decides each Stage independently:
//
//  1. an explicit reducer count on the Stage always wins;
//  2. otherwise the first Estimator with an opinion wins, capped by the configured maximum;
//  3. otherwise the configured default is used.
//
// EstimateReducers decides a single Stage against a call-time configuration, which replaces
// the one the Chain was built with and is validated the same way.
//
// Chains are immutable and safe for concurrent use. A Planner applies a Chain to every
// shuffle Stage of a plan concurrently.
package estimate
