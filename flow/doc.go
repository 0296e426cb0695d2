// Package flow provides FlowDef, the mutable description of a logical pipeline: its named
// sources and sinks, its tail Pipes, and auxiliary metadata. FlowDefs are composed with Merge
// as pipelines are assembled, and reduced with PruneUnusedSources or ExtractUpstream before
// planning.
//
// A FlowDef is not safe for concurrent mutation. Copy, PruneUnusedSources and ExtractUpstream
// never modify their receiver, and may run concurrently with other readers.
package flow
