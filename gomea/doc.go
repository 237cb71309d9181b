// Package gomea implements a Gene-pool Optimal Mixing Evolutionary Algorithm
// (GOMEA) over a real-valued generalized-permutation encoding, for assigning
// and ordering home-care client visits across caregiver shifts.
//
// # Reading Guide
//
// Start with these files to understand the optimization kernel:
//   - instance.go: the immutable problem description (clients, shifts, travel times)
//   - schedule.go: the planner that turns a route into arrival times and cost
//   - encoding.go: the key <-> route bijection driving variation
//   - gomea.go: the generation loop (Optimal Mixing, greedy acceptance, Solve entrypoint)
//
// # Architecture
//
// The gomea package defines the engine; collaborators that populate an
// Instance or consume a Result live in sibling packages:
//   - gomea/ingest: builds an Instance from tabular client/shift records
//   - gomea/travelmatrix: loads/stores a travel-time matrix in a portable format
//   - gomea/reporting: reduces a Result into plottable summaries (no chart rendering)
//
// # Key Types
//
//   - Instance: immutable problem description
//   - Route, Arrival: decoded schedule and its timing
//   - Key, Individual, Population: the evolutionary encoding and pool
//   - LinkageTree: the per-generation FOS source for Optimal Mixing
package gomea
