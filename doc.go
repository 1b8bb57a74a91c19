// Package tempo is your in-memory toolkit for building and measuring
// dynamic (time-varying) networks — who can reach whom once edges are
// only traversable while active, how fast, and how stable the ties are.
//
// 🚀 What is tempo?
//
//	A thread-safe, zero-dependency library that brings together:
//		• Dynamic storage: vertices & edge activation spells, mutated safely under locks
//		• Snapshots: instantaneous and windowed static views of the network
//		• Temporal reachability: earliest-arrival and latest-departure solvers
//		• Time-respecting paths: shortest temporal path with full reconstruction
//		• Stability measures: spell durations, windowed persistence & turnover, tie decay
//		• Contact sequences: globally time-ordered flattening of all activations
//
// ✨ Why choose tempo?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, in-code docs, deterministic results
//   - Pure Go – no cgo, no hidden deps
//   - Honest semantics – "unreachable" is a value, never a panic or an error
//
// Under the hood, everything is organized under four subpackages:
//
//	dynnet/    — dynamic network storage, spells & snapshot extraction
//	reach/     — earliest-arrival / latest-departure solvers & temporal paths
//	stability/ — duration aggregation, persistence, turnover, decay estimates
//	contacts/  — contact-sequence builder
//
// Quick ASCII example:
//
//	1 ──[0,20)── 2 ──[10,40)── 3 ──[30,60)── 4 ──[50,80)── 5
//
//	a chain where each edge is active only during its spell; starting at
//	t=0, vertex 5 is first reached at t=50 — and never when starting at t=90.
//
// Dive into the per-package doc.go files for contracts, complexity notes,
// and runnable examples.
//
//	go get github.com/katalvlaran/tempo
package tempo
