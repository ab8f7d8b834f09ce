// Package csp provides a high-level abstraction for coordinating
// independently scheduled producers and consumers through a first-class,
// shared channel object — a communicating-sequential-processes channel
// with optional bounded buffering, per-value transformation (including
// one-to-many expansion), fan-out pipelines, fan-in merging, lifecycle
// control, and graceful shutdown signalling.
//
// The channel pattern implemented here offers several advantages over a
// raw Go channel:
//   - optional bounded buffering with a pluggable buffer implementation
//   - per-value transforms that may drop, map, or expand a single input
//     into many outputs while preserving FIFO order
//   - a three-stage lifecycle (open, closed, ended) with a close-then-
//     drain-then-end sequence instead of an immediate hard stop
//   - tail values: producer records that must be delivered after close
//     but before end
//   - fan-out pipelines and fan-in merges built from the same primitive
//   - built-in logging and optional Prometheus instrumentation
package csp
