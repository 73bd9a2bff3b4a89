package model

// Package model defines the values that flow between the job runner and its
// observers: the job itself, its lifecycle state, and the progress, log and
// terminal events it emits. Values are immutable once emitted.
