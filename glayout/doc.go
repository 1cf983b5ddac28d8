// Package glayout defines the data model for linear-layout encoding: the
// undirected graph G=(V,E), optional planar data, the side-channel
// constraints a caller can attach to an encoding run, and the Params that
// select a layout flavor and its resource budget.
//
// Splits construction (Builder, validated on each mutation) from the
// frozen, read-only value (Graph) that every downstream component
// treats as immutable for the lifetime of a run.
package glayout
