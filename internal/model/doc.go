// Package model defines the row types flowing between pipeline stages: the
// normalized dimension, bridge, and fact tables of the processed layer and
// the denormalized tables of the curated layer.
//
// All rows are immutable snapshots regenerated on every run. Nullable columns
// are pointers; nil means the value is absent, never zero.
package model
