// Package tablecsv persists the processed and curated layers as CSV files.
//
// Each table has a codec pairing a fixed header with row encode/decode
// functions, so the on-disk column names stay stable for the dashboard and
// downstream loaders. Writers emit rows in the order given; all ordering
// decisions live with the producers so identical input yields byte-identical
// files.
package tablecsv
