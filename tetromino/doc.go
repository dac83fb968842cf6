// Package tetromino holds the static shape catalog and the active piece type.
//
// Every kind carries four precomputed orientation layouts inside a 4x4 frame.
// Rotation never computes geometry: it only steps the orientation index, and
// the layout for that index is looked up from the catalog. Callers own all
// validity checks against the board.
package tetromino
