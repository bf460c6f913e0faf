// Package input turns raw rotary encoder samples into navigation input.
//
// A Decoder is scanned once per tick. Each scan folds the wrapping hardware
// counter into an accumulated tick count and advances the button state
// machine by one step. Callers then drain RotationDelta and Event.
//
// Button gestures are classified as follows:
//   - Click: press held past the debounce window, released, and not
//     pressed again within the double-click gap.
//   - DoubleClick: a second debounced press inside the gap.
//   - LongPress: press held past the long-press threshold, measured from
//     the first press edge. Emitted once per hold.
//
// Only the most recent unconsumed event is kept.
package input
