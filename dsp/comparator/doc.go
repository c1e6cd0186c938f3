// Package comparator provides a four-channel hysteretic window comparator
// with a cascaded Boolean logic network.
//
// Included processors:
//   - Channel: tri-state (above / inside / below) comparator over a
//     shift+size window with a fixed hysteresis margin.
//   - PairLogic: AND/OR/XOR of two channels' inside-window state plus a
//     toggle flip-flop clocked by XOR rising edges.
//   - CombinePairs: AND/OR/XOR across the activity of two pairs.
//   - Quad: four channels with A→B→C→D input normalling, two pairs, the
//     combined pair logic, gate outputs and smoothed indicator lights.
//
// All processors are single-threaded, allocation-free per sample and keep
// their state in the value they are called on.
package comparator
