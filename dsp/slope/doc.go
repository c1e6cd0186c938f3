// Package slope provides a rise/fall slope generator with trigger-mode
// gating, external sync, per-cycle chaos modulation and curve shaping.
//
// Included processors:
//   - Generator: the rise/fall state machine with breakpoint detection and
//     derivative/integral tracking.
//   - SyncPLL: period measurement on an external pulse train used to stretch
//     the generator's cycle onto that period.
//   - Freeze: button/CV controlled hold of a generator.
//   - MixAndMath: crossfade, minimum, maximum and sum of two slope values.
//   - Dual: two independent generators with chaos, freeze, end-probability
//     pulses and the mix/math stage.
//
// Randomness is drawn from an injected Source so tests can script it.
// Processors are single-threaded and must be driven one sample at a time in
// order; edge detection and hysteresis depend on it.
package slope
