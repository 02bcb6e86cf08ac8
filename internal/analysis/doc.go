// Package analysis provides frequency analysis of population series.
//
// A run's population over time is treated as a signal:
//
//   - [PowerSpectrum]: FFT magnitudes with the mean removed
//   - [DominantPeriod]: period of the strongest oscillation
//
// Oscillators show a clean peak at their period; chaotic soups spread power
// across many bins.
package analysis
