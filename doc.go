// Package pricechart provides the data and interaction model of an interactive
// time-series price chart.
//
// The core functionalities include:
//   - Series Management: an immutable, chronologically ordered series of daily
//     points (price, volume and auxiliary fields), with a price floor guard.
//   - Windowing: deterministic derivation of trailing windows (1M, 6M, 1Y) as
//     views sharing the series memory, memoized by a Store.
//   - Interaction: pointer tracking over the chart geometry, nearest point
//     lookup and tooltip derivation.
//   - Transitions: mount and draw-in animations, and the seamless loop of a
//     scrolling ticker tape.
//
// Layout is done by the geometry package, pointer lookup by the interaction
// package and animation timing by the transition package. This package ties
// them together in a Chart instance whose Frame is rendered by the renderer
// package, and used by the `pchart` command-line tool.
package pricechart
