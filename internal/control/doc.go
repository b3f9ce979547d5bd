// Package control provides motion controllers for scripted gallery targets.
//
//   - [BangBang]: reverses lateral velocity at fixed bounds, producing
//     sustained back-and-forth travel
//
// # Usage
//
//	osc := control.NewBangBang(15, 5)
//	x, vx = osc.Apply(prevX, x, vx) // called once per frame after integration
package control
