// Package algebra provides the symbolic backbone consumed by the model
// composition core:
//
//   - [Expr]: scalar symbolic expressions (symbols, sums, products, sin/cos)
//     with structural differentiation
//   - [Frame], [Point], [Vector]: reference frames, points and 3-vectors with
//     symbolic components
//   - [Body], [Load], [Equation]: rigid bodies, forces/torques and kinematic
//     differential equations
//   - [Engine]: the entry surface (symbol/point/frame creation and
//     [Engine.Derive], a velocity-linear Kane-style reduction to a mass
//     matrix and forcing vector)
//
// The composition core only ever uses this surface; it never depends on the
// representation of expressions. Presentation-level simplification of derived
// entries is delegated to github.com/Konstantin8105/sm and falls back to the
// raw expression string when sm cannot handle an input.
package algebra
