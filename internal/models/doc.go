// Package models holds the right-hand-side functions the demos integrate.
//
// Each model implements [ode.System], defining the differential equations
// governing its evolution:
//
//   - [Pendulum]: damped rigid pendulum
//   - [Harmonic]: undamped spring-mass oscillator
//   - [VanDerPol]: self-sustaining nonlinear oscillator
//   - [Lorenz]: butterfly attractor
//   - [LotkaVolterra]: predator-prey population model
//
// Models with conserved energy also implement [ode.Hamiltonian], and all of
// them implement [ode.Tunable] so the live view can adjust parameters.
package models
