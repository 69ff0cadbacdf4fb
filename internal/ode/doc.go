// Package ode provides the small amount of machinery the demos need to
// integrate ordinary differential equations.
//
// The package defines:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Stepper]: numerical integrator interface
//   - [Solve]: fixed-step integration loop
//
// # Example
//
//	sys := models.NewPendulum()
//	res, _ := ode.Solve(ctx, sys, ode.NewRK4(), sys.DefaultState(), ode.DefaultConfig())
//
// Solve is synchronous and single-threaded; a Stepper holds scratch buffers
// and must not be shared between concurrent solves.
package ode
