// Package cli provides the interactive demomarket terminal client.
//
// It opens the configured key-value backend, wires the marketplace
// services on top of it and runs a REPL that acts as the caller of those
// services: it reads the session to know who is logged in, prices the cart
// against the catalog and hands the result to checkout.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends. See runREPL for the command list.
package cli
