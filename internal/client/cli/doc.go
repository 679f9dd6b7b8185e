// Package cli provides the interactive canteen ordering command-line client.
//
// It wires configuration, the local credential store, the API services, and
// an interactive REPL mirroring the screens of the mobile app: browse the
// menu, build a cart, check out, pay, and track the order.
//
// Key features:
//   - Login / guest login / register / logout
//   - Menu browsing with a background "new items" watcher
//   - Cart management and checkout with credit points
//   - Payment confirmation (counter or GCash) and live order tracking
//   - Catering bookings and feedback
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
