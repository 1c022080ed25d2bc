// Package terminal bridges the compositor's cell model onto a tcell screen.
//
// Features:
//   - 24-bit RGB cells with true color and 256-color palette output
//   - Color capability detection through termenv
//   - Full-frame flush of a row-major cell slice into tcell
//   - Best-effort terminal restoration for crash handlers
package terminal
