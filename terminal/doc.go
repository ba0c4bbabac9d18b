// Package terminal holds the small amount of terminal handling that sits outside tcell:
// color mode selection, interactive tty detection and emergency restoration after a crash.
package terminal
