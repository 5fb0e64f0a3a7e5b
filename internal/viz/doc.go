// Package viz presents puzzle frames in the terminal.
//
// The interactive [Stepper] is a Bubble Tea program that runs on the
// alternate screen and shows one state at a time:
//
//	Enter, Space, j, Down - next state
//	q, Esc, Ctrl+C        - leave
//
// The alternate screen is released on every exit path, including interrupts
// and render failures. [ChangeChart] plots how many cells change between
// consecutive states.
package viz
