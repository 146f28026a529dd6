// Package session implements the interactive catalog session: the add loop,
// the price-sorted listing with its total, exact-name search and the command
// menu that moves between them.
//
// # State machine
//
// A Session is driven by a single loop in Run over four states:
//
//	Adding    -> Listing            (quit token typed at any add prompt)
//	Listing   -> Adding | Searching | Exiting   (menu command)
//	Searching -> Adding | Searching | Exiting   (menu command after results)
//	Searching -> Exiting            (empty or quit search query)
//
// Each state handler returns the next state, so the call stack stays flat no
// matter how many add/list/search cycles a session goes through.
//
// # Cancellation
//
// Prompts return a Result that is either a value or Cancelled. The quit token
// is recognised case-insensitively after trimming. End of input on any read
// ends the session cleanly.
package session
