// Package script replays command sequences against a list.
//
// A script is a YAML document naming the list variant and an ordered list
// of steps:
//
//	name: circular walk-through
//	variant: singly-circular
//	strict: false
//	initial: [1, 2]
//	steps:
//	  - {op: insert_after, target: 2, value: 3}
//	  - {op: delete_value, value: 1}
//	  - {op: print}
//
// Ops:
//
//	linear only:   insert_head, insert_tail, insert_at, delete_at, middle
//	circular only: insert_after, delete_value, append
//	any variant:   print, len, find, clear
//
// Outcomes such as "not found" or "list is empty" are written to the output
// and the run continues; with strict: true the first failing step aborts the
// run with the wrapped core sentinel.
//
// The demonstration scripts shipped in demos/ are available through Demo
// and Demos.
package script
