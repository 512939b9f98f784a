// Package builder assembles list fixtures with "functional-options" style
// configuration: a value generator, an optional seeded RNG and the list
// options handed to every constructed list.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, value generator and list options.
//   - Value generators (ValueFn implementations):
//     – AscendingValues:  start, start+step, start+2·step, …
//     – ConstantValue:    the same payload at every index.
//     – UniformValues:    uniform draws in [min,max]; needs an RNG.
//     – SliceValues:      replays a fixed slice.
//   - Entry points:
//     – Values:           the generated payloads as a slice.
//     – Build:            a core.Sequence of the requested core.Variant.
//     – SinglyLinear, DoublyLinear, SinglyCircular, DoublyCircular: typed
//       constructors over the same configuration.
//
// Guarantees:
//
//   - Determinism: the same n, options and seed produce the same list.
//   - Fast-fail on meaningless option values via panics in option and
//     generator constructors (nil functions, min > max).
//   - Runtime problems surface as wrapped sentinels: ErrBadSize,
//     ErrNeedRandSource, core.ErrUnknownVariant.
package builder
