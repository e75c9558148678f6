// SPDX-License-Identifier: MIT

// Package builder produces deterministic weighted graphs for demos, tests
// and benchmarks, and ships the ready-made example graphs a learner can load.
//
// The package offers the following key components:
//
//   - Constructors (closures applied by BuildGraph in order):
//     – Path(n), Cycle(n), Star(n), Wheel(n), Complete(n), Grid(r, c),
//     RandomSparse(n, p).
//   - Configuration primitives:
//     – BuilderOption:     mutates builderConfig before construction.
//     – builderConfig:     RNG, ID scheme and weight function.
//   - Vertex-ID schemes (IDFn):
//     – DefaultIDFn ("0","1",…), SymbolIDFn ("A"…"Z"),
//     ExcelColumnIDFn ("A",…,"Z","AA",…), SymbolNumberIDFn(prefix).
//   - Edge-weight distributions (WeightFn), all strictly positive:
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//   - Presets: named example graphs embedded as YAML, with node labels and a
//     suggested start and finish (Preset, Presets).
//
// Guarantees:
//
//   - Same options, seed and constructor order produce identical graphs.
//   - Every generated weight is ≥ 1, matching the host rule that weights
//     are positive.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors wrapped with the constructor name.
package builder
