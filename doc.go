// Package vacplan plans vacuum-agent routes on rectangular grid worlds:
// parse a world, search it, print the plan.
//
// 🚀 What is vacplan?
//
//	A small, deterministic planning library plus CLI that brings together:
//		• World model: text-format parsing, validation, immutable grid access
//		• State space: comparable (position, dirt bitset) states
//		• Strategies: depth-first (any plan) and uniform-cost (shortest plan)
//		• Reporting: action labels plus generated/expanded counters
//		• Replay: strict plan validation, independent of the strategies
//
// ✨ Why choose vacplan?
//
//   - Deterministic – fixed successor order and seeded tie-breaks, so two
//     runs on one world always print the same plan
//   - Honest counters – generated/expanded reflect real frontier traffic,
//     stale uniform-cost pops included
//   - Pure computation – strategies never touch the filesystem or stdout;
//     the CLI owns all I/O
//
// Everything is organized under three packages:
//
//	world/       - grid model: parsing, validation, cell/dirt accessors
//	search/      - state space, DepthFirst, UniformCost, Replay, Result
//	cmd/planner/ - the command-line front end
//
// Quick ASCII example (1×3 world, agent west, dirt center, wall east):
//
//	@*#
//
//	the shortest plan is E then V: step east, vacuum.
//
// See README.md for the world file format and CLI usage.
//
//	go get github.com/ZAXBIE/vacplan
package vacplan
