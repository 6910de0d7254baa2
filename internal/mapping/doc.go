// Package mapping loads binding declaration files, validates them and
// builds the bindings they declare.
//
// A declaration file names pairs of objects and member paths and the mode
// that links them. Objects are referred to by name; the caller supplies the
// live objects when building.
//
// # Schema Overview
//
//	version: "1"
//	bindings:
//	  - name: score-label
//	    source: player
//	    source_path: Stats.Score
//	    source_type: propbind/scene.Player   # optional, enables static checks
//	    target: hud
//	    target_path: Score.Text
//	    target_type: propbind/scene.HUD
//	    mode: one_time                       # default one_way_to_target
//	    detect: changes                      # default legacy
//	    conversions: [safe_number, text_number]  # default all
//
// Files ending in .toml are read as TOML with the same keys; everything
// else is read as YAML. Unknown keys are rejected in both formats.
//
// # Validation
//
// Validate reports structural problems (missing names, objects or paths,
// unknown modes, duplicate names) and, given a type graph, resolves both
// paths statically and checks that the members the mode writes are
// writable and the members it copies from are readable.
package mapping
