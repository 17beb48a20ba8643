// Package config loads the agent settings.
//
// Credentials, endpoints and engine defaults come from the environment,
// optionally seeded from a .env file. A YAML tuning file may then override the
// engine knobs (strategy, alpha, heuristic) without touching the environment:
//
//	kind: tuning
//	def:
//	  strategy: astar
//	  alpha: 0.5
//	  heuristic: manhattan
//	  scale: 1000
//	  order: true
//	  corners: true
//
// Load never exits the process; callers decide what a missing value means.
package config
