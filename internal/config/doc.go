// Package config loads search settings from TOML.
//
// A configuration file has two sections:
//
//	[find]
//	case_sensitive = false
//	wrap = true
//	regex = false
//	engine = "re2"
//	highlight_class = "pm-find-text"
//
//	[log]
//	level = "warn"
//
// Missing keys keep their default values. Unknown keys are rejected.
// Settings can be overridden from the environment with [Config.ApplyEnv],
// using variables such as QUARRY_FIND_ENGINE and QUARRY_LOG_LEVEL.
package config
