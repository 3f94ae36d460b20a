// Package config loads sysext settings from a YAML file and the environment
// and builds configured stores, runners and notifiers from them.
//
// A missing file is not an error: Load falls back to Default. Environment
// variables override file values:
//
//	SYSEXT_DEBUG       "true" enables debug logging
//	SYSEXT_LOG_FORMAT  "text" or "json"
//	SYSEXT_TOUCH_PATH  touch utility used for POSIX timestamps
//	SYSEXT_PROC_ROOT   procfs mount point on Linux
//
// Example file:
//
//	log:
//	  level: debug
//	  format: json
//	touch:
//	  path: /usr/bin/touch
//	  timeout: 5s
//	  circuitBreakerFailures: 3
//	  circuitBreakerTimeout: 30s
//	process:
//	  procRoot: /proc
//	  pollInterval: 250ms
//	notify:
//	  appName: Nightly Jobs
//	  timeout: 5s
package config
