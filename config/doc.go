// Package config loads serlog settings from YAML or JSON5 files and
// SERLOG_* environment variables, and builds a Logger from them.
//
//	level: info
//	port: /dev/ttyUSB0
//	baud: 115200
//	line_ending: crlf
//	output: logs/console.log
package config
