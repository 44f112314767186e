// Package logger provides structured logging for restbase using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get(logger.ComponentClient)
//	log.Debug("dispatching", logger.Fields("endpoint", "get_user"))
package logger
