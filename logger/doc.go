// Package logger provides structured logging on top of zerolog.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("errors")
//	log.Warn("request rejected", logger.ServiceErrorFields(resp))
package logger
