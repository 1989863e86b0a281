// Package config loads service configuration with Viper.
//
// LoadConfig looks for a config.yml and a .env file in the usual locations
// (cmd/<service>/, config/, the working directory), binds environment
// variables and unmarshals everything into the caller's struct.
//
// # Usage
//
//	var cfg config.ServiceConfig
//	if err := config.LoadConfig("svcerrors-demo", &cfg); err != nil {
//	    return err
//	}
//	cfg.ApplyDefaults()
//
// Environment variables override file values: ERRORS_EXPOSE_DETAILS=false
// maps to errors.expose_details.
package config
