// Package config loads typed configuration structs from environment
// variables, reading a .env file first when one exists.
//
// Fields are declared with `env` struct tags:
//
//	type ServerConfig struct {
//	    Addr string `env:"ADDR" envDefault:":8080"`
//	    Env  string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
package config
