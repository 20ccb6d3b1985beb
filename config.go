package main

import (
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

// ServerConfig holds the tunables of the HTTP surface. Everything has a
// working default; a TOML file and the PORT env var can override it.
type ServerConfig struct {
	Port         string   `toml:"port"`
	AllowOrigins []string `toml:"allow_origins"`
	MaxUploadMB  int64    `toml:"max_upload_mb"`
}

func defaultConfig() ServerConfig {
	return ServerConfig{
		Port:         "8080",
		AllowOrigins: []string{"http://localhost:3000"},
		MaxUploadMB:  32,
	}
}

// loadConfig reads PNGME_CONFIG (or ./config.toml) if present, then
// applies the PORT env override. A missing file is not an error.
func loadConfig() ServerConfig {
	conf := defaultConfig()

	path := os.Getenv("PNGME_CONFIG")
	if path == "" {
		path = "config.toml"
	}
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
	} else {
		log.Printf("Loaded config from %s", path)
	}

	if port := os.Getenv("PORT"); port != "" {
		conf.Port = port
	}

	return conf
}
