package config

import "time"

const defaultDotEnvPath = ".env"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "go-key-keeper",
			TokenDuration:    12 * time.Hour,
			OverdueThreshold: 48 * time.Hour,
			OfficeName:       "Almiron Propiedades",
			Version:          "dev",
			LogLevel:         "debug",
		},
		Storage: Storage{
			Driver: DriverFile,
			Files: Files{
				StatePath:   "key-keeper.json",
				SessionPath: "key-keeper-session.json",
			},
			Redis: Redis{KeyPrefix: "key-keeper:"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			GRPCAddress:    "localhost:9090",
			RequestTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			RefreshInterval:       30 * time.Second,
			OverdueReportInterval: time.Hour,
		},
	}
}
