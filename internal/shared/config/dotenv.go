package config

import "github.com/joho/godotenv"

// loadEnvFiles loads KEY=VALUE files that exist, never overriding variables
// already present in the process environment.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		_ = godotenv.Load(path)
	}
}
