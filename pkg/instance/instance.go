package instance

import (
	"os"

	"github.com/angelmondragon/furniture-catalogue-backend/pkg/env"
)

// GetID identifies the running process in logs. CATALOGUE_INSTANCE_ID wins,
// then the platform dyno name, then the hostname.
func GetID() string {
	if id, ok := env.Lookup("INSTANCE_ID"); ok {
		return id
	}
	if id, ok := env.Lookup("DYNO"); ok {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}
