// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level, and CORS. AppConfig is everything specific
// to this application: the MongoDB connection, the token signing secret,
// and domain defaults.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Bearer token configuration
	JWTSecret string        // Secret for signing bearer tokens (must be strong in production)
	TokenTTL  time.Duration // How long issued tokens stay valid

	// Activity feed
	RecentActivityLimit int // Max entries returned by /api/activities/recent
}
