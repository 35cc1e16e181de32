// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, and request body size limits.
// AppConfig is where everything specific to StudyHub lives: the MongoDB
// connection, JWT signing, and the document upload directory.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Token configuration
	JWTSecret string        // Secret key for signing bearer tokens (must be strong in production)
	JWTExpiry time.Duration // Lifetime of issued tokens

	// Document upload configuration
	UploadDir      string // Directory where uploaded group documents are stored
	UploadMaxBytes int64  // Maximum accepted upload size in bytes

	// Database operation timeout tiers (see internal/app/system/timeouts)
	DBTimeoutPing   time.Duration // Health-check pings
	DBTimeoutShort  time.Duration // Single-document reads
	DBTimeoutMedium time.Duration // List queries and writes
	DBTimeoutLong   time.Duration // Uploads and multi-collection operations
}
