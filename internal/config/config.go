package config // package config loads application configuration from environment variables

import (
	"fmt"     // fmt builds the MongoDB connection URI from its parts
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strings" // strings splits the comma-separated origin list
)

// Config holds all runtime configuration values. Each field corresponds to
// one or more environment variables. Database credentials, the signing
// secret and the listening port are all externally supplied; nothing here
// is read from disk directly (main loads .env via godotenv before Load runs).
type Config struct {
	Env         string   // application environment (e.g. "dev", "prod")
	Port        string   // HTTP port to listen on
	MongoURI    string   // full MongoDB connection string
	DBName      string   // database holding the cars and booking collections
	JWTSecret   string   // secret used to sign session JWTs
	CORSOrigins []string // frontend origins allowed to send credentials
}

// defaultOrigins are the frontend deployments allowed to call this API with
// cookies attached. Overridable through CORS_ORIGINS (comma separated).
var defaultOrigins = []string{
	"http://localhost:5173",
	"https://renthox.web.app",
}

// Load reads configuration values from environment variables and returns a
// Config. The signing secret is enforced by must() and a missing value
// causes the program to exit with a fatal log message. The Mongo URI is
// taken from MONGODB_URI when set; otherwise it is assembled from the
// DB_USER/DB_PASS cluster credentials.
func Load() Config {
	return Config{
		Env:         getenv("APP_ENV", "dev"),    // environment (dev/test/prod)
		Port:        getenv("PORT", "5000"),      // port to bind the HTTP server
		MongoURI:    mongoURI(),                  // connection string (see below)
		DBName:      getenv("DB_NAME", "car-db"), // database name
		JWTSecret:   must("SECRET_KEY"),          // secret used for signing session tokens
		CORSOrigins: corsOrigins(),               // allowed cross-origin callers
	}
}

// mongoURI resolves the MongoDB connection string. MONGODB_URI wins when
// present; otherwise the managed-cluster URI is built from DB_USER and
// DB_PASS, both of which are then required.
func mongoURI() string {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		return uri
	}
	user := must("DB_USER")
	pass := must("DB_PASS")
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@cluster0.03fi3.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0",
		user, pass)
}

// corsOrigins parses the CORS_ORIGINS variable as a comma-separated list,
// falling back to the fixed frontend origins when unset.
func corsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return defaultOrigins
	}
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return defaultOrigins
	}
	return out
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
