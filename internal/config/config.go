package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/joeshaw/envdecode"
)

// Config is read once at startup; changes to the environment afterwards are
// not picked up.
type Config struct {
	Port   string `env:"PORT,default=3000"`
	AppEnv string `env:"APP_ENV,default=prod"`

	// MongoURI wins over the user/password pair when both are set.
	MongoURI     string `env:"MONGODB_URI"`
	MongoUser    string `env:"mongoDb_user"`
	MongoPass    string `env:"mongoDb_pass"`
	MongoCluster string `env:"MONGODB_CLUSTER,default=cluster0.fp6ppm2.mongodb.net"`
	DBName       string `env:"DB_NAME,default=homeNest_database"`

	FirebaseProjectID string `env:"FIREBASE_PROJECT_ID"`
	JWTSecret         string `env:"JWT_SECRET"`
}

func Load() (Config, error) {
	var c Config
	if err := envdecode.Decode(&c); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.MongoURI == "" && (c.MongoUser == "" || c.MongoPass == "") {
		return errors.New("MONGODB_URI or both mongoDb_user and mongoDb_pass are required")
	}
	if c.FirebaseProjectID == "" && c.JWTSecret == "" {
		return errors.New("FIREBASE_PROJECT_ID or JWT_SECRET is required")
	}
	return nil
}

// MongoConnectionURI returns MONGODB_URI, or an Atlas SRV URI assembled from
// the credentials and cluster host.
func (c Config) MongoConnectionURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.MongoUser, c.MongoPass),
		Host:     c.MongoCluster,
		Path:     "/",
		RawQuery: "appName=Cluster0",
	}
	return u.String()
}

func (c Config) Addr() string {
	return ":" + c.Port
}
