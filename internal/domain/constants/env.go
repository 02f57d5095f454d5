package constants

// Deployment environments accepted in the env.env config key.
const (
	EnvLocal      = "local"
	EnvProduction = "production"
)
