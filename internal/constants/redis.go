package constants

// Redis key prefixes
const (
	// RedisRevokedTokenPrefix namespaces revoked refresh tokens; each key
	// lives until the token it shadows would have expired anyway.
	RedisRevokedTokenPrefix = "auth:revoked:"
)
