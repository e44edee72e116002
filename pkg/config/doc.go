// Package config provides configuration management for the compliance
// server.
//
// # Configuration Sources
//
// Values are resolved in order, later sources winning:
//
//   - Built-in defaults
//   - $COMPLY_CONFIG_PATH/complianceos.yml (default /etc/complianceos)
//   - COMPLY_* environment variables
//
// The source of every attribute is tracked and shown by
// "complyctl configuration show".
//
// # Key Configuration Options
//
//   - COMPLY_PORT, COMPLY_BIND_ADDRESS: HTTP listener
//   - COMPLY_LOG_LEVEL, COMPLY_LOG_FORMAT: zap logger
//   - COMPLY_DATABASE_URL: Postgres store (memory when empty)
//   - COMPLY_REDIS_URL: Redis notifier (memory when empty)
//   - COMPLY_POLICY_FILE: default role grants
//   - COMPLY_AUDIT_ENABLED, COMPLY_AUDIT_DATABASE_URL: audit trail
//
// Watch reloads the file on change so the log level can be adjusted on a
// running server.
package config
