package config

// Header constants.
const (
	HEADER_KEY_X_CALLER_ID = "X-Caller-Id"
)

const (
	ENV_KEY_APP_ENV = "APP_ENV"
	ENV_KEY_PORT    = "PORT"

	ENV_KEY_DB_DATABASE             = "DB_DATABASE"
	ENV_KEY_DB_PASSWORD             = "DB_PASSWORD"
	ENV_KEY_DB_USER                 = "DB_USER"
	ENV_KEY_DB_PORT                 = "DB_PORT"
	ENV_KEY_DB_HOST                 = "DB_HOST"
	ENV_KEY_DB_MAX_OPEN_CONNECTIONS = "DB_MAX_OPEN_CONNECTIONS"

	ENV_KEY_REDIS_ADDR     = "REDIS_ADDR"
	ENV_KEY_REDIS_PASSWORD = "REDIS_PASSWORD"

	// Fixed super-administrator account, injected at startup.
	ENV_KEY_SUPER_ADMIN_ID = "SUPER_ADMIN_ID"

	ENV_KEY_SMTP_HOST     = "SMTP_HOST"
	ENV_KEY_SMTP_PORT     = "SMTP_PORT"
	ENV_KEY_SMTP_USERNAME = "SMTP_USERNAME"
	ENV_KEY_SMTP_PASSWORD = "SMTP_PASSWORD"

	ENV_KEY_NOTIFY_EMAIL_FROM = "NOTIFY_EMAIL_FROM"
	ENV_KEY_NOTIFY_EMAIL_TO   = "NOTIFY_EMAIL_TO"
)

type ContextKey uint

const (
	_ ContextKey = iota
	CTX_KEY_CALLER_ID
)

// Queue task types.
const (
	TASK_REGISTRY_EVENT = "registry:event"
)

// Redis pub/sub channel for registry events.
const (
	REDIS_CHANNEL_EVENTS = "provreg:events"
)
