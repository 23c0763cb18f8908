// Package constants holds identifiers shared between configuration and infrastructure.
package constants

const (
	// EnvDevelop marks a local development deployment.
	EnvDevelop = "develop"

	// PubSubProviderLocal pushes events over HTTP to a local endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// StorageDriverMemory keeps all entities in process memory.
	StorageDriverMemory = "memory"
	// StorageDriverPostgres persists entities in PostgreSQL through GORM.
	StorageDriverPostgres = "postgres"
)
