// Package constants holds provider names shared by configuration and infrastructure.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Mail providers
const (
	MailProviderSMTP = "smtp"
	MailProviderLog  = "log"
)

// Default account roles created by the seed command.
const (
	DefaultAdminEmail = "admin-go@yopmail.com"
	DefaultUserEmail  = "user-go@yopmail.com"
)
