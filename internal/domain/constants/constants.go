// Package constants holds configuration values shared across layers.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Mail providers.
const (
	MailProviderResend = "resend"
	MailProviderLog    = "log"
)

// Catalog resources, as named in events and routes.
const (
	ResourceBrand   = "brand"
	ResourceProduct = "product"
	ResourceBanner  = "banner"
)
