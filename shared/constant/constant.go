package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID contextKey = "user_id"
)

const (
	// FilterAll is the sentinel category meaning "no category filter".
	FilterAll = "All"

	// LatestListingLimit is the fixed page size of the latest-properties
	// listing. Not configurable.
	LatestListingLimit = 5
)

const (
	// SessionCurrent addresses the active session without an explicit id.
	SessionCurrent = "current"
)

const (
	CallbackParamUserID = "userId"
	CallbackParamSecret = "secret"
)

const (
	RequestHeaderContentType = "Content-Type"
	RequestHeaderProject     = "X-Appwrite-Project"
	RequestHeaderSession     = "X-Appwrite-Session"
	RequestHeaderPlatform    = "X-Appwrite-Platform"
	RequestHeaderSDK         = "X-Sdk-Name"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	// System attributes assigned by the document store.
	FieldDocumentID = "$id"
	FieldCreatedAt  = "$createdAt"
	FieldUpdatedAt  = "$updatedAt"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelClientScopeName     = "client"
	OtelExternalScopeName   = "external"

	OtelCollectionAttributeKey = "collection"
	OtelQueryAttributeKey      = "queries"
)

const (
	ClientEnvDevelopment = "development"
	ClientEnvProduction  = "production"
)

const (
	Empty = ""
)
