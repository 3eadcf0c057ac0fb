package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "success"
	APIStatusError APIStatus = "error"

	CachePrefixFlightSearch CachePrefix = "FS_"
	CachePrefixAircraft     CachePrefix = "AC_"
)

const (
	// SessionTokenTTLHours bounds the lifetime of an issued session token
	SessionTokenTTLHours = 12
)
