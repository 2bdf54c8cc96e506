package constants

const (
	NetworkVisa       = "visa"
	NetworkMastercard = "mastercard"
	NetworkAmex       = "amex"
	NetworkDiscover   = "discover"
	NetworkUnknown    = "unknown"
)

const (
	MinCardLength = 13
	MaxCardLength = 19
)

const (
	DefaultRunAddr        = ":3001"
	DefaultCORSOrigin     = "http://localhost:5173"
	DefaultRateLimitRPS   = 10
	DefaultRateLimitBurst = 20
)
