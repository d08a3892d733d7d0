package constants

import (
	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	PoolKey         ContextKey = "pool"
	TxKey           ContextKey = "tx"
	LoggerKey       ContextKey = "logger"
	CallerKey       ContextKey = "caller"
	RequestStart    ContextKey = "request-start"
	RequestIDKey    ContextKey = "request-id"
	AppKey          ContextKey = "app"
)

// Validate is the shared validator instance used by DTO Ok() methods.
var Validate = validator.New(validator.WithRequiredStructEnabled())
