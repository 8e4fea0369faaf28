package contract

import (
	"time"
)

// IConfigProvider exposes the configuration values usecases and wiring need.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetAccessTokenExpiry() time.Duration
	GetAuthPollInterval() time.Duration
	GetChannelPollInterval() time.Duration
}
