package middleware

import (
	"timeblock/config"
	"timeblock/pkg/log"
	"timeblock/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
	corsConfig   config.CORSConfig
	limiter      *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, cookieConfig config.CookieConfig, corsConfig config.CORSConfig, rateLimit config.RateLimitConfig) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
		corsConfig:   corsConfig,
		limiter:      newRateLimiter(rateLimit.PerMin),
	}
}
