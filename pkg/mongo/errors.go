package mongo

import "errors"

var (
	ErrEmptyConnectionURL     = errors.New("empty mongo connection URL, use MONGODB_URL env var")
	ErrInvalidConfig          = errors.New("invalid mongo client configuration")
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
)
