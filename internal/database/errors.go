// internal/database/errors.go
package database

import (
	"errors"

	"codeleap/internal/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// Mongo server error codes that mean the caller's credentials were rejected
const (
	codeUnauthorized         = 13
	codeAuthenticationFailed = 18
)

// classifyMongoError turns a permission failure from the server into an
// auth-classified AppError so callers can pick the local-storage fallback
// path. Everything else passes through as the supplied fallback error.
func classifyMongoError(err error, fallback error) error {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.Code == codeUnauthorized || cmdErr.Code == codeAuthenticationFailed {
			return utils.NewAppError(utils.ErrPermissionDenied, "remote store denied access", err)
		}
	}
	return fallback
}
