package errors

import (
	"errors"
	"net/http"
	"strings"

	"oakline-partners/pkg/cache"
	"oakline-partners/pkg/funding"
	"oakline-partners/pkg/homefacts"

	"go.mongodb.org/mongo-driver/mongo"
)

// MapError translates lower-layer failures into the AppError the handler
// envelope renders. Errors that are already AppErrors pass through untouched.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, homefacts.ErrNoPropertyFound):
		return mapped(ErrCodePropertyNotFound, MsgPropertyNotFound, http.StatusNotFound, err)
	case isProviderError(err):
		return mapped(ErrCodeProviderUnavailable, MsgProviderUnavailable, http.StatusServiceUnavailable, err)
	case errors.Is(err, funding.ErrSubmissionRejected):
		return mapped(ErrCodeSubmissionRejected, MsgSubmissionRejected, http.StatusUnprocessableEntity, err)
	case isFundingError(err):
		return mapped(ErrCodeServiceUnavailable, MsgServiceUnavailable, http.StatusServiceUnavailable, err)
	case errors.Is(err, mongo.ErrNoDocuments):
		return mapped(ErrCodeLeadNotFound, MsgLeadNotFound, http.StatusNotFound, err)
	case isCacheError(err):
		return mapped(ErrCodeServiceUnavailable, MsgServiceUnavailable, http.StatusServiceUnavailable, err)
	case strings.Contains(err.Error(), "street address and city are required"):
		// Raw validation errors reach here only from paths that skip the
		// service-layer wrapping.
		return mapped(ErrCodeInvalidAddress, MsgInvalidAddress, http.StatusBadRequest, err)
	default:
		return mapped(ErrCodeInternal, MsgInternalError, http.StatusInternalServerError, err)
	}
}

func mapped(code, userMessage string, status int, err error) *AppError {
	return &AppError{
		TechnicalMessage: err.Error(),
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    err,
	}
}

func isProviderError(err error) bool {
	var providerErr *homefacts.Error
	return errors.As(err, &providerErr)
}

func isFundingError(err error) bool {
	var fundingErr *funding.Error
	return errors.As(err, &fundingErr)
}

func isCacheError(err error) bool {
	var cacheErr *cache.CacheError
	return errors.As(err, &cacheErr)
}
