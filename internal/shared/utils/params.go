package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"skymaint/internal/shared/constants"
	"skymaint/internal/shared/errors"
)

// ParseUintParam parses a positive uint path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(v), nil
}

// ParseUintQuery parses a positive uint query parameter.
func ParseUintQuery(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(v), nil
}

// OwnerID returns the authenticated owner id set by the auth middleware.
func OwnerID(c *gin.Context) (uint, error) {
	v, exists := c.Get(constants.ContextKeyOwnerID)
	if !exists {
		return 0, errors.NewUnauthorizedError("missing owner context")
	}
	ownerID, ok := v.(uint)
	if !ok || ownerID == 0 {
		return 0, errors.NewUnauthorizedError("invalid owner context")
	}
	return ownerID, nil
}

// ActorID returns the authenticated user id set by the auth middleware.
func ActorID(c *gin.Context) (uint, error) {
	v, exists := c.Get(constants.ContextKeyActorID)
	if !exists {
		return 0, errors.NewUnauthorizedError("missing actor context")
	}
	actorID, ok := v.(uint)
	if !ok || actorID == 0 {
		return 0, errors.NewUnauthorizedError("invalid actor context")
	}
	return actorID, nil
}

// ParsePagination extracts page/page_size query parameters with bounds.
func ParsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return page, pageSize
}
