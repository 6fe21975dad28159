package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Prepwise/internal/dto"
)

// userIDKey is the gin context key the middleware stores the requester under.
const userIDKey = "userID"

// UserHeader carries the authenticated user's id, injected by the auth
// gateway in front of this service. Authentication itself happens upstream;
// this service only enforces ownership.
const UserHeader = "X-User-ID"

// RequireUser rejects requests without a valid user identity before any
// handler logic runs.
func RequireUser() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := ctx.GetHeader(UserHeader)
		if raw == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing " + UserHeader + " header"})
			return
		}
		val, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || val == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid " + UserHeader + " header"})
			return
		}
		ctx.Set(userIDKey, uint(val))
		ctx.Next()
	}
}

// UserID returns the requester set by RequireUser.
func UserID(ctx *gin.Context) uint {
	return ctx.GetUint(userIDKey)
}
