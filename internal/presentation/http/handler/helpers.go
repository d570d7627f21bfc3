package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/domain/enum"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) enum.Role {
	roleVal, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	role, ok := roleVal.(string)
	if !ok {
		return ""
	}
	return enum.Role(role)
}

// IsKitchen checks if the caller holds the kitchen role
func IsKitchen(c *gin.Context) bool {
	return GetUserRole(c) == enum.RoleKitchen
}

// parseID parses a UUID path parameter
func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
