package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"campusblog/internal/app/models/dto"
)

// parseObjectID reads a path parameter as a Mongo object id. On a malformed
// id it writes a 400 response and reports failure.
func parseObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid "+param+" format"))
		return primitive.NilObjectID, false
	}
	return id, true
}
