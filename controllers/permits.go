package controllers

import (
	"errors"
	"net/http"

	dbpkg "permitportal/db"
	"permitportal/models"
	"permitportal/services"

	"github.com/gin-gonic/gin"
)

func permitService(c *gin.Context) (*services.PermitService, bool) {
	db, ok := dbpkg.DBInstance(c)
	if !ok {
		RespondError(c, "database not configured in context", http.StatusInternalServerError)
		return nil, false
	}
	return services.NewPermitService(db), true
}

// respondServiceError maps service errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		RespondValidationError(c, verr.Details)
	case errors.Is(err, services.ErrNotFound):
		RespondError(c, err.Error(), http.StatusNotFound)
	default:
		log.WithError(err).Error("permit request failed", map[string]interface{}{
			"method": c.Request.Method,
			"route":  c.FullPath(),
		})
		RespondError(c, "internal server error", http.StatusInternalServerError)
	}
}

// POST /permits
func CreatePermit(c *gin.Context) {
	var req models.CreatePermitRequest
	if !BindJSON(c, &req) {
		return
	}

	svc, ok := permitService(c)
	if !ok {
		return
	}

	permit, err := svc.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, permit)
}

// GET /permits
func GetPermits(c *gin.Context) {
	svc, ok := permitService(c)
	if !ok {
		return
	}

	permits, err := svc.FindAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondSuccess(c, permits)
}

// GET /permits/:id
func GetPermitByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	svc, ok := permitService(c)
	if !ok {
		return
	}

	permit, err := svc.FindOne(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondSuccess(c, permit)
}

// PATCH /permits/:id
func UpdatePermit(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req models.UpdatePermitRequest
	if !BindJSON(c, &req) {
		return
	}

	svc, ok := permitService(c)
	if !ok {
		return
	}

	permit, err := svc.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondSuccess(c, permit)
}

// DELETE /permits/:id
func DeletePermit(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	svc, ok := permitService(c)
	if !ok {
		return
	}

	if err := svc.Remove(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /health
func Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
