package handlers

import (
	"errors"
	"net/http"

	request "electripro/internal/adapter/http/dto/request"
	response "electripro/internal/adapter/http/dto/response"
	"electripro/internal/domain/document"
	"electripro/internal/usecase"
	"electripro/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles the estimate editor and dashboard requests. The
// owner id is always taken from the session middleware, never from the
// payload.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate saves a new estimate: the form payload becomes a draft, the
// draft builds a snapshot with a fresh id and today's date, and the snapshot
// is committed in one step.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	owner, ok := ownerFrom(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}

	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	d, err := payload.ToDraft()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), owner, d.Build("", ""))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(saved))
}

// UpdateEstimate replaces an existing estimate, keeping its id and issue
// date while totals are recomputed from the submitted line items.
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	owner, ok := ownerFrom(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}

	existing, err := h.usecase.GetByID(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	d, err := payload.ToDraft()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), owner, d.Build(existing.ID, existing.Date))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(saved))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	owner, ok := ownerFrom(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}

	e, err := h.usecase.GetByID(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(e))
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	owner, ok := ownerFrom(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}

	list, err := h.usecase.ListByOwner(c.Request.Context(), owner)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimates(list))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	owner, ok := ownerFrom(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteByID(c.Request.Context(), owner, c.Param("id")); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *EstimateHandler) GetStats(c *gin.Context) {
	owner, ok := ownerFrom(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}

	stats, err := h.usecase.StatsByOwner(c.Request.Context(), owner)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStats(stats))
}

// GetDocument renders the printable document for a saved estimate.
func (h *EstimateHandler) GetDocument(c *gin.Context) {
	owner, ok := ownerFrom(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}

	e, err := h.usecase.GetByID(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.DocumentResponse{Document: document.Render(e)})
}

// GetShareMessage composes the share-message string for a saved estimate.
func (h *EstimateHandler) GetShareMessage(c *gin.Context) {
	owner, ok := ownerFrom(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}

	e, err := h.usecase.GetByID(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ShareResponse{Message: document.ShareMessage(e)})
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID), errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
