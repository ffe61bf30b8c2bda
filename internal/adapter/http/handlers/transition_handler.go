package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "atelier_backoffice/internal/adapter/http/dto/request"
	response "atelier_backoffice/internal/adapter/http/dto/response"
	"atelier_backoffice/internal/domain/entities"
	"atelier_backoffice/internal/domain/workflow"
	"atelier_backoffice/internal/usecase"
	"atelier_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

const (
	headerActorID   = "X-Actor-Id"
	headerActorRole = "X-Actor-Role"
)

var (
	errMissingActor      = pkg.NewDomainErrorSimple("MISSING_ACTOR", "Actor identity headers are required", http.StatusBadRequest)
	errUnknownEntityType = pkg.NewDomainErrorSimple("UNKNOWN_ENTITY_TYPE", "Unknown entity type", http.StatusNotFound)
)

// TransitionHandler exposes the single transition operation over HTTP.
//
// Actor identity arrives via X-Actor-Id / X-Actor-Role headers, resolved by
// the gateway in front of this service; this handler trusts them as-is.

type TransitionHandler struct {
	usecase usecase.ITransitionUseCase
}

func NewTransitionHandler(uc usecase.ITransitionUseCase) *TransitionHandler {
	return &TransitionHandler{usecase: uc}
}

// ApplyTransition godoc
//
//	@Summary		Apply a lifecycle transition
//	@Description	Applies one named action to a booking, repair request or investor deposit and appends an audit entry.
//	@Tags			workflows
//	@Accept			json
//	@Produce		json
//	@Param			entity_type	path		string	true	"Entity type (booking, repair, deposit)"
//	@Param			id			path		string	true	"Entity id"
//	@Param			action		path		string	true	"Action name"
//	@Param			X-Actor-Id	header		string	true	"Acting user id"
//	@Param			X-Actor-Role	header	string	true	"Acting user role"
//	@Success		200	{object}	response.TransitionResponse
//	@Failure		400	{object}	pkg.HTTPError
//	@Failure		403	{object}	pkg.HTTPError
//	@Failure		404	{object}	pkg.HTTPError
//	@Failure		409	{object}	pkg.HTTPError
//	@Failure		422	{object}	pkg.HTTPError
//	@Router			/v1/workflows/{entity_type}/{id}/{action} [post]
func (h *TransitionHandler) ApplyTransition(c *gin.Context) {
	entityType, ok := workflow.ParseEntityType(c.Param("entity_type"))
	if !ok {
		c.JSON(errUnknownEntityType.HTTPStatus, errUnknownEntityType.ToHTTPError())
		return
	}
	entityID := c.Param("id")
	action := workflow.Action(c.Param("action"))

	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payload, err := request.DecodeTransitionPayload(entityType, action, json.RawMessage(raw))
	if err != nil {
		log.Printf("[transition][handler] payload decode failed entity_type=%s id=%s action=%s err=%v", entityType, entityID, action, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYLOAD", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Apply(c.Request.Context(), usecase.TransitionCommand{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Actor:      actor,
		Payload:    payload,
	})
	if err != nil {
		appErr := mapTransitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransitionResult(result))
}

func actorFromHeaders(c *gin.Context) (entities.Actor, *pkg.AppError) {
	actor := entities.Actor{
		ID:   strings.TrimSpace(c.GetHeader(headerActorID)),
		Role: entities.Role(strings.TrimSpace(c.GetHeader(headerActorRole))),
	}
	if actor.ID == "" || !actor.Role.Valid() {
		return entities.Actor{}, errMissingActor
	}
	return actor, nil
}

func mapTransitionError(err error) *pkg.AppError {
	var we *workflow.Error
	if errors.As(err, &we) {
		switch we.Kind {
		case workflow.KindNotFound:
			return pkg.NewDomainErrorSimple("NOT_FOUND", we.Reason, http.StatusNotFound)
		case workflow.KindInvalidTransition:
			return pkg.NewDomainErrorSimple("INVALID_TRANSITION", we.Reason, http.StatusConflict)
		case workflow.KindUnauthorized:
			return pkg.NewDomainErrorSimple("UNAUTHORIZED_TRANSITION", we.Reason, http.StatusForbidden)
		case workflow.KindPreconditionFailed:
			return pkg.NewDomainErrorSimple("PRECONDITION_FAILED", we.Reason, http.StatusUnprocessableEntity)
		case workflow.KindConflictingState:
			return pkg.NewDomainErrorSimple("CONFLICTING_STATE", we.Reason, http.StatusConflict)
		}
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidEntityID), errors.Is(err, usecase.ErrInvalidActor), errors.Is(err, usecase.ErrInvalidPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownEntityType):
		return pkg.NewDomainErrorSimple("UNKNOWN_ENTITY_TYPE", "Unknown entity type", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentVerifierNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_VERIFIER_UNAVAILABLE", "Payment verification is unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
