package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/DeepakUp9/linkedin-system-sub001/internal/connection"
	"github.com/DeepakUp9/linkedin-system-sub001/pkg/middleware"
	"github.com/DeepakUp9/linkedin-system-sub001/pkg/models"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the acting user's id. Authentication happens upstream;
// the gateway injects this header after validating the session.
const UserIDHeader = "X-User-ID"

// ConnectionHandler handles connection lifecycle HTTP requests.
type ConnectionHandler struct {
	Service *connection.Service
}

// NewConnectionHandler creates a new ConnectionHandler.
func NewConnectionHandler(svc *connection.Service) *ConnectionHandler {
	return &ConnectionHandler{Service: svc}
}

// actingUser extracts the acting user id, failing the request when absent.
func actingUser(c *gin.Context) (int64, bool) {
	raw := c.GetHeader(UserIDHeader)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid " + UserIDHeader + " header"})
		return 0, false
	}
	return id, true
}

func connectionID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "connection not found"})
		return 0, false
	}
	return id, true
}

// respondConnectionError maps domain errors onto HTTP statuses.
func respondConnectionError(c *gin.Context, err error) {
	var invalid *connection.InvalidTransitionError
	var dup *connection.DuplicateRequestError
	switch {
	case errors.Is(err, connection.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "connection not found"})
	case errors.Is(err, connection.ErrSelfConnection):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &invalid):
		c.JSON(http.StatusConflict, gin.H{"error": invalid.Error()})
	case errors.As(err, &dup):
		c.JSON(http.StatusConflict, gin.H{"error": dup.Error()})
	default:
		log.Printf("[API] Connection operation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// SendRequest godoc
// @Summary      Send a connection request
// @Description  Creates a PENDING connection and publishes a connection.requested event
// @Tags         connections
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    int                           true  "Acting user id"
// @Param        request    body      models.SendConnectionRequest  true  "Connection request"
// @Success      201        {object}  models.Connection
// @Failure      400        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /connections [post]
func (h *ConnectionHandler) SendRequest(c *gin.Context) {
	correlationID := middleware.GetCorrelationID(c)
	actorID, ok := actingUser(c)
	if !ok {
		return
	}

	var req models.SendConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("[API] SendRequest requester_id=%d addressee_id=%d correlation_id=%s",
		actorID, req.AddresseeID, correlationID)

	conn, err := h.Service.SendRequest(actorID, req.AddresseeID, correlationID)
	if err != nil {
		respondConnectionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conn)
}

// Accept godoc
// @Summary      Accept a connection request
// @Tags         connections
// @Produce      json
// @Param        X-User-ID  header    int  true  "Acting user id"
// @Param        id         path      int  true  "Connection ID"
// @Success      200        {object}  models.Connection
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /connections/{id}/accept [post]
func (h *ConnectionHandler) Accept(c *gin.Context) {
	h.respond(c, h.Service.Accept)
}

// Reject godoc
// @Summary      Reject a connection request
// @Tags         connections
// @Produce      json
// @Param        X-User-ID  header    int  true  "Acting user id"
// @Param        id         path      int  true  "Connection ID"
// @Success      200        {object}  models.Connection
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /connections/{id}/reject [post]
func (h *ConnectionHandler) Reject(c *gin.Context) {
	h.respond(c, h.Service.Reject)
}

// Block godoc
// @Summary      Block the requester of a pending connection
// @Tags         connections
// @Produce      json
// @Param        X-User-ID  header    int  true  "Acting user id"
// @Param        id         path      int  true  "Connection ID"
// @Success      200        {object}  models.Connection
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /connections/{id}/block [post]
func (h *ConnectionHandler) Block(c *gin.Context) {
	h.respond(c, h.Service.Block)
}

func (h *ConnectionHandler) respond(c *gin.Context, op func(id, actorID int64, correlationID string) (*models.Connection, error)) {
	correlationID := middleware.GetCorrelationID(c)
	actorID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := connectionID(c)
	if !ok {
		return
	}

	conn, err := op(id, actorID, correlationID)
	if err != nil {
		respondConnectionError(c, err)
		return
	}
	c.JSON(http.StatusOK, conn)
}

// Cancel godoc
// @Summary      Cancel a pending connection request
// @Description  Deletes the record and publishes a connection.cancelled event
// @Tags         connections
// @Produce      json
// @Param        X-User-ID  header  int  true  "Acting user id"
// @Param        id         path    int  true  "Connection ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /connections/{id}/cancel [post]
func (h *ConnectionHandler) Cancel(c *gin.Context) {
	h.deleteOp(c, h.Service.Cancel)
}

// Remove godoc
// @Summary      Remove an accepted connection
// @Description  Deletes the record and publishes a connection.removed event
// @Tags         connections
// @Produce      json
// @Param        X-User-ID  header  int  true  "Acting user id"
// @Param        id         path    int  true  "Connection ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /connections/{id} [delete]
func (h *ConnectionHandler) Remove(c *gin.Context) {
	h.deleteOp(c, h.Service.Remove)
}

func (h *ConnectionHandler) deleteOp(c *gin.Context, op func(id, actorID int64, correlationID string) error) {
	correlationID := middleware.GetCorrelationID(c)
	actorID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := connectionID(c)
	if !ok {
		return
	}

	if err := op(id, actorID, correlationID); err != nil {
		respondConnectionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List godoc
// @Summary      List the acting user's connections
// @Tags         connections
// @Produce      json
// @Param        X-User-ID  header    int     true   "Acting user id"
// @Param        state      query     string  false  "Filter by state"
// @Success      200        {array}   models.Connection
// @Failure      500        {object}  map[string]string
// @Router       /connections [get]
func (h *ConnectionHandler) List(c *gin.Context) {
	actorID, ok := actingUser(c)
	if !ok {
		return
	}

	state := models.ConnectionState(c.Query("state"))
	conns, err := h.Service.Store.ListByUser(actorID, state)
	if err != nil {
		log.Printf("[API] Error listing connections: %v user_id=%d", err, actorID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch connections"})
		return
	}
	c.JSON(http.StatusOK, conns)
}
