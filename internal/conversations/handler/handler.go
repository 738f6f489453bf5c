package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"buildsmart_backend/internal/conversations/service"
	"buildsmart_backend/internal/conversations/transport"
	"buildsmart_backend/platform/httpkit"
	"buildsmart_backend/platform/validator"
)

// Handler handles HTTP requests for conversations.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid conversation ID"
)

// New creates a new conversations handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Start creates a new conversation.
// POST /api/v1/conversations
func (h *Handler) Start(c *gin.Context) {
	conv, greeting, err := h.svc.Start(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, transport.FromConversation(conv, greeting))
}

// Get retrieves a conversation by ID.
// GET /api/v1/conversations/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	conv, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromConversation(conv, conv.LastResponse))
}

// Message processes one homeowner utterance.
// POST /api/v1/conversations/:id/messages
func (h *Handler) Message(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	response, conv, err := h.svc.Message(c.Request.Context(), id, req.Message)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromConversation(conv, response))
}

// Reset restarts a conversation in place.
// POST /api/v1/conversations/:id/reset
func (h *Handler) Reset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	conv, greeting, err := h.svc.Reset(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromConversation(conv, greeting))
}
