package handlers

import (
	"errors"
	response "import_admin/internal/adapter/http/dto/response"
	"import_admin/internal/domain/entities"
	"import_admin/internal/usecase"
	"import_admin/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ClientHandler serves the client directory.
type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// ListClients godoc
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Success      200  {array}   entities.Client
// @Failure      502  {object}  pkg.HTTPError
// @Router       /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	if clients == nil {
		clients = []entities.Client{}
	}
	c.JSON(http.StatusOK, clients)
}

// GetClient godoc
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  entities.Client
// @Failure      404  {object}  pkg.HTTPError
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClient godoc
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      entities.ClientCreate  true  "Client"
// @Success      201   {object}  entities.Client
// @Failure      400   {object}  pkg.HTTPError
// @Router       /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload entities.ClientCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	client, err := h.usecase.Create(c.Request.Context(), payload)
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, client)
}

// UpdateClient godoc
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Client ID"
// @Param        body  body      entities.ClientUpdate  true  "Fields to change"
// @Success      200   {object}  entities.Client
// @Failure      400   {object}  pkg.HTTPError
// @Router       /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload entities.ClientUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	client, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient godoc
// @Summary      Delete a client
// @Tags         clients
// @Param        id   path  string  true  "Client ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListClientImports godoc
// @Summary      Imports of a client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  response.RelatedImportsResponse
// @Router       /clients/{id}/imports [get]
func (h *ClientHandler) ListClientImports(c *gin.Context) {
	related, err := h.usecase.Imports(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRelatedImports(related))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID):
		return errInvalidRequest
	default:
		return mapCommonError(err)
	}
}
