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

// CarHandler serves the car catalogue.
type CarHandler struct {
	usecase usecase.ICarUseCase
}

func NewCarHandler(uc usecase.ICarUseCase) *CarHandler {
	return &CarHandler{usecase: uc}
}

// ListCars godoc
// @Summary      List cars
// @Tags         cars
// @Produce      json
// @Success      200  {array}   entities.Car
// @Failure      502  {object}  pkg.HTTPError
// @Router       /cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	cars, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapCarError(err))
		return
	}
	if cars == nil {
		cars = []entities.Car{}
	}
	c.JSON(http.StatusOK, cars)
}

// GetCar godoc
// @Summary      Get a car
// @Tags         cars
// @Produce      json
// @Param        id   path      string  true  "Car ID"
// @Success      200  {object}  entities.Car
// @Failure      404  {object}  pkg.HTTPError
// @Router       /cars/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCarError(err))
		return
	}
	c.JSON(http.StatusOK, car)
}

// CreateCar godoc
// @Summary      Create a car
// @Tags         cars
// @Accept       json
// @Produce      json
// @Param        body  body      entities.CarCreate  true  "Car"
// @Success      201   {object}  entities.Car
// @Failure      400   {object}  pkg.HTTPError
// @Router       /cars [post]
func (h *CarHandler) CreateCar(c *gin.Context) {
	var payload entities.CarCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	car, err := h.usecase.Create(c.Request.Context(), payload)
	if err != nil {
		writeError(c, mapCarError(err))
		return
	}
	c.JSON(http.StatusCreated, car)
}

// UpdateCar godoc
// @Summary      Update a car
// @Tags         cars
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Car ID"
// @Param        body  body      entities.CarUpdate  true  "Fields to change"
// @Success      200   {object}  entities.Car
// @Failure      400   {object}  pkg.HTTPError
// @Router       /cars/{id} [put]
func (h *CarHandler) UpdateCar(c *gin.Context) {
	var payload entities.CarUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	car, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeError(c, mapCarError(err))
		return
	}
	c.JSON(http.StatusOK, car)
}

// DeleteCar godoc
// @Summary      Delete a car
// @Tags         cars
// @Param        id   path  string  true  "Car ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /cars/{id} [delete]
func (h *CarHandler) DeleteCar(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCarError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCarImports godoc
// @Summary      Imports of a car
// @Tags         cars
// @Produce      json
// @Param        id   path      string  true  "Car ID"
// @Success      200  {object}  response.RelatedImportsResponse
// @Router       /cars/{id}/imports [get]
func (h *CarHandler) ListCarImports(c *gin.Context) {
	related, err := h.usecase.Imports(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCarError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRelatedImports(related))
}

func mapCarError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCarID):
		return errInvalidRequest
	default:
		return mapCommonError(err)
	}
}
