package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

// InventoryHandler maneja el CRUD de items del usuario autenticado (protegido).
type InventoryHandler struct {
	uc      *inventory.ItemUseCase
	reports *inventory.ReportUseCase
	log     *logger.Logger
}

// NewInventoryHandler construye el handler. reports puede ser nil (sin exportación).
func NewInventoryHandler(uc *inventory.ItemUseCase, reports *inventory.ReportUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, reports: reports, log: log}
}

// List godoc
// @Summary      Listar items
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ItemResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear item
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ItemRequest  true  "name, description, quantity, price"
// @Success      201   {object}  dto.ItemMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, h.log, domain.NewValidationError("body", MsgInvalidBody))
	}
	item, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ItemMutationResponse{Message: inventory.MsgCreated, Item: *item})
}

// GetByID godoc
// @Summary      Obtener item
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del item"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(item)
}

// Update godoc
// @Summary      Actualizar item
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID del item"
// @Param        body  body  dto.ItemRequest  true  "name, description, quantity, price"
// @Success      200   {object}  dto.ItemMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, h.log, domain.NewValidationError("body", MsgInvalidBody))
	}
	item, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ItemMutationResponse{Message: inventory.MsgUpdated, Item: *item})
}

// Delete godoc
// @Summary      Eliminar item
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del item"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: inventory.MsgDeleted})
}

// Export godoc
// @Summary      Exportar inventario
// @Description  Descarga los items del usuario en PDF o XML.
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Produce      application/xml
// @Param        format  query  string  false  "pdf (por defecto) o xml"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/export [get]
func (h *InventoryHandler) Export(c *fiber.Ctx) error {
	if h.reports == nil {
		return fiber.ErrNotFound
	}
	id := GetIdentity(c)
	rep, err := h.reports.Export(c.UserContext(), inventory.ReportOwner{ID: id.UserID, Username: id.Username}, c.Query("format", "pdf"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, rep.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, rep.Filename))
	return c.Send(rep.Content)
}
