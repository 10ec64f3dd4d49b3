package http

import (
	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/channelry/merchant-api/internal/application/catalog"
	"github.com/channelry/merchant-api/internal/application/dto"
	"github.com/channelry/merchant-api/internal/domain"
	domaincatalog "github.com/channelry/merchant-api/internal/domain/catalog"
)

// InventoryHandler maneja las peticiones HTTP del módulo de inventario
// (protegido): listados, alta de SKUs, consulta/actualización/publicación
// y acciones masivas.
type InventoryHandler struct {
	uc       *appcatalog.UseCase
	actioner *appcatalog.Actioner
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *appcatalog.UseCase, actioner *appcatalog.Actioner) *InventoryHandler {
	return &InventoryHandler{uc: uc, actioner: actioner}
}

// catalogError traduce errores de dominio del catálogo a respuestas HTTP.
func catalogError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el SKU ya existe para este producto"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrUnknownAction:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_ACTION", Message: "acción no reconocida"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// List godoc
// @Summary      Listar inventario del merchant
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.InventoryListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.ListInventory(c.Context(), merchantID, page)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear SKU (producto por uid en el body)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "Datos del SKU"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/create [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateInventory(c.Context(), merchantID, in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateForProduct godoc
// @Summary      Crear SKU para el producto del uid de la ruta
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        uid   path  string  true  "UID externo del producto"
// @Param        body  body  dto.CreateInventoryRequest  true  "Datos del SKU"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/{uid}/create [post]
func (h *InventoryHandler) CreateForProduct(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	uid := c.Params("uid")
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateForProduct(c.Context(), merchantID, uid, in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Retrieve godoc
// @Summary      Consultar un SKU con su producto y listings
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        uid  path  string  true  "UID externo del producto"
// @Param        sku  path  string  true  "Código SKU"
// @Success      200  {object}  dto.InventoryDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{uid}/{sku} [get]
func (h *InventoryHandler) Retrieve(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	out, err := h.uc.Retrieve(c.Context(), merchantID, c.Params("uid"), c.Params("sku"))
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar un SKU o publicarlo en menús
// @Description  Con menu_ids no vacío la petición publica el SKU en esos menús; si no, aplica un update parcial de sku/quantity/price/is_active.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        uid   path  string  true  "UID externo del producto"
// @Param        sku   path  string  true  "Código SKU"
// @Param        body  body  dto.UpdateInventoryRequest  true  "Campos a actualizar o menús a vincular"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/{uid}/{sku} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	uid, sku := c.Params("uid"), c.Params("sku")
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Igual que el formulario original: menús presentes = publicar,
	// ausentes = actualizar campos.
	if len(in.MenuIDs) > 0 {
		out, err := h.uc.LinkMenus(c.Context(), merchantID, uid, sku, in.MenuIDs)
		if err != nil {
			return catalogError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.UpdateInventory(c.Context(), merchantID, uid, sku, in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// Perform godoc
// @Summary      Acción masiva sobre SKUs seleccionados
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PerformRequest  true  "Acción e IDs seleccionados"
// @Success      200   {object}  dto.PerformResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/perform [post]
func (h *InventoryHandler) Perform(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	var in dto.PerformRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	action, err := domaincatalog.ParseAction(in.Action)
	if err != nil {
		return catalogError(c, err)
	}
	affected, err := h.actioner.Dispatch(c.Context(), merchantID, action, in.InventoryIDs)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(dto.PerformResponse{Action: action.String(), Affected: affected})
}
