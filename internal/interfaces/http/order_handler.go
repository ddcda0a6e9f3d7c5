package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/application/usecase"
)

// OrderHandler maneja las peticiones HTTP para Order.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido
// @Description  El número se genera en el servidor (ORD-XXXXXXXX) y el estado inicia en PENDING.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrderRequest  true  "Cliente, total, direcciones y notas"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar pedido
// @Description  Solo cambian estado, direcciones y notas.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "ID del pedido"
// @Param        body  body  dto.OrderRequest  true  "Campos editables"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.OrderRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus PATCH /api/orders/:id/status {"status": "SHIPPED"}
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.StatusUpdateRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), id, in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/orders/:id
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        page  query  int     false  "Página (base 0)"
// @Param        size  query  int     false  "Tamaño de página"
// @Param        sort  query  string  false  "campo[,desc]"
// @Param        q     query  string  false  "Búsqueda en número y estado"
// @Success      200   {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	page, err := pageRequest(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ByCustomer GET /api/orders/by-customer/:customerId
func (h *OrderHandler) ByCustomer(c *fiber.Ctx) error {
	customerID, err := paramID(c, "customerId")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByCustomer(c.UserContext(), customerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ByStatus GET /api/orders/by-status/:status
func (h *OrderHandler) ByStatus(c *fiber.Ctx) error {
	out, err := h.uc.GetByStatus(c.UserContext(), c.Params("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ByDateRange GET /api/orders/by-date?from=&to= (RFC 3339)
func (h *OrderHandler) ByDateRange(c *fiber.Ctx) error {
	from, err := queryTime(c, "from")
	if err != nil {
		return writeError(c, err)
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByDateRange(c.UserContext(), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Count GET /api/orders/count?status=PENDING
func (h *OrderHandler) Count(c *fiber.Ctx) error {
	status := strings.ToUpper(strings.TrimSpace(c.Query("status")))
	n, err := h.uc.CountByStatus(c.UserContext(), status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CountResponse{Status: status, Count: n})
}

// Revenue godoc
// @Summary      Ingresos totales
// @Description  Suma de los pedidos DELIVERED; 0 si no hay.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RevenueResponse
// @Router       /api/orders/revenue [get]
func (h *OrderHandler) Revenue(c *fiber.Ctx) error {
	total, err := h.uc.TotalRevenue(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.RevenueResponse{TotalRevenue: total})
}

func queryTime(c *fiber.Ctx, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, &requestError{code: "VALIDATION", message: key + " es requerido"}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, &requestError{code: "VALIDATION", message: key + " debe estar en formato RFC 3339"}
	}
	return t, nil
}
