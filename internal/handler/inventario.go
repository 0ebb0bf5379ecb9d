package handler

import (
	"net/http"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/middleware"
	"inventario/internal/repository"
	"inventario/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// RegistrarMovimiento godoc
// @Summary      Registrar movimiento de stock
// @Description  Aplica una entrada o salida manual sobre un producto y deja el asiento de auditoria correspondiente.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                         true "UUID del producto"
// @Param        body body dto.RegistrarMovimientoRequest true "Movimiento"
// @Success      201 {object} dto.MovimientoStockResponse
// @Failure      409 {object} apierror.APIError "Stock insuficiente"
// @Router       /v1/productos/{id}/movimientos [post]
func (h *InventarioHandler) RegistrarMovimiento(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.RegistrarMovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.RegistrarMovimiento(c.Request.Context(), id, req, claims.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AjustarStock godoc
// @Summary      Ajustar stock a un valor absoluto
// @Description  Fija el contador de stock; el tipo de movimiento se deriva del signo del delta. Un ajuste al valor actual no registra nada.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                 true "UUID del producto"
// @Param        body body dto.AjusteStockRequest true "Nueva cantidad"
// @Success      200 {object} dto.AjusteStockResponse
// @Router       /v1/productos/{id}/ajuste [post]
func (h *InventarioHandler) AjustarStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AjusteStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.AjustarStock(c.Request.Context(), id, req, claims.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StockBajo godoc
// @Summary      Productos bajo el umbral de reposicion
// @Description  Activos con stock < stock_minimo, ordenados del mas urgente al menos.
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ProductoResponse
// @Router       /v1/inventario/stock-bajo [get]
func (h *InventarioHandler) StockBajo(c *gin.Context) {
	resp, err := h.svc.StockBajo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarMovimientos godoc
// @Summary      Historial de movimientos de stock
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Param        producto_id query string false "UUID del producto"
// @Param        tipo        query string false "entrada | salida | ajuste"
// @Param        page        query int    false "Pagina (default 1)"
// @Param        limit       query int    false "Registros por pagina (default 100)"
// @Success      200 {object} dto.MovimientoListResponse
// @Router       /v1/inventario/movimientos [get]
func (h *InventarioHandler) ListarMovimientos(c *gin.Context) {
	var filter repository.MovimientoStockFilter

	if raw := c.Query("producto_id"); raw != "" {
		pid, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("producto_id invalido"))
			return
		}
		filter.ProductoID = &pid
	}
	filter.Tipo = c.Query("tipo")
	filter.Page = queryInt(c, "page", 1)
	filter.Limit = queryInt(c, "limit", 100)

	resp, err := h.svc.ListarMovimientos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
