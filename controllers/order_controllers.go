package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foodcourt-app/backend/events"
	"github.com/foodcourt-app/backend/middlewares"
	"github.com/foodcourt-app/backend/models"
	"github.com/foodcourt-app/backend/services"
	"github.com/foodcourt-app/backend/utils"
)

// OrderController menangani aksi staff/chef/shipper terhadap order yang
// sudah keluar dari fase cart. Semua endpoint menerima satu order_id atau
// batch order_ids dan melaporkan requested vs updated.
type OrderController struct {
	DB     *gorm.DB
	Status *services.StatusService
	Stock  *services.StockService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:     db,
		Status: services.NewStatusService(db),
		Stock:  services.NewStockService(db),
	}
}

type batchOrderReq struct {
	OrderID  *uint  `json:"order_id"`
	OrderIDs []uint `json:"order_ids"`
}

func (r batchOrderReq) ids() []uint {
	ids := r.OrderIDs
	if r.OrderID != nil {
		ids = append(ids, *r.OrderID)
	}
	return ids
}

// StaffApprove -> PENDING ke PREPARING dengan reservasi stok all-or-nothing
func (oc *OrderController) StaffApprove(c *gin.Context) {
	oc.handleTransition(c, models.OrderStatusPending, models.OrderStatusPreparing, true)
}

// StaffCancel -> PENDING ke CANCELED
func (oc *OrderController) StaffCancel(c *gin.Context) {
	oc.handleTransition(c, models.OrderStatusPending, models.OrderStatusCanceled, false)
}

// ChefApprove -> PREPARING ke DELIVERY
func (oc *OrderController) ChefApprove(c *gin.Context) {
	oc.handleTransition(c, models.OrderStatusPreparing, models.OrderStatusDelivery, false)
}

// ChefCancel -> PREPARING ke CANCELED
func (oc *OrderController) ChefCancel(c *gin.Context) {
	oc.handleTransition(c, models.OrderStatusPreparing, models.OrderStatusCanceled, false)
}

// ShipperComplete -> DELIVERY ke COMPLETED
func (oc *OrderController) ShipperComplete(c *gin.Context) {
	oc.handleTransition(c, models.OrderStatusDelivery, models.OrderStatusCompleted, false)
}

// ShipperCancel -> DELIVERY ke CANCELED
func (oc *OrderController) ShipperCancel(c *gin.Context) {
	oc.handleTransition(c, models.OrderStatusDelivery, models.OrderStatusCanceled, false)
}

func (oc *OrderController) handleTransition(c *gin.Context, from, to string, reserveStock bool) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req batchOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var result *services.TransitionResult
	var err error
	if reserveStock {
		result, err = oc.Stock.ApproveOrders(actor, req.ids())
	} else {
		result, err = oc.Status.Transition(actor, req.ids(), from, to)
	}
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	if result.Updated > 0 {
		events.BroadcastOrderStatus(actor.BranchID, result.OrderIDs, from, to)
	}

	utils.RespondJSON(c, http.StatusOK, "Orders updated", result)
}

// StaffOrders -> antrean order branch staff; default PENDING,
// bisa difilter ?status=
func (oc *OrderController) StaffOrders(c *gin.Context) {
	oc.listQueue(c, c.DefaultQuery("status", models.OrderStatusPending))
}

// ChefOrders -> antrean dapur (PREPARING)
func (oc *OrderController) ChefOrders(c *gin.Context) {
	oc.listQueue(c, models.OrderStatusPreparing)
}

// ShipperOrders -> antrean pengantaran (DELIVERY)
func (oc *OrderController) ShipperOrders(c *gin.Context) {
	oc.listQueue(c, models.OrderStatusDelivery)
}

func (oc *OrderController) listQueue(c *gin.Context, status string) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	orders, err := oc.Status.ListByStatus(actor, status)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}
