package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foodcourt-app/backend/middlewares"
	"github.com/foodcourt-app/backend/models"
	"github.com/foodcourt-app/backend/utils"
)

// CatalogController adalah jalur read-only ke menu item per branch,
// beserta option group dan choice yang terurut.
type CatalogController struct {
	DB *gorm.DB
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{DB: db}
}

// GetAllMenuItems -> daftar item satu branch. Role branch memakai
// branch-nya sendiri; customer/admin wajib kirim ?branch_id=.
func (cc *CatalogController) GetAllMenuItems(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	branchID := actor.BranchID
	if !actor.IsBranchBound() {
		parsed, err := strconv.ParseUint(c.Query("branch_id"), 10, 32)
		if err != nil || parsed == 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("branch_id query parameter is required"))
			return
		}
		branchID = uint(parsed)
	}

	var items []models.MenuItem
	if err := cc.DB.Preload("Category").
		Where("branch_id = ?", branchID).
		Order("name asc").
		Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuItemByID -> detail 1 item + option groups + choices terurut
func (cc *CatalogController) GetMenuItemByID(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	id, err := strconv.ParseUint(c.Param("menu_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	var item models.MenuItem
	if err := cc.DB.Preload("Category").
		Preload("OptionGroups", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		Preload("OptionGroups.Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	// Role branch tidak boleh membaca item branch lain
	if actor.IsBranchBound() && item.BranchID != actor.BranchID {
		utils.RespondError(c, http.StatusForbidden, errors.New("menu item belongs to a different branch"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}
