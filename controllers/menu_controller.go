package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/daniellbaii/mp-fishnchips/entity"
	"github.com/daniellbaii/mp-fishnchips/pkg/resp"
	"github.com/daniellbaii/mp-fishnchips/services"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /menu?category=&q=
func (h *MenuController) List(c *gin.Context) {
	items := h.Svc.List()
	if cat := c.Query("category"); cat != "" {
		items = h.Svc.ListCategory(entity.MenuCategory(cat))
	}
	if q := c.Query("q"); q != "" {
		filtered := []entity.MenuItem{}
		for _, it := range items {
			if it.Matches(q) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}
	resp.OK(c, items)
}

// GET /menu/categories
func (h *MenuController) Categories(c *gin.Context) {
	resp.OK(c, h.Svc.Categories())
}

// GET /menu/popular
func (h *MenuController) Popular(c *gin.Context) {
	resp.OK(c, h.Svc.Popular())
}

// GET /menu/:id
func (h *MenuController) Detail(c *gin.Context) {
	item, ok := h.Svc.Get(c.Param("id"))
	if !ok {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, item)
}
