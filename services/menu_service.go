package services

import (
	"github.com/daniellbaii/mp-fishnchips/data"
	"github.com/daniellbaii/mp-fishnchips/entity"
)

// MenuService answers read-only queries over the static catalog. No query
// errors; no matches means an empty slice.
type MenuService struct {
	items      []entity.MenuItem
	categories []data.Category
}

func NewMenuService() *MenuService {
	return &MenuService{items: data.MenuItems, categories: data.MenuCategories}
}

func (s *MenuService) List() []entity.MenuItem {
	out := make([]entity.MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *MenuService) Categories() []data.Category {
	out := make([]data.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *MenuService) Get(id string) (*entity.MenuItem, bool) {
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, true
		}
	}
	return nil, false
}

func (s *MenuService) ListCategory(cat entity.MenuCategory) []entity.MenuItem {
	out := []entity.MenuItem{}
	for _, it := range s.items {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	return out
}

func (s *MenuService) Search(q string) []entity.MenuItem {
	out := []entity.MenuItem{}
	for _, it := range s.items {
		if it.Matches(q) {
			out = append(out, it)
		}
	}
	return out
}

func (s *MenuService) Popular() []entity.MenuItem {
	out := []entity.MenuItem{}
	for _, it := range s.items {
		if it.Popular {
			out = append(out, it)
		}
	}
	return out
}
