package services

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/daniellbaii/mp-fishnchips/entity"
	"github.com/daniellbaii/mp-fishnchips/repository"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidSelection = errors.New("invalid option selection")
	ErrMissingRequired  = errors.New("required customization missing")
)

type SelectionIn struct {
	CustomizationID string `json:"customizationId" binding:"required"`
	OptionID        string `json:"optionId" binding:"required"`
}

type AddToCartIn struct {
	MenuItemID string        `json:"menuItemId" binding:"required"`
	Selections []SelectionIn `json:"selections"`
}

// CartService holds one CartEngine per session, rehydrating each from the
// durable store on first touch and persisting the snapshot after every
// mutation. Engines are created on demand and live for the process.
type CartService struct {
	mu      sync.Mutex
	engines map[string]*CartEngine

	Repo *repository.CartRepository
	Menu *MenuService
}

func NewCartService(repo *repository.CartRepository, menu *MenuService) *CartService {
	return &CartService{
		engines: make(map[string]*CartEngine),
		Repo:    repo,
		Menu:    menu,
	}
}

// engine returns the session's engine, loading its snapshot from storage
// the first time. A failed or unparseable read degrades to an empty cart;
// it is logged, never surfaced.
func (s *CartService) engine(sessionID string) *CartEngine {
	if e, ok := s.engines[sessionID]; ok {
		return e
	}
	e := NewCartEngine()
	snap, err := s.Repo.Load(sessionID)
	if err != nil {
		log.Printf("cart %s: load failed, starting empty: %v", sessionID, err)
	} else {
		e.Restore(snap)
	}
	s.engines[sessionID] = e
	return e
}

// persist failures are logged only: the live cart stays authoritative for
// the session either way.
func (s *CartService) persist(sessionID string, e *CartEngine) {
	snap := e.Snapshot()
	if err := s.Repo.Save(sessionID, &snap); err != nil {
		log.Printf("cart %s: save failed: %v", sessionID, err)
	}
}

func (s *CartService) Get(sessionID string) entity.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine(sessionID).State()
}

func (s *CartService) Snapshot(sessionID string) entity.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine(sessionID).Snapshot()
}

func (s *CartService) Add(sessionID string, in *AddToCartIn) (entity.CartState, error) {
	item, ok := s.Menu.Get(in.MenuItemID)
	if !ok {
		return entity.CartState{}, ErrMenuItemNotFound
	}
	sels, err := resolveSelections(item, in.Selections)
	if err != nil {
		return entity.CartState{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.engine(sessionID)
	e.AddItem(*item, sels)
	s.persist(sessionID, e)
	return e.State(), nil
}

func (s *CartService) UpdateQuantity(sessionID, lineItemID string, quantity int) entity.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.engine(sessionID)
	e.UpdateQuantity(lineItemID, quantity)
	s.persist(sessionID, e)
	return e.State()
}

func (s *CartService) Remove(sessionID, lineItemID string) entity.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.engine(sessionID)
	e.RemoveItem(lineItemID)
	s.persist(sessionID, e)
	return e.State()
}

func (s *CartService) Clear(sessionID string) entity.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.engine(sessionID)
	e.Clear()
	s.persist(sessionID, e)
	return e.State()
}

func (s *CartService) Open(sessionID string) entity.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.engine(sessionID)
	e.Open()
	return e.State()
}

func (s *CartService) Close(sessionID string) entity.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.engine(sessionID)
	e.Close()
	return e.State()
}

func (s *CartService) Toggle(sessionID string) entity.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.engine(sessionID)
	e.Toggle()
	return e.State()
}

// resolveSelections maps (customizationId, optionId) pairs to snapshot
// copies of the option's name and price modifier at this moment. It is the
// customization workflow's gate: single-choice groups take exactly one
// selection, required groups may not be skipped. The engine itself stays
// validation-free.
func resolveSelections(item *entity.MenuItem, in []SelectionIn) ([]entity.SelectedCustomization, error) {
	sels := make([]entity.SelectedCustomization, 0, len(in))
	perGroup := make(map[string]int, len(item.Customizations))
	for _, sel := range in {
		group, ok := item.Customization(sel.CustomizationID)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no customization %q", ErrInvalidSelection, item.ID, sel.CustomizationID)
		}
		opt, ok := group.Option(sel.OptionID)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no option %q", ErrInvalidSelection, group.ID, sel.OptionID)
		}
		perGroup[group.ID]++
		if group.Mode() == entity.SingleChoice && perGroup[group.ID] > 1 {
			return nil, fmt.Errorf("%w: %s takes one choice", ErrInvalidSelection, group.ID)
		}
		sels = append(sels, entity.SelectedCustomization{
			CustomizationID: group.ID,
			OptionID:        opt.ID,
			Name:            opt.Name,
			PriceModifier:   opt.PriceModifier,
		})
	}
	for _, group := range item.Customizations {
		if group.Required && perGroup[group.ID] == 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingRequired, group.ID)
		}
	}
	return sels, nil
}
