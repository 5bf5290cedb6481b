package repository

import (
	"encoding/json"

	"github.com/daniellbaii/mp-fishnchips/entity"
)

const cartKeyPrefix = "mp-fishnchips-cart:"

type CartRepository struct{ Store Store }

func NewCartRepository(store Store) *CartRepository {
	return &CartRepository{Store: store}
}

func cartKey(sessionID string) string { return cartKeyPrefix + sessionID }

// Save writes the cart snapshot as JSON under the session's key.
func (r *CartRepository) Save(sessionID string, snap *entity.CartSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return r.Store.Set(cartKey(sessionID), string(raw))
}

// Load reads the session's snapshot. An absent key yields an empty
// snapshot; read and parse failures are returned for the caller to log and
// degrade from.
func (r *CartRepository) Load(sessionID string) (*entity.CartSnapshot, error) {
	raw, ok, err := r.Store.Get(cartKey(sessionID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return &entity.CartSnapshot{}, nil
	}
	var snap entity.CartSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
