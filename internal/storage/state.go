package storage

import (
	"encoding/json"
	"fmt"

	"calatorie/internal/currency"
	"calatorie/internal/model"
)

// StateKey is the fixed key the whole AppState snapshot lives under. The
// name is carried over from the storage record of earlier versions so old
// data keeps loading.
const StateKey = "travelAssistantData"

// Save writes the whole state as one snapshot. There are no partial
// writes; every mutation overwrites the previous snapshot.
func Save(kv KV, state *model.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := kv.Set(StateKey, data); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}

// Load returns the saved state, or a fresh default state when there is no
// snapshot or it cannot be decoded. A corrupt record is treated the same
// as no data yet.
func Load(kv KV) *model.AppState {
	data, err := kv.Get(StateKey)
	if err != nil || len(data) == 0 {
		return model.NewAppState()
	}

	state := model.NewAppState()
	if err := json.Unmarshal(data, state); err != nil {
		return model.NewAppState()
	}
	if state.Currency == "" {
		state.Currency = currency.USD
	} else if !currency.Valid(state.Currency) {
		// Shape drift in an old snapshot; start over rather than guess.
		return model.NewAppState()
	}
	return state
}

// Clear removes the snapshot entirely. Used by reset.
func Clear(kv KV) error {
	return kv.Delete(StateKey)
}
