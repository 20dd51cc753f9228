package models

import "time"

// VaultRecord is the decoded envelope of a stored record. RecordID is
// assigned by the store on creation and is the only handle for later reads,
// updates, deletes and sends.
type VaultRecord struct {
	RecordID  string        `json:"record_id"`
	Kind      RecordKind    `json:"kind"`
	Group     string        `json:"group,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	Payload   RecordPayload `json:"payload"`
}

// AssetGroup is one bucket of the aggregated view.
type AssetGroup struct {
	Group   string        `json:"group"`
	Records []VaultRecord `json:"records"`
}

// GroupedAssets is the aggregated, non-persisted view over credential and
// secret records. Groups keep first-seen order.
type GroupedAssets []AssetGroup

// Find returns the group with the given label.
func (g GroupedAssets) Find(group string) (AssetGroup, bool) {
	for _, asset := range g {
		if asset.Group == group {
			return asset, true
		}
	}
	return AssetGroup{}, false
}
