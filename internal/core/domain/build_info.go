package domain

import "time"

// BuildInfo is the ledger entry of the last successful build of a library.
type BuildInfo struct {
	Library      string    `json:"library,omitzero"`
	ManifestHash string    `json:"manifest_hash,omitzero"`
	AssetsHash   string    `json:"assets_hash,omitzero"`
	Assets       []string  `json:"assets,omitempty"`
	Timestamp    time.Time `json:"timestamp,omitzero"`
}
