package dto

import "time"

type OpenIntakeRequest struct {
	Device *LatLng `json:"device"`
}

type IntakeResponse struct {
	ID        string     `json:"id"`
	Status    string     `json:"status"`
	Source    string     `json:"source,omitempty"`
	Location  *LatLng    `json:"location,omitempty"`
	Address   string     `json:"address,omitempty"`
	Fallback  bool       `json:"fallback"`
	OpenedAt  time.Time  `json:"opened_at"`
	LocatedAt *time.Time `json:"located_at,omitempty"`
}
