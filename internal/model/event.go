package model

// Event is a named promotional campaign. The same records feed the
// event filter and the promotion carousel banners.
type Event struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	NameKH string `json:"name_kh"`
	Image  string `json:"image"`
}
