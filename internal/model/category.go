package model

type Category struct {
	Name     string `json:"category"`
	NameKH   string `json:"category_kh"`
	ImageURL string `json:"image_url"`
}
