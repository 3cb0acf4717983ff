package dto

type CreateQuickAccessRequest struct {
	Name     string `json:"name"     validate:"required,max=30"`
	Icon     string `json:"icon"     validate:"required"`
	URL      string `json:"url"      validate:"required"`
	Category string `json:"category" validate:"required"`
}

type UpdateQuickAccessRequest struct {
	Name     string `json:"name,omitempty" validate:"omitempty,max=30"`
	Icon     string `json:"icon,omitempty"`
	URL      string `json:"url,omitempty"`
	Category string `json:"category,omitempty"`
}

type ReorderItem struct {
	ID    string `json:"id"    validate:"required"`
	Order int    `json:"order"`
}

type ReorderRequest struct {
	Order []ReorderItem `json:"order" validate:"required,min=1,dive"`
}

// GalleryApp is a predefined shortcut offered to every user.
type GalleryApp struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	URL      string `json:"url"`
	Category string `json:"category"`
	IsCustom bool   `json:"isCustom"`
}
