package dto

import "github.com/noah-isme/academy-api/internal/models"

// NavigationResponse lists the bottom tabs for the signed-in role.
type NavigationResponse struct {
	Role    models.UserRole `json:"role"`
	Landing models.TabName  `json:"landing"`
	Tabs    []NavigationTab `json:"tabs"`
}

// NavigationTab is one tab and whether the current role may open it.
type NavigationTab struct {
	Name       models.TabName `json:"name"`
	Title      string         `json:"title"`
	Accessible bool           `json:"accessible"`
}
