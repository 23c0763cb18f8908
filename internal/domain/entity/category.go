package entity

// CategoryOther is applied to resolved locations that arrive without a category.
const CategoryOther = "Other"

// DefaultIcon is the generic marker used for categories without a dedicated icon.
const DefaultIcon = "fa-map-marker-alt"

var categoryIcons = map[string]string{
	"Restaurant":      "fa-utensils",
	"Coffee shop":     "fa-coffee",
	"Bar":             "fa-cocktail",
	"Shopping center": "fa-shopping-bag",
	"Gym":             "fa-dumbbell",
	"Park":            "fa-tree",
	"Museum":          "fa-landmark",
	"Library":         "fa-book",
	"Beach":           "fa-umbrella-beach",
	"Airport":         "fa-plane-departure",
	"Movie theater":   "fa-film",
	"Train station":   "fa-train",
	"Hospital":        "fa-hospital",
	"School":          "fa-school",
	"University":      "fa-university",
	CategoryOther:     DefaultIcon,
}

// IconForCategory maps a category to its icon token. Matching is exact.
func IconForCategory(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}

	return DefaultIcon
}
