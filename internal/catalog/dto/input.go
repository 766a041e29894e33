package dto

type CatalogFilters struct {
	Query    string // case-insensitive substring over names and descriptions
	Category string // derived category id; "" or "all" means no filter
	Event    string // restricts the discounted subset; "" or "all" means all
}
