package catalog

// Product is a sellable catalog item. Purchases happen off-site through the
// external Link, so there is no inventory or pricing machinery beyond the
// display price. Products are never edited in place: they are created once
// and eventually deleted.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Link        string  `json:"link"`
	Featured    bool    `json:"featured"`
}
