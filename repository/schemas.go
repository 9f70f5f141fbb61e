package repository

// List schemas for the three resources. Field names match both the bson tags
// and the Postgres columns, so one schema drives either backend.

var UserSchema = ListSchema{
	SearchFields: []string{"name", "email"},
	FilterFields: map[string]string{"role": "role"},
	SortKeys: map[string]SortField{
		"newest":    {Field: "created_at", Desc: true},
		"oldest":    {Field: "created_at"},
		"name-asc":  {Field: "name"},
		"name-desc": {Field: "name", Desc: true},
	},
}

var CategorySchema = ListSchema{
	SearchFields: []string{"name"},
	FilterFields: map[string]string{"status": "status"},
	SortKeys: map[string]SortField{
		"newest":    {Field: "created_at", Desc: true},
		"oldest":    {Field: "created_at"},
		"name-asc":  {Field: "name"},
		"name-desc": {Field: "name", Desc: true},
	},
}

var ProductSchema = ListSchema{
	SearchFields: []string{"title", "description"},
	FilterFields: map[string]string{
		"status":   "status",
		"category": "category_id",
	},
	SortKeys: map[string]SortField{
		"newest":     {Field: "created_at", Desc: true},
		"oldest":     {Field: "created_at"},
		"name-asc":   {Field: "title"},
		"name-desc":  {Field: "title", Desc: true},
		"price-low":  {Field: "price"},
		"price-high": {Field: "price", Desc: true},
	},
}
