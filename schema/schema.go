package schema

// ============================================================================
// SCHEMA — Describes the shape of the order dataset
// ============================================================================
// The order dataset has a fixed column contract. The helpers use schema
// metadata for record parsing; the validator enforces the required set
// before any computation proceeds.
// ============================================================================

// Column kinds.
const (
	KindDimension = "dimension" // string field (identifiers, product names)
	KindMeasure   = "measure"   // numeric field
	KindTemporal  = "temporal"  // parseable calendar date
)

// ColumnMeta describes a single column of the order dataset.
type ColumnMeta struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
	Kind        string `json:"kind"`
	Required    bool   `json:"required"`
}

// Config describes the complete shape of the order dataset.
type Config struct {
	Name    string       `json:"name"`
	Columns []ColumnMeta `json:"columns"`
}

// Well-known column keys of the order dataset.
const (
	ColCustomerID = "user_id"
	ColOrderID    = "order_id"
	ColOrderDate  = "order_date"
	ColProduct    = "product_name"
	ColCategory   = "category"
	ColQuantity   = "quantity"
	ColValue      = "order_value"
	ColDiscount   = "discount_given"
)

// Orders returns the base order-dataset schema.
// Category and quantity are known but optional; extra columns are ignored.
func Orders() Config {
	return Config{
		Name: "orders",
		Columns: []ColumnMeta{
			{Key: ColCustomerID, DisplayName: "Customer", Kind: KindDimension, Required: true},
			{Key: ColOrderID, DisplayName: "Order", Kind: KindDimension, Required: true},
			{Key: ColOrderDate, DisplayName: "Order Date", Kind: KindTemporal, Required: true},
			{Key: ColProduct, DisplayName: "Product", Kind: KindDimension, Required: true},
			{Key: ColValue, DisplayName: "Order Value", Kind: KindMeasure, Required: true},
			{Key: ColDiscount, DisplayName: "Discount", Kind: KindMeasure, Required: true},
			{Key: ColCategory, DisplayName: "Category", Kind: KindDimension},
			{Key: ColQuantity, DisplayName: "Quantity", Kind: KindMeasure},
		},
	}
}

// OrdersExtended returns the extended variant where category and quantity
// are mandatory (needed for most-sold-by-category analytics).
func OrdersExtended() Config {
	cfg := Orders()
	for i := range cfg.Columns {
		switch cfg.Columns[i].Key {
		case ColCategory, ColQuantity:
			cfg.Columns[i].Required = true
		}
	}
	cfg.Name = "orders_extended"
	return cfg
}

// RequiredKeys returns the keys of all required columns, in declaration order.
func (c Config) RequiredKeys() []string {
	keys := make([]string, 0, len(c.Columns))
	for _, col := range c.Columns {
		if col.Required {
			keys = append(keys, col.Key)
		}
	}
	return keys
}

// ColumnKeys returns all known column keys.
func (c Config) ColumnKeys() []string {
	keys := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		keys[i] = col.Key
	}
	return keys
}

// Lookup returns the metadata for a column key.
func (c Config) Lookup(key string) (ColumnMeta, bool) {
	for _, col := range c.Columns {
		if col.Key == key {
			return col, true
		}
	}
	return ColumnMeta{}, false
}
