package helpers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rfmlens/rfmlens/engine"
	"github.com/rfmlens/rfmlens/schema"
)

// ============================================================================
// CSV HELPER — parses order CSV data into []engine.OrderRecord
// ============================================================================
// The consumer reads the CSV from wherever it lives (file, upload, S3).
// This helper validates the header against the order schema and converts
// the rows. Parsing is strict: a single unparseable date or numeric field
// rejects the whole dataset, since RFM correctness depends on complete
// date and value coverage.
// ============================================================================

// Accepted order-date layouts.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
}

// ParseOrders parses CSV bytes into order records against the base schema.
// Category and quantity columns are picked up when present.
func ParseOrders(data []byte) ([]engine.OrderRecord, error) {
	return parse(data, schema.Orders())
}

// ParseOrdersExtended parses against the extended schema, which also
// requires category and quantity.
func ParseOrdersExtended(data []byte) ([]engine.OrderRecord, error) {
	return parse(data, schema.OrdersExtended())
}

func parse(data []byte, cfg schema.Config) ([]engine.OrderRecord, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	if err := schema.Validate(headers, cfg); err != nil {
		return nil, err
	}

	// Column index per known key. Unknown columns are ignored.
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		key := schema.NormalizeKey(h)
		if _, known := cfg.Lookup(key); known {
			index[key] = i
		}
	}

	var records []engine.OrderRecord
	line := 1 // header
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &engine.ParseError{Line: line, Column: "row", Value: "", Err: err}
		}

		rec := engine.OrderRecord{
			CustomerID: field(row, index, schema.ColCustomerID),
			OrderID:    field(row, index, schema.ColOrderID),
			Product:    field(row, index, schema.ColProduct),
			Category:   field(row, index, schema.ColCategory),
		}

		rec.OrderDate, err = parseDate(field(row, index, schema.ColOrderDate))
		if err != nil {
			return nil, &engine.ParseError{Line: line, Column: schema.ColOrderDate, Value: field(row, index, schema.ColOrderDate), Err: err}
		}

		rec.Value, err = parseNumber(field(row, index, schema.ColValue))
		if err != nil {
			return nil, &engine.ParseError{Line: line, Column: schema.ColValue, Value: field(row, index, schema.ColValue), Err: err}
		}

		rec.Discount, err = parseNumber(field(row, index, schema.ColDiscount))
		if err != nil {
			return nil, &engine.ParseError{Line: line, Column: schema.ColDiscount, Value: field(row, index, schema.ColDiscount), Err: err}
		}

		if raw := field(row, index, schema.ColQuantity); raw != "" {
			qty, err := parseNumber(raw)
			if err != nil {
				return nil, &engine.ParseError{Line: line, Column: schema.ColQuantity, Value: raw, Err: err}
			}
			rec.Quantity = int(qty)
		}

		records = append(records, rec)
	}

	return records, nil
}

// field returns the trimmed cell for a schema key, or "" when the column
// is absent from the dataset.
func field(row []string, index map[string]int, key string) string {
	i, ok := index[key]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format")
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
