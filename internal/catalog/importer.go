package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/shopspring/decimal"
)

type Mode string

const (
	ModeSkip   Mode = "skip"
	ModeUpdate Mode = "update"
)

// ParseMode falls back to ModeSkip for anything other than "update".
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeUpdate)) {
		return ModeUpdate
	}
	return ModeSkip
}

type RowError struct {
	Row         int    `json:"row"`
	Description string `json:"description"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Description)
}

type Result struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors"`
}

type csvRow struct {
	Name        string
	Description string
	Category    string
	Type        string
	Color       string
	Price       string
	ImageURL    string
}

var requiredColumns = []string{"name", "price"}

func parseCSV(r io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header: %w", err)
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

		rows = append(rows, csvRow{
			Name:        field(record, "name"),
			Description: field(record, "description"),
			Category:    field(record, "category"),
			Type:        field(record, "type"),
			Color:       field(record, "color"),
			Price:       field(record, "price"),
			ImageURL:    field(record, "image_url"),
		})
	}
	return rows, nil
}

func toProduct(r csvRow) (models.Product, error) {
	if r.Name == "" {
		return models.Product{}, errors.New("missing name")
	}
	price, err := decimal.NewFromString(r.Price)
	if err != nil || !price.IsPositive() {
		return models.Product{}, errors.New("invalid price")
	}
	return models.Product{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Type:        r.Type,
		Color:       r.Color,
		Price:       price.Round(2),
		ImageURL:    r.ImageURL,
	}, nil
}

// Import loads products from CSV into store. Invalid rows and, in skip mode,
// rows whose name already exists are reported and skipped; in update mode
// existing products are overwritten. Only a malformed file or a failed
// context aborts the import.
func Import(ctx context.Context, store repo.ProductStore, r io.Reader, mode Mode) (Result, error) {
	records, err := parseCSV(r)
	if err != nil {
		return Result{}, err
	}

	res := Result{Errors: []RowError{}}
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		rowNum := i + 2 // header is row 1

		product, err := toProduct(rec)
		if err != nil {
			res.Errors = append(res.Errors, RowError{Row: rowNum, Description: err.Error()})
			continue
		}

		existing, err := store.FindByName(ctx, product.Name)
		switch {
		case err == nil:
			if mode == ModeSkip {
				res.Errors = append(res.Errors, RowError{Row: rowNum, Description: fmt.Sprintf("product '%s' already exists", product.Name)})
				continue
			}
			product.ID = existing.ID
			if _, err := store.Update(ctx, product); err != nil {
				res.Errors = append(res.Errors, RowError{Row: rowNum, Description: fmt.Sprintf("failed to update '%s': %v", product.Name, err)})
				continue
			}
		case errors.Is(err, repo.ErrProductNotFound):
			if _, err := store.Create(ctx, product); err != nil {
				res.Errors = append(res.Errors, RowError{Row: rowNum, Description: fmt.Sprintf("failed to create '%s': %v", product.Name, err)})
				continue
			}
		default:
			res.Errors = append(res.Errors, RowError{Row: rowNum, Description: fmt.Sprintf("lookup failed for '%s': %v", product.Name, err)})
			continue
		}
		res.Imported++
	}
	return res, nil
}
