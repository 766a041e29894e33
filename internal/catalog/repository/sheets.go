package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/daroscoffee/storefront-service/internal/catalog"
	"github.com/daroscoffee/storefront-service/internal/model"
	"github.com/daroscoffee/storefront-service/pkg/logger"
)

type Config struct {
	SpreadsheetID string
	APIKey        string
	ProductRange  string
	DiscountRange string
	CategoryRange string
	EventRange    string
}

// sheetsRepository reads the storefront catalog from a public Google
// Sheet. Rows are hand-maintained, so every numeric cell is parsed
// leniently and a row that still fails is skipped rather than failing
// the fetch.
type sheetsRepository struct {
	svc    *sheets.Service
	cfg    *Config
	logger logger.ZapLogger
}

func NewSheetsRepository(ctx context.Context, cfg *Config, log logger.ZapLogger) (catalog.Repository, error) {
	svc, err := sheets.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &sheetsRepository{svc: svc, cfg: cfg, logger: log}, nil
}

func (r *sheetsRepository) fetchRows(ctx context.Context, readRange string) ([]row, error) {
	resp, err := r.svc.Spreadsheets.Values.Get(r.cfg.SpreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch range %s: %w", readRange, err)
	}
	if len(resp.Values) < 2 {
		return nil, nil // header only, or empty sheet
	}

	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		header[i] = normalizeHeader(fmt.Sprint(cell))
	}

	rows := make([]row, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		m := row{}
		for i, cell := range raw {
			if i >= len(header) || header[i] == "" {
				continue
			}
			m[header[i]] = strings.TrimSpace(fmt.Sprint(cell))
		}
		rows = append(rows, m)
	}
	return rows, nil
}

func (r *sheetsRepository) FetchProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.fetchRows(ctx, r.cfg.ProductRange)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(rows))
	for i, row := range rows {
		id, ok := row.int64("id")
		if !ok {
			r.logger.Warn("skipping product row with bad id", zap.Int("row", i+2), zap.String("id", row["id"]))
			continue
		}
		name := row["name"]
		if name == "" {
			r.logger.Warn("skipping product row without name", zap.Int("row", i+2))
			continue
		}
		price, ok := row.float("price")
		if !ok || price < 0 {
			r.logger.Warn("skipping product row with bad price", zap.Int("row", i+2), zap.String("price", row["price"]))
			continue
		}

		p := model.Product{
			ID:            id,
			Name:          name,
			NameKH:        row["name_kh"],
			Image:         row["image"],
			Price:         price,
			Category:      row["category"],
			CategoryKH:    row["category_kh"],
			Description:   row["description"],
			DescriptionKH: row["description_kh"],
		}

		if raw := row["options"]; raw != "" {
			groups, err := parseOptions(raw)
			if err != nil {
				r.logger.Warn("ignoring malformed options cell", zap.Int64("product_id", id), zap.Error(err))
			} else {
				p.Options = groups
			}
		}

		products = append(products, p)
	}
	return products, nil
}

func (r *sheetsRepository) FetchDiscounts(ctx context.Context) ([]model.DiscountRule, error) {
	rows, err := r.fetchRows(ctx, r.cfg.DiscountRange)
	if err != nil {
		return nil, err
	}

	rules := make([]model.DiscountRule, 0, len(rows))
	for i, row := range rows {
		name := row["discount_name"]
		// Sheet formulas sometimes spill the header label into data rows.
		if name == "" || strings.EqualFold(normalizeHeader(name), "discount_name") {
			continue
		}

		id, _ := row.int64("discount_id")
		percent, okPct := row.float("discount_percent")
		price, okPrice := row.float("price")
		if !okPct || !okPrice {
			r.logger.Warn("skipping discount row with bad numbers", zap.Int("row", i+2), zap.String("discount_name", name))
			continue
		}

		rules = append(rules, model.DiscountRule{
			ID:      id,
			Name:    name,
			Percent: percent,
			Price:   price,
			Active:  strings.EqualFold(row["duplicate_check"], "OK") && percent > 0 && price > 0,
			Event:   row["event"],
		})
	}
	return rules, nil
}

func (r *sheetsRepository) FetchCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.fetchRows(ctx, r.cfg.CategoryRange)
	if err != nil {
		return nil, err
	}

	categories := make([]model.Category, 0, len(rows))
	for _, row := range rows {
		if row["category"] == "" {
			continue
		}
		categories = append(categories, model.Category{
			Name:     row["category"],
			NameKH:   row["category_kh"],
			ImageURL: row["image_url"],
		})
	}
	return categories, nil
}

func (r *sheetsRepository) FetchEvents(ctx context.Context) ([]model.Event, error) {
	rows, err := r.fetchRows(ctx, r.cfg.EventRange)
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, 0, len(rows))
	for i, row := range rows {
		if row["name"] == "" {
			continue
		}
		id, ok := row.int64("id")
		if !ok {
			id = int64(i + 1)
		}
		events = append(events, model.Event{
			ID:     id,
			Name:   row["name"],
			NameKH: row["name_kh"],
			Image:  row["image"],
		})
	}
	return events, nil
}

// row is one sheet row keyed by normalized header name.
type row map[string]string

func (r row) int64(key string) (int64, bool) {
	v, err := strconv.ParseInt(cleanNumber(r[key]), 10, 64)
	return v, err == nil
}

func (r row) float(key string) (float64, bool) {
	v, err := strconv.ParseFloat(cleanNumber(r[key]), 64)
	return v, err == nil
}

// cleanNumber strips currency and percent decoration commonly typed
// into the sheet ("$3.20", "20%", "1,200").
func cleanNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "_")
}
