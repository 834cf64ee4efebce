// Package catalog builds the product catalog from an optional YAML file.
package catalog

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/shopspring/decimal"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/config"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
)

// productEntry is one row of the catalog file. Prices are read as text so
// that "1500", 1500 and 1500.00 all load exactly.
type productEntry struct {
	ID    string `koanf:"id"`
	Name  string `koanf:"name"`
	Price string `koanf:"price"`
	Link  string `koanf:"link"`
}

// Load returns the built-in catalog when no path is configured.
func Load(cfg config.CatalogConfig, logger *slog.Logger) (*domain.Catalog, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		logger.Info("using built-in catalog")
		return domain.NewCatalog(domain.DefaultProducts())
	}

	logger.Info("loading catalog", "path", cfg.Path)

	k := koanf.New(".")
	if err := k.Load(file.Provider(cfg.Path), yaml.Parser()); err != nil {
		logger.Error("failed to read catalog file", "path", cfg.Path, "error", err)
		return nil, fmt.Errorf("read catalog %s: %w", cfg.Path, err)
	}

	var entries []productEntry
	if err := k.Unmarshal("products", &entries); err != nil {
		logger.Error("failed to decode catalog file", "path", cfg.Path, "error", err)
		return nil, fmt.Errorf("decode catalog %s: %w", cfg.Path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog %s lists no products", cfg.Path)
	}

	products := make([]domain.Product, 0, len(entries))
	for _, e := range entries {
		p, err := e.toProduct()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	c, err := domain.NewCatalog(products)
	if err != nil {
		logger.Error("invalid catalog", "path", cfg.Path, "error", err)
		return nil, err
	}

	logger.Info("catalog loaded", "products", len(products))
	return c, nil
}

func (e productEntry) toProduct() (domain.Product, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(e.Price))
	if err != nil {
		return domain.Product{}, domain.NewInvalidProductError(e.ID, fmt.Errorf("price %q: %w", e.Price, err))
	}
	return domain.NewProduct(strings.TrimSpace(e.ID), strings.TrimSpace(e.Name), price, strings.TrimSpace(e.Link))
}
