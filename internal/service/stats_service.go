package service

import (
	"context"
	"math"
	"sort"

	"airquote/internal/domain"
	"airquote/internal/numtext"
	"airquote/internal/port"
)

// StatsService computes the dashboard summary over the whole catalog.
type StatsService interface {
	CatalogStats(ctx context.Context) (*domain.CatalogStats, error)
}

type statsService struct {
	products port.ProductRepository
	taxonomy port.TaxonomyRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(products port.ProductRepository, taxonomy port.TaxonomyRepository) StatsService {
	return &statsService{products: products, taxonomy: taxonomy}
}

func (s *statsService) CatalogStats(ctx context.Context) (*domain.CatalogStats, error) {
	products, _, err := s.products.List(ctx, domain.ProductFilter{Limit: -1})
	if err != nil {
		return nil, err
	}
	options, err := s.taxonomy.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.CatalogStats{Total: len(products)}

	var priceSum, priceCount int
	brandCounts := make(map[string]int)
	styleCounts := make(map[string]int)
	for i := range products {
		p := &products[i]
		if p.IsPinned {
			stats.Pinned++
		}
		switch p.Environment {
		case domain.EnvHeating:
			stats.Heating++
		case domain.EnvCooling:
			stats.Cooling++
		}
		// unparseable price text is excluded from the average, not zeroed
		if v, ok := numtext.ParseAmount(p.Price); ok {
			priceSum += v
			priceCount++
		}
		brandCounts[p.BrandID.String()]++
		styleCounts[p.StyleID.String()]++
	}

	if priceCount > 0 {
		avg := int(math.Round(float64(priceSum) / float64(priceCount)))
		stats.AveragePrice = numtext.FormatAmount(avg)
	} else {
		stats.AveragePrice = "0"
	}

	for _, opt := range options {
		switch opt.Category {
		case domain.CategoryBrand:
			count := brandCounts[opt.ID.String()]
			if count == 0 {
				continue
			}
			stats.BrandShares = append(stats.BrandShares, domain.BrandShare{
				Label:   opt.Label,
				Color:   opt.Color,
				Count:   count,
				Percent: percent(count, stats.Total),
			})
		case domain.CategoryStyle:
			count := styleCounts[opt.ID.String()]
			if count > stats.DominantStyle.Count {
				stats.DominantStyle = domain.StyleShare{
					Label:   opt.Label,
					Count:   count,
					Percent: percent(count, stats.Total),
				}
			}
		}
	}

	sort.SliceStable(stats.BrandShares, func(i, j int) bool {
		return stats.BrandShares[i].Count > stats.BrandShares[j].Count
	})

	return stats, nil
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
