package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/nikolayk812/tilequote/internal/port"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	recentLimit = 5

	summaryTimeout = 30 * time.Second
)

type Summary struct {
	TileCount        int64              `json:"tile_count"`
	QuotationCount   int64              `json:"quotation_count"`
	RecentTiles      []domain.Tile      `json:"recent_tiles"`
	RecentQuotations []domain.Quotation `json:"recent_quotations"`
}

type DashboardService struct {
	tiles      port.TileRepository
	quotations port.QuotationRepository
	sfg        singleflight.Group
}

func NewDashboardService(tiles port.TileRepository, quotations port.QuotationRepository) *DashboardService {
	return &DashboardService{
		tiles:      tiles,
		quotations: quotations,
	}
}

// Summary gathers the dashboard figures of a company.
// Concurrent calls for the same company share one set of queries. The shared
// queries outlive a cancelled caller so the others still get their result.
func (s *DashboardService) Summary(ctx context.Context, companyID uuid.UUID) (Summary, error) {
	ch := s.sfg.DoChan(companyID.String(), func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), summaryTimeout)
		defer cancel()

		return s.summary(ctx, companyID)
	})

	select {
	case <-ctx.Done():
		return Summary{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Summary{}, res.Err
		}
		return res.Val.(Summary), nil
	}
}

func (s *DashboardService) summary(ctx context.Context, companyID uuid.UUID) (Summary, error) {
	var summary Summary

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.tiles.CountTiles(ctx, companyID)
		if err != nil {
			return fmt.Errorf("tiles.CountTiles: %w", err)
		}
		summary.TileCount = count
		return nil
	})

	g.Go(func() error {
		count, err := s.quotations.CountQuotations(ctx, companyID)
		if err != nil {
			return fmt.Errorf("quotations.CountQuotations: %w", err)
		}
		summary.QuotationCount = count
		return nil
	})

	g.Go(func() error {
		tiles, _, err := s.tiles.ListTiles(ctx, companyID, domain.TileFilter{Limit: recentLimit})
		if err != nil {
			return fmt.Errorf("tiles.ListTiles: %w", err)
		}
		summary.RecentTiles = tiles
		return nil
	})

	g.Go(func() error {
		quotations, err := s.quotations.ListQuotations(ctx, companyID, recentLimit)
		if err != nil {
			return fmt.Errorf("quotations.ListQuotations: %w", err)
		}
		summary.RecentQuotations = quotations
		return nil
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return summary, nil
}
