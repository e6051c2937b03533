package service

import (
	"context"
	"errors"
	"fmt"

	"kart-compare/internal/model"
	"kart-compare/internal/repository"
	"kart-compare/internal/share"

	"github.com/rs/zerolog"
)

// SharePathPrefix is the path under the share base URL where shared comparisons are served.
const SharePathPrefix = "/compare/share/"

// comparisonService implements ComparisonService.
type comparisonService struct {
	productRepo  repository.ProductRepository
	shareBaseURL string
	maxItems     int
	logger       zerolog.Logger
}

// NewComparisonService creates a new comparison service.
// A maxItems of zero or less disables the comparison size limit.
func NewComparisonService(
	productRepo repository.ProductRepository,
	shareBaseURL string,
	maxItems int,
	logger zerolog.Logger,
) ComparisonService {
	return &comparisonService{
		productRepo:  productRepo,
		shareBaseURL: shareBaseURL,
		maxItems:     maxItems,
		logger:       logger.With().Str("service", "comparison").Logger(),
	}
}

// Compare resolves product IDs to comparison items in the given order.
func (s *comparisonService) Compare(ctx context.Context, ids []string) ([]model.ComparisonItem, error) {
	if s.maxItems > 0 && len(ids) > s.maxItems {
		s.logger.Warn().
			Int("item_count", len(ids)).
			Int("max_items", s.maxItems).
			Msg("comparison exceeds item limit")
		return nil, model.ErrTooManyItems
	}

	items, err := s.resolve(ctx, ids)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int("requested", len(ids)).
		Int("item_count", len(items)).
		Msg("resolved comparison")

	return items, nil
}

// CreateShare encodes an ordered comparison into a share token and link.
// IDs are not checked against the catalogue; unknown IDs drop out when the link is opened.
func (s *comparisonService) CreateShare(ctx context.Context, ids []string) (*model.ShareResponse, error) {
	if s.maxItems > 0 && len(ids) > s.maxItems {
		s.logger.Warn().
			Int("item_count", len(ids)).
			Int("max_items", s.maxItems).
			Msg("share request exceeds item limit")
		return nil, model.ErrTooManyItems
	}

	token := share.Encode(ids)

	s.logger.Info().
		Int("item_count", len(ids)).
		Int("token_length", len(token)).
		Msg("share link created")

	return &model.ShareResponse{
		Token:     token,
		URL:       s.shareBaseURL + SharePathPrefix + token,
		ItemCount: len(ids),
	}, nil
}

// ResolveShare decodes a share token and resolves it against the live catalogue.
func (s *comparisonService) ResolveShare(ctx context.Context, token string) ([]model.ComparisonItem, error) {
	ids, err := share.Decode(token)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("error_code", model.ErrCodeInvalidShareLink).
			Int("token_length", len(token)).
			Msg("failed to decode share token")
		return nil, model.ErrInvalidShareLink
	}

	items, err := s.resolve(ctx, ids)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		s.logger.Info().
			Str("error_code", model.ErrCodeNoItemsFound).
			Int("requested", len(ids)).
			Msg("share token resolved to no products")
		return nil, model.ErrNoItemsFound
	}

	s.logger.Debug().
		Int("requested", len(ids)).
		Int("item_count", len(items)).
		Msg("resolved share token")

	return items, nil
}

// resolve looks up the IDs in one repository call and rebuilds the requested order.
func (s *comparisonService) resolve(ctx context.Context, ids []string) ([]model.ComparisonItem, error) {
	unique := uniqueIDs(ids)
	if len(unique) == 0 {
		return []model.ComparisonItem{}, nil
	}

	products, err := s.productRepo.GetByIDs(ctx, unique)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.logger.Debug().Msg("comparison lookup cancelled")
		} else {
			s.logger.Error().Err(err).Int("count", len(unique)).Msg("failed to look up comparison products")
		}
		return nil, fmt.Errorf("failed to resolve comparison: %w", err)
	}

	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]model.ComparisonItem, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			continue
		}
		items = append(items, model.NewComparisonItem(p))
	}

	return items, nil
}
