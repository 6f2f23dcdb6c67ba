package xivapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"xivapi-go/internal/adapters/metrics"
	"xivapi-go/internal/core/domain"
	api "xivapi-go/xivapi"
)

// Adapter implements ports.ProfileFetcher on top of the XIVAPI client.
type Adapter struct {
	client *api.Client
}

func NewAdapter(client *api.Client) *Adapter {
	return &Adapter{client: client}
}

func (a *Adapter) SearchCharacters(ctx context.Context, name, server string) ([]domain.CharacterHit, error) {
	res, err := a.client.SearchCharacters(ctx, api.SearchQuery{Name: name, Server: server})
	if err != nil {
		return nil, err
	}
	return mapCharacterHits(res.Results), nil
}

func (a *Adapter) FetchCharacter(ctx context.Context, id uint32) (*domain.CharacterSummary, error) {
	res, err := a.client.GetCharacter(ctx, id, false)
	if err != nil {
		err = translateError(err)
		recordLookup("character", err)
		return nil, err
	}
	recordLookup("character", nil)
	return mapCharacter(res), nil
}

func (a *Adapter) SearchFreeCompanies(ctx context.Context, name, server string) ([]domain.FreeCompanyHit, error) {
	res, err := a.client.SearchFreeCompanies(ctx, api.SearchQuery{Name: name, Server: server})
	if err != nil {
		return nil, err
	}
	return mapFreeCompanyHits(res.Results), nil
}

func (a *Adapter) FetchFreeCompany(ctx context.Context, id string, withMembers bool) (*domain.FreeCompanySummary, error) {
	var data []api.DataSelector
	if withMembers {
		data = append(data, api.SelectFreeCompanyMembers)
	}

	res, err := a.client.GetFreeCompany(ctx, id, false, data...)
	if err != nil {
		err = translateError(err)
		recordLookup("freecompany", err)
		return nil, err
	}
	recordLookup("freecompany", nil)
	return mapFreeCompany(res), nil
}

// translateError maps a 404 from a lookup to domain.ErrNotFound, keeping the
// original error in the chain.
func translateError(err error) error {
	var statusErr *api.HTTPStatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}
	return err
}

func recordLookup(kind string, err error) {
	outcome := "found"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		outcome = "not_found"
	case err != nil:
		outcome = "error"
	}
	metrics.ProfileLookups.WithLabelValues(kind, outcome).Inc()
}
