package session

import (
	"context"

	"brickset/client/internal/request"
	"brickset/client/internal/response"
)

// SetCollection applies params to one set in the user's collection.
func (s *Session) SetCollection(ctx context.Context, setID uint64, params request.CollectionParams) error {
	hash, err := s.hash()
	if err != nil {
		return err
	}
	_, err = execute[response.SetCollectionResponse](ctx, s, request.NewSetCollection(s.apiKey, hash, setID, params))
	return err
}

// SetOwned stores the owned quantity. Zero marks the set as not owned.
func (s *Session) SetOwned(ctx context.Context, setID uint64, qty int) error {
	return s.SetCollection(ctx, setID, request.NewCollectionParams().Owned(qty))
}

func (s *Session) SetWanted(ctx context.Context, setID uint64, wanted bool) error {
	return s.SetCollection(ctx, setID, request.NewCollectionParams().Wanted(wanted))
}

func (s *Session) SetNotes(ctx context.Context, setID uint64, notes string) error {
	return s.SetCollection(ctx, setID, request.NewCollectionParams().Notes(notes))
}

func (s *Session) SetRating(ctx context.Context, setID uint64, rating int) error {
	return s.SetCollection(ctx, setID, request.NewCollectionParams().Rating(rating))
}

// GetNotes returns the user's notes for every set that has any.
func (s *Session) GetNotes(ctx context.Context) (response.UserNotesResponse, error) {
	hash, err := s.hash()
	if err != nil {
		return response.UserNotesResponse{}, err
	}
	return execute[response.UserNotesResponse](ctx, s, request.NewGetUserNotes(s.apiKey, hash))
}

func (s *Session) GetMinifigCollection(ctx context.Context, params request.MinifigsParams) (response.MinifigCollectionResponse, error) {
	hash, err := s.hash()
	if err != nil {
		return response.MinifigCollectionResponse{}, err
	}
	return execute[response.MinifigCollectionResponse](ctx, s, request.NewGetMinifigCollection(s.apiKey, hash, params))
}

func (s *Session) GetOwnedMinifigs(ctx context.Context) (response.MinifigCollectionResponse, error) {
	return s.GetMinifigCollection(ctx, request.OwnedMinifigs())
}

func (s *Session) GetWantedMinifigs(ctx context.Context) (response.MinifigCollectionResponse, error) {
	return s.GetMinifigCollection(ctx, request.WantedMinifigs())
}

func (s *Session) SetMinifigCollection(ctx context.Context, minifigNumber string, params request.MinifigCollectionParams) error {
	hash, err := s.hash()
	if err != nil {
		return err
	}
	_, err = execute[response.SetMinifigCollectionResponse](ctx, s,
		request.NewSetMinifigCollection(s.apiKey, hash, minifigNumber, params))
	return err
}

// SetMinifigOwned stores the loose quantity owned. Zero removes the minifig
// from the owned list.
func (s *Session) SetMinifigOwned(ctx context.Context, minifigNumber string, qty int) error {
	return s.SetMinifigCollection(ctx, minifigNumber, request.NewMinifigCollectionParams().Owned(qty))
}

func (s *Session) SetMinifigWanted(ctx context.Context, minifigNumber string, wanted bool) error {
	return s.SetMinifigCollection(ctx, minifigNumber, request.NewMinifigCollectionParams().Wanted(wanted))
}

func (s *Session) SetMinifigNotes(ctx context.Context, minifigNumber, notes string) error {
	return s.SetMinifigCollection(ctx, minifigNumber, request.NewMinifigCollectionParams().Notes(notes))
}

func (s *Session) GetMinifigNotes(ctx context.Context) (response.UserMinifigNotesResponse, error) {
	hash, err := s.hash()
	if err != nil {
		return response.UserMinifigNotesResponse{}, err
	}
	return execute[response.UserMinifigNotesResponse](ctx, s, request.NewGetUserMinifigNotes(s.apiKey, hash))
}
