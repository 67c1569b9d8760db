package service

import (
	"go.uber.org/zap"

	"formulab/internal/models"
	"formulab/internal/store"
)

// RequestService owns the session's record store. The store itself lives for
// exactly as long as the service and is never reachable through package
// globals.
type RequestService struct {
	store  *store.RequestStore
	logger *zap.Logger
}

func NewRequestService(requests *store.RequestStore, logger *zap.Logger) *RequestService {
	return &RequestService{
		store:  requests,
		logger: logger,
	}
}

// Create normalizes and stores a submitted form.
func (s *RequestService) Create(fields models.Fields) (models.Request, error) {
	sanitizeFields(&fields)

	id, err := s.store.Create(fields)
	if err != nil {
		return models.Request{}, err
	}

	rec, err := s.store.Get(id)
	if err != nil {
		return models.Request{}, err
	}

	s.logger.Info("Request created",
		zap.String("id", rec.ID),
		zap.String("product_name", rec.Fields.ProductName),
	)
	return rec, nil
}

func (s *RequestService) Get(id string) (models.Request, error) {
	return s.store.Get(id)
}

// Update merges a partial edit into an existing request. The identifier and
// creation date survive every edit.
func (s *RequestService) Update(id string, patch models.FieldPatch) (models.Request, error) {
	rec, err := s.store.Update(id, patch)
	if err != nil {
		return models.Request{}, err
	}

	s.logger.Info("Request updated", zap.String("id", id))
	return rec, nil
}

func (s *RequestService) List() []models.Request {
	return s.store.List()
}

func sanitizeFields(f *models.Fields) {
	f.ProductName = sanitizeUTF8(f.ProductName)
	f.ProductType = sanitizeUTF8(f.ProductType)
	f.Texture = sanitizeUTF8(f.Texture)
	f.Ingredients = sanitizeUTF8(f.Ingredients)
	f.Fragrance = sanitizeUTF8(f.Fragrance)
	f.Vegan = sanitizeUTF8(f.Vegan)
	f.SkinType = sanitizeUTF8(f.SkinType)
	f.Positioning = sanitizeUTF8(f.Positioning)
	f.Feel = sanitizeUTF8(f.Feel)
	f.Customer = sanitizeUTF8(f.Customer)
	f.ShipDate = sanitizeUTF8(f.ShipDate)
	for i, c := range f.Claims {
		f.Claims[i] = sanitizeUTF8(c)
	}
	for i, e := range f.ContactEmails {
		f.ContactEmails[i] = sanitizeUTF8(e)
	}
}
