package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"kbs-store/models"
	"kbs-store/repositories"
)

// Uploader pushes an image to the asset store and returns its canonical URL.
// The upload must fully complete before the catalog record is written.
type Uploader interface {
	Upload(ctx context.Context, file multipart.File, filename string) (string, error)
	ValidateImageFile(file *multipart.FileHeader) error
}

type CatalogService struct {
	repo     repositories.ItemRepository
	uploader Uploader
}

func NewCatalogService(repo repositories.ItemRepository, uploader Uploader) *CatalogService {
	return &CatalogService{repo: repo, uploader: uploader}
}

func (s *CatalogService) List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	return s.repo.List(ctx, filter)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, req models.CreateItemRequest, file *multipart.FileHeader) (*models.Item, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)

	if name == "" || description == "" {
		return nil, fmt.Errorf("%w: name and description are required", models.ErrValidation)
	}
	if req.Price == nil {
		return nil, fmt.Errorf("%w: price is required", models.ErrValidation)
	}
	if *req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	}
	if req.Image == "" && file == nil {
		return nil, fmt.Errorf("%w: image is required", models.ErrValidation)
	}

	image := req.Image
	if file != nil {
		uploaded, err := s.uploadImage(ctx, file)
		if err != nil {
			return nil, err
		}
		image = uploaded
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = fmt.Sprintf("item%d", time.Now().UnixMilli())
	}

	category := req.Category
	if category == "" {
		category = models.DefaultCategory
	}

	item := &models.Item{
		ID:          id,
		Name:        name,
		Price:       *req.Price,
		Description: description,
		Image:       image,
		Category:    category,
		InStock:     true,
		Featured:    false,
	}
	if req.InStock != nil {
		item.InStock = *req.InStock
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update merges the provided fields onto the stored item. Nil fields keep
// their stored value; the merged price must still be non-negative.
func (s *CatalogService) Update(ctx context.Context, id string, req models.UpdateItemRequest, file *multipart.FileHeader) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Description != nil {
		item.Description = strings.TrimSpace(*req.Description)
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.InStock != nil {
		item.InStock = *req.InStock
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}

	if item.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", models.ErrValidation)
	}
	if item.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	}

	if file != nil {
		uploaded, err := s.uploadImage(ctx, file)
		if err != nil {
			return nil, err
		}
		item.Image = uploaded
	}

	return s.repo.Update(ctx, item)
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *CatalogService) uploadImage(ctx context.Context, header *multipart.FileHeader) (string, error) {
	if s.uploader == nil {
		return "", fmt.Errorf("%w: no image upload backend configured", models.ErrUpstream)
	}

	if err := s.uploader.ValidateImageFile(header); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	defer file.Close()

	url, err := s.uploader.Upload(ctx, file, header.Filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	return url, nil
}
