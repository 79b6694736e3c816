package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"gin-catalog/dto"
	"gin-catalog/models"
	"gin-catalog/repositories"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	productListCacheKey = "products:all"
	productListCacheTTL = 5 * time.Minute
)

type IProductService interface {
	FindAll(ctx context.Context) (*[]models.Product, error)
	FindById(productID uint) (*models.Product, error)
	Create(ctx context.Context, input dto.CreateProductInput) (*models.Product, error)
	Update(ctx context.Context, productID uint, input dto.UpdateProductInput) (*models.Product, error)
	Delete(ctx context.Context, productID uint) error
}

type ProductService struct {
	repository repositories.IProductRepository
	rdb        *redis.Client
}

// NewProductService builds the product service. rdb may be nil, in which
// case every read goes straight to the store.
func NewProductService(repository repositories.IProductRepository, rdb *redis.Client) IProductService {
	return &ProductService{
		repository: repository,
		rdb:        rdb,
	}
}

// FindAll serves the product list through a read-through cache. Cache
// failures fall back to the store; the list must stay servable with redis
// down.
func (s *ProductService) FindAll(ctx context.Context) (*[]models.Product, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, productListCacheKey).Result()
		if err == nil {
			var products []models.Product
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return &products, nil
			}
			log.Printf("Discarding undecodable product cache entry")
		} else if err != redis.Nil {
			log.Printf("Product cache read failed: %v", err)
		}
	}

	products, err := s.repository.FindAll()
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if encoded, err := json.Marshal(products); err == nil {
			if err := s.rdb.Set(ctx, productListCacheKey, encoded, productListCacheTTL).Err(); err != nil {
				log.Printf("Product cache write failed: %v", err)
			}
		}
	}
	return products, nil
}

func (s *ProductService) FindById(productID uint) (*models.Product, error) {
	product, err := s.repository.FindById(productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return product, err
}

func (s *ProductService) Create(ctx context.Context, input dto.CreateProductInput) (*models.Product, error) {
	newProduct := models.Product{
		Name:        input.Name,
		Price:       input.Price,
		Stock:       input.Stock,
		Description: input.Description,
	}
	created, err := s.repository.Create(newProduct)
	if err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, productID uint, input dto.UpdateProductInput) (*models.Product, error) {
	target, err := s.FindById(productID)
	if err != nil || target == nil {
		return nil, err
	}

	if input.Name != nil {
		target.Name = *input.Name
	}
	if input.Price != nil {
		target.Price = *input.Price
	}
	if input.Stock != nil {
		target.Stock = *input.Stock
	}
	if input.Description != nil {
		target.Description = *input.Description
	}

	updated, err := s.repository.Update(*target)
	if err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, productID uint) error {
	if err := s.repository.Delete(productID); err != nil {
		return err
	}
	s.invalidateListCache(ctx)
	return nil
}

func (s *ProductService) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, productListCacheKey).Err(); err != nil {
		log.Printf("Product cache invalidation failed: %v", err)
	}
}
