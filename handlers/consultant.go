package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	consultantRepo "gencare/database/repository/consultant"
	"gencare/models"
	"gencare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ConsultantHandler serves the public consultant catalog. Catalog reads go
// through the generic Redis cache; a nil cache client degrades to straight
// repository reads.
type ConsultantHandler struct {
	Repo   consultantRepo.ConsultantRepository
	Cache  *redis.Client
	Logger *zap.Logger
}

// NewConsultantHandler creates a ConsultantHandler.
func NewConsultantHandler(repo consultantRepo.ConsultantRepository, cache *redis.Client, logger *zap.Logger) *ConsultantHandler {
	return &ConsultantHandler{Repo: repo, Cache: cache, Logger: logger}
}

// ListConsultants returns active consultants, optionally filtered by specialty.
func (h *ConsultantHandler) ListConsultants(c *gin.Context) {
	ctx := c.Request.Context()
	specialty := c.Query("specialty")

	cacheKey := utils.ConsultantCachePrefix + "all"
	if specialty != "" {
		cacheKey = utils.ConsultantCachePrefix + "specialty:" + specialty
	}
	if dtos, ok := h.cachedCatalog(ctx, cacheKey); ok {
		c.JSON(http.StatusOK, gin.H{"consultants": dtos})
		return
	}

	var (
		consultants []models.Consultant
		err         error
	)
	if specialty != "" {
		consultants, err = h.Repo.GetBySpecialty(specialty)
	} else {
		consultants, err = h.Repo.GetAll()
	}
	if err != nil {
		h.Logger.Error("failed to list consultants", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list consultants"})
		return
	}

	dtos := make([]models.ConsultantDTO, 0, len(consultants))
	for _, consultant := range consultants {
		dtos = append(dtos, models.ToConsultantDTO(consultant))
	}
	h.storeCatalog(ctx, cacheKey, dtos)
	c.JSON(http.StatusOK, gin.H{"consultants": dtos})
}

// GetConsultantByID returns a single consultant's public profile.
func (h *ConsultantHandler) GetConsultantByID(c *gin.Context) {
	id := c.Param("id")
	consultant, err := h.Repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "consultant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"consultant": models.ToConsultantDTO(*consultant)})
}

// cachedCatalog returns the cached DTO list for the key. Any cache error is a
// miss; the repository remains the source of truth.
func (h *ConsultantHandler) cachedCatalog(ctx context.Context, key string) ([]models.ConsultantDTO, bool) {
	if h.Cache == nil {
		return nil, false
	}
	data, err := h.Cache.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var dtos []models.ConsultantDTO
	if err := json.Unmarshal([]byte(data), &dtos); err != nil {
		return nil, false
	}
	return dtos, true
}

func (h *ConsultantHandler) storeCatalog(ctx context.Context, key string, dtos []models.ConsultantDTO) {
	if h.Cache == nil {
		return
	}
	data, err := json.Marshal(dtos)
	if err != nil {
		return
	}
	if err := h.Cache.Set(ctx, key, data, utils.ConsultantCacheTTL).Err(); err != nil {
		h.Logger.Warn("failed to cache consultant catalog", zap.Error(err))
	}
}
