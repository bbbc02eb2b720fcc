package services

import (
	"context"
	"math/rand"

	"ildanga/internal/models/db_models"
	"ildanga/internal/models/response_models"
	"ildanga/internal/repositories"
	"ildanga/pkg/utils"
)

// searchResultCap bounds autocomplete-style keyword searches.
const searchResultCap = 8

type RegionServiceInterface interface {
	GetAllRegions(page int, pageSize int, ctx context.Context) ([]response_models.RegionResponse, error)
	GetRegionByID(ctx context.Context, id int) (*db_models.Region, error)
	SearchRegions(ctx context.Context, keyword string) ([]response_models.RegionResponse, error)
	RandomRegion(ctx context.Context) (*db_models.Region, error)
}

type RegionService struct {
	regionRepository repositories.RegionRepository
}

func NewRegionService(regionRepository repositories.RegionRepository) RegionServiceInterface {
	return &RegionService{
		regionRepository: regionRepository,
	}
}

func (r *RegionService) GetAllRegions(page int, pageSize int, ctx context.Context) ([]response_models.RegionResponse, error) {
	regions, err := r.regionRepository.GetListOfRegions(page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if len(regions) == 0 {
		return []response_models.RegionResponse{}, utils.ErrRegionNotFound
	}

	return toRegionResponses(regions), nil
}

func (r *RegionService) GetRegionByID(ctx context.Context, id int) (*db_models.Region, error) {
	region, err := r.regionRepository.GetByID(id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if region == nil {
		return nil, utils.ErrRegionNotFound
	}
	return region, nil
}

func (r *RegionService) SearchRegions(ctx context.Context, keyword string) ([]response_models.RegionResponse, error) {
	regions, err := r.regionRepository.SearchByKeyword(keyword, searchResultCap)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toRegionResponses(regions), nil
}

// RandomRegion is the roulette behind the destination step.
func (r *RegionService) RandomRegion(ctx context.Context) (*db_models.Region, error) {
	regions := r.regionRepository.All()
	if len(regions) == 0 {
		return nil, utils.ErrRegionNotFound
	}
	region := regions[rand.Intn(len(regions))]
	return &region, nil
}

func toRegionResponses(regions []db_models.Region) []response_models.RegionResponse {
	out := make([]response_models.RegionResponse, 0, len(regions))
	for _, region := range regions {
		out = append(out, response_models.RegionResponse{
			ID:         region.ID,
			Name:       region.Name,
			Province:   region.Province,
			Slogan:     region.Slogan,
			Lat:        region.Lat,
			Lng:        region.Lng,
			Thumbnail:  region.Thumbnail,
			Highlights: region.Highlights,
		})
	}
	return out
}
