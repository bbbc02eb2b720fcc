package repositories

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"ildanga/internal/models/db_models"
)

//go:embed regions.json
var embeddedRegions []byte

// RegionRepository serves the static destination catalog. The catalog is
// decoded once from the embedded JSON and never mutated.
type RegionRepository interface {
	GetListOfRegions(page int, pageSize int) ([]db_models.Region, error)
	GetByID(id int) (*db_models.Region, error)
	SearchByKeyword(keyword string, limit int) ([]db_models.Region, error)
	All() []db_models.Region
}

type regionRepository struct {
	once    sync.Once
	regions []db_models.Region
	loadErr error
}

func NewRegionRepository() RegionRepository {
	return &regionRepository{}
}

func (r *regionRepository) load() ([]db_models.Region, error) {
	r.once.Do(func() {
		if err := json.Unmarshal(embeddedRegions, &r.regions); err != nil {
			r.loadErr = fmt.Errorf("failed to decode region catalog: %w", err)
		}
	})
	return r.regions, r.loadErr
}

func (r *regionRepository) All() []db_models.Region {
	regions, err := r.load()
	if err != nil {
		return nil
	}
	return regions
}

func (r *regionRepository) GetListOfRegions(page int, pageSize int) ([]db_models.Region, error) {
	regions, err := r.load()
	if err != nil {
		return nil, err
	}

	start := (page - 1) * pageSize
	if start >= len(regions) {
		return []db_models.Region{}, nil
	}
	end := start + pageSize
	if end > len(regions) {
		end = len(regions)
	}
	return regions[start:end], nil
}

func (r *regionRepository) GetByID(id int) (*db_models.Region, error) {
	regions, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range regions {
		if regions[i].ID == id {
			region := regions[i]
			return &region, nil
		}
	}
	return nil, nil
}

func (r *regionRepository) SearchByKeyword(keyword string, limit int) ([]db_models.Region, error) {
	regions, err := r.load()
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(keyword))
	if query == "" {
		return []db_models.Region{}, nil
	}

	matches := make([]db_models.Region, 0, limit)
	for _, region := range regions {
		if strings.Contains(strings.ToLower(region.Name), query) ||
			strings.Contains(strings.ToLower(region.Province), query) {
			matches = append(matches, region)
			if len(matches) >= limit {
				break
			}
		}
	}
	return matches, nil
}
