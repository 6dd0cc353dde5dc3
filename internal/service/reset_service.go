package service

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/freshbites/planner/backend-go/internal/cache"
	"github.com/freshbites/planner/backend-go/internal/collab"
	"github.com/freshbites/planner/backend-go/internal/repository"
)

// ResetService wipes every dataset, cached report, note and saved upload.
type ResetService struct {
	repo      repository.PlanningRepository
	cache     cache.PlannerCache
	collab    *collab.Store
	uploadDir string
}

func NewResetService(repo repository.PlanningRepository, cacheImpl cache.PlannerCache, collabStore *collab.Store, uploadDir string) *ResetService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopPlannerCache()
	}
	return &ResetService{repo: repo, cache: cacheImpl, collab: collabStore, uploadDir: uploadDir}
}

func (s *ResetService) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		return err
	}
	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("reset: cache invalidation failed")
	}
	if s.collab != nil {
		s.collab.Reset()
	}
	s.clearUploads()
	return nil
}

// clearUploads is best-effort: a leftover file never blocks a reset.
func (s *ResetService) clearUploads() {
	if s.uploadDir == "" {
		return
	}
	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.uploadDir, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Warn().Err(err).Str("file", path).Msg("reset: could not delete upload")
		}
	}
}
