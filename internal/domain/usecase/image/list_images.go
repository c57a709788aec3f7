package image

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
)

// ListImages returns a page of all images, newest first
func (u *ImageUseCase) ListImages(ctx context.Context, query usecase.ListImagesQuery) (*entity.ImagePage, error) {
	return u.list(ctx, "", query)
}

// ListUserImages returns a page of the author's images, newest first
func (u *ImageUseCase) ListUserImages(ctx context.Context, authorID string, query usecase.ListImagesQuery) (*entity.ImagePage, error) {
	if strings.TrimSpace(authorID) == "" {
		return nil, errs.ErrInvalidRequest
	}
	return u.list(ctx, authorID, query)
}

func (u *ImageUseCase) list(ctx context.Context, authorID string, query usecase.ListImagesQuery) (*entity.ImagePage, error) {
	limit, page := normalizePaging(query.Limit, query.Page)
	repoQuery := persistence.ImageQuery{
		AuthorID: authorID,
		Offset:   (page - 1) * limit,
		Limit:    limit,
	}

	if search := strings.TrimSpace(query.SearchQuery); search != "" {
		publicIDs, err := u.media.SearchPublicIDs(ctx, SearchExpression(u.media.Folder(), search))
		if err != nil {
			u.logger.Error("Media search failed", map[string]any{
				"query": search,
				"error": err.Error(),
			})
			return nil, err
		}
		if len(publicIDs) == 0 {
			return &entity.ImagePage{Images: []*entity.Image{}, Page: page, Limit: limit}, nil
		}
		repoQuery.RestrictToPublicIDs = true
		repoQuery.PublicIDs = publicIDs
	}

	images, total, err := u.imageRepo.List(ctx, repoQuery)
	if err != nil {
		u.logger.Error("Failed to list images", map[string]any{
			"authorId": authorID,
			"page":     page,
			"error":    err.Error(),
		})
		return nil, err
	}
	if images == nil {
		images = []*entity.Image{}
	}

	return &entity.ImagePage{
		Images:     images,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// SearchExpression scopes a free-text media query to the upload folder
func SearchExpression(folder, query string) string {
	expr := fmt.Sprintf("folder=%s", folder)
	if query != "" {
		expr += " AND " + query
	}
	return expr
}

func normalizePaging(limit, page int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	return limit, page
}

func totalPages(total int64, limit int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
