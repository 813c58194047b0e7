package content

import (
	"context"
	"errors"
	"strings"

	"doctospeech/database/repository"
	"doctospeech/models"
	"doctospeech/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContentService serves speech resources and ebooks. Premium users see every
// alphabet; everyone else gets the first one as a preview.
type ContentService interface {
	ListResources(ctx context.Context, viewer *models.Actor) ([]models.Resource, error)
	ResourceDetail(ctx context.Context, viewer *models.Actor, id string) (*models.Resource, error)
	ListEbooks(ctx context.Context, viewer models.Actor) ([]models.Ebook, error)
	CreateResource(ctx context.Context, in models.Resource) (*models.Resource, error)
	CreateEbook(ctx context.Context, in models.Ebook) (*models.Ebook, error)
}

// UserReader resolves the viewer's entitlement.
type UserReader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type DefaultContentService struct {
	Content repository.ContentRepository
	Users   UserReader
}

func NewContentService(repos *repository.Repositories) *DefaultContentService {
	return &DefaultContentService{Content: repos.Content, Users: repos.Users}
}

// ListResources returns resource summaries, marked locked unless the viewer
// is premium. A nil viewer is an anonymous caller.
func (s *DefaultContentService) ListResources(ctx context.Context, viewer *models.Actor) ([]models.Resource, error) {
	resources, err := s.Content.ListResources(ctx)
	if err != nil {
		return nil, err
	}
	if resources == nil {
		resources = []models.Resource{}
	}
	premium, err := s.isPremium(ctx, viewer)
	if err != nil {
		return nil, err
	}
	for i := range resources {
		resources[i].Locked = !premium
	}
	return resources, nil
}

// ResourceDetail returns one resource. A nil viewer is an anonymous caller.
func (s *DefaultContentService) ResourceDetail(ctx context.Context, viewer *models.Actor, id string) (*models.Resource, error) {
	r, err := s.Content.GetResource(ctx, id)
	if err != nil {
		return nil, err
	}
	premium, err := s.isPremium(ctx, viewer)
	if err != nil {
		return nil, err
	}
	if !premium {
		lockAfterFirst(r)
	}
	return r, nil
}

func lockAfterFirst(r *models.Resource) {
	r.Locked = true
	for i := 1; i < len(r.Alphabets); i++ {
		r.Alphabets[i].Locked = true
		r.Alphabets[i].Videos = []models.Video{}
	}
}

func (s *DefaultContentService) ListEbooks(ctx context.Context, viewer models.Actor) ([]models.Ebook, error) {
	premium, err := s.isPremium(ctx, &viewer)
	if err != nil {
		return nil, err
	}
	if !premium {
		return nil, utils.ErrPremiumRequired
	}
	ebooks, err := s.Content.ListEbooks(ctx)
	if err != nil {
		return nil, err
	}
	if ebooks == nil {
		ebooks = []models.Ebook{}
	}
	return ebooks, nil
}

func (s *DefaultContentService) isPremium(ctx context.Context, viewer *models.Actor) (bool, error) {
	if viewer == nil {
		return false, nil
	}
	u, err := s.Users.GetByID(ctx, viewer.ID)
	if errors.Is(err, utils.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.IsPremium(), nil
}

func (s *DefaultContentService) CreateResource(ctx context.Context, in models.Resource) (*models.Resource, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, utils.Validationf("title is required")
	}
	if len(in.Alphabets) == 0 {
		return nil, utils.Validationf("at least one alphabet is required")
	}
	tasks := 0
	for i, a := range in.Alphabets {
		if strings.TrimSpace(a.Letter) == "" {
			return nil, utils.Validationf("alphabets[%d].letter is required", i)
		}
		for j, v := range a.Videos {
			if !v.Type.Valid() {
				return nil, utils.Validationf("alphabets[%d].videos[%d].type must be frontView, fullView or sideView", i, j)
			}
			if strings.TrimSpace(v.URL) == "" {
				return nil, utils.Validationf("alphabets[%d].videos[%d].url is required", i, j)
			}
		}
		tasks += len(a.Videos)
		in.Alphabets[i].Locked = false
	}
	in.ID = uuid.New().String()
	if in.TotalTasks == 0 {
		in.TotalTasks = tasks
	}
	if err := s.Content.CreateResource(ctx, &in); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Resource created", zap.String("resourceId", in.ID), zap.Int("alphabets", len(in.Alphabets)))
	return &in, nil
}

func (s *DefaultContentService) CreateEbook(ctx context.Context, in models.Ebook) (*models.Ebook, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.URL = strings.TrimSpace(in.URL)
	if in.Title == "" || in.URL == "" {
		return nil, utils.Validationf("title and url are required")
	}
	if strings.TrimSpace(in.AuthorDetails.Name) == "" {
		return nil, utils.Validationf("authorDetails.name is required")
	}
	in.ID = uuid.New().String()
	if err := s.Content.CreateEbook(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}
