package services

import (
	"sort"
	"strings"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/tags"
)

// SortOrder selects the ordering of a post search result.
type SortOrder string

const (
	// SortDefault orders by status ascending, then UpdatedAt descending.
	SortDefault     SortOrder = ""
	SortUpdatedDesc SortOrder = "updated_desc"
	SortCreatedDesc SortOrder = "created_desc"
	SortTitleAsc    SortOrder = "title_asc"
)

// SearchCriteria filters a post listing. Zero values mean "any".
type SearchCriteria struct {
	// TitleContains matches as a case-insensitive substring.
	TitleContains string
	// Status matches exactly when non-zero.
	Status models.PostStatus
	// Tag matches posts whose normalized tag set contains it.
	Tag string
}

// PostPage is one page of a post listing plus the metadata pagination
// controls need. An empty page is a valid outcome, not an error.
type PostPage struct {
	Items      []*models.Post `json:"items"`
	TotalCount int            `json:"total_count"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
}

// CommentPage is one page of a post's approved comments.
type CommentPage struct {
	Items      []*models.Comment `json:"items"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

// QueryService materializes filtered, sorted, paginated listings over the
// read paths of the post and comment stores.
type QueryService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	pageSize    int
}

// NewQueryService creates a new QueryService. defaultPageSize applies when
// a caller passes a page size of zero or less.
func NewQueryService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, defaultPageSize int) *QueryService {
	if defaultPageSize < 1 {
		defaultPageSize = 10
	}
	return &QueryService{postRepo: postRepo, commentRepo: commentRepo, pageSize: defaultPageSize}
}

// SearchPosts filters, sorts and paginates the post listing. Pagination is
// offset-based and 1-indexed; TotalCount reflects the filtered set before
// slicing.
func (s *QueryService) SearchPosts(criteria SearchCriteria, order SortOrder, page, pageSize int) (*PostPage, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	filtered := posts[:0:0]
	needle := strings.ToLower(criteria.TitleContains)
	for _, p := range posts {
		if needle != "" && !strings.Contains(strings.ToLower(p.Title), needle) {
			continue
		}
		if criteria.Status != 0 && p.Status != criteria.Status {
			continue
		}
		if criteria.Tag != "" && !tags.Contains(p.TagSet(), criteria.Tag) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortPosts(filtered, order)

	page, pageSize = s.normalizePage(page, pageSize)
	return &PostPage{
		Items:      slicePage(filtered, page, pageSize),
		TotalCount: len(filtered),
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// ListComments paginates a post's approved comments, newest first.
func (s *QueryService) ListComments(postID int, page, pageSize int) (*CommentPage, error) {
	all, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, err
	}

	var approved []*models.Comment
	for _, c := range all {
		if c.Status == models.CommentApproved {
			approved = append(approved, c)
		}
	}
	sortNewestFirst(approved)

	page, pageSize = s.normalizePage(page, pageSize)
	return &CommentPage{
		Items:      slicePage(approved, page, pageSize),
		TotalCount: len(approved),
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (s *QueryService) normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = s.pageSize
	}
	return page, pageSize
}

func slicePage[T any](items []T, page, pageSize int) []T {
	offset := (page - 1) * pageSize
	if offset >= len(items) {
		return []T{}
	}
	end := offset + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func sortPosts(posts []*models.Post, order SortOrder) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		switch order {
		case SortUpdatedDesc:
			return a.UpdatedAt.After(b.UpdatedAt)
		case SortCreatedDesc:
			return a.CreatedAt.After(b.CreatedAt)
		case SortTitleAsc:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		default:
			if a.Status != b.Status {
				return a.Status < b.Status
			}
			return a.UpdatedAt.After(b.UpdatedAt)
		}
	})
}
