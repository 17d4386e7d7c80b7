package articles

import (
	"context"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/rench/blog/status"
)

const (
	DefaultPageSize = 10
	MaxPage         = 10000
	basePath        = "/p/public/articles/"
)

type Article struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Page is one slice of the article listing. Number starts at 1.
type Page struct {
	Items   []Article `json:"items"`
	Number  int       `json:"page"`
	HasNext bool      `json:"hasNext"`
}

type Store interface {
	List(ctx context.Context, page, size int) (Page, error)
	Get(ctx context.Context, id uint64) (Article, error)
}

func URLFor(id uint64) string {
	return basePath + strconv.FormatUint(id, 10)
}

// Catalog is an in-memory Store, newest article first.
type Catalog struct {
	items []Article
}

func NewCatalog(items ...Article) *Catalog {
	sorted := make([]Article, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})
	return &Catalog{items: sorted}
}

func (c *Catalog) List(ctx context.Context, page, size int) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	page, size = normalize(page, size)

	start, ok := offset(page, size)
	if !ok || start >= len(c.items) {
		return Page{Items: []Article{}, Number: page}, nil
	}
	end := min(start+size, len(c.items))

	items := make([]Article, end-start)
	copy(items, c.items[start:end])

	return Page{
		Items:   items,
		Number:  page,
		HasNext: end < len(c.items),
	}, nil
}

func (c *Catalog) Get(ctx context.Context, id uint64) (Article, error) {
	if err := ctx.Err(); err != nil {
		return Article{}, err
	}
	for _, a := range c.items {
		if a.ID == id {
			return a, nil
		}
	}
	return Article{}, status.ErrArticleNotFound
}

// offset is the index of the first item on page. It reports false when the
// index does not fit in an int.
func offset(page, size int) (int, bool) {
	if page-1 > (math.MaxInt-size)/size {
		return 0, false
	}
	return (page - 1) * size, true
}

func normalize(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	return page, size
}
