package ops

import (
	"crypto/rand"
	"database/sql"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rb7a/nano-banana-prompt/internal/corpus"
	"github.com/rb7a/nano-banana-prompt/internal/db"
	"github.com/rb7a/nano-banana-prompt/internal/errors"
)

// FavoriteOutput contains the result of a favorite mutation.
type FavoriteOutput struct {
	CaseNumber string `json:"case_number"`
	Favorited  bool   `json:"favorited"`
	Changed    bool   `json:"changed"`
}

// AddFavorite bookmarks a case. Favoriting an already-favorited case is
// not an error; the output reports Changed=false.
func AddFavorite(database *sql.DB, c *corpus.Corpus, caseNumber int) (*FavoriteOutput, error) {
	if _, err := GetCase(c, caseNumber); err != nil {
		return nil, err
	}

	id, err := generateULID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	f := &db.Favorite{ID: id, CaseNumber: caseNumber, CreatedAt: time.Now().Unix()}
	if err := db.InsertFavorite(database, f); err != nil {
		if err == db.ErrUniqueConstraint {
			return &FavoriteOutput{CaseNumber: strconv.Itoa(caseNumber), Favorited: true, Changed: false}, nil
		}
		return nil, err
	}

	return &FavoriteOutput{CaseNumber: strconv.Itoa(caseNumber), Favorited: true, Changed: true}, nil
}

// RemoveFavorite removes a bookmark. Removing a case that was never
// favorited returns NOT_FOUND.
func RemoveFavorite(database *sql.DB, caseNumber int) (*FavoriteOutput, error) {
	if caseNumber <= 0 {
		return nil, errors.NewInvalidRequest("case number must be positive")
	}
	if err := db.DeleteFavorite(database, caseNumber); err != nil {
		return nil, err
	}
	return &FavoriteOutput{CaseNumber: strconv.Itoa(caseNumber), Favorited: false, Changed: true}, nil
}

// ToggleFavorite flips the favorite state of a case.
func ToggleFavorite(database *sql.DB, c *corpus.Corpus, caseNumber int) (*FavoriteOutput, error) {
	if _, err := GetCase(c, caseNumber); err != nil {
		return nil, err
	}

	exists, err := db.FavoriteExists(database, caseNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return RemoveFavorite(database, caseNumber)
	}
	return AddFavorite(database, c, caseNumber)
}

// FavoriteItem is a bookmarked case joined with its corpus entry. Case is
// nil when the bookmark refers to a number absent from the current corpus
// (for example after the source document dropped a case).
type FavoriteItem struct {
	CaseNumber int          `json:"caseNumber"`
	AddedAt    int64        `json:"addedAt"`
	Case       *corpus.Case `json:"case,omitempty"`
}

// ListFavoritesOutput contains the result of the ListFavorites operation.
type ListFavoritesOutput struct {
	Items []FavoriteItem `json:"items"`
	Total int            `json:"total"`
}

// ListFavorites returns all bookmarks, newest first.
func ListFavorites(database *sql.DB, c *corpus.Corpus) (*ListFavoritesOutput, error) {
	favorites, err := db.ListFavorites(database)
	if err != nil {
		return nil, err
	}

	items := make([]FavoriteItem, len(favorites))
	for i, f := range favorites {
		items[i] = FavoriteItem{
			CaseNumber: f.CaseNumber,
			AddedAt:    f.CreatedAt,
			Case:       c.FindCase(f.CaseNumber),
		}
	}

	return &ListFavoritesOutput{Items: items, Total: len(items)}, nil
}

// ClearFavoritesOutput contains the result of the ClearFavorites operation.
type ClearFavoritesOutput struct {
	Deleted int64 `json:"deleted"`
}

// ClearFavorites removes every bookmark.
func ClearFavorites(database *sql.DB) (*ClearFavoritesOutput, error) {
	deleted, err := db.ClearFavorites(database)
	if err != nil {
		return nil, err
	}
	return &ClearFavoritesOutput{Deleted: deleted}, nil
}

// generateULID generates a new ULID.
func generateULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
