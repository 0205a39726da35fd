package mongo

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

const collectionVenues = "venues"

// VenueRepository implements ports.VenueRepository using MongoDB.
type VenueRepository struct {
	col *mongo.Collection
}

var _ ports.VenueRepository = (*VenueRepository)(nil)

func NewVenueRepository(db *mongo.Database) *VenueRepository {
	return &VenueRepository{col: db.Collection(collectionVenues)}
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, v); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrVenueExists
		}
		return domain.Dependency("insert venue", err)
	}
	return nil
}

func (r *VenueRepository) List(ctx context.Context, search string) ([]*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.col.Find(ctx, venueFilter(search), opts)
	if err != nil {
		return nil, domain.Dependency("list venues", err)
	}
	venues := []*domain.Venue{}
	if err := cur.All(ctx, &venues); err != nil {
		return nil, domain.Dependency("decode venues", err)
	}
	return venues, nil
}

// EnsureIndexes makes venue names unique regardless of case.
func (r *VenueRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetCollation(&options.Collation{Locale: "en", Strength: 2}),
	})
	return err
}

// venueFilter matches names containing search; the input is quoted so it
// is never interpreted as a pattern.
func venueFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	return bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}}
}
