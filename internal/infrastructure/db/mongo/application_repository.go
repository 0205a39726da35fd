package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

const collectionApplications = "applications"

// ApplicationRepository implements ports.ApplicationRepository using MongoDB.
type ApplicationRepository struct {
	col *mongo.Collection
}

var _ ports.ApplicationRepository = (*ApplicationRepository)(nil)

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{col: db.Collection(collectionApplications)}
}

// Create inserts a. The partial unique index on (job_id, applicant_id)
// rejects a second live application for the pair.
func (r *ApplicationRepository) Create(ctx context.Context, a *domain.Application) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateApplication
		}
		return domain.Dependency("insert application", err)
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ApplicationRepository) FindLive(ctx context.Context, jobID, applicantID string) (*domain.Application, error) {
	return r.findOne(ctx, bson.M{
		"job_id":       jobID,
		"applicant_id": applicantID,
		"status":       bson.M{"$in": domain.LiveStatuses},
	})
}

func (r *ApplicationRepository) findOne(ctx context.Context, filter bson.M) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Application
	if err := r.col.FindOne(ctx, filter).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, domain.Dependency("find application", err)
	}
	return &a, nil
}

// List returns matching applications, newest first.
func (r *ApplicationRepository) List(ctx context.Context, f ports.ApplicationFilter) ([]*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}, {Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, applicationFilter(f), opts)
	if err != nil {
		return nil, domain.Dependency("list applications", err)
	}
	apps := []*domain.Application{}
	if err := cur.All(ctx, &apps); err != nil {
		return nil, domain.Dependency("decode applications", err)
	}
	return apps, nil
}

func (r *ApplicationRepository) LiveJobIDs(ctx context.Context, applicantID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	raw, err := r.col.Distinct(ctx, "job_id", bson.M{
		"applicant_id": applicantID,
		"status":       bson.M{"$in": domain.LiveStatuses},
	})
	if err != nil {
		return nil, domain.Dependency("list applied jobs", err)
	}
	return sortedStrings(raw), nil
}

// UpdateStatus is a compare-and-set on status. When no document matches,
// a second read tells a missing application from a lost race.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, from, to domain.ApplicationStatus, at time.Time) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a domain.Application
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, "updated_at": at}},
		opts,
	).Decode(&a)
	if err == nil {
		return &a, nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, domain.ErrDuplicateApplication
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.Dependency("update application status", err)
	}

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, domain.Dependency("update application status", err)
	}
	if n == 0 {
		return nil, domain.ErrApplicationNotFound
	}
	return nil, domain.ErrInvalidTransition
}

// EnsureIndexes creates the indexes of the applications collection. The
// unique index only covers live statuses, so withdrawn history rows do not
// block re-applying. Partial filters with $in need MongoDB 6.0 or later.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "job_id", Value: 1}, {Key: "applicant_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_live_application").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": bson.M{"$in": domain.LiveStatuses}}),
		},
		{Keys: bson.D{{Key: "applicant_id", Value: 1}, {Key: "applied_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func applicationFilter(f ports.ApplicationFilter) bson.M {
	filter := bson.M{}
	if f.ApplicantID != "" {
		filter["applicant_id"] = f.ApplicantID
	}
	if f.JobIDs != nil {
		filter["job_id"] = bson.M{"$in": uniqueStrings(f.JobIDs)}
	}
	switch {
	case f.Status != "":
		filter["status"] = f.Status
	case !f.IncludeWithdrawn:
		filter["status"] = bson.M{"$in": domain.LiveStatuses}
	}
	return filter
}
