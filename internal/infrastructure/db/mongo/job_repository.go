package mongo

import (
	"context"
	"errors"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

const collectionJobs = "jobs"

// JobRepository implements ports.JobRepository using MongoDB.
type JobRepository struct {
	col *mongo.Collection
}

var _ ports.JobRepository = (*JobRepository)(nil)

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs)}
}

// Create inserts a new job document.
func (r *JobRepository) Create(ctx context.Context, j *domain.Job) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, j); err != nil {
		return domain.Dependency("insert job", err)
	}
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string, includeDeleted bool) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	if !includeDeleted {
		filter["deleted_at"] = nil
	}

	var j domain.Job
	if err := r.col.FindOne(ctx, filter).Decode(&j); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, domain.Dependency("find job", err)
	}
	return &j, nil
}

func (r *JobRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Job, error) {
	if len(ids) == 0 {
		return []*domain.Job{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": uniqueStrings(ids)}})
	if err != nil {
		return nil, domain.Dependency("find jobs", err)
	}
	jobs := []*domain.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, domain.Dependency("decode jobs", err)
	}
	return jobs, nil
}

// Update writes the editable fields of a non-deleted job.
func (r *JobRepository) Update(ctx context.Context, j *domain.Job) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"role":           j.Role,
		"venue":          j.Venue,
		"location":       j.Location,
		"date":           j.Date,
		"start_time":     j.StartTime,
		"end_time":       j.EndTime,
		"payment_type":   j.PaymentType,
		"payment_amount": j.PaymentAmount,
		"currency":       j.Currency,
		"description":    j.Description,
		"updated_at":     j.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": j.ID, "deleted_at": nil}, update)
	if err != nil {
		return domain.Dependency("update job", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// SoftDelete sets deleted_at once; the guard on deleted_at keeps the first
// deletion time when called twice.
func (r *JobRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "deleted_at": nil},
		bson.M{"$set": bson.M{"deleted_at": at, "updated_at": at}},
	)
	if err != nil {
		return domain.Dependency("soft delete job", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return domain.Dependency("soft delete job", err)
	}
	if n == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domain.Dependency("delete job", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// List returns jobs matching f sorted by date, start time and id. The count
// runs on the same filter before skip/limit are applied.
func (r *JobRepository) List(ctx context.Context, f domain.JobFilter, page *domain.Page) ([]*domain.Job, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := jobFilter(f)
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, domain.Dependency("count jobs", err)
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "start_time", Value: 1},
		{Key: "_id", Value: 1},
	})
	if page != nil {
		opts.SetSkip(int64(page.Offset())).SetLimit(int64(page.Size))
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, domain.Dependency("list jobs", err)
	}
	jobs := []*domain.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, 0, domain.Dependency("decode jobs", err)
	}
	return jobs, total, nil
}

func (r *JobRepository) Distinct(ctx context.Context, field ports.JobField, f domain.JobFilter) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	raw, err := r.col.Distinct(ctx, string(field), jobFilter(f))
	if err != nil {
		return nil, domain.Dependency("distinct "+string(field), err)
	}
	return sortedStrings(raw), nil
}

// EnsureIndexes creates necessary indexes on the jobs collection.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
		{Keys: bson.D{{Key: "location.city", Value: 1}}},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// jobFilter translates a domain.JobFilter into a Mongo query with the same
// semantics as JobFilter.Matches. Dates and clock times are stored as
// zero-padded strings, so lexical comparison orders them chronologically.
func jobFilter(f domain.JobFilter) bson.M {
	filter := bson.M{}
	var and []bson.M

	switch f.Activity {
	case domain.ActiveOnly:
		filter["deleted_at"] = nil
		and = append(and, endsAfter(f.At))
	case domain.InactiveOnly:
		and = append(and, bson.M{"$or": bson.A{
			bson.M{"deleted_at": bson.M{"$ne": nil}},
			endedBy(f.At),
		}})
	default:
		if !f.IncludeDeleted {
			filter["deleted_at"] = nil
		}
	}

	if f.OwnerID != "" {
		and = append(and, bson.M{"created_by": f.OwnerID})
	}
	if f.ExcludeOwnerID != "" {
		and = append(and, bson.M{"created_by": bson.M{"$ne": f.ExcludeOwnerID}})
	}
	if len(f.ExcludeJobIDs) > 0 {
		filter["_id"] = bson.M{"$nin": uniqueStrings(f.ExcludeJobIDs)}
	}
	if f.City != "" {
		filter["location.city"] = f.City
	}
	if f.Role != "" {
		filter["role"] = f.Role
	}

	dates := bson.M{}
	if f.DateFrom != "" {
		dates["$gte"] = f.DateFrom
	}
	if f.DateTo != "" {
		dates["$lte"] = f.DateTo
	}
	if len(dates) > 0 {
		filter["date"] = dates
	}

	if len(and) > 0 {
		filter["$and"] = and
	}
	return filter
}

// endsAfter matches jobs whose date+end_time is strictly after at. End times
// have minute precision, so a job ending in at's own minute has ended.
func endsAfter(at time.Time) bson.M {
	today, clock := at.Format(domain.DateLayout), at.Format(domain.ClockLayout)
	return bson.M{"$or": bson.A{
		bson.M{"date": bson.M{"$gt": today}},
		bson.M{"date": today, "end_time": bson.M{"$gt": clock}},
	}}
}

// endedBy is the complement of endsAfter.
func endedBy(at time.Time) bson.M {
	today, clock := at.Format(domain.DateLayout), at.Format(domain.ClockLayout)
	return bson.M{"$or": bson.A{
		bson.M{"date": bson.M{"$lt": today}},
		bson.M{"date": today, "end_time": bson.M{"$lte": clock}},
	}}
}

func uniqueStrings(in []string) []string {
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}

func sortedStrings(raw []interface{}) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return out
}
