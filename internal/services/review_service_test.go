package services

import (
	"context"
	"testing"

	"github.com/amarjela/district-backend/internal/models"
	"github.com/amarjela/district-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewUpsert(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewReviewService(db)
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "রেস্টুরেন্ট", "restaurant")
	item := testutil.CreateContent(t, db, cat.ID, "Kacchi Bhai")
	user := userActor(t, db, "Nadia")

	_, err := svc.Upsert(ctx, user, item.ID, 6, "")
	assert.ErrorIs(t, err, ErrInvalidRating)
	_, err = svc.Upsert(ctx, user, uuid.New(), 4, "")
	assert.ErrorIs(t, err, ErrContentNotFound)

	first, err := svc.Upsert(ctx, user, item.ID, 2, "ঠান্ডা খাবার")
	require.NoError(t, err)
	second, err := svc.Upsert(ctx, user, item.ID, 5, " দারুণ ")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Rating)
	assert.Equal(t, "দারুণ", second.Comment)

	_, err = svc.Upsert(ctx, userActor(t, db, "Tania"), item.ID, 4, "")
	require.NoError(t, err)

	reviews, summary, err := svc.ListForContent(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, int64(2), summary.Count)
	assert.InDelta(t, 4.5, summary.Average, 0.001)
	require.NotNil(t, reviews[0].Reviewer)

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(2), count)
}
