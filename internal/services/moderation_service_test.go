package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amarjela/district-backend/internal/identity"
	"github.com/amarjela/district-backend/internal/models"
	"github.com/amarjela/district-backend/internal/schema"
	"github.com/amarjela/district-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStatus_ApprovedListingShowsInApprovedList(t *testing.T) {
	db := testutil.NewDB(t)
	content := NewContentService(db, schema.NewDefaultRegistry())
	svc := NewModerationService(db)
	admin := adminActor(t, db)
	ctx := context.Background()
	doctor := testutil.CreateCategory(t, db, "ডাক্তার", "doctor")

	item, err := content.Submit(ctx, userActor(t, db, "Rahim"), SubmitInput{
		CategoryID: doctor.ID,
		DistrictID: "dhaka",
		Values:     map[string]string{"title": "ডাঃ করিম", "specialty": "মেডিসিন"},
	})
	require.NoError(t, err)

	approved, err := svc.SetStatus(ctx, admin, item.ID, models.StatusApproved, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, approved.Status)
	assert.Equal(t, int64(2), approved.Version)

	list, total, err := svc.List(ctx, admin, ContentFilter{Status: models.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, item.ID, list[0].ID)

	_, total, err = svc.List(ctx, admin, ContentFilter{Status: models.StatusPending})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestSetStatus_Idempotent(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewModerationService(db)
	admin := adminActor(t, db)
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "হাসপাতাল", "hospital")
	item := testutil.CreateContent(t, db, cat.ID, "Medical", testutil.WithStatus(models.StatusPending))

	first, err := svc.SetStatus(ctx, admin, item.ID, models.StatusApproved, nil)
	require.NoError(t, err)
	second, err := svc.SetStatus(ctx, admin, item.ID, models.StatusApproved, nil)
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Version, second.Version)

	var actions int64
	db.Model(&models.ModerationAction{}).Where("content_id = ?", item.ID).Count(&actions)
	assert.Equal(t, int64(1), actions)
}

func TestSetStatus_Transitions(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewModerationService(db)
	admin := adminActor(t, db)
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "হাসপাতাল", "hospital")
	item := testutil.CreateContent(t, db, cat.ID, "Medical")

	_, err := svc.SetStatus(ctx, admin, item.ID, models.StatusPending, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.SetStatus(ctx, admin, item.ID, "archived", nil)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.SetStatus(ctx, admin, uuid.New(), models.StatusRejected, nil)
	assert.ErrorIs(t, err, ErrContentNotFound)

	_, err = svc.SetStatus(ctx, userActor(t, db, "u"), item.ID, models.StatusRejected, nil)
	assert.ErrorIs(t, err, ErrForbidden)

	stale := int64(0)
	_, err = svc.SetStatus(ctx, admin, item.ID, models.StatusRejected, &stale)
	assert.ErrorIs(t, err, ErrVersionConflict)

	current := item.Version
	rejected, err := svc.SetStatus(ctx, admin, item.ID, models.StatusRejected, &current)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)

	// Rejected listings can be approved again.
	_, err = svc.SetStatus(ctx, admin, item.ID, models.StatusApproved, nil)
	require.NoError(t, err)

	history, err := svc.History(ctx, admin, item.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	for _, h := range history {
		assert.Equal(t, models.ActionStatusChange, h.Action)
		assert.Equal(t, "Root", h.ActorName)
	}
}

func TestDistrictAdminScope(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewModerationService(db)
	local := districtAdmin(t, db, "dhaka")
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "পুলিশ", "police")

	mine := testutil.CreateContent(t, db, cat.ID, "Thana", testutil.WithStatus(models.StatusPending))
	theirs := testutil.CreateContent(t, db, cat.ID, "Other thana", testutil.WithStatus(models.StatusPending), testutil.WithDistrict("sylhet"))

	list, total, err := svc.List(ctx, local, ContentFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, mine.ID, list[0].ID)

	_, _, err = svc.List(ctx, local, ContentFilter{DistrictID: "sylhet"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.SetStatus(ctx, local, theirs.ID, models.StatusApproved, nil)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, local, theirs.ID), ErrForbidden)
	_, err = svc.History(ctx, local, theirs.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.SetStatus(ctx, local, mine.ID, models.StatusApproved, nil)
	assert.NoError(t, err)
}

func TestList_Filters(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewModerationService(db)
	admin := adminActor(t, db)
	ctx := context.Background()
	doctors := testutil.CreateCategory(t, db, "ডাক্তার", "doctor")
	hotels := testutil.CreateCategory(t, db, "হোটেল", "hotel")

	testutil.CreateContent(t, db, doctors.ID, "a")
	testutil.CreateContent(t, db, doctors.ID, "b", testutil.WithDistrict("gazipur"))
	testutil.CreateContent(t, db, hotels.ID, "c", func(c *models.ContentItem) { c.DivisionID = "sylhet" })

	_, total, err := svc.List(ctx, admin, ContentFilter{CategoryID: &doctors.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, total, err = svc.List(ctx, admin, ContentFilter{DivisionID: "sylhet"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	page, total, err := svc.List(ctx, admin, ContentFilter{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page, 1)

	_, _, err = svc.List(ctx, admin, ContentFilter{Status: "unknown"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDelete_CascadesDependents(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewModerationService(db)
	admin := adminActor(t, db)
	user := userActor(t, db, "u")
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "হোটেল", "hotel")
	item := testutil.CreateContent(t, db, cat.ID, "Hotel")
	other := testutil.CreateContent(t, db, cat.ID, "Other")

	require.NoError(t, db.Create(&models.Report{ContentID: item.ID, UserID: user.ID, Reason: "r", Status: models.ReportPending}).Error)
	require.NoError(t, db.Create(&models.Review{ContentID: item.ID, UserID: user.ID, Rating: 4}).Error)
	require.NoError(t, db.Create(&models.SavedItem{ContentID: item.ID, UserID: user.ID}).Error)
	require.NoError(t, db.Create(&models.SavedItem{ContentID: other.ID, UserID: user.ID}).Error)

	require.NoError(t, svc.Delete(ctx, admin, item.ID))
	assert.ErrorIs(t, svc.Delete(ctx, admin, item.ID), ErrContentNotFound)

	for _, model := range []interface{}{&models.Report{}, &models.Review{}, &models.SavedItem{}} {
		var count int64
		db.Model(model).Where("content_id = ?", item.ID).Count(&count)
		assert.Zero(t, count)
	}

	var saved int64
	db.Model(&models.SavedItem{}).Count(&saved)
	assert.Equal(t, int64(1), saved)

	var audit models.ModerationAction
	require.NoError(t, db.Where("content_id = ? AND action = ?", item.ID, models.ActionDelete).First(&audit).Error)
	assert.Equal(t, "Hotel", audit.Note)
}

func TestStats(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewModerationService(db)
	admin := adminActor(t, db)
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "ব্লাড", "blood")

	pending := testutil.CreateContent(t, db, cat.ID, "p1", testutil.WithStatus(models.StatusPending))
	testutil.CreateContent(t, db, cat.ID, "p2", testutil.WithStatus(models.StatusPending), testutil.WithDistrict("sylhet"))
	testutil.CreateContent(t, db, cat.ID, "a1")
	testutil.CreateContent(t, db, cat.ID, "r1", testutil.WithStatus(models.StatusRejected))
	require.NoError(t, db.Create(&models.Report{ContentID: pending.ID, UserID: admin.ID, Reason: "r", Status: models.ReportPending}).Error)

	stats, err := svc.Stats(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Pending)
	assert.Equal(t, int64(1), stats.Approved)
	assert.Equal(t, int64(1), stats.Rejected)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(1), stats.ActiveCategories)
	assert.Equal(t, int64(1), stats.PendingReports)
	assert.Len(t, stats.RecentPending, 2)

	local, err := svc.Stats(ctx, districtAdmin(t, db, "sylhet"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), local.Pending)
	assert.Equal(t, int64(1), local.Total)
	assert.Zero(t, local.PendingReports)

	_, err = svc.Stats(ctx, userActor(t, db, "u"))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSetStatus_PersistenceFailure(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	svc := NewModerationService(db)
	admin := adminActor(t, testutil.NewDB(t))

	mock.ExpectBegin().WillReturnError(errors.New("connection reset"))

	_, err := svc.SetStatus(context.Background(), admin, uuid.New(), models.StatusApproved, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_RollsBackOnFailure(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	svc := NewModerationService(db)
	admin := adminActor(t, testutil.NewDB(t))
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "content_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "district_id", "status"}).AddRow(id.String(), "dhaka", "approved"))
	mock.ExpectExec(`DELETE FROM "reports"`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := svc.Delete(context.Background(), admin, id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDistrictAdminWithoutDistrictIsRefused(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "পুলিশ", "police")
	testutil.CreateContent(t, db, cat.ID, "Thana", testutil.WithStatus(models.StatusPending))

	unscoped := identity.FromProfile(testutil.CreateProfile(t, db, "Nowhere", models.RoleDistrictAdmin, ""))

	_, _, err := NewModerationService(db).List(ctx, unscoped, ContentFilter{})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = NewModerationService(db).Stats(ctx, unscoped)
	assert.ErrorIs(t, err, ErrForbidden)
	_, _, err = NewReportService(db).List(ctx, unscoped, "", 0, 0)
	assert.ErrorIs(t, err, ErrForbidden)
	_, _, err = NewProfileService(db).List(ctx, unscoped, 0, 0)
	assert.ErrorIs(t, err, ErrForbidden)
}
