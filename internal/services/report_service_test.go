package services

import (
	"context"
	"strings"
	"testing"

	"github.com/amarjela/district-backend/internal/models"
	"github.com/amarjela/district-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_RequiresReason(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewReportService(db)
	user := userActor(t, db, "Karim")
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "ডাক্তার", "doctor")
	item := testutil.CreateContent(t, db, cat.ID, "ডাঃ করিম")

	_, err := svc.File(ctx, user, item.ID, "")
	assert.ErrorIs(t, err, ErrEmptyReason)
	_, err = svc.File(ctx, user, item.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyReason)

	var count int64
	db.Model(&models.Report{}).Count(&count)
	assert.Zero(t, count)

	report, err := svc.File(ctx, user, item.ID, "ভুল নম্বর")
	require.NoError(t, err)
	assert.Equal(t, models.ReportPending, report.Status)
	assert.Equal(t, "ভুল নম্বর", report.Reason)

	// The same user may report again.
	_, err = svc.File(ctx, user, item.ID, "আবার ভুল")
	require.NoError(t, err)
}

func TestFile_Bounds(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewReportService(db)
	user := userActor(t, db, "Karim")
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "ডাক্তার", "doctor")
	item := testutil.CreateContent(t, db, cat.ID, "ডাঃ করিম")

	_, err := svc.File(ctx, user, item.ID, strings.Repeat("ক", 501))
	assert.ErrorIs(t, err, ErrReasonTooLong)

	_, err = svc.File(ctx, user, item.ID, strings.Repeat("ক", 500))
	assert.NoError(t, err)

	_, err = svc.File(ctx, user, uuid.New(), "ভুল")
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestResolve_BanRejectsContentAndResolvesAllReports(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewReportService(db)
	admin := adminActor(t, db)
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "ডাক্তার", "doctor")
	item := testutil.CreateContent(t, db, cat.ID, "ডাঃ করিম")
	untouched := testutil.CreateContent(t, db, cat.ID, "ডাঃ রহিম")

	earlier, err := svc.File(ctx, userActor(t, db, "a"), item.ID, "ভুয়া ডাক্তার")
	require.NoError(t, err)
	report, err := svc.File(ctx, userActor(t, db, "b"), item.ID, "ভুল নম্বর")
	require.NoError(t, err)
	unrelated, err := svc.File(ctx, userActor(t, db, "c"), untouched.ID, "ভুল ঠিকানা")
	require.NoError(t, err)

	resolved, err := svc.Resolve(ctx, admin, report.ID, ReportActionBan)
	require.NoError(t, err)
	assert.Equal(t, models.ReportResolved, resolved.Status)
	assert.Equal(t, models.ResolutionContentRejected, resolved.Resolution)
	require.NotNil(t, resolved.ResolvedBy)
	assert.Equal(t, admin.ID, *resolved.ResolvedBy)

	var stored models.ContentItem
	require.NoError(t, db.First(&stored, "id = ?", item.ID).Error)
	assert.Equal(t, models.StatusRejected, stored.Status)
	assert.Equal(t, int64(2), stored.Version)

	var reports []models.Report
	require.NoError(t, db.Where("content_id = ?", item.ID).Find(&reports).Error)
	require.Len(t, reports, 2)
	for _, r := range reports {
		assert.Equal(t, models.ReportResolved, r.Status, r.ID)
		assert.NotNil(t, r.ResolvedAt)
	}

	var again models.Report
	require.NoError(t, db.First(&again, "id = ?", earlier.ID).Error)
	assert.Equal(t, models.ResolutionContentRejected, again.Resolution)

	var other models.Report
	require.NoError(t, db.First(&other, "id = ?", unrelated.ID).Error)
	assert.Equal(t, models.ReportPending, other.Status)

	var audit models.ModerationAction
	require.NoError(t, db.Where("content_id = ?", item.ID).First(&audit).Error)
	assert.Equal(t, models.ActionReportBan, audit.Action)
	assert.Equal(t, "ভুল নম্বর", audit.Note)
}

func TestResolve_BanOnRejectedContentOnlyClosesReports(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewReportService(db)
	admin := adminActor(t, db)
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "হোটেল", "hotel")
	item := testutil.CreateContent(t, db, cat.ID, "Hotel", testutil.WithStatus(models.StatusRejected))

	report, err := svc.File(ctx, userActor(t, db, "a"), item.ID, "বন্ধ")
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, admin, report.ID, ReportActionBan)
	require.NoError(t, err)

	var stored models.ContentItem
	require.NoError(t, db.First(&stored, "id = ?", item.ID).Error)
	assert.Equal(t, int64(1), stored.Version)

	var audits int64
	db.Model(&models.ModerationAction{}).Count(&audits)
	assert.Zero(t, audits)
}

func TestResolve_Ignore(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewReportService(db)
	admin := adminActor(t, db)
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "হোটেল", "hotel")
	item := testutil.CreateContent(t, db, cat.ID, "Hotel")

	first, err := svc.File(ctx, userActor(t, db, "a"), item.ID, "একটি")
	require.NoError(t, err)
	second, err := svc.File(ctx, userActor(t, db, "b"), item.ID, "দুটি")
	require.NoError(t, err)

	resolved, err := svc.Resolve(ctx, admin, first.ID, ReportActionIgnore)
	require.NoError(t, err)
	assert.Equal(t, models.ResolutionIgnored, resolved.Resolution)

	var other models.Report
	require.NoError(t, db.First(&other, "id = ?", second.ID).Error)
	assert.Equal(t, models.ReportPending, other.Status)

	var stored models.ContentItem
	require.NoError(t, db.First(&stored, "id = ?", item.ID).Error)
	assert.Equal(t, models.StatusApproved, stored.Status)
}

func TestResolve_Rejections(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewReportService(db)
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "হোটেল", "hotel")
	item := testutil.CreateContent(t, db, cat.ID, "Hotel", testutil.WithDistrict("sylhet"))
	report, err := svc.File(ctx, userActor(t, db, "a"), item.ID, "ভুল")
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, userActor(t, db, "u"), report.ID, ReportActionBan)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Resolve(ctx, adminActor(t, db), report.ID, "delete")
	assert.ErrorIs(t, err, ErrInvalidAction)

	_, err = svc.Resolve(ctx, adminActor(t, db), uuid.New(), ReportActionIgnore)
	assert.ErrorIs(t, err, ErrReportNotFound)

	_, err = svc.Resolve(ctx, districtAdmin(t, db, "dhaka"), report.ID, ReportActionBan)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestReportList_Scoped(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewReportService(db)
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "হোটেল", "hotel")
	dhaka := testutil.CreateContent(t, db, cat.ID, "Dhaka hotel")
	sylhet := testutil.CreateContent(t, db, cat.ID, "Sylhet hotel", testutil.WithDistrict("sylhet"))
	reporter := userActor(t, db, "a")

	_, err := svc.File(ctx, reporter, dhaka.ID, "১")
	require.NoError(t, err)
	_, err = svc.File(ctx, reporter, sylhet.ID, "২")
	require.NoError(t, err)

	all, total, err := svc.List(ctx, adminActor(t, db), models.ReportPending, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, all, 2)
	assert.NotNil(t, all[0].Content)
	assert.NotNil(t, all[0].Reporter)

	local, total, err := svc.List(ctx, districtAdmin(t, db, "sylhet"), "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, sylhet.ID, local[0].ContentID)

	_, _, err = svc.List(ctx, reporter, "", 0, 0)
	assert.ErrorIs(t, err, ErrForbidden)
}
