package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/operman-code/brojgar-worker/internal/models"
)

func TestMemoryStore_CreateUserDefaults(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	user, err := store.CreateUser(ctx, models.User{
		Name: "Rajesh", Email: "rajesh@example.com", Phone: "1",
		Password: "pw", Role: models.RoleWorker, Location: "Mumbai",
		WalletBalance: 999, // must be ignored
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, 0, user.WalletBalance)
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := store.GetUserByEmail(ctx, "rajesh@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = store.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestMemoryStore_WalletDeltaMissingUserIsNoop(t *testing.T) {
	store := NewMemoryStore()

	err := store.UpdateUserWalletBalance(context.Background(), "missing", -20)
	assert.NoError(t, err)
}

func TestMemoryStore_WalletDeltaIsAdditive(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	user, err := store.CreateUser(ctx, models.User{Name: "R", Email: "r@example.com", Phone: "1", Password: "pw", Role: models.RoleWorker, Location: "Mumbai"})
	require.NoError(t, err)

	require.NoError(t, store.UpdateUserWalletBalance(ctx, user.ID, 100))
	require.NoError(t, store.UpdateUserWalletBalance(ctx, user.ID, -30))

	got, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 70, got.WalletBalance)
}

func TestMemoryStore_UpdateJobMergeSemantics(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	job, err := store.CreateJob(ctx, models.Job{
		BusinessID: "b1", Title: "Helper", Description: "desc", WorkType: "Construction",
		Location: "Mumbai", Duration: "3 days", Salary: "₹800/day", WorkersNeeded: 2,
		ContactDetails: "call me",
	})
	require.NoError(t, err)

	newTitle := "Senior Helper"
	inactive := false
	updated, err := store.UpdateJob(ctx, job.ID, models.JobUpdate{Title: &newTitle, IsActive: &inactive})
	require.NoError(t, err)

	assert.Equal(t, "Senior Helper", updated.Title)
	assert.False(t, updated.IsActive)
	// Absent fields keep their prior values.
	assert.Equal(t, "desc", updated.Description)
	assert.Equal(t, "Construction", updated.WorkType)
	assert.Equal(t, 2, updated.WorkersNeeded)

	_, err = store.UpdateJob(ctx, "missing", models.JobUpdate{Title: &newTitle})
	assert.ErrorIs(t, err, models.ErrJobNotFound)
}

func TestMemoryStore_BoostJob(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	job, err := store.CreateJob(ctx, models.Job{BusinessID: "b1", Title: "Helper", WorkType: "Construction", Location: "Mumbai", WorkersNeeded: 1})
	require.NoError(t, err)
	assert.False(t, job.IsBoosted)
	assert.Nil(t, job.BoostExpiresAt)

	require.NoError(t, store.BoostJob(ctx, job.ID))

	boosted, err := store.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.True(t, boosted.IsBoosted)
	require.NotNil(t, boosted.BoostExpiresAt)
	expectedExpiry := time.Now().Add(models.BoostDuration)
	assert.WithinDuration(t, expectedExpiry, *boosted.BoostExpiresAt, time.Minute)

	// Missing job is a silent no-op.
	assert.NoError(t, store.BoostJob(ctx, "missing"))
}

func TestMemoryStore_ClearExpiredBoosts(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	expired, err := store.CreateJob(ctx, models.Job{BusinessID: "b1", Title: "Old", WorkType: "Cleaning", Location: "Mumbai", WorkersNeeded: 1})
	require.NoError(t, err)
	fresh, err := store.CreateJob(ctx, models.Job{BusinessID: "b1", Title: "New", WorkType: "Cleaning", Location: "Mumbai", WorkersNeeded: 1})
	require.NoError(t, err)

	require.NoError(t, store.BoostJob(ctx, expired.ID))
	require.NoError(t, store.BoostJob(ctx, fresh.ID))

	// Sweep from the far future: only still-valid boosts survive.
	cleared, err := store.ClearExpiredBoosts(ctx, time.Now().Add(models.BoostDuration+time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, cleared)

	cleared, err = store.ClearExpiredBoosts(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, cleared)

	job, err := store.GetJob(ctx, expired.ID)
	require.NoError(t, err)
	assert.False(t, job.IsBoosted)
	assert.Nil(t, job.BoostExpiresAt)
}

func TestMemoryStore_GetJobsByBusinessNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.CreateJob(ctx, models.Job{BusinessID: "b1", Title: "first", WorkType: "Cleaning", Location: "Mumbai", WorkersNeeded: 1})
	require.NoError(t, err)
	second, err := store.CreateJob(ctx, models.Job{BusinessID: "b1", Title: "second", WorkType: "Cleaning", Location: "Mumbai", WorkersNeeded: 1})
	require.NoError(t, err)
	_, err = store.CreateJob(ctx, models.Job{BusinessID: "other", Title: "x", WorkType: "Cleaning", Location: "Mumbai", WorkersNeeded: 1})
	require.NoError(t, err)

	// Force distinct timestamps; CreateJob stamps with time.Now.
	aged := store.jobs[first.ID]
	aged.CreatedAt = aged.CreatedAt.Add(-time.Hour)
	store.jobs[first.ID] = aged

	jobs, err := store.GetJobsByBusiness(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, second.ID, jobs[0].ID)
	assert.Equal(t, first.ID, jobs[1].ID)
}

func TestMemoryStore_UnlockLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	unlocked, err := store.IsJobUnlocked(ctx, "u1", "j1")
	require.NoError(t, err)
	assert.False(t, unlocked)

	unlock, err := store.UnlockJob(ctx, "u1", "j1")
	require.NoError(t, err)
	assert.NotEmpty(t, unlock.ID)
	assert.False(t, unlock.UnlockedAt.IsZero())

	unlocked, err = store.IsJobUnlocked(ctx, "u1", "j1")
	require.NoError(t, err)
	assert.True(t, unlocked)

	// Other pairs remain locked.
	unlocked, err = store.IsJobUnlocked(ctx, "u2", "j1")
	require.NoError(t, err)
	assert.False(t, unlocked)

	list, err := store.GetUnlockedJobs(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMemoryStore_ApplicationsNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	app1, err := store.CreateJobApplication(ctx, "j1", "w1")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, app1.Status)

	_, err = store.CreateJobApplication(ctx, "j1", "w2")
	require.NoError(t, err)
	_, err = store.CreateJobApplication(ctx, "j2", "w1")
	require.NoError(t, err)

	apps, err := store.GetJobApplications(ctx, "j1")
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	// No uniqueness on the (job, worker) pair: one row per attempt.
	_, err = store.CreateJobApplication(ctx, "j1", "w1")
	require.NoError(t, err)
	apps, err = store.GetJobApplications(ctx, "j1")
	require.NoError(t, err)
	assert.Len(t, apps, 3)
}

func TestMemoryStore_PaymentLedger(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	payment, err := store.CreatePayment(ctx, models.Payment{UserID: "u1", Amount: 20, Type: models.PaymentTypeJobUnlock, JobID: "j1"})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, payment.Status)

	require.NoError(t, store.UpdatePaymentStatus(ctx, payment.ID, models.PaymentStatusFailed))

	payments, err := store.GetPaymentsByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, models.PaymentStatusFailed, payments[0].Status)
}

func TestMemoryStore_SeedDemo(t *testing.T) {
	store := NewMemoryStore()
	store.SeedDemo()
	ctx := context.Background()

	workerUser, err := store.GetUserByEmail(ctx, "rajesh@example.com")
	require.NoError(t, err)
	assert.Equal(t, 50, workerUser.WalletBalance)

	worker, err := store.GetWorkerByUserID(ctx, workerUser.ID)
	require.NoError(t, err)
	assert.Equal(t, 48, worker.Rating)

	count, err := store.CountActiveJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
