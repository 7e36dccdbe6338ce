package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/operman-code/brojgar-worker/internal/models"
)

const mysqlDuplicateEntry = 1062

// SQLStore is the persistent backend over database/sql. Wallet deltas are a
// single atomic UPDATE at the database; multi-step payment sequences are
// serialized above this layer by the payment service.
type SQLStore struct {
	DB *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{DB: db}
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

func (s *SQLStore) GetUser(ctx context.Context, id string) (models.User, error) {
	query := `
        SELECT id, name, email, phone, password, role, location, wallet_balance, created_at
        FROM users
        WHERE id = ?
    `
	var user models.User
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Phone, &user.Password,
		&user.Role, &user.Location, &user.WalletBalance, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *SQLStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `
        SELECT id, name, email, phone, password, role, location, wallet_balance, created_at
        FROM users
        WHERE email = ?
    `
	var user models.User
	err := s.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Phone, &user.Password,
		&user.Role, &user.Location, &user.WalletBalance, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *SQLStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
        INSERT INTO users (id, name, email, phone, password, role, location, wallet_balance, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	user.ID = uuid.NewString()
	user.WalletBalance = 0
	user.CreatedAt = time.Now()
	_, err := s.DB.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.Phone, user.Password,
		user.Role, user.Location, user.WalletBalance, user.CreatedAt,
	)
	if isDuplicateEntry(err) {
		return models.User{}, models.ErrDuplicateEmail
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *SQLStore) UpdateUserWalletBalance(ctx context.Context, userID string, delta int) error {
	query := `UPDATE users SET wallet_balance = wallet_balance + ? WHERE id = ?`
	_, err := s.DB.ExecContext(ctx, query, delta, userID)
	return err
}

func (s *SQLStore) GetWorkerByUserID(ctx context.Context, userID string) (models.Worker, error) {
	query := `
        SELECT id, user_id, skills, experience_level, completed_jobs, rating
        FROM workers
        WHERE user_id = ?
    `
	var (
		worker    models.Worker
		skillsRaw []byte
	)
	err := s.DB.QueryRowContext(ctx, query, userID).Scan(
		&worker.ID, &worker.UserID, &skillsRaw, &worker.ExperienceLevel,
		&worker.CompletedJobs, &worker.Rating,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Worker{}, models.ErrWorkerNotFound
	}
	if err != nil {
		return models.Worker{}, err
	}
	if len(skillsRaw) > 0 {
		if err := json.Unmarshal(skillsRaw, &worker.Skills); err != nil {
			return models.Worker{}, err
		}
	}
	return worker, nil
}

func (s *SQLStore) CreateWorker(ctx context.Context, worker models.Worker) (models.Worker, error) {
	query := `
        INSERT INTO workers (id, user_id, skills, experience_level, completed_jobs, rating)
        VALUES (?, ?, ?, ?, 0, 0)
    `
	worker.ID = uuid.NewString()
	worker.CompletedJobs = 0
	worker.Rating = 0
	skillsRaw, err := json.Marshal(worker.Skills)
	if err != nil {
		return models.Worker{}, err
	}
	_, err = s.DB.ExecContext(ctx, query,
		worker.ID, worker.UserID, skillsRaw, worker.ExperienceLevel,
	)
	if err != nil {
		return models.Worker{}, err
	}
	return worker, nil
}

func (s *SQLStore) GetBusinessByUserID(ctx context.Context, userID string) (models.Business, error) {
	query := `
        SELECT id, user_id, business_name, business_type
        FROM businesses
        WHERE user_id = ?
    `
	var business models.Business
	err := s.DB.QueryRowContext(ctx, query, userID).Scan(
		&business.ID, &business.UserID, &business.BusinessName, &business.BusinessType,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Business{}, models.ErrBusinessNotFound
	}
	if err != nil {
		return models.Business{}, err
	}
	return business, nil
}

func (s *SQLStore) CreateBusiness(ctx context.Context, business models.Business) (models.Business, error) {
	query := `
        INSERT INTO businesses (id, user_id, business_name, business_type)
        VALUES (?, ?, ?, ?)
    `
	business.ID = uuid.NewString()
	_, err := s.DB.ExecContext(ctx, query,
		business.ID, business.UserID, business.BusinessName, business.BusinessType,
	)
	if err != nil {
		return models.Business{}, err
	}
	return business, nil
}

const jobColumns = `
        id, business_id, title, description, work_type, location, duration, salary,
        workers_needed, contact_details, is_boosted, boost_expires_at, is_active, created_at`

func scanJob(row interface{ Scan(...any) error }) (models.Job, error) {
	var (
		job       models.Job
		expiresAt sql.NullTime
	)
	err := row.Scan(
		&job.ID, &job.BusinessID, &job.Title, &job.Description, &job.WorkType,
		&job.Location, &job.Duration, &job.Salary, &job.WorkersNeeded,
		&job.ContactDetails, &job.IsBoosted, &expiresAt, &job.IsActive, &job.CreatedAt,
	)
	if err != nil {
		return models.Job{}, err
	}
	if expiresAt.Valid {
		job.BoostExpiresAt = &expiresAt.Time
	}
	return job, nil
}

func (s *SQLStore) GetJob(ctx context.Context, id string) (models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`
	job, err := scanJob(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Job{}, models.ErrJobNotFound
	}
	if err != nil {
		return models.Job{}, err
	}
	return job, nil
}

func (s *SQLStore) GetActiveJobs(ctx context.Context) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE is_active = TRUE ORDER BY created_at ASC, id ASC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (s *SQLStore) CountActiveJobs(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs WHERE is_active = TRUE`).Scan(&count)
	return count, err
}

func (s *SQLStore) GetJobsByBusiness(ctx context.Context, businessID string) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE business_id = ? ORDER BY created_at DESC, id ASC`
	rows, err := s.DB.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (s *SQLStore) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	query := `
        INSERT INTO jobs (id, business_id, title, description, work_type, location, duration,
                          salary, workers_needed, contact_details, is_boosted, boost_expires_at,
                          is_active, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, FALSE, NULL, TRUE, ?)
    `
	job.ID = uuid.NewString()
	job.IsBoosted = false
	job.BoostExpiresAt = nil
	job.IsActive = true
	job.CreatedAt = time.Now()
	_, err := s.DB.ExecContext(ctx, query,
		job.ID, job.BusinessID, job.Title, job.Description, job.WorkType,
		job.Location, job.Duration, job.Salary, job.WorkersNeeded,
		job.ContactDetails, job.CreatedAt,
	)
	if err != nil {
		return models.Job{}, err
	}
	return job, nil
}

// UpdateJob reads, merges and writes back the full row so both backends share
// the exact same merge semantics.
func (s *SQLStore) UpdateJob(ctx context.Context, id string, update models.JobUpdate) (models.Job, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return models.Job{}, err
	}
	job = update.Apply(job)

	query := `
        UPDATE jobs
        SET title = ?, description = ?, work_type = ?, location = ?, duration = ?,
            salary = ?, workers_needed = ?, contact_details = ?, is_active = ?
        WHERE id = ?
    `
	_, err = s.DB.ExecContext(ctx, query,
		job.Title, job.Description, job.WorkType, job.Location, job.Duration,
		job.Salary, job.WorkersNeeded, job.ContactDetails, job.IsActive, job.ID,
	)
	if err != nil {
		return models.Job{}, err
	}
	return job, nil
}

func (s *SQLStore) BoostJob(ctx context.Context, jobID string) error {
	query := `UPDATE jobs SET is_boosted = TRUE, boost_expires_at = ? WHERE id = ?`
	expiresAt := time.Now().Add(models.BoostDuration)
	_, err := s.DB.ExecContext(ctx, query, expiresAt, jobID)
	return err
}

func (s *SQLStore) ClearExpiredBoosts(ctx context.Context, now time.Time) (int, error) {
	query := `
        UPDATE jobs
        SET is_boosted = FALSE, boost_expires_at = NULL
        WHERE is_boosted = TRUE AND boost_expires_at IS NOT NULL AND boost_expires_at <= ?
    `
	result, err := s.DB.ExecContext(ctx, query, now)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	return int(affected), err
}

func (s *SQLStore) GetJobApplications(ctx context.Context, jobID string) ([]models.JobApplication, error) {
	query := `
        SELECT id, job_id, worker_id, status, applied_at
        FROM job_applications
        WHERE job_id = ?
        ORDER BY applied_at DESC, id ASC
    `
	rows, err := s.DB.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.JobApplication
	for rows.Next() {
		var app models.JobApplication
		if err := rows.Scan(&app.ID, &app.JobID, &app.WorkerID, &app.Status, &app.AppliedAt); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (s *SQLStore) CreateJobApplication(ctx context.Context, jobID, workerID string) (models.JobApplication, error) {
	query := `
        INSERT INTO job_applications (id, job_id, worker_id, status, applied_at)
        VALUES (?, ?, ?, ?, ?)
    `
	app := models.JobApplication{
		ID:        uuid.NewString(),
		JobID:     jobID,
		WorkerID:  workerID,
		Status:    models.ApplicationPending,
		AppliedAt: time.Now(),
	}
	_, err := s.DB.ExecContext(ctx, query, app.ID, app.JobID, app.WorkerID, app.Status, app.AppliedAt)
	if err != nil {
		return models.JobApplication{}, err
	}
	return app, nil
}

func (s *SQLStore) CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error) {
	query := `
        INSERT INTO payments (id, user_id, amount, type, status, job_id, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	payment.ID = uuid.NewString()
	payment.Status = models.PaymentStatusCompleted
	payment.CreatedAt = time.Now()
	jobID := sql.NullString{String: payment.JobID, Valid: payment.JobID != ""}
	_, err := s.DB.ExecContext(ctx, query,
		payment.ID, payment.UserID, payment.Amount, payment.Type,
		payment.Status, jobID, payment.CreatedAt,
	)
	if err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

func (s *SQLStore) UpdatePaymentStatus(ctx context.Context, paymentID, status string) error {
	query := `UPDATE payments SET status = ? WHERE id = ?`
	_, err := s.DB.ExecContext(ctx, query, status, paymentID)
	return err
}

func (s *SQLStore) GetPaymentsByUser(ctx context.Context, userID string) ([]models.Payment, error) {
	query := `
        SELECT id, user_id, amount, type, status, job_id, created_at
        FROM payments
        WHERE user_id = ?
        ORDER BY created_at DESC, id ASC
    `
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var (
			payment models.Payment
			jobID   sql.NullString
		)
		if err := rows.Scan(&payment.ID, &payment.UserID, &payment.Amount, &payment.Type,
			&payment.Status, &jobID, &payment.CreatedAt); err != nil {
			return nil, err
		}
		payment.JobID = jobID.String
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func (s *SQLStore) IsJobUnlocked(ctx context.Context, userID, jobID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM unlocked_jobs WHERE user_id = ? AND job_id = ?)`
	var unlocked bool
	err := s.DB.QueryRowContext(ctx, query, userID, jobID).Scan(&unlocked)
	return unlocked, err
}

func (s *SQLStore) UnlockJob(ctx context.Context, userID, jobID string) (models.UnlockedJob, error) {
	query := `
        INSERT INTO unlocked_jobs (id, user_id, job_id, unlocked_at)
        VALUES (?, ?, ?, ?)
    `
	unlock := models.UnlockedJob{
		ID:         uuid.NewString(),
		UserID:     userID,
		JobID:      jobID,
		UnlockedAt: time.Now(),
	}
	_, err := s.DB.ExecContext(ctx, query, unlock.ID, unlock.UserID, unlock.JobID, unlock.UnlockedAt)
	if err != nil {
		return models.UnlockedJob{}, err
	}
	return unlock, nil
}

func (s *SQLStore) GetUnlockedJobs(ctx context.Context, userID string) ([]models.UnlockedJob, error) {
	query := `
        SELECT id, user_id, job_id, unlocked_at
        FROM unlocked_jobs
        WHERE user_id = ?
    `
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var unlocks []models.UnlockedJob
	for rows.Next() {
		var unlock models.UnlockedJob
		if err := rows.Scan(&unlock.ID, &unlock.UserID, &unlock.JobID, &unlock.UnlockedAt); err != nil {
			return nil, err
		}
		unlocks = append(unlocks, unlock)
	}
	return unlocks, rows.Err()
}
