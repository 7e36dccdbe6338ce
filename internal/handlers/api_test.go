package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bmizerany/pat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/operman-code/brojgar-worker/internal/models"
	"github.com/operman-code/brojgar-worker/internal/repositories"
	"github.com/operman-code/brojgar-worker/internal/services"
)

// newTestAPI wires the full handler set over a fresh memory store, with the
// same route table the server registers.
func newTestAPI() http.Handler {
	store := repositories.NewMemoryStore()

	statsService := &services.StatsService{Store: store}
	paymentService := &services.PaymentService{Store: store}
	userService := &services.UserService{Store: store}
	workerService := &services.WorkerService{Store: store, Stats: statsService}
	businessService := &services.BusinessService{Store: store, Stats: statsService}
	jobService := &services.JobService{Store: store, Payments: paymentService}

	userHandler := &UserHandler{Service: userService}
	workerHandler := &WorkerHandler{Service: workerService}
	businessHandler := &BusinessHandler{Service: businessService}
	jobHandler := &JobHandler{Service: jobService, Workers: workerService}
	paymentHandler := &PaymentHandler{Service: paymentService}

	mux := pat.New()
	mux.Post("/api/register", http.HandlerFunc(userHandler.Register))
	mux.Post("/api/login", http.HandlerFunc(userHandler.Login))
	mux.Get("/api/user/:id", http.HandlerFunc(userHandler.GetUserByID))
	mux.Get("/api/worker/profile/:user_id", http.HandlerFunc(workerHandler.Profile))
	mux.Get("/api/worker/jobs/:user_id", http.HandlerFunc(workerHandler.Jobs))
	mux.Get("/api/business/profile/:user_id", http.HandlerFunc(businessHandler.Profile))
	mux.Get("/api/business/jobs/:user_id", http.HandlerFunc(businessHandler.Jobs))
	mux.Post("/api/jobs", http.HandlerFunc(jobHandler.Create))
	mux.Get("/api/jobs/:id", http.HandlerFunc(jobHandler.GetByID))
	mux.Put("/api/jobs/:id", http.HandlerFunc(jobHandler.Update))
	mux.Post("/api/jobs/:id/apply", http.HandlerFunc(jobHandler.Apply))
	mux.Post("/api/payments/unlock-job", http.HandlerFunc(paymentHandler.UnlockJob))
	mux.Post("/api/payments/boost-job", http.HandlerFunc(paymentHandler.BoostJob))
	mux.Post("/api/payments/topup-wallet", http.HandlerFunc(paymentHandler.TopUpWallet))
	mux.Get("/api/payments/:user_id", http.HandlerFunc(paymentHandler.History))
	return mux
}

func doRequest(t *testing.T, api http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rr.Body).Decode(dst))
}

func registerUser(t *testing.T, api http.Handler, req models.RegisterRequest) models.User {
	t.Helper()
	rr := doRequest(t, api, http.MethodPost, "/api/register", req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var resp struct {
		User models.User `json:"user"`
	}
	decodeBody(t, rr, &resp)
	return resp.User
}

func workerRegistration(email string) models.RegisterRequest {
	return models.RegisterRequest{
		Name:            "Rajesh Kumar",
		Email:           email,
		Phone:           "+91 98765 43210",
		Password:        "password",
		Role:            models.RoleWorker,
		Location:        "Mumbai Central",
		Skills:          []string{"Construction"},
		ExperienceLevel: "Intermediate (1-3 years)",
	}
}

func businessRegistration(email string) models.RegisterRequest {
	return models.RegisterRequest{
		Name:         "Sharma Construction Co.",
		Email:        email,
		Phone:        "+91 98765 43211",
		Password:     "password",
		Role:         models.RoleBusiness,
		Location:     "Mumbai Central",
		BusinessName: "Sharma Construction Co.",
		BusinessType: "Construction",
	}
}

func jobPosting(userID string) models.CreateJobRequest {
	return models.CreateJobRequest{
		UserID:         userID,
		Title:          "Construction Helper Needed",
		Description:    "Residential project, basic tools required.",
		WorkType:       "Construction",
		Location:       "Mumbai Central",
		Duration:       "3 days",
		Salary:         "₹800/day",
		WorkersNeeded:  2,
		ContactDetails: "Phone: +91 98765 43211",
	}
}

func topUp(t *testing.T, api http.Handler, userID string, amount int) {
	t.Helper()
	rr := doRequest(t, api, http.MethodPost, "/api/payments/topup-wallet", models.TopUpRequest{UserID: userID, Amount: amount})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestAPI_RegisterAndLogin(t *testing.T) {
	api := newTestAPI()

	user := registerUser(t, api, workerRegistration("rajesh@example.com"))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleWorker, user.Role)
	assert.Equal(t, 0, user.WalletBalance)
	assert.Empty(t, user.Password)

	rr := doRequest(t, api, http.MethodPost, "/api/register", workerRegistration("rajesh@example.com"))
	assert.Equal(t, http.StatusConflict, rr.Code)
	var errResp errorResponse
	decodeBody(t, rr, &errResp)
	assert.Equal(t, "User already exists with this email", errResp.Message)

	rr = doRequest(t, api, http.MethodPost, "/api/login", models.LoginRequest{Email: "rajesh@example.com", Password: "password"})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, api, http.MethodPost, "/api/login", models.LoginRequest{Email: "rajesh@example.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doRequest(t, api, http.MethodGet, "/api/user/"+user.ID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	var got models.User
	decodeBody(t, rr, &got)
	assert.Equal(t, user.ID, got.ID)
	assert.Empty(t, got.Password)

	rr = doRequest(t, api, http.MethodGet, "/api/user/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_JobLifecycle(t *testing.T) {
	api := newTestAPI()

	business := registerUser(t, api, businessRegistration("sharma@example.com"))
	worker := registerUser(t, api, workerRegistration("rajesh@example.com"))

	rr := doRequest(t, api, http.MethodPost, "/api/jobs", jobPosting(business.ID))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var job models.Job
	decodeBody(t, rr, &job)
	assert.NotEmpty(t, job.ID)
	assert.True(t, job.IsActive)
	assert.False(t, job.IsBoosted)

	rr = doRequest(t, api, http.MethodGet, "/api/jobs/"+job.ID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, api, http.MethodPut, "/api/jobs/"+job.ID, map[string]any{"title": "Senior Helper Needed"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var updated models.Job
	decodeBody(t, rr, &updated)
	assert.Equal(t, "Senior Helper Needed", updated.Title)
	assert.Equal(t, job.Description, updated.Description)

	rr = doRequest(t, api, http.MethodGet, "/api/worker/jobs/"+worker.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var listing []models.JobForWorker
	decodeBody(t, rr, &listing)
	require.Len(t, listing, 1)
	assert.Equal(t, job.ID, listing[0].ID)
	assert.False(t, listing[0].IsUnlocked)

	rr = doRequest(t, api, http.MethodPost, fmt.Sprintf("/api/jobs/%s/apply", job.ID), map[string]string{"userId": worker.ID})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var application models.JobApplication
	decodeBody(t, rr, &application)
	assert.Equal(t, models.ApplicationPending, application.Status)

	rr = doRequest(t, api, http.MethodGet, "/api/business/jobs/"+business.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var businessJobs []models.JobWithApplications
	decodeBody(t, rr, &businessJobs)
	require.Len(t, businessJobs, 1)
	assert.Equal(t, 1, businessJobs[0].ApplicationsCount)
}

func TestAPI_UnlockFlow(t *testing.T) {
	api := newTestAPI()

	business := registerUser(t, api, businessRegistration("sharma@example.com"))
	worker := registerUser(t, api, workerRegistration("rajesh@example.com"))

	rr := doRequest(t, api, http.MethodPost, "/api/jobs", jobPosting(business.ID))
	require.Equal(t, http.StatusCreated, rr.Code)
	var job models.Job
	decodeBody(t, rr, &job)

	unlockReq := models.UnlockJobRequest{UserID: worker.ID, JobID: job.ID}

	// Fresh wallets start at zero.
	rr = doRequest(t, api, http.MethodPost, "/api/payments/unlock-job", unlockReq)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var errResp errorResponse
	decodeBody(t, rr, &errResp)
	assert.Equal(t, "Insufficient wallet balance", errResp.Message)

	topUp(t, api, worker.ID, 50)

	rr = doRequest(t, api, http.MethodPost, "/api/payments/unlock-job", unlockReq)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var unlockResp struct {
		Payment models.Payment `json:"payment"`
		Message string         `json:"message"`
	}
	decodeBody(t, rr, &unlockResp)
	assert.Equal(t, "Job unlocked successfully", unlockResp.Message)
	assert.Equal(t, services.UnlockFee, unlockResp.Payment.Amount)
	assert.Equal(t, models.PaymentTypeJobUnlock, unlockResp.Payment.Type)

	rr = doRequest(t, api, http.MethodPost, "/api/payments/unlock-job", unlockReq)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = doRequest(t, api, http.MethodGet, "/api/worker/jobs/"+worker.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var listing []models.JobForWorker
	decodeBody(t, rr, &listing)
	require.Len(t, listing, 1)
	assert.True(t, listing[0].IsUnlocked)

	rr = doRequest(t, api, http.MethodGet, "/api/user/"+worker.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var got models.User
	decodeBody(t, rr, &got)
	assert.Equal(t, 50-services.UnlockFee, got.WalletBalance)

	rr = doRequest(t, api, http.MethodGet, "/api/payments/"+worker.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var history []models.Payment
	decodeBody(t, rr, &history)
	require.Len(t, history, 2)
	assert.Equal(t, models.PaymentTypeJobUnlock, history[0].Type)
	assert.Equal(t, models.PaymentTypeWalletTopup, history[1].Type)
}

func TestAPI_BoostFlow(t *testing.T) {
	api := newTestAPI()

	business := registerUser(t, api, businessRegistration("sharma@example.com"))

	rr := doRequest(t, api, http.MethodPost, "/api/jobs", jobPosting(business.ID))
	require.Equal(t, http.StatusCreated, rr.Code)
	var job models.Job
	decodeBody(t, rr, &job)

	boostReq := models.BoostJobRequest{UserID: business.ID, JobID: job.ID}

	rr = doRequest(t, api, http.MethodPost, "/api/payments/boost-job", boostReq)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	topUp(t, api, business.ID, 150)

	rr = doRequest(t, api, http.MethodPost, "/api/payments/boost-job", boostReq)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = doRequest(t, api, http.MethodGet, "/api/jobs/"+job.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var boosted models.Job
	decodeBody(t, rr, &boosted)
	assert.True(t, boosted.IsBoosted)
	require.NotNil(t, boosted.BoostExpiresAt)

	rr = doRequest(t, api, http.MethodGet, "/api/user/"+business.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var got models.User
	decodeBody(t, rr, &got)
	assert.Equal(t, 150-services.BoostFee, got.WalletBalance)
}

func TestAPI_InlineBoostOnCreate(t *testing.T) {
	api := newTestAPI()

	business := registerUser(t, api, businessRegistration("sharma@example.com"))

	posting := jobPosting(business.ID)
	posting.Boost = true

	// Balance is checked before the job is written.
	rr := doRequest(t, api, http.MethodPost, "/api/jobs", posting)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, api, http.MethodGet, "/api/business/jobs/"+business.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var businessJobs []models.JobWithApplications
	decodeBody(t, rr, &businessJobs)
	assert.Empty(t, businessJobs)

	topUp(t, api, business.ID, 100)

	rr = doRequest(t, api, http.MethodPost, "/api/jobs", posting)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var job models.Job
	decodeBody(t, rr, &job)
	assert.True(t, job.IsBoosted)
}

func TestAPI_Validation(t *testing.T) {
	api := newTestAPI()

	rr := doRequest(t, api, http.MethodPost, "/api/register", models.RegisterRequest{Name: "no email"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, api, http.MethodPost, "/api/register", map[string]any{
		"name": "x", "email": "x@example.com", "phone": "1", "password": "pw",
		"userType": "admin", "location": "Mumbai",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	posting := jobPosting("some-user")
	posting.WorkersNeeded = 0
	rr = doRequest(t, api, http.MethodPost, "/api/jobs", posting)
	assert.Equal(t, http.StatusBadRequest, rr.Code)


	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rr = doRequest(t, api, http.MethodPost, "/api/payments/topup-wallet", models.TopUpRequest{UserID: "u", Amount: -5})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_UpdateJobRejectsInvalidWorkersNeeded(t *testing.T) {
	api := newTestAPI()

	business := registerUser(t, api, businessRegistration("sharma@example.com"))

	rr := doRequest(t, api, http.MethodPost, "/api/jobs", jobPosting(business.ID))
	require.Equal(t, http.StatusCreated, rr.Code)
	var job models.Job
	decodeBody(t, rr, &job)

	for _, n := range []int{0, -3} {
		rr = doRequest(t, api, http.MethodPut, "/api/jobs/"+job.ID, map[string]any{"workersNeeded": n})
		assert.Equal(t, http.StatusBadRequest, rr.Code, "workersNeeded=%d", n)
	}

	// The stored job is untouched by rejected updates.
	rr = doRequest(t, api, http.MethodGet, "/api/jobs/"+job.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var stored models.Job
	decodeBody(t, rr, &stored)
	assert.Equal(t, 2, stored.WorkersNeeded)

	rr = doRequest(t, api, http.MethodPut, "/api/jobs/"+job.ID, map[string]any{"workersNeeded": 5})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var updated models.Job
	decodeBody(t, rr, &updated)
	assert.Equal(t, 5, updated.WorkersNeeded)
}

func TestAPI_Profiles(t *testing.T) {
	api := newTestAPI()

	workerUser := registerUser(t, api, workerRegistration("rajesh@example.com"))
	businessUser := registerUser(t, api, businessRegistration("sharma@example.com"))

	rr := doRequest(t, api, http.MethodPost, "/api/jobs", jobPosting(businessUser.ID))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, api, http.MethodGet, "/api/worker/profile/"+workerUser.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var workerProfile models.WorkerProfile
	decodeBody(t, rr, &workerProfile)
	assert.Equal(t, workerUser.ID, workerProfile.User.ID)
	assert.Empty(t, workerProfile.User.Password)
	assert.Equal(t, []string{"Construction"}, workerProfile.Worker.Skills)
	assert.Equal(t, 1, workerProfile.Stats.AvailableJobs)

	rr = doRequest(t, api, http.MethodGet, "/api/business/profile/"+businessUser.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var businessProfile models.BusinessProfile
	decodeBody(t, rr, &businessProfile)
	assert.Equal(t, "Sharma Construction Co.", businessProfile.Business.BusinessName)
	assert.Equal(t, 1, businessProfile.Stats.ActiveJobs)

	// A worker has no business profile, and vice versa.
	rr = doRequest(t, api, http.MethodGet, "/api/business/profile/"+workerUser.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr = doRequest(t, api, http.MethodGet, "/api/worker/profile/"+businessUser.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
