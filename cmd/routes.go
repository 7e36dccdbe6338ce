package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)

	mux := pat.New()

	// Auth
	mux.Post("/api/register", standardMiddleware.ThenFunc(app.userHandler.Register))
	mux.Post("/api/login", standardMiddleware.ThenFunc(app.userHandler.Login))
	mux.Get("/api/user/:id", standardMiddleware.ThenFunc(app.userHandler.GetUserByID))

	// Worker
	mux.Get("/api/worker/profile/:user_id", standardMiddleware.ThenFunc(app.workerHandler.Profile))
	mux.Get("/api/worker/jobs/:user_id", standardMiddleware.ThenFunc(app.workerHandler.Jobs))

	// Business
	mux.Get("/api/business/profile/:user_id", standardMiddleware.ThenFunc(app.businessHandler.Profile))
	mux.Get("/api/business/jobs/:user_id", standardMiddleware.ThenFunc(app.businessHandler.Jobs))

	// Jobs
	mux.Post("/api/jobs", standardMiddleware.ThenFunc(app.jobHandler.Create))
	mux.Get("/api/jobs/:id", standardMiddleware.ThenFunc(app.jobHandler.GetByID))
	mux.Put("/api/jobs/:id", standardMiddleware.ThenFunc(app.jobHandler.Update))
	mux.Post("/api/jobs/:id/apply", standardMiddleware.ThenFunc(app.jobHandler.Apply))

	// Payments
	mux.Post("/api/payments/unlock-job", standardMiddleware.ThenFunc(app.paymentHandler.UnlockJob))
	mux.Post("/api/payments/boost-job", standardMiddleware.ThenFunc(app.paymentHandler.BoostJob))
	mux.Post("/api/payments/topup-wallet", standardMiddleware.ThenFunc(app.paymentHandler.TopUpWallet))
	mux.Get("/api/payments/:user_id", standardMiddleware.ThenFunc(app.paymentHandler.History))

	return standardMiddleware.Then(mux)
}
