package handlers

import (
	"net/http"

	_ "github.com/coursemart/coursemart/docs"
	authhandlers "github.com/coursemart/coursemart/internal/handlers/auth"
	balancehandlers "github.com/coursemart/coursemart/internal/handlers/balance"
	courseshandlers "github.com/coursemart/coursemart/internal/handlers/courses"
	enrollmenthandlers "github.com/coursemart/coursemart/internal/handlers/enrollment"
	withdrawalhandlers "github.com/coursemart/coursemart/internal/handlers/withdrawal"
	"github.com/coursemart/coursemart/internal/service"
	"github.com/coursemart/coursemart/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type EnrollmentHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetRequests(w http.ResponseWriter, r *http.Request)
	AdminList(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	AdminAdjust(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	AdminList(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type CoursesHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Access(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	EnrollmentHandler EnrollmentHandler
	BalanceHandler    BalanceHandler
	WithdrawalHandler WithdrawalHandler
	CoursesHandler    CoursesHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		EnrollmentHandler: enrollmenthandlers.New(s.EnrollService),
		BalanceHandler:    balancehandlers.New(s.LedgerService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		CoursesHandler:    courseshandlers.New(s.CourseRepo, s.AccessChecker),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/enrollment-requests", func(r chi.Router) {
				r.Post("/", h.EnrollmentHandler.Submit)
				r.Get("/", h.EnrollmentHandler.GetRequests)
			})
			r.Route("/courses", func(r chi.Router) {
				r.Get("/", h.CoursesHandler.List)
				r.Get("/{id}/access", h.CoursesHandler.Access)
			})
			r.Route("/user", func(r chi.Router) {
				r.Get("/balance", h.BalanceHandler.GetBalance)
				r.Get("/transactions", h.BalanceHandler.GetTransactions)
				r.Route("/withdrawals", func(r chi.Router) {
					r.Post("/", h.WithdrawalHandler.Request)
					r.Get("/", h.WithdrawalHandler.GetWithdrawals)
				})
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminMiddleware)
				r.Route("/enrollment-requests", func(r chi.Router) {
					r.Get("/", h.EnrollmentHandler.AdminList)
					r.Post("/{id}/approve", h.EnrollmentHandler.Approve)
					r.Post("/{id}/reject", h.EnrollmentHandler.Reject)
				})
				r.Route("/withdrawals", func(r chi.Router) {
					r.Get("/", h.WithdrawalHandler.AdminList)
					r.Post("/{id}/approve", h.WithdrawalHandler.Approve)
					r.Post("/{id}/reject", h.WithdrawalHandler.Reject)
				})
				r.Post("/users/{id}/balance", h.BalanceHandler.AdminAdjust)
			})
		})
	})

	return r
}
