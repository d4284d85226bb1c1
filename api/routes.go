package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/category"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/company"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/expense"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/status"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/user"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/logging"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/operator"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Storage  *storage.Storage
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	apiConfig := huma.DefaultConfig("Accounting Companion API", "1.0.0")
	humaAPI := humago.New(mux, apiConfig)
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	registerHandlers(humaAPI, r.Service, r.Operator)

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

func registerHandlers(humaAPI huma.API, svc *service.Service, op *operator.OperatorDelegator) {
	company.NewListCompaniesHandler(svc.Company).Register(humaAPI)
	company.NewGetCompanyHandler(svc.Company).Register(humaAPI)
	company.NewCreateCompanyHandler(svc.Company).Register(humaAPI)
	company.NewUpdateCompanyHandler(svc.Company).Register(humaAPI)
	company.NewDeleteCompanyHandler(svc.Company).Register(humaAPI)
	company.NewListCompanyUsersHandler(svc.Company).Register(humaAPI)

	user.NewGetUsersHandler(svc.User).Register(humaAPI)
	user.NewCreateUserHandler(svc.User).Register(humaAPI)
	user.NewUpdateUserHandler(svc.User).Register(humaAPI)
	user.NewDeleteUserHandler(svc.User).Register(humaAPI)

	category.NewListCategoriesHandler(svc.Category).Register(humaAPI)
	category.NewCreateCategoryHandler(svc.Category).Register(humaAPI)
	category.NewUpdateCategoryHandler(svc.Category).Register(humaAPI)
	category.NewDeleteCategoryHandler(svc.Category).Register(humaAPI)
	category.NewListCategoryExpensesHandler(svc.Category).Register(humaAPI)

	expense.NewListExpensesHandler(svc.Expense).Register(humaAPI)
	expense.NewCreateExpenseHandler(op).Register(humaAPI)
	expense.NewUpdateExpenseHandler(svc.Expense).Register(humaAPI)
	expense.NewDeleteExpenseHandler(svc.Expense).Register(humaAPI)
}
