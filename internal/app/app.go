package app

import (
	"budgetsync/internal/app/deps"
	"budgetsync/internal/app/services"
	"budgetsync/internal/http/handlers/auth"
	checkpasswordresettoken "budgetsync/internal/http/handlers/auth/check_password_reset_token"
	loginwithemail "budgetsync/internal/http/handlers/auth/log_in_with_email"
	logout "budgetsync/internal/http/handlers/auth/log_out"
	resetpassword "budgetsync/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "budgetsync/internal/http/handlers/auth/send_password_reset_token"
	signupwithemail "budgetsync/internal/http/handlers/auth/sign_up_with_email"
	createbudget "budgetsync/internal/http/handlers/budgets/create_budget"
	deletebudget "budgetsync/internal/http/handlers/budgets/delete_budget"
	getbudget "budgetsync/internal/http/handlers/budgets/get_budget"
	listbudgets "budgetsync/internal/http/handlers/budgets/list_budgets"
	replacebudgetitems "budgetsync/internal/http/handlers/budgets/replace_budget_items"
	updatebudget "budgetsync/internal/http/handlers/budgets/update_budget"
	"budgetsync/internal/http/handlers/captcha"
	getprofile "budgetsync/internal/http/handlers/profile/get_profile"
	updateprofile "budgetsync/internal/http/handlers/profile/update_profile"
	changepassword "budgetsync/internal/http/handlers/user/change_password"
	me "budgetsync/internal/http/handlers/user/me"
	"fmt"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(s *services.Services, allowedOrigins []string) http.Handler {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signupwithemail.New(s.SignUpWithEmail))
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		sendpasswordresettoken.New(s.SendPasswordResetToken),
	)
	authRouter.Method(
		http.MethodGet,
		"/password_reset/{token}",
		checkpasswordresettoken.New(s.CheckPasswordResetToken),
	)
	authRouter.Method(http.MethodPost, "/password_reset/{token}", resetpassword.New(s.ResetPassword))

	profileRouter := chi.NewRouter()
	profileRouter.Use(auth.SetAuthTokenToContext)
	profileRouter.Method(http.MethodGet, "/me", me.New(s.GetUserBySessionToken))
	profileRouter.Method(http.MethodPut, "/password", changepassword.New(s.ChangePassword))
	profileRouter.Method(http.MethodGet, "/", getprofile.New(s.GetProfile))
	profileRouter.Method(http.MethodPut, "/", updateprofile.New(s.UpdateProfile))

	budgetsRouter := chi.NewRouter()
	budgetsRouter.Use(auth.SetAuthTokenToContext)
	budgetsRouter.Method(http.MethodPost, "/", createbudget.New(s.CreateBudget))
	budgetsRouter.Method(http.MethodGet, "/", listbudgets.New(s.ListBudgets))
	budgetsRouter.Method(http.MethodGet, "/{budgetID}", getbudget.New(s.GetBudget))
	budgetsRouter.Method(http.MethodPut, "/{budgetID}", updatebudget.New(s.UpdateBudget))
	budgetsRouter.Method(http.MethodDelete, "/{budgetID}", deletebudget.New(s.DeleteBudget))
	budgetsRouter.Method(
		http.MethodPut,
		"/{budgetID}/items",
		replacebudgetitems.New(s.ReplaceBudgetItems),
	)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Use(captcha.SetCaptchaTokenToContext)
	router.Mount("/auth", authRouter)
	router.Mount("/profile", profileRouter)
	router.Mount("/budgets", budgetsRouter)

	return router
}

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler:           NewRouter(s, deps.Config.AllowedOrigins),
		Addr:              address,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
