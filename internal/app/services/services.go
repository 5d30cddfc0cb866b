package services

import (
	"budgetsync/internal/app/deps"
	drl "budgetsync/internal/core/domain/rate_limiter"
	"budgetsync/internal/core/services"
	"budgetsync/internal/core/services/auth"
	"budgetsync/internal/core/services/captcha"
	changepassword "budgetsync/internal/core/services/change_password"
	checkpasswordresettoken "budgetsync/internal/core/services/check_password_reset_token"
	createbudget "budgetsync/internal/core/services/create_budget"
	deletebudget "budgetsync/internal/core/services/delete_budget"
	getbudget "budgetsync/internal/core/services/get_budget"
	getprofile "budgetsync/internal/core/services/get_profile"
	getuserbysessiontoken "budgetsync/internal/core/services/get_user_by_session_token"
	listbudgets "budgetsync/internal/core/services/list_budgets"
	loginwithemail "budgetsync/internal/core/services/log_in_with_email"
	logout "budgetsync/internal/core/services/log_out"
	ratelimiting "budgetsync/internal/core/services/rate_limiting"
	replacebudgetitems "budgetsync/internal/core/services/replace_budget_items"
	resetpassword "budgetsync/internal/core/services/reset_password"
	sendpasswordresettoken "budgetsync/internal/core/services/send_password_reset_token"
	signupwithemail "budgetsync/internal/core/services/sign_up_with_email"
	updatebudget "budgetsync/internal/core/services/update_budget"
	updateprofile "budgetsync/internal/core/services/update_profile"
)

type Services struct {
	SignUpWithEmail         services.Service[signupwithemail.Input, signupwithemail.Result]
	LogInWithEmail          services.Service[loginwithemail.Input, loginwithemail.Result]
	LogOut                  services.Service[logout.Input, logout.Result]
	GetUserBySessionToken   services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
	ChangePassword          services.Service[changepassword.Input, changepassword.Result]
	SendPasswordResetToken  services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	CheckPasswordResetToken services.Service[checkpasswordresettoken.Input, checkpasswordresettoken.Result]
	ResetPassword           services.Service[resetpassword.Input, resetpassword.Result]
	GetProfile              services.Service[getprofile.Input, getprofile.Result]
	UpdateProfile           services.Service[updateprofile.Input, updateprofile.Result]
	CreateBudget            services.Service[createbudget.Input, createbudget.Result]
	ListBudgets             services.Service[listbudgets.Input, listbudgets.Result]
	GetBudget               services.Service[getbudget.Input, getbudget.Result]
	UpdateBudget            services.Service[updatebudget.Input, updatebudget.Result]
	ReplaceBudgetItems      services.Service[replacebudgetitems.Input, replacebudgetitems.Result]
	DeleteBudget            services.Service[deletebudget.Input, deletebudget.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUpWithEmail = captcha.WithCaptcha(
		deps.CaptchaValidator,
		ratelimiting.WithRateLimiting(
			deps.Logger,
			deps.RateLimiter,
			drl.Limit{Interval: drl.Hour, Value: 5},
			signupwithemail.New(
				deps.Logger,
				deps.UnitOfWork,
				deps.PasswordHasher,
				deps.Now,
			),
		),
	)
	s.LogInWithEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		loginwithemail.New(
			deps.Logger,
			deps.UserRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.UserSessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.GetUserBySessionToken = getuserbysessiontoken.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.ChangePassword = auth.WithAuthentication(
		deps.SessionRepository,
		changepassword.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordHasher,
		),
	)
	s.SendPasswordResetToken = captcha.WithCaptcha(
		deps.CaptchaValidator,
		ratelimiting.WithRateLimiting(
			deps.Logger,
			deps.RateLimiter,
			drl.Limit{Interval: drl.Hour, Value: 3},
			sendpasswordresettoken.NewWithLinkSending(
				deps.Logger,
				deps.PasswordResetNotifier,
				deps.Config.PasswordResetBaseURL,
				deps.Config.NotifierTimeout,
				sendpasswordresettoken.New(
					deps.Logger,
					deps.UserRepository,
					deps.PasswordResetter,
				),
			),
		),
	)
	s.CheckPasswordResetToken = checkpasswordresettoken.New(
		deps.Logger,
		deps.PasswordResetter,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordResetter,
		deps.PasswordHasher,
		deps.Now,
	)
	s.GetProfile = auth.WithAuthentication(
		deps.SessionRepository,
		getprofile.New(deps.Logger, deps.ProfileRepository),
	)
	s.UpdateProfile = auth.WithAuthentication(
		deps.SessionRepository,
		updateprofile.New(deps.Logger, deps.ProfileRepository),
	)
	s.CreateBudget = auth.WithAuthentication(
		deps.SessionRepository,
		createbudget.New(deps.Logger, deps.UnitOfWork, deps.Now),
	)
	s.ListBudgets = auth.WithAuthentication(
		deps.SessionRepository,
		listbudgets.New(deps.Logger, deps.BudgetRepository),
	)
	s.GetBudget = auth.WithAuthentication(
		deps.SessionRepository,
		getbudget.New(deps.Logger, deps.BudgetRepository),
	)
	s.UpdateBudget = auth.WithAuthentication(
		deps.SessionRepository,
		updatebudget.New(deps.Logger, deps.UnitOfWork, deps.Now),
	)
	s.ReplaceBudgetItems = auth.WithAuthentication(
		deps.SessionRepository,
		replacebudgetitems.New(deps.Logger, deps.UnitOfWork, deps.Now),
	)
	s.DeleteBudget = auth.WithAuthentication(
		deps.SessionRepository,
		deletebudget.New(deps.Logger, deps.UnitOfWork),
	)

	return s
}
