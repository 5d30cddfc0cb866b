package deps

import (
	"budgetsync/internal/config"
	"budgetsync/internal/core/domain/budget"
	dl "budgetsync/internal/core/domain/logging"
	"budgetsync/internal/core/domain/profile"
	drl "budgetsync/internal/core/domain/rate_limiter"
	duow "budgetsync/internal/core/domain/unit_of_work"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services/captcha"
	dbbudget "budgetsync/internal/db/budget"
	dbprofile "budgetsync/internal/db/profile"
	uow "budgetsync/internal/db/unit_of_work"
	dbuser "budgetsync/internal/db/user"
	"budgetsync/internal/implementations/email"
	"budgetsync/internal/implementations/logging"
	passwordhasher "budgetsync/internal/implementations/password_hasher"
	passwordresetter "budgetsync/internal/implementations/password_resetter"
	randomstringgenerator "budgetsync/internal/implementations/random_string_generator"
	ratelimiter "budgetsync/internal/implementations/rate_limiter"
	"budgetsync/internal/implementations/recaptcha"
	"budgetsync/internal/implementations/session"
	"budgetsync/internal/rabbitmq"
	passwordresetnotifier "budgetsync/internal/rabbitmq/publishers/password_reset_notifier"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB       *pgxpool.Pool
	Redis    *redis.Client
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	UnitOfWork                   duow.UnitOfWork
	UserRepository               user.UserRepository
	SessionRepository            user.SessionRepository
	PasswordResetTokenRepository user.PasswordResetTokenRepository
	ProfileRepository            profile.ProfileRepository
	BudgetRepository             budget.BudgetRepository

	RateLimiter drl.RateLimiter

	EmailSender *email.EmailSender

	UserSessionTokenGenerator   user.SessionTokenGenerator
	PasswordHasher              user.PasswordHasher
	PasswordResetTokenGenerator user.PasswordResetTokenGenerator
	PasswordResetter            user.PasswordResetter
	PasswordResetNotifier       user.PasswordResetNotifier
	CaptchaValidator            captcha.CaptchaValidator

	closers []closer
}

type closer struct {
	name    string
	release func()
}

// InitDeps connects to every backing service and builds the collaborators
// shared by the binaries. The returned function releases them in reverse
// order of acquisition.
func InitDeps() (*Deps, func()) {
	deps := &Deps{Now: func() time.Time { return time.Now().UTC() }}

	deps.initConfig()
	deps.initLogger()
	deps.initSentry()
	deps.initAwsConfig()
	deps.initPgxPool()
	deps.initRedisClient()

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.SessionRepository = dbuser.NewPgxSessionRepository(deps.DB)
	deps.PasswordResetTokenRepository = dbuser.NewPgxPasswordResetTokenRepository(deps.DB)
	deps.ProfileRepository = dbprofile.NewPgxProfileRepository(deps.DB)
	deps.BudgetRepository = dbbudget.NewPgxBudgetRepository(deps.DB)

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.UserSessionTokenGenerator = session.NewUUID()
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.PasswordResetTokenGenerator = randomstringgenerator.NewGenerator()
	deps.PasswordResetter = passwordresetter.NewStore(
		deps.PasswordResetTokenRepository,
		deps.PasswordResetTokenGenerator,
		deps.Config.PasswordResetValidDuration(),
		deps.Now,
	)
	deps.CaptchaValidator = deps.initCaptchaValidator()

	deps.EmailSender = email.NewEmailSender(
		deps.AwsConfig,
		deps.Config.AwsEmailSender,
		deps.Config.AwsEmailPasswordResetTemplate,
	)
	deps.initPasswordResetNotifier()

	return deps, deps.close
}

func (deps *Deps) onClose(name string, release func()) {
	deps.closers = append(deps.closers, closer{name: name, release: release})
}

func (deps *Deps) close() {
	for i := len(deps.closers) - 1; i >= 0; i-- {
		c := deps.closers[i]
		if deps.Logger != nil {
			deps.Logger.Info(context.Background(), "Releasing dependency.", dl.Entry("name", c.name))
		}
		c.release()
	}
	deps.closers = nil
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() {
	logger := logging.NewZapLogger(deps.Config.Debug)
	deps.Logger = logger
	deps.onClose("logger", logger.Sync)
}

func (deps *Deps) initPgxPool() {
	pool, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to PostgreSQL.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = pool
	deps.onClose("postgresql", pool.Close)
}

// initRedisClient does not fail on an unreachable Redis: the rate limiter
// lets calls through while Redis is down.
func (deps *Deps) initRedisClient() {
	opts, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Invalid Redis URL.", dl.Entry("err", err))
		panic(err)
	}
	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		deps.Logger.Warning(context.Background(), "Redis is not reachable yet.", dl.Entry("err", err))
	}
	deps.Redis = client
	deps.onClose("redis", func() { _ = client.Close() })
}

// InitRabbitmqConnection connects to the broker once. It is a no-op if the
// connection already exists.
func (deps *Deps) InitRabbitmqConnection() {
	if deps.Rabbitmq != nil {
		return
	}
	conn, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic(err)
	}
	deps.Rabbitmq = conn
	deps.onClose("rabbitmq", func() { _ = conn.Close() })
}

func (deps *Deps) initPasswordResetNotifier() {
	if deps.Config.PasswordResetNotifier != config.NotifierRabbitMQ {
		deps.PasswordResetNotifier = deps.EmailSender
		deps.Logger.Info(context.Background(), "Password reset links are sent through SES.")
		return
	}

	deps.InitRabbitmqConnection()
	channel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not open RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	deps.onClose("password reset publisher", func() { _ = channel.Close() })

	queue := deps.Config.RabbitmqPasswordResetQueue
	if err := channel.DeclareQueue(queue); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not declare RabbitMQ queue.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.PasswordResetNotifier = passwordresetnotifier.NewRabbitMQ(deps.Logger, channel, queue, deps.Now)
	deps.Logger.Info(context.Background(), "Password reset links are queued.", dl.Entry("queue", queue))
}

func (deps *Deps) initCaptchaValidator() captcha.CaptchaValidator {
	if deps.Config.IsTestMode {
		return captcha.NewAllowAlwaysCaptchaValidator()
	}
	return recaptcha.New(
		deps.Logger,
		deps.Config.GoogleRecaptchaSecretKey,
		deps.Config.GoogleRecaptchaScoreThreshold,
		deps.Config.GoogleRecaptchaRequestTimeout,
	)
}

func (deps *Deps) initSentry() {
	if deps.Config.SentryDsn == nil {
		deps.Logger.Info(context.Background(), "Sentry is disabled.")
		return
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              deps.Config.SentryDsn.String(),
		TracesSampleRate: 0.01,
	})
	if err != nil {
		panic(fmt.Sprintf("could not init Sentry: %v", err))
	}
	deps.Logger = logging.NewSentryLogger(deps.Logger, sentry.CurrentHub())
	deps.Logger.Info(context.Background(), "Sentry initialized.")
	deps.onClose("sentry", func() { sentry.Flush(5 * time.Second) })
}
