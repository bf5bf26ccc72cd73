package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"bytebonds-backend/internal/adapter/events"
	httpadp "bytebonds-backend/internal/adapter/http"
	mw "bytebonds-backend/internal/adapter/middleware"
	"bytebonds-backend/internal/adapter/repository/mysql"
	"bytebonds-backend/internal/config"
	"bytebonds-backend/internal/infrastructure/cache"
	"bytebonds-backend/internal/infrastructure/db"
	"bytebonds-backend/internal/jobs"
	bonduc "bytebonds-backend/internal/usecase/bond"
	investmentuc "bytebonds-backend/internal/usecase/investment"
	repaymentuc "bytebonds-backend/internal/usecase/repayment"
	walletuc "bytebonds-backend/internal/usecase/wallet"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	bondRepo := mysql.NewBondRepository(gdb)
	investmentRepo := mysql.NewInvestmentRepository(gdb)
	repaymentRepo := mysql.NewRepaymentRepository(gdb)
	walletRepo := mysql.NewWalletRepository(gdb)
	uow := mysql.NewGormUoW(gdb)
	sink := events.NewRedisSink(rdb, cfg.EventChannel)

	bondUC := bonduc.NewUsecase(bondRepo, sink)
	investmentUC := investmentuc.NewUsecase(investmentRepo, uow, sink)
	repaymentUC := repaymentuc.NewUsecase(repaymentRepo, uow, sink)
	walletUC := walletuc.NewUsecase(walletRepo)

	runner := jobs.NewRunner(repaymentRepo)
	if err := runner.Start(cfg.OverdueSweepSpec); err != nil {
		log.Fatal(err)
	}
	defer runner.Stop()

	h := httpadp.NewHandler()
	bondH := httpadp.NewBondHandler(bondUC)
	investmentH := httpadp.NewInvestmentHandler(investmentUC)
	repaymentH := httpadp.NewRepaymentHandler(repaymentUC)
	walletH := httpadp.NewWalletHandler(walletUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())
	e.Use(mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)

	e.POST("/bonds", bondH.CreateBond)
	e.GET("/bonds", bondH.ListOpenBonds)
	e.GET("/bonds/:bond_id", bondH.GetBond)
	e.GET("/freelancers/:freelancer_id/bonds", bondH.ListFreelancerBonds)

	e.POST("/bonds/:bond_id/investments", investmentH.Invest)
	e.GET("/investors/:investor_id/investments", investmentH.ListInvestorInvestments)

	e.POST("/bonds/:bond_id/repayment-plan", repaymentH.CreatePlan)
	e.GET("/bonds/:bond_id/repayments", repaymentH.ListBondRepayments)
	e.POST("/repayments/:repayment_id/pay", repaymentH.Settle)
	e.POST("/bonds/:bond_id/lump-sum", repaymentH.SettleLumpSum)

	e.POST("/wallets/credit", walletH.CreditWallet)
	e.GET("/wallets/:address", walletH.GetWallet)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
