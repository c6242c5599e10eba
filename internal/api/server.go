package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	v1 "github.com/association-manager/association-api/internal/api/handler/v1"
	"github.com/association-manager/association-api/internal/api/middleware"
	"github.com/association-manager/association-api/internal/config"
	"github.com/association-manager/association-api/internal/repository"
	"github.com/association-manager/association-api/internal/repository/dao"
	"github.com/association-manager/association-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	settingsHandler := s.initSettingsHandler(db)
	discountHandler := s.initDiscountHandler(db)
	directoryHandler := s.initDirectoryHandler(db)
	activityHandler := s.initActivityHandler(db)
	attendanceHandler := s.initAttendanceHandler(db)
	paymentHandler := s.initPaymentHandler(db)
	statisticsHandler := s.initStatisticsHandler(db)
	s.MountHandlers(settingsHandler, discountHandler, directoryHandler, activityHandler, attendanceHandler, paymentHandler, statisticsHandler)

	return s
}

func (s *Server) initSettingsHandler(db *gorm.DB) *v1.SettingsHandler {
	svc := service.NewSettingsService(repository.NewSettingsRepository(dao.NewSettingsDAO(db)))
	handler := v1.NewSettingsHandler(svc)

	return handler
}

func (s *Server) initDiscountHandler(db *gorm.DB) *v1.DiscountHandler {
	svc := service.NewDiscountService(repository.NewDiscountRepository(dao.NewDiscountDAO(db)))
	handler := v1.NewDiscountHandler(svc)

	return handler
}

func (s *Server) initDirectoryHandler(db *gorm.DB) *v1.DirectoryHandler {
	svc := service.NewDirectoryService(repository.NewDirectoryRepository(dao.NewDirectoryDAO(db)))
	handler := v1.NewDirectoryHandler(svc)

	return handler
}

func (s *Server) initActivityHandler(db *gorm.DB) *v1.ActivityHandler {
	settingsSvc := service.NewSettingsService(repository.NewSettingsRepository(dao.NewSettingsDAO(db)))
	svc := service.NewActivityService(
		repository.NewActivityRepository(dao.NewActivityDAO(db)),
		settingsSvc,
		repository.NewAttendanceRepository(dao.NewAttendanceDAO(db)),
		repository.NewPaymentRepository(dao.NewPaymentDAO(db)),
		repository.NewDiscountRepository(dao.NewDiscountDAO(db)),
	)
	handler := v1.NewActivityHandler(svc)

	return handler
}

func (s *Server) initAttendanceHandler(db *gorm.DB) *v1.AttendanceHandler {
	svc := service.NewAttendanceService(
		repository.NewAttendanceRepository(dao.NewAttendanceDAO(db)),
		repository.NewActivityRepository(dao.NewActivityDAO(db)),
		repository.NewDirectoryRepository(dao.NewDirectoryDAO(db)),
	)
	handler := v1.NewAttendanceHandler(svc)

	return handler
}

func (s *Server) initPaymentHandler(db *gorm.DB) *v1.PaymentHandler {
	svc := service.NewPaymentService(
		repository.NewPaymentRepository(dao.NewPaymentDAO(db)),
		repository.NewActivityRepository(dao.NewActivityDAO(db)),
		repository.NewAttendanceRepository(dao.NewAttendanceDAO(db)),
		repository.NewDiscountRepository(dao.NewDiscountDAO(db)),
	)
	handler := v1.NewPaymentHandler(svc)

	return handler
}

func (s *Server) initStatisticsHandler(db *gorm.DB) *v1.StatisticsHandler {
	svc := service.NewStatsService(
		repository.NewActivityRepository(dao.NewActivityDAO(db)),
		repository.NewAttendanceRepository(dao.NewAttendanceDAO(db)),
		repository.NewPaymentRepository(dao.NewPaymentDAO(db)),
		repository.NewDiscountRepository(dao.NewDiscountDAO(db)),
		repository.NewDirectoryRepository(dao.NewDirectoryDAO(db)),
		zap.L(),
	)
	handler := v1.NewStatisticsHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	settingsHandler *v1.SettingsHandler,
	discountHandler *v1.DiscountHandler,
	directoryHandler *v1.DirectoryHandler,
	activityHandler *v1.ActivityHandler,
	attendanceHandler *v1.AttendanceHandler,
	paymentHandler *v1.PaymentHandler,
	statisticsHandler *v1.StatisticsHandler,
) {
	const basePath = "/api/v1"

	settings := s.Router.Group(basePath)
	{
		settings.GET("/settings", settingsHandler.HandleGetBounds)
		settings.POST("/settings", settingsHandler.HandleConfigureBounds)
		settings.PUT("/settings/:id", settingsHandler.HandleUpdateBounds)
		settings.POST("/settings/check", settingsHandler.HandleCheckCotisation)
	}

	discounts := s.Router.Group(basePath)
	{
		discounts.GET("/discounts", discountHandler.HandleListTiers)
		discounts.GET("/discounts/:tierID", discountHandler.HandleGetTier)
		discounts.POST("/discounts", discountHandler.HandleCreateTier)
		discounts.PUT("/discounts/:tierID", discountHandler.HandleUpdateTier)
		discounts.DELETE("/discounts/:tierID", discountHandler.HandleDeleteTier)
		discounts.POST("/discounts/preview", discountHandler.HandlePreviewDiscount)
	}

	directory := s.Router.Group(basePath)
	{
		directory.GET("/units", directoryHandler.HandleListUnits)
		directory.GET("/units/:unitID", directoryHandler.HandleGetUnit)
		directory.POST("/units", directoryHandler.HandleCreateUnit)
		directory.PUT("/units/:unitID", directoryHandler.HandleUpdateUnit)
		directory.DELETE("/units/:unitID", directoryHandler.HandleDeleteUnit)

		directory.GET("/persons", directoryHandler.HandleListPersons)
		directory.GET("/persons/:personID", directoryHandler.HandleGetPerson)
		directory.POST("/persons", directoryHandler.HandleCreatePerson)
		directory.PUT("/persons/:personID", directoryHandler.HandleUpdatePerson)
		directory.DELETE("/persons/:personID", directoryHandler.HandleDeletePerson)

		directory.GET("/members", directoryHandler.HandleListMembers)
		directory.GET("/members/:memberID", directoryHandler.HandleGetMember)
		directory.POST("/members", directoryHandler.HandleEnrollMember)
		directory.DELETE("/members/:memberID", directoryHandler.HandleDeleteMember)
	}

	activities := s.Router.Group(basePath)
	{
		activities.GET("/activities", activityHandler.HandleListActivities)
		activities.GET("/activities/:activityID", activityHandler.HandleGetActivity)
		activities.POST("/activities", activityHandler.HandleCreateActivity)
		activities.PUT("/activities/:activityID", activityHandler.HandleUpdateActivity)
		activities.DELETE("/activities/:activityID", activityHandler.HandleDeleteActivity)
		activities.GET("/activities/:activityID/participants", activityHandler.HandleListParticipants)
		activities.GET("/activities/:activityID/payments", activityHandler.HandleListActivityPayments)
		activities.GET("/activities/:activityID/payments/total", paymentHandler.HandleGetActivityTotal)
		activities.GET("/activities/:activityID/balance", activityHandler.HandleGetBalance)
	}

	attendances := s.Router.Group(basePath)
	{
		attendances.GET("/attendances", attendanceHandler.HandleListByActivity)
		attendances.POST("/attendances/member", attendanceHandler.HandleRegisterMember)
		attendances.POST("/attendances/guest", attendanceHandler.HandleRegisterGuest)
		attendances.POST("/attendances/guests/anonymous", attendanceHandler.HandleRegisterAnonymousGuests)
		attendances.DELETE("/attendances/:attendanceID", attendanceHandler.HandleDeleteAttendance)
	}

	payments := s.Router.Group(basePath)
	{
		payments.GET("/payments", paymentHandler.HandleListPayments)
		payments.GET("/payments/:paymentID", paymentHandler.HandleGetPayment)
		payments.POST("/payments/member", paymentHandler.HandleRecordMemberPayment)
		payments.POST("/payments/guest", paymentHandler.HandleRecordGuestPayment)
		payments.PUT("/payments/:paymentID", paymentHandler.HandleUpdatePayment)
		payments.DELETE("/payments/:paymentID", paymentHandler.HandleDeletePayment)
	}

	statistics := s.Router.Group(basePath)
	{
		statistics.GET("/statistics/period", statisticsHandler.HandlePeriodReport)
		statistics.GET("/statistics/members", statisticsHandler.HandleMemberReport)
		statistics.GET("/statistics/units", statisticsHandler.HandleUnitReport)
		statistics.GET("/statistics/regions", statisticsHandler.HandleRegionCounts)
		statistics.GET("/statistics/participation", statisticsHandler.HandleParticipationCounts)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
}
