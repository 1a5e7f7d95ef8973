package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/config"
	appHTTP "github.com/staffdesk/staffdesk-backend-go/internal/handler/http"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/cron"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/push"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
	analyticsService "github.com/staffdesk/staffdesk-backend-go/internal/service/analytics"
	announcementService "github.com/staffdesk/staffdesk-backend-go/internal/service/announcement"
	attendanceService "github.com/staffdesk/staffdesk-backend-go/internal/service/attendance"
	authService "github.com/staffdesk/staffdesk-backend-go/internal/service/auth"
	leaveService "github.com/staffdesk/staffdesk-backend-go/internal/service/leave"
	reportService "github.com/staffdesk/staffdesk-backend-go/internal/service/report"
	taskService "github.com/staffdesk/staffdesk-backend-go/internal/service/task"
	userService "github.com/staffdesk/staffdesk-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	pushService := push.NewFCMService(cfg.FCM.ProjectID, cfg.FCM.ClientEmail, cfg.FCM.PrivateKey)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	reportSvc := reportService.NewReportService(userRepo, attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, userRepo)
	taskSvc := taskService.NewTaskService(taskRepo, userRepo)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo, userRepo, pushService)
	analyticsSvc := analyticsService.NewAnalyticsService(db, userRepo, attendanceRepo, taskRepo, leaveRepo)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("sweep-revoked-tokens", time.Hour, func(ctx context.Context) error {
		jwtService.SweepRevoked(time.Now())
		return nil
	})
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:          jwtService,
		AuthHandler:         appHTTP.NewAuthHandler(authSvc),
		UserHandler:         appHTTP.NewUserHandler(userSvc),
		AttendanceHandler:   appHTTP.NewAttendanceHandler(attendanceSvc),
		ReportHandler:       appHTTP.NewReportHandler(reportSvc),
		LeaveHandler:        appHTTP.NewLeaveHandler(leaveSvc),
		TaskHandler:         appHTTP.NewTaskHandler(taskSvc),
		AnnouncementHandler: appHTTP.NewAnnouncementHandler(announcementSvc),
		AnalyticsHandler:    appHTTP.NewAnalyticsHandler(analyticsSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
