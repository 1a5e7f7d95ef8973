package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/datetime"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{attendanceRepo: attendanceRepo}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := time.Now().UTC()
	if !datetime.IsPlausible(req.DeviceTime, nowUTC) {
		return attendance.AttendanceResponse{}, attendance.ErrImplausibleDeviceTime
	}

	open, err := s.attendanceRepo.GetOpenByUser(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up open record: %w", err)
	}
	if open != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	// Day boundary is local midnight of the device-supplied time.
	dayStart, dayEnd := datetime.DayWindow(req.DeviceTime)
	exists, err := s.attendanceRepo.HasCheckInInWindow(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check daily uniqueness: %w", err)
	}
	if exists {
		return attendance.AttendanceResponse{}, attendance.ErrDuplicateCheckInForDay
	}

	timezone := "UTC"
	if req.Timezone != nil && *req.Timezone != "" {
		timezone = *req.Timezone
	}

	record := attendance.Attendance{
		UserID:          userID,
		WorkDay:         time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), 0, 0, 0, 0, time.UTC),
		CheckIn:         req.DeviceTime,
		CheckInTimezone: &timezone,
		ServerCheckIn:   nowUTC,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		// Create maps store-level conflicts back to the domain errors, so a
		// race lost between the reads above and the insert still surfaces
		// as ErrAlreadyCheckedIn / ErrDuplicateCheckInForDay.
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := time.Now().UTC()
	if !datetime.IsPlausible(req.DeviceTime, nowUTC) {
		return attendance.AttendanceResponse{}, attendance.ErrImplausibleDeviceTime
	}

	open, err := s.attendanceRepo.GetOpenByUser(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up open record: %w", err)
	}
	if open == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoOpenCheckIn
	}

	if !req.DeviceTime.After(open.CheckIn) {
		return attendance.AttendanceResponse{}, attendance.ErrCheckOutBeforeCheckIn
	}

	timezone := "UTC"
	if req.Timezone != nil && *req.Timezone != "" {
		timezone = *req.Timezone
	}

	hours := datetime.HoursBetween(open.CheckIn, req.DeviceTime)
	checkOut := req.DeviceTime

	open.CheckOut = &checkOut
	open.WorkingHours = &hours
	open.CheckOutTimezone = &timezone
	open.ServerCheckOut = &nowUTC

	closed, err := s.attendanceRepo.Close(ctx, *open)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	resp := attendance.ToResponse(closed)
	summary := attendance.Summary(hours)
	resp.Summary = &summary
	return resp, nil
}

// GetHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetHistory(ctx context.Context, filter attendance.HistoryFilter) (attendance.HistoryResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	filter.Normalize()
	offset := (filter.Page - 1) * filter.Limit

	records, total, err := s.attendanceRepo.ListByUser(ctx, userID, filter.Limit, offset)
	if err != nil {
		return attendance.HistoryResponse{}, fmt.Errorf("failed to list attendance history: %w", err)
	}

	resp := attendance.HistoryResponse{
		Records:    make([]attendance.AttendanceResponse, 0, len(records)),
		TotalItems: total,
	}
	for _, record := range records {
		resp.Records = append(resp.Records, attendance.ToResponse(record))
	}

	return resp, nil
}
