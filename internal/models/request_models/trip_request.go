package request_models

import "ildanga/internal/models/db_models"

type SetDestinationRequest struct {
	RegionID int `json:"region_id" binding:"required"`
}

type SetDurationRequest struct {
	Days int `json:"days"`
}

type SetStartDateRequest struct {
	Date string `json:"date"`
}

type SetTripStyleRequest struct {
	Style string `json:"style" binding:"omitempty,oneof=RELAXED NORMAL PACKED"`
}

type AddAttractionRequest struct {
	Attraction db_models.Attraction `json:"attraction" binding:"required"`
}

type AddRestaurantRequest struct {
	Restaurant db_models.Restaurant `json:"restaurant" binding:"required"`
}

type SetScheduleRequest struct {
	Schedule []db_models.DaySchedule `json:"schedule"`
}

type UpdateDayScheduleRequest struct {
	Items []db_models.ScheduleItem `json:"items"`
}

type SetTransportRequest struct {
	Transport *db_models.TransportInfo `json:"transport"`
}
