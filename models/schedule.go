package models

type ScheduleEntry struct {
	ID          int    `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	SportTypeID *int   `json:"sport_type_id"`
	SportName   string `json:"sport_name"`
	CoachID     *int   `json:"coach_id"`
	CoachName   string `json:"coach_name"`
	Room        string `json:"room"`
	CreatedAt   string `json:"created_at"`
}

type ScheduleCreate struct {
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	SportTypeID *int   `json:"sport_type_id"`
	CoachID     *int   `json:"coach_id"`
	Room        string `json:"room"`
}

type ScheduleUpdate struct {
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	SportTypeID *int    `json:"sport_type_id"`
	CoachID     *int    `json:"coach_id"`
	Room        *string `json:"room"`
}
