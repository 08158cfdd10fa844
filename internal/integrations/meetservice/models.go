package meetservice

// CreateMeetingRequest тело запроса на создание видеовстречи
type CreateMeetingRequest struct {
	PatientEmail  string `json:"patientEmail"`
	StartDateTime string `json:"startDateTime"` // ISO-8601 instant
	EndDateTime   string `json:"endDateTime"`   // ISO-8601 instant
}

// CreateMeetingResponse тело успешного ответа сервиса видеовстреч
type CreateMeetingResponse struct {
	MeetLink string `json:"meetLink"`
}

// ErrorResponse модель ошибки от сервиса видеовстреч
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
