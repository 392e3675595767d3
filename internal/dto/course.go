package dto

type CourseResponse struct {
	ID             int64               `json:"id"`
	Title          string              `json:"title"`
	Description    *string             `json:"description"`
	ThumbnailURL   *string             `json:"thumbnail_url"`
	Level          *string             `json:"level"`
	TotalEnrolled  int                 `json:"total_enrolled"`
	Price          float64             `json:"price"`
	OriginalPrice  float64             `json:"original_price"`
	DurationHours  int                 `json:"duration_hours"`
	Rating         float64             `json:"rating"`
	RatingCount    int                 `json:"rating_count"`
	Status         *string             `json:"status"`
	ApprovalStatus *string             `json:"approval_status"`
	Instructor     *InstructorResponse `json:"instructor"`
	Category       *CategoryResponse   `json:"category"`
	Tags           []TagResponse       `json:"tags"`
}

type InstructorResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
