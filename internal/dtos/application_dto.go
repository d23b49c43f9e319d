package dtos

// ApplicationRequest carries the public reaction form posted on a job detail
// page. The CV file travels separately as a multipart part.
type ApplicationRequest struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Phone   string `form:"phone" json:"phone"`
	Message string `form:"message" json:"message"`
}
