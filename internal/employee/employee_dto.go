package employee

type CreateEmployeeRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type UpdateEmployeeRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Active   *bool   `json:"active"`
}

type EmployeeResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	BadgeNumber string `json:"badge_number"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Active      bool   `json:"active"`
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID.String(),
		CompanyID:   e.CompanyID.String(),
		BadgeNumber: e.BadgeNumber,
		FullName:    e.FullName,
		Email:       e.Email,
		Active:      e.Active,
	}
}
