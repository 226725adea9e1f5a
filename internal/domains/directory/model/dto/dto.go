package dto

import "fairhall/internal/domains/directory/model"

type CreateAdminRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type UpdateAdminRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"omitempty,min=6,max=72"`
}

type AdminResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (r *AdminResponse) FromModel(m model.Admin) {
	r.ID = m.ID
	r.Name = m.Name
	r.Email = m.Email
	r.Role = m.Role
}

type GetAdminsResponse struct {
	Admins []AdminResponse `json:"admins"`
}

func (r *GetAdminsResponse) FromModels(models []model.Admin) {
	r.Admins = make([]AdminResponse, len(models))
	for i, m := range models {
		r.Admins[i].FromModel(m)
	}
}
