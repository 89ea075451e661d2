package hrrequest

import "time"

// CreateRequest carries a new leave/vacancy request. Type is free text ("vacante", "permiso", ...).
type CreateRequest struct {
	Type        string `json:"tipo" binding:"required,max=50"`
	Description string `json:"descripcion" binding:"required"`
	CreatedBy   uint   `json:"creado_por" binding:"required,gte=1"`
}

type UpdateRequest struct {
	Type        *string `json:"tipo" binding:"omitempty,min=1,max=50"`
	Description *string `json:"descripcion" binding:"omitempty,min=1"`
}

func (r UpdateRequest) IsEmpty() bool {
	return r.Type == nil && r.Description == nil
}

type RequestResponse struct {
	ID          uint      `json:"id"`
	Type        string    `json:"tipo"`
	Description string    `json:"descripcion"`
	CreatedBy   uint      `json:"creado_por"`
	CreatedAt   time.Time `json:"fecha"`
}
