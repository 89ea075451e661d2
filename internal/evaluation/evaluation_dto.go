package evaluation

import "time"

type CreateEvaluationRequest struct {
	EmployeeID uint     `json:"empleado_id" binding:"required,gte=1"`
	Type       string   `json:"tipo" binding:"required,oneof=auto pares gerente"`
	Score      *float64 `json:"puntaje" binding:"required,gte=0"`
	Comments   *string  `json:"comentarios"`
}

type UpdateEvaluationRequest struct {
	Type     *string  `json:"tipo" binding:"omitempty,oneof=auto pares gerente"`
	Score    *float64 `json:"puntaje" binding:"omitempty,gte=0"`
	Comments *string  `json:"comentarios"`
}

func (r UpdateEvaluationRequest) IsEmpty() bool {
	return r.Type == nil && r.Score == nil && r.Comments == nil
}

type EvaluationResponse struct {
	ID         uint      `json:"id"`
	EmployeeID uint      `json:"empleado_id"`
	Type       string    `json:"tipo"`
	Score      float64   `json:"puntaje"`
	Comments   *string   `json:"comentarios"`
	Date       time.Time `json:"fecha"`
}
