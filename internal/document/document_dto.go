package document

import "time"

type CreateDocumentRequest struct {
	Name      string `json:"nombre" binding:"required,max=255"`
	Category  string `json:"categoria" binding:"required,max=100"`
	Path      string `json:"ruta" binding:"required,max=500"`
	CreatedBy uint   `json:"creado_por" binding:"required,gte=1"`
}

// UpdateDocumentRequest is a merge-patch. The uploader is fixed at creation.
type UpdateDocumentRequest struct {
	Name     *string `json:"nombre" binding:"omitempty,min=1,max=255"`
	Category *string `json:"categoria" binding:"omitempty,min=1,max=100"`
	Path     *string `json:"ruta" binding:"omitempty,min=1,max=500"`
}

func (r UpdateDocumentRequest) IsEmpty() bool {
	return r.Name == nil && r.Category == nil && r.Path == nil
}

type DocumentResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"nombre"`
	Category   string    `json:"categoria"`
	Path       string    `json:"ruta"`
	CreatedBy  uint      `json:"creado_por"`
	UploadedAt time.Time `json:"fecha_subido"`
}
